/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/internal/mapfs"
	"bennypowers.dev/czero/testutil"
)

func TestGenerate_WritesOutput(t *testing.T) {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	loaded, err := Generate(mfs, io.Discard, Options{RootDir: "/project", Output: "dist/czero.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Path != "/project/czero.config.yaml" {
		t.Errorf("unexpected config path %q", loaded.Path)
	}

	out := mfs.Contents("/project/dist/czero.css")
	for _, want := range []string{
		"--cz-color-primary: 262 83% 58%;",
		"--cz-radius-md: 0.5rem;",
		"--cz-button-radius: var(--cz-radius-full);",
		"/* ===== BUTTON ===== */",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "/* ===== TOOLTIP ===== */") {
		t.Error("tooltip was disabled and should not be emitted")
	}
	if !strings.HasSuffix(out, ".app { min-height: 100vh; }\n") {
		t.Errorf("expected customCSS.after at the end, got %q", out[max(0, len(out)-80):])
	}
}

func TestGenerate_Stdout(t *testing.T) {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	var buf bytes.Buffer
	loaded, err := Generate(mfs, &buf, Options{RootDir: "/project", Output: "czero.css", Stdout: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Path != "" {
		t.Errorf("expected defaults, got config %q", loaded.Path)
	}
	if mfs.Exists("/project/czero.css") {
		t.Error("stdout mode should not write a file")
	}
	if !strings.Contains(buf.String(), "/* ===== TABLE ===== */") {
		t.Error("expected the full stylesheet on stdout")
	}
}

func TestGenerate_ReportsProblemsWithoutFailing(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer logger.SetOutput(os.Stderr)

	mfs := mapfs.New()
	mfs.AddFile("/project/czero.config.yaml", "components:\n  buton: {}\n  card: rounded\n", 0644)

	if _, err := Generate(mfs, io.Discard, Options{RootDir: "/project", Output: "czero.css"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mfs.Exists("/project/czero.css") {
		t.Error("expected the stylesheet to be written despite problems")
	}
	for _, want := range []string{"error: Configuration errors:", "components.card", "warning: Configuration warnings:", "components.buton"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected logs to contain %q, got:\n%s", want, logs.String())
		}
	}
}

func TestWatchList(t *testing.T) {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	t.Run("with config and presets", func(t *testing.T) {
		mfs := testutil.NewFixtureFS(t, "fixtures/config/presets", "/project")
		loaded, err := Generate(mfs, io.Discard, Options{RootDir: "/project", Stdout: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		files := WatchList(mfs, "/project", loaded)
		for _, want := range []string{
			"/project/czero.config.yaml",
			"/project/presets/rounded.yaml",
			"/project/presets/compact.toml",
			"/project/czero.custom.css",
		} {
			if !contains(files, want) {
				t.Errorf("expected %s in %v", want, files)
			}
		}
	})

	t.Run("without config", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddDir("/project", 0755)
		loaded, _ := Generate(mfs, io.Discard, Options{RootDir: "/project", Stdout: true})
		files := WatchList(mfs, "/project", loaded)
		if !contains(files, "/project/czero.config.toml") {
			t.Errorf("expected candidate config names, got %v", files)
		}
		if contains(files, "/project/styles/czero.custom.css") {
			t.Errorf("should not watch inside missing directories, got %v", files)
		}
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
