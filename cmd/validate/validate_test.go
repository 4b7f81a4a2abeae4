/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/internal/mapfs"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func project(config string) *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/project/czero.config.yaml", config, 0644)
	return mfs
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		strict  bool
		wantErr bool
		logs    string
	}{
		{
			name:   "valid",
			config: "radius:\n  md: 0.5rem\ncomponents:\n  button:\n    radius: $radius-full\n",
			logs:   "is valid",
		},
		{
			name:    "error",
			config:  "components:\n  button:\n    radius: $radius-md / 1 / 2\n",
			wantErr: true,
			logs:    "error: Errors:",
		},
		{
			name:   "warning",
			config: "components:\n  button:\n    radius: $radius-huge\n",
			logs:   "warning: Warnings:",
		},
		{
			name:    "warning strict",
			config:  "components:\n  button:\n    radius: $radius-huge\n",
			strict:  true,
			wantErr: true,
			logs:    "components.button.radius",
		},
		{
			name:    "low contrast strict",
			config:  "color:\n  primary-foreground:\n    light: \"222 47% 20%\"\n",
			strict:  true,
			wantErr: true,
			logs:    "color.primary-foreground",
		},
		{
			name:    "unparseable",
			config:  "color: [unclosed\n",
			wantErr: true,
			logs:    "error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			err := Validate(project(tt.config), "/project", "", tt.strict)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !strings.Contains(logs.String(), tt.logs) {
				t.Errorf("expected logs to contain %q, got:\n%s", tt.logs, logs.String())
			}
		})
	}
}

func TestValidate_NoConfig(t *testing.T) {
	logs := captureLogs(t)

	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	if err := Validate(mfs, "/project", "", true); err != nil {
		t.Errorf("a missing config is not invalid, got %v", err)
	}
	if !strings.Contains(logs.String(), "No czero config found") {
		t.Errorf("expected notice, got %q", logs.String())
	}
}
