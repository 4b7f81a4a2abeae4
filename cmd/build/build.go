/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for czero.
package build

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	czbuild "bennypowers.dev/czero/build"
	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/internal/watch"
	"bennypowers.dev/czero/validator"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the czero stylesheet",
	Long: `Generate the czero stylesheet from the config file and the built-in defaults.

A missing config file is not an error: the defaults are used. Configuration
warnings and errors are reported but never stop the build.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "czero.css", "Output file")
	Cmd.Flags().Bool("stdout", false, "Write the stylesheet to stdout instead of a file")
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when the config, presets or custom CSS change")

	_ = viper.BindPFlag("output", Cmd.Flags().Lookup("output"))
}

// Options control a single build.
type Options struct {
	// RootDir is where the config is searched for.
	RootDir string
	// Config is an explicit config path, or "" to search.
	Config string
	// Output is the stylesheet path, relative to RootDir unless absolute.
	Output string
	// Stdout writes to the command's output instead of Output.
	Stdout bool
}

func run(cmd *cobra.Command, args []string) error {
	stdout, _ := cmd.Flags().GetBool("stdout")
	watching, _ := cmd.Flags().GetBool("watch")

	opts := Options{
		RootDir: ".",
		Config:  viper.GetString("config"),
		Output:  viper.GetString("output"),
		Stdout:  stdout,
	}
	filesystem := fs.NewOSFileSystem()

	loaded, err := Generate(filesystem, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	if !watching {
		return nil
	}
	return watchLoop(cmd.Context(), filesystem, cmd.OutOrStdout(), opts, loaded)
}

// Generate loads the configuration, reports problems and writes the
// stylesheet. It returns the loaded configuration so callers can watch its
// sources.
func Generate(filesystem fs.FileSystem, w io.Writer, opts Options) (*config.Loaded, error) {
	loaded := config.LoadOrDefault(filesystem, opts.RootDir, opts.Config)

	errs, warnings := validator.Partition(validator.Validate(loaded.Tree))
	logger.ErrorList("Configuration errors:", validator.Messages(errs))
	logger.WarnList("Configuration warnings:", validator.Messages(warnings))

	doc, diags := czbuild.Document(loaded.Tree)
	for _, d := range diags {
		logger.Debug("%s", d)
	}

	if opts.Stdout {
		_, err := io.WriteString(w, doc)
		return loaded, err
	}

	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(opts.RootDir, output)
	}
	if err := filesystem.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return loaded, fmt.Errorf("creating output directory: %w", err)
	}
	if err := filesystem.WriteFile(output, []byte(doc), 0644); err != nil {
		return loaded, fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("Wrote %s", output)
	return loaded, nil
}

// WatchList returns the files whose changes should trigger a rebuild: every
// source of loaded, or when there is no config yet, the places one could
// appear.
func WatchList(filesystem fs.FileSystem, rootDir string, loaded *config.Loaded) []string {
	files := loaded.Sources()
	if loaded.Path == "" {
		for _, name := range config.FileNames {
			files = append(files, filepath.Join(rootDir, name))
		}
	}
	if loaded.LegacyCSS == "" {
		for _, rel := range config.LegacyCSSPaths {
			p := filepath.Join(rootDir, rel)
			if filesystem.Exists(filepath.Dir(p)) {
				files = append(files, p)
			}
		}
	}
	return files
}

func watchLoop(ctx context.Context, filesystem fs.FileSystem, w io.Writer, opts Options, loaded *config.Loaded) error {
	for {
		files := WatchList(filesystem, opts.RootDir, loaded)
		watcher, err := watch.New(watch.DefaultConfig(files...))
		if err != nil {
			return err
		}
		changes, err := watcher.Start()
		if err != nil {
			_ = watcher.Stop()
			return err
		}
		logger.Info("Watching %d files for changes", len(files))

		select {
		case <-ctx.Done():
			return watcher.Stop()
		case <-changes:
		}
		if err := watcher.Stop(); err != nil {
			logger.Debug("stopping watcher: %v", err)
		}

		logger.Info("Change detected, rebuilding")
		next, err := Generate(filesystem, w, opts)
		if err != nil {
			logger.Error("%v", err)
		}
		if next != nil {
			loaded = next
		}
	}
}
