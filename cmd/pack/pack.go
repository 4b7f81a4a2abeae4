/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pack provides the pack command for czero.
package pack

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/czero/assets"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
)

// Cmd is the pack cobra command.
var Cmd = &cobra.Command{
	Use:   "pack",
	Short: "Concatenate hand-written component stylesheets",
	Long: `Concatenate <src>/<component>.css for every component, in registration order,
into one file. A missing stylesheet is fatal: the command lists every missing
path and exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("src", "src/styles/components", "Directory holding one stylesheet per component")
	Cmd.Flags().StringP("output", "o", "dist/czero.components.css", "Output file")

	_ = viper.BindPFlag("pack.src", Cmd.Flags().Lookup("src"))
	_ = viper.BindPFlag("pack.output", Cmd.Flags().Lookup("output"))
}

func run(cmd *cobra.Command, args []string) error {
	return Pack(fs.NewOSFileSystem(), viper.GetString("pack.src"), viper.GetString("pack.output"))
}

// Pack writes the bundle of srcDir to output, warning about stray
// stylesheets and listing missing ones.
func Pack(filesystem fs.FileSystem, srcDir, output string) error {
	bundle, err := assets.Pack(filesystem, srcDir)
	var missing *assets.MissingError
	if errors.As(err, &missing) {
		logger.ErrorList("Missing component stylesheets:", missing.Paths)
		return err
	}
	if err != nil {
		return err
	}

	logger.WarnList("Stylesheets that belong to no component were skipped:", bundle.Stray)

	if err := filesystem.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := filesystem.WriteFile(output, []byte(bundle.CSS), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("Packed %d stylesheets into %s", len(bundle.Files), output)
	return nil
}
