/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for czero.
package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/validator"
)

// ErrInvalid is returned when validation finds errors, or warnings in
// strict mode.
var ErrInvalid = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the czero config for problems",
	Long: `Check the czero config for shape errors, unknown keys, malformed token
references and references that do not name a theme token.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	return Validate(fs.NewOSFileSystem(), ".", viper.GetString("config"), strict)
}

// Validate loads the config and reports every problem found. It returns
// ErrInvalid when there are errors, or any warnings in strict mode. A config
// file that cannot be loaded is an error here, unlike during a build.
func Validate(filesystem fs.FileSystem, rootDir, path string, strict bool) error {
	loaded, err := config.Load(filesystem, rootDir, path)
	if errors.Is(err, config.ErrNotFound) {
		logger.Info("No czero config found, nothing to validate")
		return nil
	}
	if err != nil {
		logger.Error("%v", err)
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	logger.Debug("Validating %s", loaded.Path)

	errs, warnings := validator.Partition(validator.Validate(loaded.Tree))
	logger.ErrorList("Errors:", validator.Messages(errs))
	logger.WarnList("Warnings:", validator.Messages(warnings))

	switch {
	case len(errs) > 0:
		return fmt.Errorf("%w: %d errors, %d warnings", ErrInvalid, len(errs), len(warnings))
	case strict && len(warnings) > 0:
		return fmt.Errorf("%w: %d warnings (strict)", ErrInvalid, len(warnings))
	}

	logger.Info("%s is valid", loaded.Path)
	return nil
}
