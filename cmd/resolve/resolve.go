/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for czero.
package resolve

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
)

// ErrMalformed is returned when any argument is a malformed reference.
var ErrMalformed = errors.New("malformed token references")

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <token>...",
	Short: "Print the CSS a token reference resolves to",
	Example: `  czero resolve '$color-primary' '$color-primary / 0.5' '$font-sm'
  czero resolve 1rem`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	loaded := config.LoadOrDefault(fs.NewOSFileSystem(), ".", viper.GetString("config"))
	thm, err := theme.Load(loaded.Tree)
	if err != nil {
		logger.Warn("%v", err)
	}
	return Resolve(cmd.OutOrStdout(), thm, args)
}

// Resolve writes one line per value: the value and the CSS it resolves to.
// Literals resolve to themselves. References the theme does not define are
// resolved but warned about; malformed references are collected and
// reported, and make Resolve return ErrMalformed.
func Resolve(w io.Writer, thm *theme.Theme, values []string) error {
	var malformed []string
	for _, value := range values {
		if !token.IsReference(value) {
			fmt.Fprintf(w, "%s\t%s\n", value, value)
			continue
		}
		ref, err := token.Parse(value)
		if err != nil {
			malformed = append(malformed, err.Error())
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", value, ref.CSS())
		if thm != nil && !thm.Has(ref) {
			logger.Warn("%s is not defined by the theme", ref.Variable())
		}
	}

	if len(malformed) > 0 {
		logger.ErrorList("Malformed token references:", malformed)
		return fmt.Errorf("%w: %d of %d", ErrMalformed, len(malformed), len(values))
	}
	return nil
}
