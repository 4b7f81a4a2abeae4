/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for czero.
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/czero/cmd/build"
	"bennypowers.dev/czero/cmd/mcp"
	"bennypowers.dev/czero/cmd/pack"
	"bennypowers.dev/czero/cmd/resolve"
	"bennypowers.dev/czero/cmd/tokens"
	"bennypowers.dev/czero/cmd/validate"
	"bennypowers.dev/czero/cmd/version"
	"bennypowers.dev/czero/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "czero",
	Short: "Generate component CSS from design tokens",
	Long: `czero merges your theme and component token overrides onto its defaults
and writes a single stylesheet: reset rules, :root and .dark token blocks,
then one block per component.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("quiet") {
			logger.SetQuiet(true)
		} else {
			logger.SetVerbose(viper.GetBool("verbose"))
		}
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: czero.config.{yaml,yml,json,jsonc,toml})")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print warnings and errors")

	viper.SetEnvPrefix("CZERO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(pack.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
