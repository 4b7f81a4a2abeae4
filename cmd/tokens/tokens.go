/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the tokens command for czero.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the merged theme tokens",
	Long: `List the theme tokens after merging the config onto the defaults, with the
reference each is used by, its custom property and its values.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, css")
	Cmd.Flags().String("category", "", "Only list one category (color, radius, shadow, spacing, transition, font)")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	category, _ := cmd.Flags().GetString("category")

	loaded := config.LoadOrDefault(fs.NewOSFileSystem(), ".", viper.GetString("config"))
	return Write(cmd.OutOrStdout(), loaded, format, token.Category(category))
}

// Entry is one token in json output.
type Entry struct {
	Reference string `json:"reference"`
	Variable  string `json:"variable"`
	Category  string `json:"category"`
	Value     string `json:"value"`
	Dark      string `json:"dark,omitempty"`
	Hex       string `json:"hex,omitempty"`
	DarkHex   string `json:"darkHex,omitempty"`
}

// Entries lists the theme's tokens, optionally limited to one category.
func Entries(thm *theme.Theme, category token.Category) []Entry {
	var out []Entry
	for _, v := range thm.Variables() {
		if category != "" && v.Category != category {
			continue
		}
		e := Entry{
			Reference: token.Sigil + string(v.Category) + "-" + v.Key,
			Variable:  v.Name,
			Category:  string(v.Category),
			Value:     v.Value,
			Dark:      v.Dark,
		}
		if v.Category == token.CategoryColor {
			e.Hex, _ = theme.Hex(v.Value)
			e.DarkHex, _ = theme.Hex(v.Dark)
		}
		out = append(out, e)
	}
	return out
}

// Write renders the merged theme of loaded in format.
func Write(w io.Writer, loaded *config.Loaded, format string, category token.Category) error {
	if category != "" && !category.Known() {
		return fmt.Errorf("unknown category %q", category)
	}

	thm, err := theme.Load(loaded.Tree)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Entries(thm, category))
	case "css":
		_, err := io.WriteString(w, thm.Sheet().String())
		return err
	case "table", "":
		return writeTable(w, Entries(thm, category))
	default:
		return fmt.Errorf("unknown format %q (expected table, json or css)", format)
	}
}

var headings = []string{"reference", "variable", "value", "dark", "hex"}

func writeTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	upper := cases.Upper(language.English)
	cols := make([]string, len(headings))
	for i, h := range headings {
		cols[i] = upper.String(h)
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, e := range entries {
		hex := e.Hex
		if e.DarkHex != "" && e.DarkHex != e.Hex {
			hex += " / " + e.DarkHex
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Reference, e.Variable, e.Value, dash(e.Dark), dash(hex))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
