/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/merge"
)

// DarkSelector scopes the dark-mode color overrides.
const DarkSelector = ".dark"

// TokensCSS merges cfg onto the default theme and emits the global token
// variables: every token in :root, and the dark values of colors in .dark.
func TokensCSS(cfg merge.Tree) string {
	// Shape errors are reported by the validator; emit what decoded.
	t, _ := Load(cfg)
	return t.Sheet().String()
}

// Sheet builds the :root and .dark rules for the theme.
func (t *Theme) Sheet() *css.Sheet {
	sheet := &css.Sheet{}
	root := sheet.Rule(":root")
	dark := sheet.Rule(DarkSelector)
	for _, v := range t.Variables() {
		root.Set(v.Name, v.Value)
		dark.Set(v.Name, v.Dark)
	}
	return sheet
}
