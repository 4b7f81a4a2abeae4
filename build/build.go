/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build assembles the czero stylesheet: reset rules, theme tokens
// and one block per registered component.
package build

import (
	_ "embed"
	"fmt"
	"strings"

	"bennypowers.dev/czero/components"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/theme"
)

//go:embed reset.css
var resetCSS string

// Reset returns the base reset rules that open every document.
func Reset() string {
	return resetCSS
}

// CustomCSS is the verbatim CSS a configuration places around the
// component blocks. It is trusted, developer-supplied input.
type CustomCSS struct {
	Before string
	After  string
}

// CustomCSSOf reads customCSS.before and customCSS.after from cfg.
// Values that are not strings are ignored; the validator reports them.
func CustomCSSOf(cfg merge.Tree) CustomCSS {
	var custom CustomCSS
	if v, ok := merge.Lookup(cfg, "customCSS", "before"); ok {
		custom.Before, _ = v.(string)
	}
	if v, ok := merge.Lookup(cfg, "customCSS", "after"); ok {
		custom.After, _ = v.(string)
	}
	return custom
}

// MergedComponents overlays cfg's components onto the defaults table.
func MergedComponents(cfg merge.Tree) merge.Tree {
	user, _ := merge.AsTree(cfg["components"])
	return merge.Merge(components.Defaults(), user)
}

// Components generates the component blocks and collects decode diagnostics.
//
// customCSS.before opens the output and customCSS.after closes it. Each
// registered component whose merged slice is present is emitted, in
// registration order, under its marker comment. Slices set to null or
// false are skipped; any other non-mapping slice is reported and skipped.
func Components(cfg merge.Tree) (string, []components.Diagnostic) {
	merged := MergedComponents(cfg)
	custom := CustomCSSOf(cfg)

	var sb strings.Builder
	var diags []components.Diagnostic

	if custom.Before != "" {
		sb.WriteString(custom.Before)
		sb.WriteString("\n")
	}

	for _, c := range components.All() {
		value := merged[c.Name]
		if skip(value) {
			continue
		}
		slice, ok := merge.AsTree(value)
		if !ok {
			diags = append(diags, components.Diagnostic{
				Component: c.Name,
				Message:   fmt.Sprintf("expected a mapping, got %T", value),
			})
			continue
		}

		out, d := c.Render(slice)
		diags = append(diags, d...)

		sb.WriteString(c.Marker())
		sb.WriteString("\n")
		sb.WriteString(out)
		sb.WriteString("\n")
	}

	if custom.After != "" {
		sb.WriteString(custom.After)
	}

	return sb.String(), diags
}

// ComponentsCSS generates the component blocks, discarding diagnostics.
func ComponentsCSS(cfg merge.Tree) string {
	out, _ := Components(cfg)
	return out
}

// Document generates the complete stylesheet: reset rules, the :root and
// .dark token blocks, then the component blocks.
func Document(cfg merge.Tree) (string, []components.Diagnostic) {
	comps, diags := Components(cfg)

	var sb strings.Builder
	sb.WriteString(Reset())
	sb.WriteString("\n")
	sb.WriteString(theme.TokensCSS(cfg))
	sb.WriteString("\n")
	sb.WriteString(comps)
	return sb.String(), diags
}

// skip reports whether a merged slice disables its component.
func skip(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	default:
		return false
	}
}
