/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token resolves czero token references into CSS custom-property expressions.
//
// A token reference is a configuration string starting with the sigil "$",
// followed by a category-qualified name and an optional opacity suffix:
//
//	$color-primary        -> hsl(var(--cz-color-primary))
//	$color-primary / 0.5  -> hsl(var(--cz-color-primary) / 0.5)
//	$radius-md            -> var(--cz-radius-md)
//	$font-sm              -> var(--cz-font-size-sm)
//
// Any other string is a literal CSS value and passes through unchanged.
package token

import (
	"slices"
	"strings"
)

const (
	// Sigil marks a configuration value as a token reference.
	Sigil = "$"

	// Prefix namespaces every generated custom property.
	Prefix = "cz"
)

// Category is the group a token belongs to. It determines how the token resolves.
type Category string

const (
	CategoryColor      Category = "color"
	CategoryFont       Category = "font"
	CategoryRadius     Category = "radius"
	CategoryShadow     Category = "shadow"
	CategorySpacing    Category = "spacing"
	CategoryTransition Category = "transition"
)

// Categories returns the resolvable categories in emission order.
func Categories() []Category {
	return []Category{
		CategoryColor,
		CategoryRadius,
		CategoryShadow,
		CategorySpacing,
		CategoryTransition,
		CategoryFont,
	}
}

// Known reports whether c is one of the resolvable categories.
func (c Category) Known() bool {
	return slices.Contains(Categories(), c)
}

// FontGroup is the typography table a font token suffix lives in.
type FontGroup string

const (
	// FontFamily is the fallback group: $font-sans -> --cz-font-sans.
	FontFamily     FontGroup = "fontFamily"
	FontSize       FontGroup = "size"
	FontWeight     FontGroup = "weight"
	FontLineHeight FontGroup = "lineHeight"
)

var (
	fontSizes       = []string{"xs", "sm", "md", "lg", "xl"}
	fontWeights     = []string{"normal", "medium", "semibold", "bold"}
	fontLineHeights = []string{"tight", "relaxed"}
)

// FontGroupOf classifies the suffix of a font-* token.
func FontGroupOf(suffix string) FontGroup {
	switch {
	case slices.Contains(fontSizes, suffix):
		return FontSize
	case slices.Contains(fontWeights, suffix):
		return FontWeight
	case slices.Contains(fontLineHeights, suffix):
		return FontLineHeight
	default:
		return FontFamily
	}
}

// VariableName maps a token name (without sigil) to its custom property.
// Dotted paths are hyphenated. font-* suffixes route through the typography
// groups; every other name maps directly to --cz-<name>.
func VariableName(name string) string {
	name = strings.ReplaceAll(name, ".", "-")
	if suffix, ok := strings.CutPrefix(name, string(CategoryFont)+"-"); ok {
		switch FontGroupOf(suffix) {
		case FontSize:
			return "--" + Prefix + "-font-size-" + suffix
		case FontWeight:
			return "--" + Prefix + "-font-weight-" + suffix
		case FontLineHeight:
			return "--" + Prefix + "-font-lineHeight-" + suffix
		}
	}
	return "--" + Prefix + "-" + name
}
