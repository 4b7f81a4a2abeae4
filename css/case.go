/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import (
	"strings"
	"unicode"
)

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces and camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && i > 0:
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// ToKebabCase converts a string to kebab-case: "paddingX" -> "padding-x".
func ToKebabCase(s string) string {
	return strings.ToLower(strings.Join(SplitIntoWords(s), "-"))
}
