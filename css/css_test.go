/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/czero/css"
)

func TestSheet_String(t *testing.T) {
	var sheet css.Sheet
	sheet.Rule(":root").
		Set("--cz-button-radius", "var(--cz-radius-md)").
		Set("--cz-button-gap", "")
	sheet.Rule(".cz-button").
		Set("display", "inline-flex").
		Set("border-radius", "var(--cz-button-radius)")
	sheet.Rule(".cz-button-sm")

	expected := `:root {
  --cz-button-radius: var(--cz-radius-md);
}

.cz-button {
  display: inline-flex;
  border-radius: var(--cz-button-radius);
}
`
	assert.Equal(t, expected, sheet.String())
}

func TestSheet_RawAppendedLast(t *testing.T) {
	var sheet css.Sheet
	sheet.Rule(".a").Set("color", "red")
	sheet.Raw = ".a:hover { color: blue; }"

	assert.Equal(t, ".a {\n  color: red;\n}\n\n.a:hover { color: blue; }\n", sheet.String())
}

func TestSheet_RawOnly(t *testing.T) {
	sheet := css.Sheet{Raw: ".x{}\n"}
	assert.Equal(t, ".x{}\n", sheet.String())
}

func TestRule_Nested(t *testing.T) {
	r := css.NewRule("@keyframes cz-pulse")
	r.Nest("0%, 100%").Set("opacity", "1")
	r.Nest("50%").Set("opacity", "0.5")
	r.Nest("75%")

	expected := `@keyframes cz-pulse {
  0%, 100% {
    opacity: 1;
  }
  50% {
    opacity: 0.5;
  }
}
`
	assert.Equal(t, expected, r.String())
}

func TestRule_EmptyNestedIsEmpty(t *testing.T) {
	r := css.NewRule("@media (prefers-reduced-motion: reduce)")
	r.Nest(".cz-skeleton")
	assert.True(t, r.Empty())
	assert.Equal(t, "", r.String())
}

func TestRule_Value(t *testing.T) {
	r := css.NewRule(".a").Set("color", "red").Set("color", "blue")
	v, ok := r.Value("color")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)

	_, ok = r.Value("margin")
	assert.False(t, ok)
}

func TestVar(t *testing.T) {
	assert.Equal(t, "var(--cz-x)", css.Var("--cz-x"))
	assert.Equal(t, "var(--cz-x, 1px)", css.VarOr("--cz-x", "1px"))
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"paddingX", "padding-x"},
		{"borderColor", "border-color"},
		{"dropdownMenu", "dropdown-menu"},
		{"primary", "primary"},
		{"2xl", "2xl"},
		{"title_font.size", "title-font-size"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, css.ToKebabCase(tt.input))
		})
	}
}
