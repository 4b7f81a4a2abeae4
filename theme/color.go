/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Hex converts an HSL triple such as "222 47% 11%" to a hex color.
func Hex(triple string) (string, bool) {
	c, err := csscolorparser.Parse("hsl(" + triple + ")")
	if err != nil {
		return "", false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), true
}

// Contrast returns the WCAG contrast ratio between two HSL triples.
func Contrast(a, b string) (float64, bool) {
	ca, err := csscolorparser.Parse("hsl(" + a + ")")
	if err != nil {
		return 0, false
	}
	cb, err := csscolorparser.Parse("hsl(" + b + ")")
	if err != nil {
		return 0, false
	}
	la := luminance(colorful.Color{R: ca.R, G: ca.G, B: ca.B})
	lb := luminance(colorful.Color{R: cb.R, G: cb.G, B: cb.B})
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), true
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
