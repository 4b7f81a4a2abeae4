/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

// Button tokens.
type Button struct {
	Radius     string             `mapstructure:"radius"`
	FontFamily string             `mapstructure:"fontFamily"`
	FontWeight string             `mapstructure:"fontWeight"`
	Gap        string             `mapstructure:"gap"`
	Transition string             `mapstructure:"transition"`
	FocusRing  string             `mapstructure:"focusRing"`
	Sizes      map[string]Size    `mapstructure:"sizes" token:"inline"`
	Variants   map[string]Variant `mapstructure:"variants" token:"inline"`
	CSS        string             `mapstructure:"css" token:"-"`
}

// ButtonCSS generates the button stylesheet.
func ButtonCSS(cfg Button) string {
	s := scope("button")
	sheet := s.sheet(cfg)

	base := sheet.Rule(s.class()).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("justify-content", "center").
		Set("white-space", "nowrap").
		Set("border", "1px solid transparent").
		Set("cursor", "pointer").
		Set("text-decoration", "none").
		Set("user-select", "none")
	s.bind(base, "gap", cfg.Gap, "gap")
	s.bind(base, "border-radius", cfg.Radius, "radius")
	s.bind(base, "font-family", cfg.FontFamily, "fontFamily")
	s.bind(base, "font-weight", cfg.FontWeight, "fontWeight")
	s.transition(base, cfg.Transition, []string{"background-color", "color", "border-color", "box-shadow"}, "transition")

	sheet.Rule(s.class() + " svg").
		Set("flex-shrink", "0").
		Set("pointer-events", "none")

	focus := sheet.Rule(s.class() + ":focus-visible")
	if cfg.FocusRing != "" {
		focus.Set("outline", "2px solid "+s.use("focusRing")).
			Set("outline-offset", "2px")
	}

	sheet.Rule(s.class()+":disabled, "+s.class()+"[aria-disabled=\"true\"]").
		Set("pointer-events", "none").
		Set("opacity", "0.5")

	s.sizeRules(sheet, cfg.Sizes)
	s.variantRules(sheet, cfg.Variants)

	sheet.Raw = cfg.CSS
	return sheet.String()
}
