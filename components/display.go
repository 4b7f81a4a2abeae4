/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import (
	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/token"
)

// Badge tokens.
type Badge struct {
	Radius     string             `mapstructure:"radius"`
	FontSize   string             `mapstructure:"fontSize"`
	FontWeight string             `mapstructure:"fontWeight"`
	PaddingX   string             `mapstructure:"paddingX"`
	PaddingY   string             `mapstructure:"paddingY"`
	Transition string             `mapstructure:"transition"`
	Sizes      map[string]Size    `mapstructure:"sizes" token:"inline"`
	Variants   map[string]Variant `mapstructure:"variants" token:"inline"`
	CSS        string             `mapstructure:"css" token:"-"`
}

// BadgeCSS generates the badge stylesheet.
func BadgeCSS(cfg Badge) string {
	s := scope("badge")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("border", "1px solid transparent").
		Set("white-space", "nowrap")
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")
	s.bind(r, "font-weight", cfg.FontWeight, "fontWeight")
	s.bind(r, "padding-inline", cfg.PaddingX, "paddingX")
	s.bind(r, "padding-block", cfg.PaddingY, "paddingY")
	s.transition(r, cfg.Transition, []string{"background-color", "color"}, "transition")

	s.sizeRules(sheet, cfg.Sizes)
	s.variantRules(sheet, cfg.Variants)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Card tokens.
type Card struct {
	Radius      string `mapstructure:"radius"`
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Shadow      string `mapstructure:"shadow"`
	Padding     string `mapstructure:"padding"`
	Gap         string `mapstructure:"gap"`
	Title       Text   `mapstructure:"title"`
	Description Text   `mapstructure:"description"`
	CSS         string `mapstructure:"css" token:"-"`
}

// CardCSS generates the card stylesheet with header, content and footer parts.
func CardCSS(cfg Card) string {
	s := scope("card")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class())
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "background-color", cfg.Background, "background")
	s.bind(r, "color", cfg.Color, "color")
	if cfg.BorderColor != "" {
		r.Set("border", "1px solid "+s.use("borderColor"))
	}
	s.bind(r, "box-shadow", cfg.Shadow, "shadow")

	pad := css.VarOr(s.name("padding"), "1.5rem")
	header := sheet.Rule(s.class("header")).
		Set("display", "flex").
		Set("flex-direction", "column").
		Set("padding", pad)
	s.bind(header, "gap", cfg.Gap, "gap")

	s.textRule(sheet.Rule(s.class("title")).Set("margin", "0"), cfg.Title, "title")
	s.textRule(sheet.Rule(s.class("description")).Set("margin", "0"), cfg.Description, "description")

	sheet.Rule(s.class("content")).
		Set("padding", pad).
		Set("padding-top", "0")
	sheet.Rule(s.class("footer")).
		Set("display", "flex").
		Set("align-items", "center").
		Set("padding", pad).
		Set("padding-top", "0")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Avatar tokens.
type Avatar struct {
	Radius     string          `mapstructure:"radius"`
	Background string          `mapstructure:"background"`
	Color      string          `mapstructure:"color"`
	FontSize   string          `mapstructure:"fontSize"`
	FontWeight string          `mapstructure:"fontWeight"`
	Sizes      map[string]Size `mapstructure:"sizes" token:"inline"`
	CSS        string          `mapstructure:"css" token:"-"`
}

// AvatarCSS generates the avatar stylesheet.
func AvatarCSS(cfg Avatar) string {
	s := scope("avatar")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("position", "relative").
		Set("display", "flex").
		Set("flex-shrink", "0").
		Set("overflow", "hidden").
		Set("width", "2.5rem").
		Set("height", "2.5rem")
	s.bind(r, "border-radius", cfg.Radius, "radius")

	sheet.Rule(s.class("image")).
		Set("aspect-ratio", "1").
		Set("width", "100%").
		Set("height", "100%").
		Set("object-fit", "cover")

	fallback := sheet.Rule(s.class("fallback")).
		Set("display", "flex").
		Set("width", "100%").
		Set("height", "100%").
		Set("align-items", "center").
		Set("justify-content", "center")
	s.bind(fallback, "background-color", cfg.Background, "background")
	s.bind(fallback, "color", cfg.Color, "color")
	s.bind(fallback, "font-size", cfg.FontSize, "fontSize")
	s.bind(fallback, "font-weight", cfg.FontWeight, "fontWeight")

	s.sizeRules(sheet, cfg.Sizes)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Kbd tokens.
type Kbd struct {
	FontFamily  string `mapstructure:"fontFamily"`
	FontSize    string `mapstructure:"fontSize"`
	FontWeight  string `mapstructure:"fontWeight"`
	PaddingX    string `mapstructure:"paddingX"`
	PaddingY    string `mapstructure:"paddingY"`
	Radius      string `mapstructure:"radius"`
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Shadow      string `mapstructure:"shadow"`
	CSS         string `mapstructure:"css" token:"-"`
}

// KbdCSS generates the keyboard key stylesheet.
func KbdCSS(cfg Kbd) string {
	s := scope("kbd")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("white-space", "nowrap")
	s.bind(r, "font-family", cfg.FontFamily, "fontFamily")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")
	s.bind(r, "font-weight", cfg.FontWeight, "fontWeight")
	s.bind(r, "padding-inline", cfg.PaddingX, "paddingX")
	s.bind(r, "padding-block", cfg.PaddingY, "paddingY")
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "background-color", cfg.Background, "background")
	s.bind(r, "color", cfg.Color, "color")
	if cfg.BorderColor != "" {
		r.Set("border", "1px solid "+s.use("borderColor"))
	}
	s.bind(r, "box-shadow", cfg.Shadow, "shadow")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Separator tokens.
type Separator struct {
	Color     string `mapstructure:"color"`
	Thickness string `mapstructure:"thickness"`
	Margin    string `mapstructure:"margin"`
	CSS       string `mapstructure:"css" token:"-"`
}

// SeparatorCSS generates horizontal and vertical separator rules.
func SeparatorCSS(cfg Separator) string {
	s := scope("separator")
	sheet := s.sheet(cfg)

	thickness := css.VarOr(s.name("thickness"), "1px")
	r := sheet.Rule(s.class()).
		Set("flex-shrink", "0").
		Set("border", "0")
	s.bind(r, "background-color", cfg.Color, "color")

	h := sheet.Rule(s.class() + ", " + s.class() + "[data-orientation=\"horizontal\"]").
		Set("width", "100%").
		Set("height", thickness)
	s.bind(h, "margin-block", cfg.Margin, "margin")

	v := sheet.Rule(s.class() + "[data-orientation=\"vertical\"]").
		Set("width", thickness).
		Set("height", "auto").
		Set("align-self", "stretch").
		Set("margin-block", "0")
	s.bind(v, "margin-inline", cfg.Margin, "margin")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Skeleton tokens.
type Skeleton struct {
	Background string `mapstructure:"background"`
	Radius     string `mapstructure:"radius"`
	Duration   string `mapstructure:"duration"`
	CSS        string `mapstructure:"css" token:"-"`
}

// SkeletonCSS generates the skeleton placeholder with its pulse animation.
func SkeletonCSS(cfg Skeleton) string {
	s := scope("skeleton")
	sheet := s.sheet(cfg)
	keyframes := token.Prefix + "-skeleton-pulse"

	r := sheet.Rule(s.class()).
		Set("display", "block").
		Set("animation", keyframes+" "+css.VarOr(s.name("duration"), "2s")+" cubic-bezier(0.4, 0, 0.6, 1) infinite")
	s.bind(r, "background-color", cfg.Background, "background")
	s.bind(r, "border-radius", cfg.Radius, "radius")

	kf := sheet.Rule("@keyframes " + keyframes)
	kf.Nest("0%, 100%").Set("opacity", "1")
	kf.Nest("50%").Set("opacity", "0.5")

	sheet.Rule("@media (prefers-reduced-motion: reduce)").
		Nest(s.class()).Set("animation", "none")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Spinner tokens.
type Spinner struct {
	Color      string          `mapstructure:"color"`
	TrackColor string          `mapstructure:"trackColor"`
	Duration   string          `mapstructure:"duration"`
	Sizes      map[string]Size `mapstructure:"sizes" token:"inline"`
	CSS        string          `mapstructure:"css" token:"-"`
}

// SpinnerCSS generates the spinner stylesheet.
func SpinnerCSS(cfg Spinner) string {
	s := scope("spinner")
	sheet := s.sheet(cfg)
	keyframes := token.Prefix + "-spin"

	r := sheet.Rule(s.class()).
		Set("display", "inline-block").
		Set("width", "1.5rem").
		Set("height", "1.5rem").
		Set("border-width", "2px").
		Set("border-style", "solid").
		Set("border-radius", "9999px").
		Set("animation", keyframes+" "+css.VarOr(s.name("duration"), "0.75s")+" linear infinite")
	s.bind(r, "border-color", cfg.TrackColor, "trackColor")
	s.bind(r, "border-top-color", cfg.Color, "color")

	s.sizeRules(sheet, cfg.Sizes)

	sheet.Rule("@keyframes " + keyframes).
		Nest("to").Set("transform", "rotate(360deg)")

	sheet.Rule("@media (prefers-reduced-motion: reduce)").
		Nest(s.class()).Set("animation-duration", "1.5s")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// TableSection is the token set for a table header or body cell.
type TableSection struct {
	PaddingX   string `mapstructure:"paddingX"`
	PaddingY   string `mapstructure:"paddingY"`
	Background string `mapstructure:"background"`
	Color      string `mapstructure:"color"`
	FontSize   string `mapstructure:"fontSize"`
	FontWeight string `mapstructure:"fontWeight"`
}

// Table tokens.
type Table struct {
	FontSize           string       `mapstructure:"fontSize"`
	BorderColor        string       `mapstructure:"borderColor"`
	Header             TableSection `mapstructure:"header"`
	Cell               TableSection `mapstructure:"cell"`
	HoverBackground    string       `mapstructure:"hoverBackground"`
	SelectedBackground string       `mapstructure:"selectedBackground"`
	StripedBackground  string       `mapstructure:"stripedBackground"`
	Caption            Text         `mapstructure:"caption"`
	CSS                string       `mapstructure:"css" token:"-"`
}

// TableCSS generates the data table stylesheet.
func TableCSS(cfg Table) string {
	s := scope("table")
	sheet := s.sheet(cfg)
	border := "1px solid " + css.VarOr(s.name("borderColor"), "currentColor")

	r := sheet.Rule(s.class()).
		Set("width", "100%").
		Set("caption-side", "bottom").
		Set("border-collapse", "collapse")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")

	sheet.Rule(s.class() + " tr").Set("border-bottom", border)
	sheet.Rule(s.class() + " tbody tr:last-child").Set("border-bottom", "0")

	cell := func(selector string, sec TableSection, name string) *css.Rule {
		c := sheet.Rule(selector).Set("vertical-align", "middle")
		if sec.PaddingX != "" || sec.PaddingY != "" {
			c.Set("padding", css.VarOr(s.name(name, "paddingY"), "0")+" "+css.VarOr(s.name(name, "paddingX"), "0"))
		}
		s.bind(c, "background-color", sec.Background, name, "background")
		s.bind(c, "color", sec.Color, name, "color")
		s.bind(c, "font-size", sec.FontSize, name, "fontSize")
		s.bind(c, "font-weight", sec.FontWeight, name, "fontWeight")
		return c
	}
	cell(s.class()+" th", cfg.Header, "header").
		Set("text-align", "left")
	cell(s.class()+" td", cfg.Cell, "cell")

	hover := sheet.Rule(s.class() + " tbody tr:hover")
	s.bind(hover, "background-color", cfg.HoverBackground, "hoverBackground")
	selected := sheet.Rule(s.class() + " tr[data-state=\"selected\"]")
	s.bind(selected, "background-color", cfg.SelectedBackground, "selectedBackground")
	striped := sheet.Rule(s.class("striped") + " tbody tr:nth-child(even)")
	s.bind(striped, "background-color", cfg.StripedBackground, "stripedBackground")

	s.textRule(sheet.Rule(s.class()+" caption").Set("margin-top", "1rem"), cfg.Caption, "caption")

	sheet.Raw = cfg.CSS
	return sheet.String()
}
