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

// Alert tokens.
type Alert struct {
	Radius      string             `mapstructure:"radius"`
	Padding     string             `mapstructure:"padding"`
	Gap         string             `mapstructure:"gap"`
	FontSize    string             `mapstructure:"fontSize"`
	Background  string             `mapstructure:"background"`
	Color       string             `mapstructure:"color"`
	BorderColor string             `mapstructure:"borderColor"`
	IconSize    string             `mapstructure:"iconSize"`
	Title       Text               `mapstructure:"title"`
	Description Text               `mapstructure:"description"`
	Variants    map[string]Variant `mapstructure:"variants" token:"inline"`
	CSS         string             `mapstructure:"css" token:"-"`
}

// AlertCSS generates the alert stylesheet.
func AlertCSS(cfg Alert) string {
	s := scope("alert")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("position", "relative").
		Set("display", "grid").
		Set("grid-template-columns", "auto 1fr").
		Set("align-items", "start").
		Set("width", "100%").
		Set("border", "1px solid "+css.VarOr(s.name("borderColor"), "currentColor"))
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "padding", cfg.Padding, "padding")
	s.bind(r, "column-gap", cfg.Gap, "gap")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")
	s.bind(r, "background-color", cfg.Background, "background")
	s.bind(r, "color", cfg.Color, "color")

	icon := sheet.Rule(s.class() + " > svg").Set("color", "currentColor")
	s.bind(icon, "width", cfg.IconSize, "iconSize")
	s.bind(icon, "height", cfg.IconSize, "iconSize")

	s.textRule(sheet.Rule(s.class("title")).Set("grid-column-start", "2").Set("margin", "0"), cfg.Title, "title")
	s.textRule(sheet.Rule(s.class("description")).Set("grid-column-start", "2"), cfg.Description, "description")

	s.variantRules(sheet, cfg.Variants)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Toast tokens.
type Toast struct {
	Background  string             `mapstructure:"background"`
	Color       string             `mapstructure:"color"`
	BorderColor string             `mapstructure:"borderColor"`
	Radius      string             `mapstructure:"radius"`
	Shadow      string             `mapstructure:"shadow"`
	Padding     string             `mapstructure:"padding"`
	Gap         string             `mapstructure:"gap"`
	Width       string             `mapstructure:"width"`
	ZIndex      string             `mapstructure:"zIndex"`
	Transition  string             `mapstructure:"transition"`
	Title       Text               `mapstructure:"title"`
	Description Text               `mapstructure:"description"`
	Variants    map[string]Variant `mapstructure:"variants" token:"inline"`
	CSS         string             `mapstructure:"css" token:"-"`
}

// ToastCSS generates the toast viewport, toast and swipe rules.
func ToastCSS(cfg Toast) string {
	s := scope("toast")
	sheet := s.sheet(cfg)
	slideIn := token.Prefix + "-toast-in"
	slideOut := token.Prefix + "-toast-out"

	viewport := sheet.Rule(s.class("viewport")).
		Set("position", "fixed").
		Set("bottom", "0").
		Set("right", "0").
		Set("display", "flex").
		Set("flex-direction", "column").
		Set("gap", "0.5rem").
		Set("padding", "1rem").
		Set("margin", "0").
		Set("list-style", "none").
		Set("outline", "none").
		Set("z-index", css.VarOr(s.name("zIndex"), "100"))
	s.bind(viewport, "width", cfg.Width, "width")
	viewport.Set("max-width", "100vw")

	r := sheet.Rule(s.class()).
		Set("position", "relative").
		Set("display", "flex").
		Set("align-items", "center").
		Set("justify-content", "space-between").
		Set("overflow", "hidden")
	s.panelRule(r, Panel{
		Background:  cfg.Background,
		Color:       cfg.Color,
		BorderColor: cfg.BorderColor,
		Radius:      cfg.Radius,
		Shadow:      cfg.Shadow,
		Padding:     cfg.Padding,
	})
	s.bind(r, "gap", cfg.Gap, "gap")

	s.textRule(sheet.Rule(s.class("title")), cfg.Title, "title")
	s.textRule(sheet.Rule(s.class("description")), cfg.Description, "description")

	timing := "150ms ease-out"
	if cfg.Transition != "" {
		timing = s.use("transition")
	}
	sheet.Rule(s.class() + "[data-state=\"open\"]").Set("animation", slideIn+" "+timing)
	sheet.Rule(s.class() + "[data-state=\"closed\"]").Set("animation", slideOut+" "+timing)
	sheet.Rule(s.class() + "[data-swipe=\"move\"]").
		Set("transform", "translateX("+css.Var("--radix-toast-swipe-move-x")+")")
	sheet.Rule(s.class() + "[data-swipe=\"cancel\"]").
		Set("transform", "translateX(0)")

	kin := sheet.Rule("@keyframes " + slideIn)
	kin.Nest("from").Set("transform", "translateX(calc(100% + 1rem))")
	kin.Nest("to").Set("transform", "translateX(0)")
	kout := sheet.Rule("@keyframes " + slideOut)
	kout.Nest("from").Set("opacity", "1")
	kout.Nest("to").Set("opacity", "0")

	s.variantRules(sheet, cfg.Variants)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Progress tokens.
type Progress struct {
	Height              string          `mapstructure:"height"`
	Radius              string          `mapstructure:"radius"`
	Background          string          `mapstructure:"background"`
	IndicatorBackground string          `mapstructure:"indicatorBackground"`
	Transition          string          `mapstructure:"transition"`
	Sizes               map[string]Size `mapstructure:"sizes" token:"inline"`
	CSS                 string          `mapstructure:"css" token:"-"`
}

// ProgressCSS generates the progress bar stylesheet. The indicator is
// positioned by translateX on the element, as Radix does.
func ProgressCSS(cfg Progress) string {
	s := scope("progress")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("position", "relative").
		Set("width", "100%").
		Set("overflow", "hidden")
	s.bind(r, "height", cfg.Height, "height")
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "background-color", cfg.Background, "background")

	indicator := sheet.Rule(s.class("indicator")).
		Set("width", "100%").
		Set("height", "100%").
		Set("flex", "1")
	s.bind(indicator, "background-color", cfg.IndicatorBackground, "indicatorBackground")
	s.transition(indicator, cfg.Transition, []string{"transform"}, "transition")

	sheet.Rule(s.class("indicator") + "[data-state=\"indeterminate\"]").
		Set("width", "40%").
		Set("animation", token.Prefix+"-progress-indeterminate 1.5s ease-in-out infinite")
	kf := sheet.Rule("@keyframes " + token.Prefix + "-progress-indeterminate")
	kf.Nest("from").Set("transform", "translateX(-100%)")
	kf.Nest("to").Set("transform", "translateX(250%)")

	s.sizeRules(sheet, cfg.Sizes)

	sheet.Raw = cfg.CSS
	return sheet.String()
}
