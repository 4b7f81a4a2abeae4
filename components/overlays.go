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

// animations adds enter/exit keyframes for content toggled by data-state.
func (s scope) animations(sheet *css.Sheet, selector, transition string) {
	in := token.Prefix + "-" + css.ToKebabCase(string(s)) + "-in"
	out := token.Prefix + "-" + css.ToKebabCase(string(s)) + "-out"
	timing := "150ms ease"
	if transition != "" {
		timing = s.use("transition")
	}

	sheet.Rule(selector+"[data-state=\"open\"]").Set("animation", in+" "+timing)
	sheet.Rule(selector+"[data-state=\"closed\"]").Set("animation", out+" "+timing)

	kin := sheet.Rule("@keyframes " + in)
	kin.Nest("from").Set("opacity", "0").Set("transform", "scale(0.96)")
	kin.Nest("to").Set("opacity", "1").Set("transform", "scale(1)")
	kout := sheet.Rule("@keyframes " + out)
	kout.Nest("from").Set("opacity", "1").Set("transform", "scale(1)")
	kout.Nest("to").Set("opacity", "0").Set("transform", "scale(0.96)")

	sheet.Rule("@media (prefers-reduced-motion: reduce)").
		Nest(selector+"[data-state]").Set("animation", "none")
}

// Dialog tokens.
type Dialog struct {
	Overlay     string `mapstructure:"overlay"`
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Radius      string `mapstructure:"radius"`
	Shadow      string `mapstructure:"shadow"`
	Padding     string `mapstructure:"padding"`
	Gap         string `mapstructure:"gap"`
	MaxWidth    string `mapstructure:"maxWidth"`
	ZIndex      string `mapstructure:"zIndex"`
	Transition  string `mapstructure:"transition"`
	Title       Text   `mapstructure:"title"`
	Description Text   `mapstructure:"description"`
	CSS         string `mapstructure:"css" token:"-"`
}

// DialogCSS generates the modal dialog overlay, content and text parts.
func DialogCSS(cfg Dialog) string {
	s := scope("dialog")
	sheet := s.sheet(cfg)
	z := css.VarOr(s.name("zIndex"), "50")

	overlay := sheet.Rule(s.class("overlay")).
		Set("position", "fixed").
		Set("inset", "0").
		Set("z-index", z)
	s.bind(overlay, "background-color", cfg.Overlay, "overlay")

	content := sheet.Rule(s.class("content")).
		Set("position", "fixed").
		Set("left", "50%").
		Set("top", "50%").
		Set("z-index", z).
		Set("display", "grid").
		Set("width", "calc(100% - 2rem)").
		Set("translate", "-50% -50%")
	s.bind(content, "max-width", cfg.MaxWidth, "maxWidth")
	s.bind(content, "gap", cfg.Gap, "gap")
	s.bind(content, "padding", cfg.Padding, "padding")
	s.bind(content, "background-color", cfg.Background, "background")
	s.bind(content, "color", cfg.Color, "color")
	if cfg.BorderColor != "" {
		content.Set("border", "1px solid "+s.use("borderColor"))
	}
	s.bind(content, "border-radius", cfg.Radius, "radius")
	s.bind(content, "box-shadow", cfg.Shadow, "shadow")

	sheet.Rule(s.class("header")).
		Set("display", "flex").
		Set("flex-direction", "column").
		Set("gap", "0.375rem")
	sheet.Rule(s.class("footer")).
		Set("display", "flex").
		Set("justify-content", "flex-end").
		Set("gap", "0.5rem")
	s.textRule(sheet.Rule(s.class("title")).Set("margin", "0"), cfg.Title, "title")
	s.textRule(sheet.Rule(s.class("description")).Set("margin", "0"), cfg.Description, "description")

	sheet.Rule(s.class("close")).
		Set("position", "absolute").
		Set("right", "1rem").
		Set("top", "1rem").
		Set("opacity", "0.7")

	s.animations(sheet, s.class("content"), cfg.Transition)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Popover tokens.
type Popover struct {
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Radius      string `mapstructure:"radius"`
	Shadow      string `mapstructure:"shadow"`
	Padding     string `mapstructure:"padding"`
	Width       string `mapstructure:"width"`
	ZIndex      string `mapstructure:"zIndex"`
	Transition  string `mapstructure:"transition"`
	CSS         string `mapstructure:"css" token:"-"`
}

// PopoverCSS generates the popover content stylesheet.
func PopoverCSS(cfg Popover) string {
	s := scope("popover")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class("content")).
		Set("z-index", css.VarOr(s.name("zIndex"), "50")).
		Set("outline", "none")
	s.panelRule(r, Panel{
		Background:  cfg.Background,
		Color:       cfg.Color,
		BorderColor: cfg.BorderColor,
		Radius:      cfg.Radius,
		Shadow:      cfg.Shadow,
		Padding:     cfg.Padding,
	})
	s.bind(r, "width", cfg.Width, "width")

	s.animations(sheet, s.class("content"), cfg.Transition)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Tooltip tokens.
type Tooltip struct {
	Background string `mapstructure:"background"`
	Color      string `mapstructure:"color"`
	Radius     string `mapstructure:"radius"`
	FontSize   string `mapstructure:"fontSize"`
	PaddingX   string `mapstructure:"paddingX"`
	PaddingY   string `mapstructure:"paddingY"`
	Shadow     string `mapstructure:"shadow"`
	MaxWidth   string `mapstructure:"maxWidth"`
	ZIndex     string `mapstructure:"zIndex"`
	Transition string `mapstructure:"transition"`
	CSS        string `mapstructure:"css" token:"-"`
}

// TooltipCSS generates the tooltip content stylesheet.
func TooltipCSS(cfg Tooltip) string {
	s := scope("tooltip")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class("content")).
		Set("z-index", css.VarOr(s.name("zIndex"), "50")).
		Set("overflow", "hidden")
	s.bind(r, "background-color", cfg.Background, "background")
	s.bind(r, "color", cfg.Color, "color")
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")
	s.bind(r, "padding-inline", cfg.PaddingX, "paddingX")
	s.bind(r, "padding-block", cfg.PaddingY, "paddingY")
	s.bind(r, "box-shadow", cfg.Shadow, "shadow")
	s.bind(r, "max-width", cfg.MaxWidth, "maxWidth")

	arrow := sheet.Rule(s.class("arrow"))
	s.bind(arrow, "fill", cfg.Background, "background")

	s.animations(sheet, s.class("content"), cfg.Transition)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// DropdownMenu tokens.
type DropdownMenu struct {
	Content    Panel  `mapstructure:"content"`
	Item       Item   `mapstructure:"item"`
	Label      Text   `mapstructure:"label"`
	Separator  string `mapstructure:"separator"`
	Shortcut   Text   `mapstructure:"shortcut"`
	Transition string `mapstructure:"transition"`
	CSS        string `mapstructure:"css" token:"-"`
}

// DropdownMenuCSS generates the dropdown menu content, item, label,
// separator and shortcut rules.
func DropdownMenuCSS(cfg DropdownMenu) string {
	s := scope("dropdownMenu")
	sheet := s.sheet(cfg)

	content := sheet.Rule(s.class("content")).Set("overflow", "hidden")
	s.panelRule(content, cfg.Content, "content")

	s.itemRules(sheet, s.class("item"), cfg.Item, "item")

	label := sheet.Rule(s.class("label")).
		Set("padding", "0.375rem 0.5rem")
	s.textRule(label, cfg.Label, "label")

	sep := sheet.Rule(s.class("separator")).
		Set("height", "1px").
		Set("margin", "0.25rem -0.25rem")
	s.bind(sep, "background-color", cfg.Separator, "separator")

	shortcut := sheet.Rule(s.class("shortcut")).
		Set("margin-left", "auto").
		Set("letter-spacing", "0.1em")
	s.textRule(shortcut, cfg.Shortcut, "shortcut")

	s.animations(sheet, s.class("content"), cfg.Transition)

	sheet.Raw = cfg.CSS
	return sheet.String()
}
