/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import "bennypowers.dev/czero/css"

// Field is the token set shared by text-entry controls.
type Field struct {
	Height      string `mapstructure:"height"`
	MinHeight   string `mapstructure:"minHeight"`
	PaddingX    string `mapstructure:"paddingX"`
	PaddingY    string `mapstructure:"paddingY"`
	FontSize    string `mapstructure:"fontSize"`
	LineHeight  string `mapstructure:"lineHeight"`
	Radius      string `mapstructure:"radius"`
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Placeholder string `mapstructure:"placeholder"`
	Transition  string `mapstructure:"transition"`
}

// Input tokens.
type Input struct {
	Field    `mapstructure:",squash" token:"inline"`
	Hover    *State          `mapstructure:"hover"`
	Focus    *State          `mapstructure:"focus"`
	Invalid  *State          `mapstructure:"invalid"`
	Disabled *State          `mapstructure:"disabled"`
	Sizes    map[string]Size `mapstructure:"sizes" token:"inline"`
	CSS      string          `mapstructure:"css" token:"-"`
}

// Textarea tokens.
type Textarea struct {
	Field    `mapstructure:",squash" token:"inline"`
	Resize   string `mapstructure:"resize"`
	Focus    *State `mapstructure:"focus"`
	Invalid  *State `mapstructure:"invalid"`
	Disabled *State `mapstructure:"disabled"`
	CSS      string `mapstructure:"css" token:"-"`
}

// fieldRules emits the shared text-entry rules.
func (s scope) fieldRules(sheet *css.Sheet, f Field, hover, focus, invalid, disabled *State) {
	sel := s.class()
	r := sheet.Rule(sel).
		Set("display", "flex").
		Set("width", "100%").
		Set("box-sizing", "border-box").
		Set("font", "inherit")
	s.bind(r, "height", f.Height, "height")
	s.bind(r, "min-height", f.MinHeight, "minHeight")
	s.bind(r, "padding-inline", f.PaddingX, "paddingX")
	s.bind(r, "padding-block", f.PaddingY, "paddingY")
	s.bind(r, "font-size", f.FontSize, "fontSize")
	s.bind(r, "line-height", f.LineHeight, "lineHeight")
	s.bind(r, "border-radius", f.Radius, "radius")
	s.bind(r, "background-color", f.Background, "background")
	s.bind(r, "color", f.Color, "color")
	r.Set("border", "1px solid "+css.VarOr(s.name("borderColor"), "currentColor"))
	s.transition(r, f.Transition, []string{"border-color", "box-shadow"}, "transition")

	placeholder := sheet.Rule(sel + "::placeholder")
	s.bind(placeholder, "color", f.Placeholder, "placeholder")

	s.stateRule(sheet, sel+":hover:not(:disabled):not(:focus-visible)", hover, "hover")
	if focus != nil {
		s.applyState(sheet.Rule(sel+":focus-visible").Set("outline", "none"), focus, "focus")
	}
	s.stateRule(sheet, sel+"[aria-invalid=\"true\"]", invalid, "invalid")
	d := sheet.Rule(sel + ":disabled").Set("cursor", "not-allowed")
	s.applyState(d, disabled, "disabled")
}

// InputCSS generates the input stylesheet.
func InputCSS(cfg Input) string {
	s := scope("input")
	sheet := s.sheet(cfg)

	s.fieldRules(sheet, cfg.Field, cfg.Hover, cfg.Focus, cfg.Invalid, cfg.Disabled)
	sheet.Rule(s.class() + "[type=\"file\"]").
		Set("border-style", "dashed")
	sheet.Rule(s.class() + "::file-selector-button").
		Set("border", "0").
		Set("background", "transparent").
		Set("font", "inherit")
	s.sizeRules(sheet, cfg.Sizes)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// TextareaCSS generates the textarea stylesheet.
func TextareaCSS(cfg Textarea) string {
	s := scope("textarea")
	sheet := s.sheet(cfg)

	s.fieldRules(sheet, cfg.Field, nil, cfg.Focus, cfg.Invalid, cfg.Disabled)
	s.bind(sheet.Find(s.class()), "resize", cfg.Resize, "resize")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Select tokens.
type Select struct {
	Field     `mapstructure:",squash" token:"inline"`
	IconColor string          `mapstructure:"iconColor"`
	Focus     *State          `mapstructure:"focus"`
	Disabled  *State          `mapstructure:"disabled"`
	Content   Panel           `mapstructure:"content"`
	Item      Item            `mapstructure:"item"`
	Sizes     map[string]Size `mapstructure:"sizes" token:"inline"`
	CSS       string          `mapstructure:"css" token:"-"`
}

// SelectCSS generates the select trigger, content and item stylesheet.
func SelectCSS(cfg Select) string {
	s := scope("select")
	sheet := s.sheet(cfg)

	s.fieldRules(sheet, cfg.Field, nil, cfg.Focus, nil, cfg.Disabled)
	sheet.Find(s.class()).
		Set("align-items", "center").
		Set("justify-content", "space-between").
		Set("gap", "0.5rem").
		Set("white-space", "nowrap")

	icon := sheet.Rule(s.class("icon")).
		Set("flex-shrink", "0").
		Set("opacity", "0.5")
	s.bind(icon, "color", cfg.IconColor, "iconColor")

	content := sheet.Rule(s.class("content")).
		Set("position", "relative").
		Set("overflow", "hidden")
	s.panelRule(content, cfg.Content, "content")

	s.itemRules(sheet, s.class("item"), cfg.Item, "item")
	s.sizeRules(sheet, cfg.Sizes)

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Checkbox tokens.
type Checkbox struct {
	Size              string `mapstructure:"size"`
	Radius            string `mapstructure:"radius"`
	Background        string `mapstructure:"background"`
	BorderColor       string `mapstructure:"borderColor"`
	CheckedBackground string `mapstructure:"checkedBackground"`
	CheckedColor      string `mapstructure:"checkedColor"`
	Focus             *State `mapstructure:"focus"`
	Disabled          *State `mapstructure:"disabled"`
	CSS               string `mapstructure:"css" token:"-"`
}

// CheckboxCSS generates the checkbox stylesheet.
func CheckboxCSS(cfg Checkbox) string {
	s := scope("checkbox")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("justify-content", "center").
		Set("flex-shrink", "0").
		Set("padding", "0").
		Set("cursor", "pointer")
	s.bind(r, "width", cfg.Size, "size")
	s.bind(r, "height", cfg.Size, "size")
	s.bind(r, "border-radius", cfg.Radius, "radius")
	s.bind(r, "background-color", cfg.Background, "background")
	r.Set("border", "1px solid "+css.VarOr(s.name("borderColor"), "currentColor"))

	checked := sheet.Rule(s.class() + "[data-state=\"checked\"], " + s.class() + "[data-state=\"indeterminate\"]")
	s.bind(checked, "background-color", cfg.CheckedBackground, "checkedBackground")
	s.bind(checked, "border-color", cfg.CheckedBackground, "checkedBackground")
	s.bind(checked, "color", cfg.CheckedColor, "checkedColor")

	sheet.Rule(s.class("indicator")).
		Set("display", "flex").
		Set("align-items", "center").
		Set("justify-content", "center").
		Set("color", "currentColor")

	s.stateRule(sheet, s.class()+":focus-visible", cfg.Focus, "focus")
	d := sheet.Rule(s.class() + ":disabled").Set("cursor", "not-allowed")
	s.applyState(d, cfg.Disabled, "disabled")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Radio tokens.
type Radio struct {
	Size           string `mapstructure:"size"`
	Background     string `mapstructure:"background"`
	BorderColor    string `mapstructure:"borderColor"`
	IndicatorColor string `mapstructure:"indicatorColor"`
	IndicatorSize  string `mapstructure:"indicatorSize"`
	Gap            string `mapstructure:"gap"`
	Focus          *State `mapstructure:"focus"`
	Disabled       *State `mapstructure:"disabled"`
	CSS            string `mapstructure:"css" token:"-"`
}

// RadioCSS generates the radio group stylesheet.
func RadioCSS(cfg Radio) string {
	s := scope("radio")
	sheet := s.sheet(cfg)

	group := sheet.Rule(s.class("group")).Set("display", "grid")
	s.bind(group, "gap", cfg.Gap, "gap")

	r := sheet.Rule(s.class()).
		Set("aspect-ratio", "1").
		Set("border-radius", "9999px").
		Set("padding", "0").
		Set("cursor", "pointer")
	s.bind(r, "width", cfg.Size, "size")
	s.bind(r, "height", cfg.Size, "size")
	s.bind(r, "background-color", cfg.Background, "background")
	r.Set("border", "1px solid "+css.VarOr(s.name("borderColor"), "currentColor"))

	sheet.Rule(s.class("indicator")).
		Set("display", "flex").
		Set("align-items", "center").
		Set("justify-content", "center")
	dot := sheet.Rule(s.class("indicator") + "::after").
		Set("content", "\"\"").
		Set("display", "block").
		Set("border-radius", "9999px")
	s.bind(dot, "width", cfg.IndicatorSize, "indicatorSize")
	s.bind(dot, "height", cfg.IndicatorSize, "indicatorSize")
	s.bind(dot, "background-color", cfg.IndicatorColor, "indicatorColor")

	s.stateRule(sheet, s.class()+":focus-visible", cfg.Focus, "focus")
	d := sheet.Rule(s.class() + ":disabled").Set("cursor", "not-allowed")
	s.applyState(d, cfg.Disabled, "disabled")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Switch tokens.
type Switch struct {
	Width             string `mapstructure:"width"`
	Height            string `mapstructure:"height"`
	ThumbSize         string `mapstructure:"thumbSize"`
	Background        string `mapstructure:"background"`
	CheckedBackground string `mapstructure:"checkedBackground"`
	ThumbColor        string `mapstructure:"thumbColor"`
	ThumbShadow       string `mapstructure:"thumbShadow"`
	Transition        string `mapstructure:"transition"`
	Focus             *State `mapstructure:"focus"`
	Disabled          *State `mapstructure:"disabled"`
	CSS               string `mapstructure:"css" token:"-"`
}

// SwitchCSS generates the switch stylesheet.
func SwitchCSS(cfg Switch) string {
	s := scope("switch")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("flex-shrink", "0").
		Set("padding", "2px").
		Set("border", "0").
		Set("border-radius", "9999px").
		Set("cursor", "pointer")
	s.bind(r, "width", cfg.Width, "width")
	s.bind(r, "height", cfg.Height, "height")
	s.bind(r, "background-color", cfg.Background, "background")
	s.transition(r, cfg.Transition, []string{"background-color"}, "transition")

	checked := sheet.Rule(s.class() + "[data-state=\"checked\"]")
	s.bind(checked, "background-color", cfg.CheckedBackground, "checkedBackground")

	thumb := sheet.Rule(s.class("thumb")).
		Set("display", "block").
		Set("border-radius", "9999px").
		Set("pointer-events", "none").
		Set("transform", "translateX(0)")
	s.bind(thumb, "width", cfg.ThumbSize, "thumbSize")
	s.bind(thumb, "height", cfg.ThumbSize, "thumbSize")
	s.bind(thumb, "background-color", cfg.ThumbColor, "thumbColor")
	s.bind(thumb, "box-shadow", cfg.ThumbShadow, "thumbShadow")
	s.transition(thumb, cfg.Transition, []string{"transform"}, "transition")

	travel := "calc(" + css.VarOr(s.name("width"), "2.75rem") + " - " +
		css.VarOr(s.name("thumbSize"), "1.25rem") + " - 4px)"
	sheet.Rule(s.class("thumb") + "[data-state=\"checked\"]").
		Set("transform", "translateX("+travel+")")

	s.stateRule(sheet, s.class()+":focus-visible", cfg.Focus, "focus")
	d := sheet.Rule(s.class() + ":disabled").Set("cursor", "not-allowed")
	s.applyState(d, cfg.Disabled, "disabled")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Slider tokens.
type Slider struct {
	TrackHeight      string `mapstructure:"trackHeight"`
	TrackBackground  string `mapstructure:"trackBackground"`
	RangeBackground  string `mapstructure:"rangeBackground"`
	ThumbSize        string `mapstructure:"thumbSize"`
	ThumbBackground  string `mapstructure:"thumbBackground"`
	ThumbBorderColor string `mapstructure:"thumbBorderColor"`
	ThumbShadow      string `mapstructure:"thumbShadow"`
	Transition       string `mapstructure:"transition"`
	Focus            *State `mapstructure:"focus"`
	Disabled         *State `mapstructure:"disabled"`
	CSS              string `mapstructure:"css" token:"-"`
}

// SliderCSS generates the slider stylesheet.
func SliderCSS(cfg Slider) string {
	s := scope("slider")
	sheet := s.sheet(cfg)

	sheet.Rule(s.class()).
		Set("position", "relative").
		Set("display", "flex").
		Set("width", "100%").
		Set("align-items", "center").
		Set("touch-action", "none").
		Set("user-select", "none")

	track := sheet.Rule(s.class("track")).
		Set("position", "relative").
		Set("flex-grow", "1").
		Set("overflow", "hidden").
		Set("border-radius", "9999px")
	s.bind(track, "height", cfg.TrackHeight, "trackHeight")
	s.bind(track, "background-color", cfg.TrackBackground, "trackBackground")

	rng := sheet.Rule(s.class("range")).
		Set("position", "absolute").
		Set("height", "100%")
	s.bind(rng, "background-color", cfg.RangeBackground, "rangeBackground")

	thumb := sheet.Rule(s.class("thumb")).
		Set("display", "block").
		Set("border-radius", "9999px").
		Set("cursor", "grab")
	s.bind(thumb, "width", cfg.ThumbSize, "thumbSize")
	s.bind(thumb, "height", cfg.ThumbSize, "thumbSize")
	s.bind(thumb, "background-color", cfg.ThumbBackground, "thumbBackground")
	thumb.Set("border", "2px solid "+css.VarOr(s.name("thumbBorderColor"), "currentColor"))
	s.bind(thumb, "box-shadow", cfg.ThumbShadow, "thumbShadow")
	s.transition(thumb, cfg.Transition, []string{"box-shadow", "transform"}, "transition")

	s.stateRule(sheet, s.class("thumb")+":focus-visible", cfg.Focus, "focus")
	s.stateRule(sheet, s.class()+"[data-disabled]", cfg.Disabled, "disabled")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// Label tokens.
type Label struct {
	FontSize        string `mapstructure:"fontSize"`
	FontWeight      string `mapstructure:"fontWeight"`
	LineHeight      string `mapstructure:"lineHeight"`
	Color           string `mapstructure:"color"`
	DisabledOpacity string `mapstructure:"disabledOpacity"`
	CSS             string `mapstructure:"css" token:"-"`
}

// LabelCSS generates the label stylesheet.
func LabelCSS(cfg Label) string {
	s := scope("label")
	sheet := s.sheet(cfg)

	r := sheet.Rule(s.class()).Set("display", "inline-block")
	s.bind(r, "font-size", cfg.FontSize, "fontSize")
	s.bind(r, "font-weight", cfg.FontWeight, "fontWeight")
	s.bind(r, "line-height", cfg.LineHeight, "lineHeight")
	s.bind(r, "color", cfg.Color, "color")

	d := sheet.Rule(".peer:disabled ~ " + s.class() + ", " + s.class() + "[data-disabled]").
		Set("cursor", "not-allowed")
	s.bind(d, "opacity", cfg.DisabledOpacity, "disabledOpacity")

	sheet.Raw = cfg.CSS
	return sheet.String()
}
