/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import (
	"strings"

	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/token"
)

// scope names the classes and custom properties of one component.
type scope string

// name returns the custom property for a token path: --cz-button-sm-height.
func (s scope) name(path ...string) string {
	parts := make([]string, 0, len(path)+2)
	parts = append(parts, "--"+token.Prefix, css.ToKebabCase(string(s)))
	for _, p := range path {
		parts = append(parts, css.ToKebabCase(p))
	}
	return strings.Join(parts, "-")
}

// use returns a var() reading the custom property for path.
func (s scope) use(path ...string) string {
	return css.Var(s.name(path...))
}

// class returns the class selector for the component or one of its parts:
// .cz-dropdown-menu, .cz-dropdown-menu-item.
func (s scope) class(parts ...string) string {
	sel := "." + token.Prefix + "-" + css.ToKebabCase(string(s))
	for _, p := range parts {
		sel += "-" + css.ToKebabCase(p)
	}
	return sel
}

// bind sets property to the custom property at path when the token is configured.
func (s scope) bind(r *css.Rule, property, value string, path ...string) {
	if value != "" {
		r.Set(property, s.use(path...))
	}
}

// sheet starts a component stylesheet with its :root custom properties.
func (s scope) sheet(cfg any) *css.Sheet {
	sheet := &css.Sheet{}
	root := sheet.Rule(":root")
	for _, d := range Variables(string(s), cfg) {
		root.Set(d.Property, d.Value)
	}
	return sheet
}

// transition builds a transition shorthand for properties using the duration
// token at path.
func (s scope) transition(r *css.Rule, value string, properties []string, path ...string) {
	if value == "" {
		return
	}
	timing := s.use(path...)
	list := make([]string, len(properties))
	for i, p := range properties {
		list[i] = p + " " + timing
	}
	r.Set("transition", strings.Join(list, ", "))
}

// applySize binds the size tokens at path onto r.
func (s scope) applySize(r *css.Rule, size Size, path ...string) {
	s.bind(r, "height", size.Height, extend(path, "height")...)
	s.bind(r, "width", size.Width, extend(path, "width")...)
	s.bind(r, "min-height", size.MinHeight, extend(path, "minHeight")...)
	s.bind(r, "padding-inline", size.PaddingX, extend(path, "paddingX")...)
	s.bind(r, "padding-block", size.PaddingY, extend(path, "paddingY")...)
	s.bind(r, "font-size", size.FontSize, extend(path, "fontSize")...)
	s.bind(r, "gap", size.Gap, extend(path, "gap")...)
	s.bind(r, "border-radius", size.Radius, extend(path, "radius")...)
	s.bind(r, "width", size.Size, extend(path, "size")...)
	s.bind(r, "height", size.Size, extend(path, "size")...)
	s.bind(r, "border-width", size.Thickness, extend(path, "thickness")...)
}

// sizeRules emits one rule per size variant, .cz-<component>-<size>.
// Icon sizes get a descendant svg rule.
func (s scope) sizeRules(sheet *css.Sheet, sizes map[string]Size) {
	for _, name := range sortedNames(sizes) {
		size := sizes[name]
		s.applySize(sheet.Rule(s.class(name)), size, name)
		if size.IconSize != "" {
			sheet.Rule(s.class(name)+" svg").
				Set("width", s.use(name, "iconSize")).
				Set("height", s.use(name, "iconSize"))
		}
	}
}

// stateSelectors maps state names to selector suffixes.
var stateSelectors = []struct {
	name   string
	suffix string
}{
	{"hover", ":hover:not(:disabled)"},
	{"focus", ":focus-visible"},
	{"active", ":active:not(:disabled)"},
	{"disabled", ":disabled"},
}

// applyState binds the state tokens at path onto r.
func (s scope) applyState(r *css.Rule, st *State, path ...string) {
	if st == nil {
		return
	}
	s.bind(r, "background-color", st.Background, extend(path, "background")...)
	s.bind(r, "color", st.Color, extend(path, "color")...)
	s.bind(r, "border-color", st.BorderColor, extend(path, "borderColor")...)
	s.bind(r, "box-shadow", st.Shadow, extend(path, "shadow")...)
	s.bind(r, "opacity", st.Opacity, extend(path, "opacity")...)
	if st.Ring != "" {
		r.Set("outline", "2px solid "+s.use(extend(path, "ring")...))
		r.Set("outline-offset", "2px")
	}
}

// stateRule emits a rule for st on selector, when configured.
func (s scope) stateRule(sheet *css.Sheet, selector string, st *State, path ...string) {
	if st == nil {
		return
	}
	s.applyState(sheet.Rule(selector), st, path...)
}

// variantRules emits one rule per color variant, .cz-<component>-<variant>,
// followed by its state rules.
func (s scope) variantRules(sheet *css.Sheet, variants map[string]Variant) {
	for _, name := range sortedNames(variants) {
		v := variants[name]
		sel := s.class(name)
		r := sheet.Rule(sel)
		s.bind(r, "background-color", v.Background, name, "background")
		s.bind(r, "color", v.Color, name, "color")
		s.bind(r, "border-color", v.BorderColor, name, "borderColor")
		s.bind(r, "box-shadow", v.Shadow, name, "shadow")

		states := map[string]*State{"hover": v.Hover, "focus": v.Focus, "active": v.Active, "disabled": v.Disabled}
		for _, st := range stateSelectors {
			s.stateRule(sheet, sel+st.suffix, states[st.name], name, st.name)
		}
	}
}

// panelRule binds surface tokens at path onto r.
func (s scope) panelRule(r *css.Rule, p Panel, path ...string) {
	s.bind(r, "background-color", p.Background, extend(path, "background")...)
	s.bind(r, "color", p.Color, extend(path, "color")...)
	if p.BorderColor != "" {
		r.Set("border", "1px solid "+s.use(extend(path, "borderColor")...))
	}
	s.bind(r, "border-radius", p.Radius, extend(path, "radius")...)
	s.bind(r, "box-shadow", p.Shadow, extend(path, "shadow")...)
	s.bind(r, "padding", p.Padding, extend(path, "padding")...)
	s.bind(r, "min-width", p.MinWidth, extend(path, "minWidth")...)
	s.bind(r, "z-index", p.ZIndex, extend(path, "zIndex")...)
}

// itemRules emits a selectable row with highlighted and disabled states,
// following Radix data attributes.
func (s scope) itemRules(sheet *css.Sheet, selector string, it Item, path ...string) {
	r := sheet.Rule(selector).
		Set("position", "relative").
		Set("display", "flex").
		Set("align-items", "center").
		Set("gap", "0.5rem").
		Set("cursor", "default").
		Set("user-select", "none").
		Set("outline", "none")
	if it.PaddingX != "" || it.PaddingY != "" {
		r.Set("padding", css.VarOr(s.name(extend(path, "paddingY")...), "0")+" "+css.VarOr(s.name(extend(path, "paddingX")...), "0"))
	}
	s.bind(r, "border-radius", it.Radius, extend(path, "radius")...)
	s.bind(r, "font-size", it.FontSize, extend(path, "fontSize")...)
	s.bind(r, "color", it.Color, extend(path, "color")...)

	hl := sheet.Rule(selector + "[data-highlighted], " + selector + ":focus-visible")
	s.bind(hl, "background-color", it.HighlightBackground, extend(path, "highlightBackground")...)
	s.bind(hl, "color", it.HighlightColor, extend(path, "highlightColor")...)

	disabled := sheet.Rule(selector + "[data-disabled]").Set("pointer-events", "none")
	s.bind(disabled, "opacity", it.DisabledOpacity, extend(path, "disabledOpacity")...)
}

// textRule binds typography tokens at path onto r.
func (s scope) textRule(r *css.Rule, t Text, path ...string) {
	s.bind(r, "font-family", t.FontFamily, extend(path, "fontFamily")...)
	s.bind(r, "font-size", t.FontSize, extend(path, "fontSize")...)
	s.bind(r, "font-weight", t.FontWeight, extend(path, "fontWeight")...)
	s.bind(r, "line-height", t.LineHeight, extend(path, "lineHeight")...)
	s.bind(r, "color", t.Color, extend(path, "color")...)
}

// extend returns a copy of path with fields appended.
func extend(path []string, fields ...string) []string {
	return append(append(make([]string, 0, len(path)+len(fields)), path...), fields...)
}
