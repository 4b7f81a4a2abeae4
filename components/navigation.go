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

// TabsList tokens.
type TabsList struct {
	Background string `mapstructure:"background"`
	Color      string `mapstructure:"color"`
	Radius     string `mapstructure:"radius"`
	Padding    string `mapstructure:"padding"`
	Gap        string `mapstructure:"gap"`
	Height     string `mapstructure:"height"`
}

// TabsTrigger tokens.
type TabsTrigger struct {
	PaddingX   string `mapstructure:"paddingX"`
	PaddingY   string `mapstructure:"paddingY"`
	FontSize   string `mapstructure:"fontSize"`
	FontWeight string `mapstructure:"fontWeight"`
	Radius     string `mapstructure:"radius"`
	Color      string `mapstructure:"color"`
	Transition string `mapstructure:"transition"`
	Hover      *State `mapstructure:"hover"`
	Active     *State `mapstructure:"active"`
	Focus      *State `mapstructure:"focus"`
	Disabled   *State `mapstructure:"disabled"`
}

// Tabs tokens.
type Tabs struct {
	List          TabsList    `mapstructure:"list"`
	Trigger       TabsTrigger `mapstructure:"trigger"`
	ContentMargin string      `mapstructure:"contentMargin"`
	CSS           string      `mapstructure:"css" token:"-"`
}

// TabsCSS generates the tab list, trigger and panel rules. The selected
// trigger follows Radix's data-state="active".
func TabsCSS(cfg Tabs) string {
	s := scope("tabs")
	sheet := s.sheet(cfg)

	list := sheet.Rule(s.class("list")).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("justify-content", "center")
	s.bind(list, "background-color", cfg.List.Background, "list", "background")
	s.bind(list, "color", cfg.List.Color, "list", "color")
	s.bind(list, "border-radius", cfg.List.Radius, "list", "radius")
	s.bind(list, "padding", cfg.List.Padding, "list", "padding")
	s.bind(list, "gap", cfg.List.Gap, "list", "gap")
	s.bind(list, "height", cfg.List.Height, "list", "height")

	t := cfg.Trigger
	trigger := sheet.Rule(s.class("trigger")).
		Set("display", "inline-flex").
		Set("align-items", "center").
		Set("justify-content", "center").
		Set("white-space", "nowrap").
		Set("border", "0").
		Set("background", "transparent").
		Set("cursor", "pointer")
	s.bind(trigger, "padding-inline", t.PaddingX, "trigger", "paddingX")
	s.bind(trigger, "padding-block", t.PaddingY, "trigger", "paddingY")
	s.bind(trigger, "font-size", t.FontSize, "trigger", "fontSize")
	s.bind(trigger, "font-weight", t.FontWeight, "trigger", "fontWeight")
	s.bind(trigger, "border-radius", t.Radius, "trigger", "radius")
	s.bind(trigger, "color", t.Color, "trigger", "color")
	s.transition(trigger, t.Transition, []string{"background-color", "color", "box-shadow"}, "trigger", "transition")

	sel := s.class("trigger")
	s.stateRule(sheet, sel+":hover:not([data-state=\"active\"]):not(:disabled)", t.Hover, "trigger", "hover")
	s.stateRule(sheet, sel+"[data-state=\"active\"]", t.Active, "trigger", "active")
	s.stateRule(sheet, sel+":focus-visible", t.Focus, "trigger", "focus")
	d := sheet.Rule(sel + ":disabled, " + sel + "[data-disabled]").Set("pointer-events", "none")
	s.applyState(d, t.Disabled, "trigger", "disabled")

	content := sheet.Rule(s.class("content")).Set("outline", "none")
	s.bind(content, "margin-top", cfg.ContentMargin, "contentMargin")

	sheet.Raw = cfg.CSS
	return sheet.String()
}

// AccordionTrigger tokens.
type AccordionTrigger struct {
	PaddingY   string `mapstructure:"paddingY"`
	FontSize   string `mapstructure:"fontSize"`
	FontWeight string `mapstructure:"fontWeight"`
	Color      string `mapstructure:"color"`
	IconSize   string `mapstructure:"iconSize"`
	Hover      *State `mapstructure:"hover"`
	Focus      *State `mapstructure:"focus"`
}

// AccordionContent tokens.
type AccordionContent struct {
	PaddingBottom string `mapstructure:"paddingBottom"`
	FontSize      string `mapstructure:"fontSize"`
	Color         string `mapstructure:"color"`
}

// Accordion tokens.
type Accordion struct {
	BorderColor string           `mapstructure:"borderColor"`
	Transition  string           `mapstructure:"transition"`
	Trigger     AccordionTrigger `mapstructure:"trigger"`
	Content     AccordionContent `mapstructure:"content"`
	CSS         string           `mapstructure:"css" token:"-"`
}

// AccordionCSS generates accordion items with Radix height animations.
func AccordionCSS(cfg Accordion) string {
	s := scope("accordion")
	sheet := s.sheet(cfg)
	down := token.Prefix + "-accordion-down"
	up := token.Prefix + "-accordion-up"

	item := sheet.Rule(s.class("item"))
	if cfg.BorderColor != "" {
		item.Set("border-bottom", "1px solid "+s.use("borderColor"))
	}

	t := cfg.Trigger
	trigger := sheet.Rule(s.class("trigger")).
		Set("display", "flex").
		Set("flex", "1").
		Set("width", "100%").
		Set("align-items", "center").
		Set("justify-content", "space-between").
		Set("border", "0").
		Set("background", "transparent").
		Set("text-align", "left").
		Set("cursor", "pointer")
	s.bind(trigger, "padding-block", t.PaddingY, "trigger", "paddingY")
	s.bind(trigger, "font-size", t.FontSize, "trigger", "fontSize")
	s.bind(trigger, "font-weight", t.FontWeight, "trigger", "fontWeight")
	s.bind(trigger, "color", t.Color, "trigger", "color")
	s.stateRule(sheet, s.class("trigger")+":hover", t.Hover, "trigger", "hover")
	s.stateRule(sheet, s.class("trigger")+":focus-visible", t.Focus, "trigger", "focus")

	chevron := sheet.Rule(s.class("trigger") + " svg").
		Set("flex-shrink", "0")
	s.bind(chevron, "width", t.IconSize, "trigger", "iconSize")
	s.bind(chevron, "height", t.IconSize, "trigger", "iconSize")
	s.transition(chevron, cfg.Transition, []string{"transform"}, "transition")
	sheet.Rule(s.class("trigger") + "[data-state=\"open\"] svg").
		Set("transform", "rotate(180deg)")

	c := cfg.Content
	content := sheet.Rule(s.class("content")).Set("overflow", "hidden")
	s.bind(content, "font-size", c.FontSize, "content", "fontSize")
	s.bind(content, "color", c.Color, "content", "color")
	inner := sheet.Rule(s.class("content") + " > div")
	s.bind(inner, "padding-bottom", c.PaddingBottom, "content", "paddingBottom")

	timing := "200ms ease-out"
	if cfg.Transition != "" {
		timing = s.use("transition")
	}
	sheet.Rule(s.class("content") + "[data-state=\"open\"]").Set("animation", down+" "+timing)
	sheet.Rule(s.class("content") + "[data-state=\"closed\"]").Set("animation", up+" "+timing)

	height := css.Var("--radix-accordion-content-height")
	kd := sheet.Rule("@keyframes " + down)
	kd.Nest("from").Set("height", "0")
	kd.Nest("to").Set("height", height)
	ku := sheet.Rule("@keyframes " + up)
	ku.Nest("from").Set("height", height)
	ku.Nest("to").Set("height", "0")

	sheet.Raw = cfg.CSS
	return sheet.String()
}
