/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/merge"
)

// Component is a registered generator bound to its configuration key.
type Component struct {
	// Name is the configuration key, e.g. "dropdownMenu".
	Name string

	render    func(merge.Tree) (string, []Diagnostic)
	variables func(merge.Tree) ([]css.Decl, []Diagnostic)
}

func register[T any](name string, generate func(T) string) Component {
	return Component{
		Name: name,
		render: func(slice merge.Tree) (string, []Diagnostic) {
			cfg, diags := decode[T](name, slice)
			return generate(cfg), diags
		},
		variables: func(slice merge.Tree) ([]css.Decl, []Diagnostic) {
			cfg, diags := decode[T](name, slice)
			return Variables(name, cfg), diags
		},
	}
}

// Render decodes slice and runs the generator.
func (c Component) Render(slice merge.Tree) (string, []Diagnostic) {
	return c.render(slice)
}

// Variables returns the :root declarations slice produces.
func (c Component) Variables(slice merge.Tree) ([]css.Decl, []Diagnostic) {
	return c.variables(slice)
}

// Check decodes slice and reports its diagnostics without generating CSS.
func (c Component) Check(slice merge.Tree) []Diagnostic {
	_, diags := c.variables(slice)
	return diags
}

// Title is the upper-cased display name: "DROPDOWN MENU".
func (c Component) Title() string {
	return cases.Upper(language.Und).String(strings.Join(css.SplitIntoWords(c.Name), " "))
}

// Marker is the comment that opens the component's block in a document.
func (c Component) Marker() string {
	return fmt.Sprintf("/* ===== %s ===== */", c.Title())
}

var registry = []Component{
	register("button", ButtonCSS),
	register("input", InputCSS),
	register("textarea", TextareaCSS),
	register("select", SelectCSS),
	register("checkbox", CheckboxCSS),
	register("radio", RadioCSS),
	register("switch", SwitchCSS),
	register("slider", SliderCSS),
	register("label", LabelCSS),
	register("badge", BadgeCSS),
	register("card", CardCSS),
	register("dialog", DialogCSS),
	register("popover", PopoverCSS),
	register("tooltip", TooltipCSS),
	register("dropdownMenu", DropdownMenuCSS),
	register("tabs", TabsCSS),
	register("accordion", AccordionCSS),
	register("avatar", AvatarCSS),
	register("alert", AlertCSS),
	register("toast", ToastCSS),
	register("progress", ProgressCSS),
	register("separator", SeparatorCSS),
	register("skeleton", SkeletonCSS),
	register("kbd", KbdCSS),
	register("spinner", SpinnerCSS),
	register("table", TableCSS),
}

// All returns the registered components in generation order.
func All() []Component {
	return slices.Clone(registry)
}

// Names returns the registered configuration keys in generation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a registered component by configuration key.
func Lookup(name string) (Component, bool) {
	i := slices.IndexFunc(registry, func(c Component) bool { return c.Name == name })
	if i < 0 {
		return Component{}, false
	}
	return registry[i], true
}
