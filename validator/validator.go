/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks a czero configuration for shape problems, unknown
// keys and token references that do not resolve against the theme.
//
// Validation never fails: problems are returned as a list so callers can
// report all of them at once.
package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/czero/build"
	"bennypowers.dev/czero/components"
	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
)

// Severity ranks a ValidationError.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError represents a configuration problem.
type ValidationError struct {
	// Path is the dotted path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Severity is SeverityError or SeverityWarning.
	Severity Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate runs ValidateConfig, ValidateReferences and ValidateContrast.
func Validate(cfg merge.Tree) []ValidationError {
	all := append(ValidateConfig(cfg), ValidateReferences(cfg)...)
	return append(all, ValidateContrast(cfg)...)
}

// Partition splits a result list into errors and warnings, preserving order.
func Partition(all []ValidationError) (errs, warnings []ValidationError) {
	for _, e := range all {
		if e.Severity == SeverityError {
			errs = append(errs, e)
		} else {
			warnings = append(warnings, e)
		}
	}
	return errs, warnings
}

// Messages formats each result for display.
func Messages(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i := range errs {
		out[i] = errs[i].Error()
	}
	return out
}

var scalarCategories = []string{"radius", "shadow", "spacing", "transition"}

var typographyGroups = []string{"fontFamily", "size", "weight", "lineHeight"}

var templateMarkers = []string{"${", "{{", "<%"}

var structValidator = playground.New()

type collector struct {
	errs []ValidationError
}

func (c *collector) add(severity Severity, path, message, suggestion string) {
	c.errs = append(c.errs, ValidationError{
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
		Severity:   severity,
	})
}

func (c *collector) error(path, message, suggestion string) {
	c.add(SeverityError, path, message, suggestion)
}

func (c *collector) warn(path, message, suggestion string) {
	c.add(SeverityWarning, path, message, suggestion)
}

// ValidateConfig checks the shape of a user configuration.
func ValidateConfig(cfg merge.Tree) []ValidationError {
	c := &collector{}

	for _, key := range sortedKeys(cfg) {
		if !slices.Contains(config.TopLevelKeys, key) {
			c.warn(key, "unknown top-level key", "expected one of "+strings.Join(config.TopLevelKeys, ", "))
		}
	}

	c.colors(cfg["color"])
	for _, category := range scalarCategories {
		if v, ok := cfg[category]; ok {
			c.scalars(category, v)
		}
	}
	c.typography(cfg["typography"])
	c.components(cfg)
	c.customCSS(cfg["customCSS"])
	c.presets(cfg["presets"])

	return c.errs
}

func (c *collector) colors(v any) {
	if v == nil {
		return
	}
	colors, ok := merge.AsTree(v)
	if !ok {
		c.error("color", fmt.Sprintf("expected a mapping, got %T", v), "")
		return
	}

	for _, name := range sortedKeys(colors) {
		path := "color." + name
		value := colors[name]
		if value == nil {
			continue
		}
		entry, ok := merge.AsTree(value)
		if !ok {
			c.error(path, fmt.Sprintf("expected a mapping, got %T", value), "set light and dark HSL triples")
			continue
		}

		var pair theme.ColorPair
		if err := mapstructure.WeakDecode(entry, &pair); err != nil {
			c.error(path, err.Error(), "")
			continue
		}
		if err := structValidator.Struct(pair); err != nil {
			var fieldErrs playground.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					c.error(path+"."+strings.ToLower(fe.Field()), "missing "+strings.ToLower(fe.Field())+" value", "every color needs a light and a dark HSL triple")
				}
			} else {
				c.error(path, err.Error(), "")
			}
		}

		for _, mode := range []string{"light", "dark"} {
			triple := strings.TrimSpace(fmt.Sprint(entry[mode]))
			if entry[mode] == nil || triple == "" {
				continue
			}
			if !IsHSLTriple(triple) {
				c.warn(path+"."+mode, fmt.Sprintf("%q is not an HSL triple", triple), `use "<hue> <saturation>% <lightness>%", e.g. "222 47% 11%"`)
			}
		}
	}
}

// IsHSLTriple reports whether s is a space-separated hue, saturation and
// lightness suitable for hsl(var(...)).
func IsHSLTriple(s string) bool {
	if strings.ContainsAny(s, "(),") {
		return false
	}
	if len(strings.Fields(s)) != 3 {
		return false
	}
	_, err := csscolorparser.Parse("hsl(" + s + ")")
	return err == nil
}

func (c *collector) scalars(path string, v any) {
	if v == nil {
		return
	}
	values, ok := merge.AsTree(v)
	if !ok {
		c.error(path, fmt.Sprintf("expected a mapping, got %T", v), "")
		return
	}
	for _, key := range sortedKeys(values) {
		switch value := values[key].(type) {
		case nil, string, bool, int, int64, uint64, float64:
		case map[string]any:
			c.scalars(path+"."+key, value)
		default:
			c.error(path+"."+key, fmt.Sprintf("expected a scalar value, got %T", value), "")
		}
	}
}

func (c *collector) typography(v any) {
	if v == nil {
		return
	}
	groups, ok := merge.AsTree(v)
	if !ok {
		c.error("typography", fmt.Sprintf("expected a mapping, got %T", v), "")
		return
	}
	for _, key := range sortedKeys(groups) {
		if !slices.Contains(typographyGroups, key) {
			c.warn("typography."+key, "unknown typography group", "expected one of "+strings.Join(typographyGroups, ", "))
			continue
		}
		c.scalars("typography."+key, groups[key])
	}
}

func (c *collector) components(cfg merge.Tree) {
	v, ok := cfg["components"]
	if !ok || v == nil {
		return
	}
	user, ok := merge.AsTree(v)
	if !ok {
		c.error("components", fmt.Sprintf("expected a mapping, got %T", v), "")
		return
	}

	merged := build.MergedComponents(cfg)
	for _, name := range sortedKeys(user) {
		component, ok := components.Lookup(name)
		if !ok {
			c.warn("components."+name, "unknown component", "expected one of "+strings.Join(components.Names(), ", "))
			continue
		}
		value := merged[name]
		if value == nil || value == false {
			continue
		}
		slice, ok := merge.AsTree(value)
		if !ok {
			c.error("components."+name, fmt.Sprintf("expected a mapping, got %T", value), "set null or false to disable the component")
			continue
		}
		for _, d := range component.Check(slice) {
			path := "components." + d.Component
			if d.Path != "" {
				path += "." + d.Path
			}
			c.warn(path, d.Message, "")
		}
	}
}

func (c *collector) customCSS(v any) {
	if v == nil {
		return
	}
	custom, ok := merge.AsTree(v)
	if !ok {
		c.error("customCSS", fmt.Sprintf("expected a mapping, got %T", v), "set before and/or after")
		return
	}
	for _, key := range sortedKeys(custom) {
		path := "customCSS." + key
		if key != "before" && key != "after" {
			c.warn(path, "unknown customCSS key", "expected before or after")
			continue
		}
		if custom[key] == nil {
			continue
		}
		text, ok := custom[key].(string)
		if !ok {
			c.error(path, fmt.Sprintf("expected a string, got %T", custom[key]), "")
			continue
		}
		for _, marker := range templateMarkers {
			if strings.Contains(text, marker) {
				c.warn(path, fmt.Sprintf("contains template syntax %q", marker), "custom CSS is emitted verbatim and never interpolated")
			}
		}
		if pos, ok := LintCSS(text); !ok {
			c.warn(path, fmt.Sprintf("CSS syntax error at line %d, column %d", pos.Line, pos.Column), "")
		}
	}
}

func (c *collector) presets(v any) {
	if v == nil {
		return
	}
	list, ok := v.([]any)
	if !ok {
		c.error("presets", fmt.Sprintf("expected a list of file paths, got %T", v), "")
		return
	}
	for i, entry := range list {
		if _, ok := entry.(string); !ok {
			c.error(fmt.Sprintf("presets.%d", i), fmt.Sprintf("expected a file path, got %T", entry), "")
		}
	}
}

// ValidateReferences checks that every token reference in the merged
// component configuration is well formed and names a theme token.
// Malformed references are errors; references the theme does not define are
// warnings, since they still render as a var() the page may supply.
func ValidateReferences(cfg merge.Tree) []ValidationError {
	c := &collector{}

	thm, err := theme.Load(cfg)
	if err != nil {
		c.error("", err.Error(), "")
	}
	if thm == nil {
		return c.errs
	}

	merged := build.MergedComponents(cfg)
	for _, name := range components.Names() {
		slice, ok := merge.AsTree(merged[name])
		if !ok {
			continue
		}
		walkStrings(slice, "components."+name, func(path, value string) {
			if !token.IsReference(value) {
				return
			}
			ref, err := token.Parse(value)
			if err != nil {
				c.error(path, err.Error(), `write references as "$category-name" or "$category-name / opacity"`)
				return
			}
			if !thm.Has(ref) {
				c.warn(path, fmt.Sprintf("%s does not resolve to a theme token", value), suggestReference(thm, ref))
			}
		})
	}

	return c.errs
}

// MinContrast is the WCAG AA ratio for large text and interface components.
const MinContrast = 3.0

// ValidateContrast warns when a foreground color and its background fall
// below MinContrast in either mode. "foreground" pairs with "background" and
// every other "<name>-foreground" pairs with "<name>".
func ValidateContrast(cfg merge.Tree) []ValidationError {
	c := &collector{}
	thm, _ := theme.Load(cfg)
	if thm == nil {
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(thm.Color)) {
		base, ok := strings.CutSuffix(name, "-foreground")
		if name == "foreground" {
			base, ok = "background", true
		}
		if !ok {
			continue
		}
		bg, ok := thm.Color[base]
		if !ok {
			continue
		}
		fg := thm.Color[name]
		modes := []struct{ name, fg, bg string }{
			{"light", fg.Light, bg.Light},
			{"dark", fg.Dark, bg.Dark},
		}
		for _, mode := range modes {
			ratio, ok := theme.Contrast(mode.fg, mode.bg)
			if !ok || ratio >= MinContrast {
				continue
			}
			c.warn("color."+name,
				fmt.Sprintf("contrast with %s is %.2f:1 in %s mode", base, ratio, mode.name),
				fmt.Sprintf("aim for at least %.0f:1", MinContrast))
		}
	}
	return c.errs
}

func suggestReference(thm *theme.Theme, ref token.Reference) string {
	if !ref.Category.Known() {
		names := make([]string, 0, len(token.Categories()))
		for _, cat := range token.Categories() {
			names = append(names, string(cat))
		}
		return "unknown category; expected one of " + strings.Join(names, ", ")
	}
	names := thm.Names(ref.Category)
	if len(names) == 0 {
		return fmt.Sprintf("no %s tokens are defined", ref.Category)
	}
	return fmt.Sprintf("defined %s tokens: %s", ref.Category, strings.Join(names, ", "))
}

func walkStrings(tree merge.Tree, path string, visit func(path, value string)) {
	for _, key := range sortedKeys(tree) {
		child := path + "." + key
		switch v := tree[key].(type) {
		case string:
			visit(child, v)
		case map[string]any:
			walkStrings(v, child, visit)
		}
	}
}

func sortedKeys(m merge.Tree) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
