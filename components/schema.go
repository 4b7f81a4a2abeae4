/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/token"
)

// Size is the token set of one size variant.
type Size struct {
	Height    string `mapstructure:"height"`
	Width     string `mapstructure:"width"`
	MinHeight string `mapstructure:"minHeight"`
	PaddingX  string `mapstructure:"paddingX"`
	PaddingY  string `mapstructure:"paddingY"`
	FontSize  string `mapstructure:"fontSize"`
	Gap       string `mapstructure:"gap"`
	Radius    string `mapstructure:"radius"`
	IconSize  string `mapstructure:"iconSize"`
	Size      string `mapstructure:"size"`
	Thickness string `mapstructure:"thickness"`
}

// State is the token set applied in an interaction state.
type State struct {
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Shadow      string `mapstructure:"shadow"`
	Opacity     string `mapstructure:"opacity"`
	Ring        string `mapstructure:"ring"`
}

// Variant is a named color variant with optional state overrides.
type Variant struct {
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Shadow      string `mapstructure:"shadow"`
	Hover       *State `mapstructure:"hover"`
	Focus       *State `mapstructure:"focus"`
	Active      *State `mapstructure:"active"`
	Disabled    *State `mapstructure:"disabled"`
}

// Panel is a floating or framed surface: menus, popovers, dialogs.
type Panel struct {
	Background  string `mapstructure:"background"`
	Color       string `mapstructure:"color"`
	BorderColor string `mapstructure:"borderColor"`
	Radius      string `mapstructure:"radius"`
	Shadow      string `mapstructure:"shadow"`
	Padding     string `mapstructure:"padding"`
	MinWidth    string `mapstructure:"minWidth"`
	ZIndex      string `mapstructure:"zIndex"`
}

// Item is a selectable row inside a panel.
type Item struct {
	PaddingX            string `mapstructure:"paddingX"`
	PaddingY            string `mapstructure:"paddingY"`
	Radius              string `mapstructure:"radius"`
	FontSize            string `mapstructure:"fontSize"`
	Color               string `mapstructure:"color"`
	HighlightBackground string `mapstructure:"highlightBackground"`
	HighlightColor      string `mapstructure:"highlightColor"`
	DisabledOpacity     string `mapstructure:"disabledOpacity"`
}

// Text is a typographic token set for titles, descriptions and captions.
type Text struct {
	FontFamily string `mapstructure:"fontFamily"`
	FontSize   string `mapstructure:"fontSize"`
	FontWeight string `mapstructure:"fontWeight"`
	LineHeight string `mapstructure:"lineHeight"`
	Color      string `mapstructure:"color"`
}

// Diagnostic describes a problem decoding a component's configuration.
// Diagnostics never stop generation; the offending property is skipped.
type Diagnostic struct {
	Component string
	Path      string
	Message   string
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("components.%s: %s", d.Component, d.Message)
	}
	return fmt.Sprintf("components.%s.%s: %s", d.Component, d.Path, d.Message)
}

// decode converts a merged configuration slice into its typed schema.
// Scalars are weakly typed, so YAML numbers become strings.
func decode[T any](component string, slice merge.Tree) (T, []Diagnostic) {
	var cfg T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, []Diagnostic{{Component: component, Message: err.Error()}}
	}

	var diags []Diagnostic
	if err := decoder.Decode(slice); err != nil {
		for _, e := range unwrapAll(err) {
			diags = append(diags, Diagnostic{Component: component, Message: e.Error()})
		}
	}

	// mapstructure only records unused keys when decoding succeeds.
	unused := unknownKeys(reflect.TypeFor[T](), slice, nil)
	sort.Strings(unused)
	for _, key := range unused {
		diags = append(diags, Diagnostic{Component: component, Path: key, Message: "unknown property"})
	}

	diags = append(diags, classClashes(component, cfg)...)

	return cfg, diags
}

// classClashes reports names that more than one inline family uses. A size
// and a variant both named "sm" style the same .cz-<component>-sm class.
func classClashes(component string, cfg any) []Diagnostic {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Struct {
		return nil
	}
	s := scope(component)
	owners := map[string]string{}
	var diags []Diagnostic
	for i := range v.NumField() {
		field := v.Type().Field(i)
		if field.Tag.Get("token") != "inline" || field.Type.Kind() != reflect.Map {
			continue
		}
		family, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		names := make([]string, 0, v.Field(i).Len())
		for _, k := range v.Field(i).MapKeys() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		for _, name := range names {
			class := s.class(name)
			if owner, ok := owners[class]; ok {
				diags = append(diags, Diagnostic{
					Component: component,
					Path:      family + "." + name,
					Message:   fmt.Sprintf("shares class %s with %s", class, owner),
				})
				continue
			}
			owners[class] = family + "." + name
		}
	}
	return diags
}

// unknownKeys lists the dotted paths in raw that t has no field for.
// Values of the wrong shape are left to the decoder's own errors.
func unknownKeys(t reflect.Type, raw any, path []string) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	tree, ok := merge.AsTree(raw)
	if !ok {
		return nil
	}

	var out []string
	switch t.Kind() {
	case reflect.Map:
		for key, value := range tree {
			out = append(out, unknownKeys(t.Elem(), value, append(slices.Clone(path), key))...)
		}
	case reflect.Struct:
		fields := schemaFields(t)
		for key, value := range tree {
			field, ok := matchField(fields, key)
			child := append(slices.Clone(path), key)
			if !ok {
				out = append(out, strings.Join(child, "."))
				continue
			}
			out = append(out, unknownKeys(field, value, child)...)
		}
	}
	return out
}

// schemaFields maps each configuration key of t to its field type.
// Squashed fields contribute their own keys.
func schemaFields(t reflect.Type) map[string]reflect.Type {
	fields := map[string]reflect.Type{}
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if slices.Contains(strings.Split(opts, ","), "squash") {
			maps.Copy(fields, schemaFields(field.Type))
			continue
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		fields[name] = field.Type
	}
	return fields
}

// matchField finds key the way the decoder does, ignoring case.
func matchField(fields map[string]reflect.Type, key string) (reflect.Type, bool) {
	if t, ok := fields[key]; ok {
		return t, true
	}
	for name, t := range fields {
		if strings.EqualFold(name, key) {
			return t, true
		}
	}
	return nil, false
}

func unwrapAll(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
		return out
	}
	return []error{err}
}

// Variables lists the custom properties for a decoded component schema: one
// per non-empty token, in field order, named --cz-<component>-<path>.
// Fields tagged token:"inline" do not contribute a path segment and fields
// tagged token:"-" are not tokens.
func Variables(component string, cfg any) []css.Decl {
	s := scope(component)
	var decls []css.Decl
	walk(reflect.ValueOf(cfg), nil, func(path []string, value string) {
		decls = append(decls, css.Decl{Property: s.name(path...), Value: token.Resolve(value)})
	})
	return decls
}

func walk(v reflect.Value, path []string, emit func([]string, string)) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), path, emit)
		}
	case reflect.String:
		if v.String() != "" {
			emit(path, v.String())
		}
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			switch field.Tag.Get("token") {
			case "-":
			case "inline":
				walk(v.Field(i), path, emit)
			default:
				name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
				walk(v.Field(i), append(slices.Clone(path), name), emit)
			}
		}
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		for _, key := range orderKeys(keys) {
			walk(v.MapIndex(reflect.ValueOf(key)), append(slices.Clone(path), key), emit)
		}
	}
}

var sizeOrder = []string{"xs", "sm", "md", "lg", "xl"}

// orderKeys sorts size names xs..xl first, then everything else by name.
func orderKeys(keys []string) []string {
	out := slices.Clone(keys)
	rank := func(k string) int {
		if i := slices.Index(sizeOrder, k); i >= 0 {
			return i
		}
		return len(sizeOrder)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

func sortedNames[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return orderKeys(keys)
}
