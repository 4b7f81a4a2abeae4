/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme holds the default czero theme and emits the global token
// custom properties for light and dark mode.
//
// The default theme is the single source of truth for token values: the CLI,
// the generators and the validator all read it from here.
package theme

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/token"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Keys are the top-level configuration keys owned by the theme.
var Keys = []string{"color", "radius", "shadow", "spacing", "transition", "typography"}

var (
	defaultsOnce sync.Once
	defaultsTree merge.Tree
)

// Defaults returns a fresh copy of the default theme tree.
func Defaults() merge.Tree {
	defaultsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultsYAML, &defaultsTree); err != nil {
			panic(fmt.Sprintf("theme: invalid embedded defaults: %v", err))
		}
	})
	return merge.Clone(defaultsTree)
}

// ColorPair is a color's light and dark HSL triple.
type ColorPair struct {
	Light string `mapstructure:"light" validate:"required"`
	Dark  string `mapstructure:"dark" validate:"required"`
}

// Typography holds the font tables.
type Typography struct {
	FontFamily map[string]string `mapstructure:"fontFamily"`
	Size       map[string]string `mapstructure:"size"`
	Weight     map[string]string `mapstructure:"weight"`
	LineHeight map[string]string `mapstructure:"lineHeight"`
}

// Theme is the typed view of a merged theme tree.
type Theme struct {
	Color      map[string]ColorPair `mapstructure:"color"`
	Radius     map[string]string    `mapstructure:"radius"`
	Shadow     map[string]string    `mapstructure:"shadow"`
	Spacing    map[string]string    `mapstructure:"spacing"`
	Transition map[string]string    `mapstructure:"transition"`
	Typography Typography           `mapstructure:"typography"`
}

// Merged overlays the theme keys of cfg onto the default theme.
func Merged(cfg merge.Tree) merge.Tree {
	user := merge.Tree{}
	for _, key := range Keys {
		if value, ok := cfg[key]; ok {
			user[key] = value
		}
	}
	return merge.Merge(Defaults(), user)
}

// flatGroups are the paths whose nested mappings collapse into dotted keys,
// so radius.button.sm becomes the radius token "button.sm".
var flatGroups = [][]string{
	{"radius"},
	{"shadow"},
	{"spacing"},
	{"transition"},
	{"typography", "fontFamily"},
	{"typography", "size"},
	{"typography", "weight"},
	{"typography", "lineHeight"},
}

// Flatten returns a copy of tree with every nested group under the non-color
// categories collapsed into dotted keys.
func Flatten(tree merge.Tree) merge.Tree {
	out := merge.Clone(tree)
	for _, path := range flatGroups {
		parent := out
		for _, segment := range path[:len(path)-1] {
			next, ok := merge.AsTree(parent[segment])
			if !ok {
				parent = nil
				break
			}
			parent = next
		}
		if parent == nil {
			continue
		}
		last := path[len(path)-1]
		group, ok := merge.AsTree(parent[last])
		if !ok {
			continue
		}
		flat := merge.Tree{}
		flattenInto(flat, "", group)
		parent[last] = flat
	}
	return out
}

func flattenInto(dst merge.Tree, prefix string, src merge.Tree) {
	for key, value := range src {
		if prefix != "" {
			key = prefix + "." + key
		}
		if child, ok := merge.AsTree(value); ok {
			flattenInto(dst, key, child)
			continue
		}
		dst[key] = value
	}
}

// Decode converts a theme tree into a Theme. Nested groups are flattened
// first and scalars are weakly typed so YAML numbers become strings. On a
// shape error the partially decoded theme is returned with the error.
func Decode(tree merge.Tree) (*Theme, error) {
	t := &Theme{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           t,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(Flatten(tree)); err != nil {
		return t, fmt.Errorf("decoding theme: %w", err)
	}
	return t, nil
}

// Load merges cfg onto the defaults and decodes the result.
func Load(cfg merge.Tree) (*Theme, error) {
	return Decode(Merged(cfg))
}

// Variable is a theme token rendered as a custom property.
type Variable struct {
	// Category is the token category.
	Category token.Category

	// Key is the name a reference uses within the category,
	// e.g. "primary" for $color-primary or "sm" for $font-sm.
	Key string

	// Name is the custom property name.
	Name string

	// Value is the light (or only) value.
	Value string

	// Dark is the dark-mode value. Only colors have one.
	Dark string
}

// Variables lists the theme's custom properties: colors first, then radius,
// shadow, spacing, transition and font, each sorted by key. Cleared entries
// are omitted.
func (t *Theme) Variables() []Variable {
	var vars []Variable

	for _, key := range sortedKeys(t.Color) {
		pair := t.Color[key]
		if pair.Light == "" && pair.Dark == "" {
			continue
		}
		vars = append(vars, Variable{
			Category: token.CategoryColor,
			Key:      hyphenate(key),
			Name:     token.VariableName("color-" + key),
			Value:    pair.Light,
			Dark:     pair.Dark,
		})
	}

	simple := []struct {
		category token.Category
		values   map[string]string
	}{
		{token.CategoryRadius, t.Radius},
		{token.CategoryShadow, t.Shadow},
		{token.CategorySpacing, t.Spacing},
		{token.CategoryTransition, t.Transition},
	}
	for _, group := range simple {
		for _, key := range sortedKeys(group.values) {
			if group.values[key] == "" {
				continue
			}
			vars = append(vars, Variable{
				Category: group.category,
				Key:      hyphenate(key),
				Name:     token.VariableName(string(group.category) + "-" + key),
				Value:    group.values[key],
			})
		}
	}

	fonts := []struct {
		segment string
		values  map[string]string
	}{
		{"", t.Typography.FontFamily},
		{"size-", t.Typography.Size},
		{"weight-", t.Typography.Weight},
		{"lineHeight-", t.Typography.LineHeight},
	}
	for _, group := range fonts {
		for _, key := range sortedKeys(group.values) {
			if group.values[key] == "" {
				continue
			}
			vars = append(vars, Variable{
				Category: token.CategoryFont,
				Key:      hyphenate(key),
				Name:     "--" + token.Prefix + "-font-" + group.segment + hyphenate(key),
				Value:    group.values[key],
			})
		}
	}

	return vars
}

// Has reports whether ref names a token defined in the theme.
func (t *Theme) Has(ref token.Reference) bool {
	key := ref.Key()
	if key == "" {
		return false
	}
	switch ref.Category {
	case token.CategoryColor:
		for name, pair := range t.Color {
			if hyphenate(name) == key && (pair.Light != "" || pair.Dark != "") {
				return true
			}
		}
		return false
	case token.CategoryRadius:
		return hasKey(t.Radius, key)
	case token.CategoryShadow:
		return hasKey(t.Shadow, key)
	case token.CategorySpacing:
		return hasKey(t.Spacing, key)
	case token.CategoryTransition:
		return hasKey(t.Transition, key)
	case token.CategoryFont:
		switch token.FontGroupOf(key) {
		case token.FontSize:
			return hasKey(t.Typography.Size, key)
		case token.FontWeight:
			return hasKey(t.Typography.Weight, key)
		case token.FontLineHeight:
			return hasKey(t.Typography.LineHeight, key)
		default:
			return hasKey(t.Typography.FontFamily, key)
		}
	default:
		return false
	}
}

// Names returns the defined keys for a category, for suggestions.
func (t *Theme) Names(category token.Category) []string {
	var names []string
	for _, v := range t.Variables() {
		if v.Category == category {
			names = append(names, v.Key)
		}
	}
	return names
}

func hasKey(values map[string]string, key string) bool {
	for name, value := range values {
		if hyphenate(name) == key && value != "" {
			return true
		}
	}
	return false
}

func hyphenate(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
