/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package components_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/czero/components"
	"bennypowers.dev/czero/css"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
)

func slice(t *testing.T, tree merge.Tree, name string) merge.Tree {
	t.Helper()
	s, ok := merge.AsTree(tree[name])
	require.True(t, ok, "no mapping for %s", name)
	return s
}

// rootDecls returns the custom property names declared in the leading :root block.
func rootDecls(out string) []string {
	block, ok := strings.CutPrefix(out, ":root {\n")
	if !ok {
		return nil
	}
	block, _, _ = strings.Cut(block, "\n}\n")
	var names []string
	for line := range strings.Lines(block) {
		name, _, _ := strings.Cut(strings.TrimSpace(line), ":")
		names = append(names, name)
	}
	return names
}

// countLeaves counts non-empty token values below v.
func countLeaves(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case map[string]any:
		n := 0
		for _, child := range val {
			n += countLeaves(child)
		}
		return n
	case string:
		if val == "" {
			return 0
		}
		return 1
	default:
		return 1
	}
}

func TestDefaults_CoverRegistry(t *testing.T) {
	defaults := components.Defaults()
	names := components.Names()

	assert.Len(t, defaults, len(names))
	for _, name := range names {
		assert.Contains(t, defaults, name)
	}
}

func TestDefaults_DecodeWithoutDiagnostics(t *testing.T) {
	defaults := components.Defaults()
	for _, c := range components.All() {
		t.Run(c.Name, func(t *testing.T) {
			assert.Empty(t, c.Check(slice(t, defaults, c.Name)))
		})
	}
}

func TestDefaults_ReferencesResolveAgainstTheme(t *testing.T) {
	th, err := theme.Load(nil)
	require.NoError(t, err)

	var visit func(path string, v any)
	visit = func(path string, v any) {
		switch val := v.(type) {
		case map[string]any:
			for k, child := range val {
				visit(path+"."+k, child)
			}
		case string:
			if !token.IsReference(val) {
				return
			}
			ref, err := token.Parse(val)
			if assert.NoError(t, err, path) {
				assert.True(t, th.Has(ref), "%s: %s is not defined in the theme", path, val)
			}
		}
	}
	visit("components", components.Defaults())
}

func TestRender_RootHasOneDeclarationPerToken(t *testing.T) {
	defaults := components.Defaults()
	for _, c := range components.All() {
		t.Run(c.Name, func(t *testing.T) {
			s := slice(t, defaults, c.Name)
			out, diags := c.Render(s)
			require.Empty(t, diags)

			names := rootDecls(out)
			seen := map[string]bool{}
			for _, name := range names {
				assert.False(t, seen[name], "duplicate %s", name)
				assert.True(t, strings.HasPrefix(name, "--cz-"), name)
				seen[name] = true
			}

			delete(s, "css")
			assert.Len(t, names, countLeaves(s))
		})
	}
}

func TestRender_RootAfterUserMerge(t *testing.T) {
	button, ok := components.Lookup("button")
	require.True(t, ok)

	merged := merge.Merge(slice(t, components.Defaults(), "button"), merge.Tree{
		"radius": nil,
		"sizes": merge.Tree{
			"xl": merge.Tree{"height": "3.5rem"},
		},
		"variants": merge.Tree{
			"primary": merge.Tree{"hover": nil},
			"brand":   merge.Tree{"background": "$color-accent"},
		},
	})

	out, diags := button.Render(merged)
	require.Empty(t, diags)

	names := rootDecls(out)
	assert.NotContains(t, names, "--cz-button-radius")
	assert.NotContains(t, names, "--cz-button-primary-hover-background")
	assert.Contains(t, names, "--cz-button-xl-height")
	assert.Contains(t, names, "--cz-button-brand-background")
	assert.Len(t, names, countLeaves(merged))

	assert.NotContains(t, out, ".cz-button-primary:hover")
	assert.Contains(t, out, ".cz-button-brand {\n  background-color: var(--cz-button-brand-background);\n}")
}

func TestButtonCSS(t *testing.T) {
	button, ok := components.Lookup("button")
	require.True(t, ok)
	out, diags := button.Render(slice(t, components.Defaults(), "button"))
	require.Empty(t, diags)

	assert.Contains(t, out, "  --cz-button-radius: var(--cz-radius-md);\n")
	assert.Contains(t, out, "  --cz-button-primary-hover-background: hsl(var(--cz-color-primary) / 0.9);\n")
	assert.Contains(t, out, "  --cz-button-sm-font-size: var(--cz-font-size-sm);\n")
	assert.Contains(t, out, ".cz-button-primary:hover:not(:disabled) {\n  background-color: var(--cz-button-primary-hover-background);\n}")
	assert.Contains(t, out, ".cz-button-sm svg {\n  width: var(--cz-button-sm-icon-size);\n")
	assert.NotContains(t, out, "undefined")
}

func TestButtonCSS_SectionOrder(t *testing.T) {
	out := components.ButtonCSS(components.Button{
		Radius: "$radius-md",
		Sizes: map[string]components.Size{
			"icon": {Width: "2.5rem"},
			"xl":   {Height: "3rem"},
			"sm":   {Height: "2rem"},
			"md":   {Height: "2.5rem"},
		},
		Variants: map[string]components.Variant{
			"primary": {Background: "$color-primary"},
		},
		CSS: ".cz-button { letter-spacing: 0.01em; }",
	})

	positions := []int{
		strings.Index(out, ":root {"),
		strings.Index(out, ".cz-button {"),
		strings.Index(out, ".cz-button-sm {"),
		strings.Index(out, ".cz-button-md {"),
		strings.Index(out, ".cz-button-xl {"),
		strings.Index(out, ".cz-button-icon {"),
		strings.Index(out, ".cz-button-primary {"),
		strings.Index(out, ".cz-button { letter-spacing"),
	}
	for i, p := range positions {
		require.GreaterOrEqual(t, p, 0, "section %d missing", i)
		if i > 0 {
			assert.Less(t, positions[i-1], p, "section %d out of order", i)
		}
	}
	assert.True(t, strings.HasSuffix(out, ".cz-button { letter-spacing: 0.01em; }\n"))
}

func TestGenerators_EmptyConfigEmitsNoVariables(t *testing.T) {
	for _, c := range components.All() {
		t.Run(c.Name, func(t *testing.T) {
			out, diags := c.Render(merge.Tree{})
			require.Empty(t, diags)
			assert.False(t, strings.HasPrefix(out, ":root"), "unexpected :root block")
			assert.NotContains(t, out, "var(--cz-"+css.ToKebabCase(c.Name)+"-sm")
			assert.NotContains(t, out, "undefined")
			assert.NotEmpty(t, out)
		})
	}
}

func TestRender_Diagnostics(t *testing.T) {
	input, ok := components.Lookup("input")
	require.True(t, ok)

	out, diags := input.Render(merge.Tree{
		"height": "2rem",
		"bogus":  "1px",
		"sizes":  "big",
	})

	require.NotEmpty(t, diags)
	var unknown, shape bool
	for _, d := range diags {
		assert.Equal(t, "input", d.Component)
		if d.Path == "bogus" {
			unknown = true
			assert.Equal(t, "unknown property", d.Message)
			assert.Equal(t, "components.input.bogus: unknown property", d.String())
		}
		if strings.Contains(d.Message, "sizes") {
			shape = true
		}
	}
	assert.True(t, unknown, "missing unknown-property diagnostic")
	assert.True(t, shape, "missing shape diagnostic")
	assert.Contains(t, out, "--cz-input-height: 2rem;")
}

func TestRender_UnknownKeysWithShapeErrors(t *testing.T) {
	button, ok := components.Lookup("button")
	require.True(t, ok)

	_, diags := button.Render(merge.Tree{
		"Radius":   "$radius-md",
		"gap":      merge.Tree{"x": "1px"},
		"sizes":    merge.Tree{"sm": merge.Tree{"height": "2rem", "glow": "1px"}},
		"variants": merge.Tree{"ghost": merge.Tree{"hover": merge.Tree{"sparkle": "1"}}},
	})

	var unknown []string
	for _, d := range diags {
		if d.Message == "unknown property" {
			unknown = append(unknown, d.Path)
		}
	}
	assert.Equal(t, []string{"sizes.sm.glow", "variants.ghost.hover.sparkle"}, unknown)
	assert.Greater(t, len(diags), len(unknown), "expected the gap shape error too")
}

func TestRender_SquashedFieldsAreKnown(t *testing.T) {
	input, ok := components.Lookup("input")
	require.True(t, ok)

	_, diags := input.Render(merge.Tree{"height": "2rem", "sizes": "big"})
	for _, d := range diags {
		assert.NotEqual(t, "height", d.Path)
	}
}

func TestRender_SizeAndVariantClassClash(t *testing.T) {
	button, ok := components.Lookup("button")
	require.True(t, ok)

	_, diags := button.Render(merge.Tree{
		"sizes":    merge.Tree{"sm": merge.Tree{"height": "2rem"}},
		"variants": merge.Tree{"sm": merge.Tree{"background": "$color-muted"}, "ghost": merge.Tree{}},
	})

	require.Len(t, diags, 1)
	assert.Equal(t, "variants.sm", diags[0].Path)
	assert.Equal(t, "components.button.variants.sm: shares class .cz-button-sm with sizes.sm", diags[0].String())
}

func TestRender_WeakScalars(t *testing.T) {
	dialog, ok := components.Lookup("dialog")
	require.True(t, ok)

	out, diags := dialog.Render(merge.Tree{"zIndex": 60})
	require.Empty(t, diags)
	assert.Contains(t, out, "--cz-dialog-z-index: 60;")
	assert.Contains(t, out, "z-index: var(--cz-dialog-z-index, 50);")
}

func TestVariables(t *testing.T) {
	decls := components.Variables("dropdownMenu", components.DropdownMenu{
		Item:      components.Item{HighlightBackground: "$color-accent"},
		Separator: "$color-muted / 0.5",
		CSS:       ".x {}",
	})

	assert.Equal(t, []css.Decl{
		{Property: "--cz-dropdown-menu-item-highlight-background", Value: "hsl(var(--cz-color-accent))"},
		{Property: "--cz-dropdown-menu-separator", Value: "hsl(var(--cz-color-muted) / 0.5)"},
	}, decls)
}

func TestVariables_InlineContainers(t *testing.T) {
	decls := components.Variables("input", components.Input{
		Field: components.Field{Height: "2rem"},
		Focus: &components.State{Ring: "$color-ring"},
		Sizes: map[string]components.Size{"2xl": {Height: "4rem"}, "lg": {Height: "3rem"}},
	})

	var names []string
	for _, d := range decls {
		names = append(names, d.Property)
	}
	assert.Equal(t, []string{
		"--cz-input-height",
		"--cz-input-focus-ring",
		"--cz-input-lg-height",
		"--cz-input-2xl-height",
	}, names)
}

func TestComponent_Marker(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"button", "/* ===== BUTTON ===== */"},
		{"dropdownMenu", "/* ===== DROPDOWN MENU ===== */"},
		{"kbd", "/* ===== KBD ===== */"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := components.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, c.Marker())
		})
	}
}

func TestNames_Order(t *testing.T) {
	names := components.Names()
	require.Len(t, names, 26)
	assert.Equal(t, "button", names[0])
	assert.Equal(t, "table", names[len(names)-1])

	_, ok := components.Lookup("carousel")
	assert.False(t, ok)
}

func TestSkeletonCSS_ReducedMotion(t *testing.T) {
	out := components.SkeletonCSS(components.Skeleton{Background: "$color-muted"})
	assert.Contains(t, out, "@keyframes cz-skeleton-pulse {\n  0%, 100% {\n    opacity: 1;\n  }")
	assert.Contains(t, out, "@media (prefers-reduced-motion: reduce) {\n  .cz-skeleton {\n    animation: none;\n  }\n}")
	assert.Contains(t, out, "animation: cz-skeleton-pulse var(--cz-skeleton-duration, 2s)")
}

func TestTabsCSS_ActiveTrigger(t *testing.T) {
	out := components.TabsCSS(components.Tabs{})
	assert.NotContains(t, out, "[data-state=\"active\"] {")

	out = components.TabsCSS(components.Tabs{
		Trigger: components.TabsTrigger{Active: &components.State{Background: "$color-background"}},
	})
	assert.Contains(t, out, ".cz-tabs-trigger[data-state=\"active\"] {\n  background-color: var(--cz-tabs-trigger-active-background);\n}")
}

func TestSwitchCSS_ThumbTravelFallsBack(t *testing.T) {
	out := components.SwitchCSS(components.Switch{})
	assert.Contains(t, out, "translateX(calc(var(--cz-switch-width, 2.75rem) - var(--cz-switch-thumb-size, 1.25rem) - 4px))")
}
