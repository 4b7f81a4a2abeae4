/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
)

func loaded(tree merge.Tree) *config.Loaded {
	return &config.Loaded{Tree: tree}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := merge.Tree{"color": merge.Tree{"brand": merge.Tree{"light": "0 100% 50%", "dark": "0 0% 100%"}}}
	require.NoError(t, Write(&buf, loaded(cfg), "json", token.CategoryColor))

	var entries []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.NotEmpty(t, entries)

	var brand *Entry
	for i := range entries {
		assert.Equal(t, "color", entries[i].Category)
		if entries[i].Reference == "$color-brand" {
			brand = &entries[i]
		}
	}
	require.NotNil(t, brand)
	assert.Equal(t, "--cz-color-brand", brand.Variable)
	assert.Equal(t, "#ff0000", brand.Hex)
	assert.Equal(t, "#ffffff", brand.DarkHex)
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loaded(merge.Tree{}), "table", token.CategoryFont))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "REFERENCE"))
	assert.Contains(t, buf.String(), "$font-sm")
	assert.Contains(t, buf.String(), "--cz-font-size-sm")
	assert.NotContains(t, buf.String(), "$radius-md")
}

func TestWrite_CSS(t *testing.T) {
	var buf bytes.Buffer
	cfg := merge.Tree{"radius": merge.Tree{"md": "1rem"}}
	require.NoError(t, Write(&buf, loaded(cfg), "css", ""))
	assert.Equal(t, theme.TokensCSS(cfg), buf.String())
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, loaded(merge.Tree{}), "yaml", ""))
	assert.Error(t, Write(&buf, loaded(merge.Tree{}), "table", "colour"))
}

func TestEntries_ReferencesResolve(t *testing.T) {
	thm, err := theme.Load(nil)
	require.NoError(t, err)

	for _, e := range Entries(thm, "") {
		ref, err := token.Parse(e.Reference)
		require.NoError(t, err, e.Reference)
		assert.Equal(t, e.Variable, ref.Variable(), e.Reference)
	}
}
