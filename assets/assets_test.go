/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package assets_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/czero/assets"
	"bennypowers.dev/czero/components"
	"bennypowers.dev/czero/internal/mapfs"
)

func sourceFS(skip ...string) *mapfs.MapFileSystem {
	mfs := mapfs.New()
	for _, name := range components.Names() {
		if contains(skip, name) {
			continue
		}
		mfs.AddFile("/src/"+assets.FileName(name), "."+name+" {}", 0644)
	}
	return mfs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "button.css", assets.FileName("button"))
	assert.Equal(t, "dropdown-menu.css", assets.FileName("dropdownMenu"))
}

func TestPack_RegistrationOrder(t *testing.T) {
	bundle, err := assets.Pack(sourceFS(), "/src")
	require.NoError(t, err)

	require.Len(t, bundle.Files, len(components.Names()))
	assert.Equal(t, "/src/button.css", bundle.Files[0])
	assert.Empty(t, bundle.Stray)

	last := -1
	for _, c := range components.All() {
		idx := strings.Index(bundle.CSS, c.Marker()+"\n."+c.Name+" {}\n")
		require.GreaterOrEqual(t, idx, 0, "missing block for %s", c.Name)
		assert.Greater(t, idx, last, "%s out of order", c.Name)
		last = idx
	}
}

func TestPack_MissingIsFatal(t *testing.T) {
	_, err := assets.Pack(sourceFS("tabs", "dropdownMenu"), "/src")
	require.Error(t, err)
	assert.True(t, errors.Is(err, assets.ErrMissingAssets))

	var missing *assets.MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"/src/dropdown-menu.css", "/src/tabs.css"}, missing.Paths)
}

func TestPack_StrayStylesheets(t *testing.T) {
	mfs := sourceFS()
	mfs.AddFile("/src/legacy/old-button.css", ".old {}", 0644)
	mfs.AddFile("/src/carousel.css", ".carousel {}", 0644)
	mfs.AddFile("/src/README.md", "# styles", 0644)

	bundle, err := assets.Pack(mfs, "/src")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/src/carousel.css", "/src/legacy/old-button.css"}, bundle.Stray)
	assert.NotContains(t, bundle.CSS, ".carousel")
}

func TestLocate_AllMissing(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/src", 0755)

	found, err := assets.Locate(mfs, "/src")
	assert.Empty(t, found)

	var missing *assets.MissingError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Paths, len(components.Names()))
}
