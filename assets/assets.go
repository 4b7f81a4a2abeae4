/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package assets packages hand-written per-component stylesheets into a
// single file, in component registration order.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/czero/components"
	"bennypowers.dev/czero/css"
	czfs "bennypowers.dev/czero/fs"
)

// ErrMissingAssets is wrapped by MissingError.
var ErrMissingAssets = errors.New("missing component stylesheets")

// MissingError lists the component stylesheets that could not be found.
type MissingError struct {
	Paths []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingAssets, strings.Join(e.Paths, ", "))
}

func (e *MissingError) Unwrap() error {
	return ErrMissingAssets
}

// StylesheetPattern matches the files Pack considers component stylesheets.
const StylesheetPattern = "**/*.css"

// FileName returns the stylesheet name for a component, e.g.
// "dropdown-menu.css" for dropdownMenu.
func FileName(component string) string {
	return css.ToKebabCase(component) + ".css"
}

// Bundle is the result of packaging a source directory.
type Bundle struct {
	// Files are the stylesheets included, in registration order.
	Files []string

	// Stray are stylesheets under the source directory that belong to no
	// registered component.
	Stray []string

	// CSS is the concatenated output.
	CSS string
}

// Locate returns the stylesheet path of every registered component under
// srcDir. If any are absent it returns a *MissingError listing all of them.
func Locate(filesystem czfs.FileSystem, srcDir string) ([]string, error) {
	var found, missing []string
	for _, name := range components.Names() {
		p := filepath.Join(srcDir, FileName(name))
		if filesystem.Exists(p) {
			found = append(found, p)
		} else {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return found, &MissingError{Paths: missing}
	}
	return found, nil
}

// Stray lists stylesheets under srcDir that Locate would not pick up.
func Stray(filesystem czfs.FileSystem, srcDir string) ([]string, error) {
	known := make(map[string]bool)
	for _, name := range components.Names() {
		known[FileName(name)] = true
	}

	var stray []string
	err := fs.WalkDir(filesystem, srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, srcDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(StylesheetPattern, relPath); !matched {
			return nil
		}
		if !known[relPath] {
			stray = append(stray, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stray, nil
}

// Pack concatenates the component stylesheets under srcDir, each under its
// marker comment. Missing stylesheets are fatal.
func Pack(filesystem czfs.FileSystem, srcDir string) (*Bundle, error) {
	files, err := Locate(filesystem, srcDir)
	if err != nil {
		return nil, err
	}

	stray, err := Stray(filesystem, srcDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	var sb strings.Builder
	for i, c := range components.All() {
		data, err := filesystem.ReadFile(files[i])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", files[i], err)
		}
		sb.WriteString(c.Marker())
		sb.WriteString("\n")
		sb.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return &Bundle{Files: files, Stray: stray, CSS: sb.String()}, nil
}
