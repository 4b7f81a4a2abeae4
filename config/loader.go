/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	czfs "bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/specifier"
)

// FileNames are the config files searched for, in priority order.
var FileNames = []string{
	"czero.config.yaml",
	"czero.config.yml",
	"czero.config.json",
	"czero.config.jsonc",
	"czero.config.toml",
}

// LegacyCSSPaths are searched, in order, for a stylesheet to append after the
// component blocks when the config does not set customCSS.after.
var LegacyCSSPaths = []string{
	"czero.custom.css",
	"styles/czero.custom.css",
	"src/styles/czero.custom.css",
}

// ErrNotFound is returned when no config file exists.
var ErrNotFound = errors.New("config file not found")

// Loaded is a decoded configuration and where it came from.
type Loaded struct {
	// Path is the config file read, or "" when defaults are used.
	Path string

	// Presets are the preset files merged beneath the config, in order.
	Presets []string

	// LegacyCSS is the legacy stylesheet appended as customCSS.after, if any.
	LegacyCSS string

	// Tree is the configuration with presets applied.
	Tree merge.Tree
}

// Sources lists every file that contributed to the configuration.
func (l *Loaded) Sources() []string {
	var out []string
	if l.Path != "" {
		out = append(out, l.Path)
	}
	out = append(out, l.Presets...)
	if l.LegacyCSS != "" {
		out = append(out, l.LegacyCSS)
	}
	return out
}

// Find returns the first config file in rootDir, or "" when there is none.
func Find(filesystem czfs.FileSystem, rootDir string) string {
	for _, name := range FileNames {
		p := filepath.Join(rootDir, name)
		if filesystem.Exists(p) {
			return p
		}
	}
	return ""
}

// Load reads the config at path, or discovers one in rootDir when path is
// empty. Relative paths are resolved against rootDir. It returns ErrNotFound
// when there is no config file.
func Load(filesystem czfs.FileSystem, rootDir, path string) (*Loaded, error) {
	if path == "" {
		path = Find(filesystem, rootDir)
		if path == "" {
			return nil, ErrNotFound
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}

	data, err := filesystem.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	tree, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	loaded := &Loaded{Path: path}
	tree, loaded.Presets, err = applyPresets(filesystem, filepath.Dir(path), tree)
	if err != nil {
		return nil, err
	}
	loaded.Tree = tree
	return loaded, nil
}

// applyPresets merges the files listed under presets beneath tree, left to
// right, so later presets and finally the config itself win. Entries are
// paths relative to dir or npm specifiers.
func applyPresets(filesystem czfs.FileSystem, dir string, tree merge.Tree) (merge.Tree, []string, error) {
	raw, ok := tree["presets"]
	if !ok || raw == nil {
		return tree, nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("presets must be a list of file paths, got %T", raw)
	}

	var layers []merge.Tree
	var paths []string
	for _, entry := range list {
		name, ok := entry.(string)
		if !ok {
			return nil, nil, fmt.Errorf("presets entries must be file paths, got %T", entry)
		}
		p, err := specifier.Resolve(filesystem, dir, name)
		if err != nil {
			return nil, nil, fmt.Errorf("resolving preset %s: %w", name, err)
		}
		data, err := filesystem.ReadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("reading preset %s: %w", name, err)
		}
		preset, err := Parse(p, data)
		if err != nil {
			return nil, nil, err
		}
		delete(preset, "presets")
		layers = append(layers, preset)
		paths = append(paths, p)
	}

	own := merge.Clone(tree)
	delete(own, "presets")
	layers = append(layers, own)
	return merge.MergeAll(merge.Tree{}, layers...), paths, nil
}

// LoadOrDefault loads the config like Load and never fails: a missing file
// is reported as a notice and a broken one as an error, and both fall back
// to an empty configuration so the build proceeds with defaults. A legacy
// custom stylesheet is applied either way.
func LoadOrDefault(filesystem czfs.FileSystem, rootDir, path string) *Loaded {
	loaded, err := Load(filesystem, rootDir, path)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Info("No czero config found, using defaults")
		loaded = &Loaded{Tree: merge.Tree{}}
	case err != nil:
		logger.Error("Failed to load config: %v", err)
		logger.Info("Continuing with defaults")
		loaded = &Loaded{Tree: merge.Tree{}}
	}

	if legacy, err := ApplyLegacyCSS(filesystem, rootDir, loaded.Tree); err != nil {
		logger.Warn("Failed to read %s: %v", legacy, err)
	} else if legacy != "" {
		loaded.LegacyCSS = legacy
		logger.Debug("Appending legacy stylesheet %s", legacy)
	}
	return loaded
}

// ApplyLegacyCSS sets customCSS.after from the first legacy stylesheet found
// in rootDir, unless the config already sets it. It returns the path used.
func ApplyLegacyCSS(filesystem czfs.FileSystem, rootDir string, tree merge.Tree) (string, error) {
	if after, ok := merge.Lookup(tree, "customCSS", "after"); ok && after != nil {
		return "", nil
	}

	for _, rel := range LegacyCSSPaths {
		p := filepath.Join(rootDir, rel)
		if !filesystem.Exists(p) {
			continue
		}
		data, err := filesystem.ReadFile(p)
		if err != nil {
			return p, err
		}
		custom, ok := merge.AsTree(tree["customCSS"])
		if !ok {
			custom = merge.Tree{}
		} else {
			custom = merge.Clone(custom)
		}
		custom["after"] = string(data)
		tree["customCSS"] = custom
		return p, nil
	}
	return "", nil
}
