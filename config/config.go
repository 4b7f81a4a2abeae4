/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config discovers and decodes czero theme configuration files.
//
// A configuration is a plain tree with the top-level keys color, radius,
// shadow, spacing, transition, typography, components, customCSS and
// presets. It is kept untyped so null overrides survive until they are
// merged onto the defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/czero/merge"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// TopLevelKeys are the keys a configuration may contain.
var TopLevelKeys = []string{
	"color",
	"radius",
	"shadow",
	"spacing",
	"transition",
	"typography",
	"components",
	"customCSS",
	"presets",
}

// Parse decodes data according to the extension of name.
// YAML, JSON, JSON with comments and TOML are supported.
func Parse(name string, data []byte) (merge.Tree, error) {
	var raw any
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".toml":
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		raw = tree
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if raw == nil {
		return merge.Tree{}, nil
	}
	tree, ok := merge.AsTree(normalize(raw))
	if !ok {
		return nil, fmt.Errorf("parsing %s: top level must be a mapping, got %T", name, raw)
	}
	return tree, nil
}

// normalize converts decoder-specific shapes into merge trees: YAML mappings
// with non-string keys become map[string]any, and nested values are
// normalized recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	default:
		return v
	}
}
