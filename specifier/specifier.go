/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves preset locations: plain file paths, or npm
// package specifiers such as npm:@acme/czero-preset/rounded.yaml that are
// looked up in node_modules.
package specifier

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	czfs "bennypowers.dev/czero/fs"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
)

// Specifier represents a parsed preset specifier.
type Specifier struct {
	Kind Kind

	// Package is the package name, e.g. "@scope/pkg" or "pkg".
	Package string

	// File is the file path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses a specifier string. Anything that is not a well-formed npm
// specifier is a local path.
func Parse(spec string) *Specifier {
	if matches := npmPattern.FindStringSubmatch(spec); matches != nil {
		return &Specifier{
			Kind:    KindNPM,
			Package: matches[1],
			File:    strings.TrimPrefix(matches[2], "/"),
			Raw:     spec,
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsNPM returns true if this is an npm specifier.
func (s *Specifier) IsNPM() bool {
	return s.Kind == KindNPM
}

// Resolve returns the filesystem path for spec. Local paths are joined to
// baseDir unless absolute. npm specifiers are looked up in node_modules,
// walking up from baseDir; the file must stay inside the package directory.
func Resolve(filesystem czfs.FileSystem, baseDir, spec string) (string, error) {
	parsed := Parse(spec)
	if !parsed.IsNPM() {
		if filepath.IsAbs(parsed.File) {
			return parsed.File, nil
		}
		return filepath.Join(baseDir, parsed.File), nil
	}
	if parsed.File == "" {
		return "", fmt.Errorf("npm specifier %s names no file", spec)
	}

	dir := baseDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}
	startDir := dir

	for {
		pkgDir := filepath.Join(dir, "node_modules", parsed.Package)
		candidate := filepath.Clean(filepath.Join(pkgDir, parsed.File))
		if !isInsideDir(candidate, pkgDir) {
			return "", fmt.Errorf("path traversal detected in specifier: %s", spec)
		}
		if filesystem.Exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", parsed.Package, startDir)
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
