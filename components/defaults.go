/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package components holds the component defaults table, the typed token
// schema of every component, and the generators that turn a component's
// merged configuration into CSS.
//
// Every generator has the same shape, func(T) string, and emits in order:
// a :root block with one custom property per configured token, the base
// rules, size variants, color variants with their states, and finally the
// component's verbatim css passthrough.
package components

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/czero/merge"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	defaultsOnce sync.Once
	defaultsTree merge.Tree
)

// Defaults returns a fresh copy of the component defaults table, keyed by
// component name.
func Defaults() merge.Tree {
	defaultsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultsYAML, &defaultsTree); err != nil {
			panic(fmt.Sprintf("components: invalid embedded defaults: %v", err))
		}
	})
	return merge.Clone(defaultsTree)
}
