/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package merge layers partial configuration trees over complete ones.
//
// Rules, applied for every key in the source tree:
//   - a nil source value clears the key (the result holds nil);
//   - two mappings merge recursively, the source winning conflicts;
//   - anything else, including slices, replaces the target value wholesale.
//
// Keys only present in the target are carried through. Neither input is mutated;
// untouched subtrees are shared between the input and the result.
package merge

// Tree is a nested configuration mapping as decoded from YAML, JSON or TOML.
type Tree = map[string]any

// Merge returns target overlaid with source.
func Merge(target, source Tree) Tree {
	result := make(Tree, len(target)+len(source))
	for key, value := range target {
		result[key] = value
	}

	for key, value := range source {
		if value == nil {
			result[key] = nil
			continue
		}

		sourceMap, sourceIsMap := AsTree(value)
		targetMap, targetIsMap := AsTree(result[key])
		if sourceIsMap && targetIsMap {
			result[key] = Merge(targetMap, sourceMap)
			continue
		}

		result[key] = value
	}

	return result
}

// MergeAll folds sources over target from left to right, so later
// entries override earlier ones. It backs preset composition.
func MergeAll(target Tree, sources ...Tree) Tree {
	result := target
	if result == nil {
		result = Tree{}
	}
	for _, source := range sources {
		result = Merge(result, source)
	}
	return result
}

// Clone returns a deep copy of t. Maps and slices are copied; scalars are shared.
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	return cloneValue(t).(Tree)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = cloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return v
	}
}

// AsTree reports whether v is a mapping and returns it.
func AsTree(v any) (Tree, bool) {
	t, ok := v.(map[string]any)
	return t, ok && t != nil
}

// Lookup walks path through nested mappings.
func Lookup(t Tree, path ...string) (any, bool) {
	var current any = t
	for _, key := range path {
		m, ok := AsTree(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
