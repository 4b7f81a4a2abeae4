/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package merge_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"bennypowers.dev/czero/merge"
)

func TestMerge_RecursesIntoMappings(t *testing.T) {
	target := merge.Tree{
		"button": merge.Tree{"radius": "$radius-md", "height": "2.5rem"},
		"input":  merge.Tree{"radius": "$radius-sm"},
	}
	source := merge.Tree{
		"button": merge.Tree{"radius": "$radius-full", "gap": "0.5rem"},
	}

	got := merge.Merge(target, source)

	assert.Equal(t, merge.Tree{
		"button": merge.Tree{"radius": "$radius-full", "height": "2.5rem", "gap": "0.5rem"},
		"input":  merge.Tree{"radius": "$radius-sm"},
	}, got)
}

func TestMerge_ArraysReplace(t *testing.T) {
	got := merge.Merge(merge.Tree{"a": []any{1, 2}}, merge.Tree{"a": []any{3}})
	assert.Equal(t, merge.Tree{"a": []any{3}}, got)
}

func TestMerge_NullClears(t *testing.T) {
	target := merge.Tree{
		"button": merge.Tree{"radius": "$radius-md"},
		"label":  "x",
	}

	got := merge.Merge(target, merge.Tree{"button": nil, "label": nil})

	require.Contains(t, got, "button")
	assert.Nil(t, got["button"])
	require.Contains(t, got, "label")
	assert.Nil(t, got["label"])
}

func TestMerge_ScalarReplacesMapping(t *testing.T) {
	got := merge.Merge(merge.Tree{"a": merge.Tree{"b": 1}}, merge.Tree{"a": "flat"})
	assert.Equal(t, merge.Tree{"a": "flat"}, got)

	got = merge.Merge(merge.Tree{"a": "flat"}, merge.Tree{"a": merge.Tree{"b": 1}})
	assert.Equal(t, merge.Tree{"a": merge.Tree{"b": 1}}, got)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	target := merge.Tree{"a": merge.Tree{"b": "1", "c": "2"}}
	source := merge.Tree{"a": merge.Tree{"b": "9"}}
	targetCopy := merge.Clone(target)
	sourceCopy := merge.Clone(source)

	_ = merge.Merge(target, source)

	assert.Equal(t, targetCopy, target)
	assert.Equal(t, sourceCopy, source)
}

func TestMerge_SharesUntouchedSubtrees(t *testing.T) {
	untouched := merge.Tree{"x": "1"}
	target := merge.Tree{"keep": untouched, "change": merge.Tree{"y": "1"}}

	got := merge.Merge(target, merge.Tree{"change": merge.Tree{"y": "2"}})

	kept, ok := merge.AsTree(got["keep"])
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(untouched).Pointer(), reflect.ValueOf(kept).Pointer())
}

func TestMerge_NotCommutative(t *testing.T) {
	a := merge.Tree{"k": "a"}
	b := merge.Tree{"k": "b"}
	assert.Equal(t, "b", merge.Merge(a, b)["k"])
	assert.Equal(t, "a", merge.Merge(b, a)["k"])
}

func TestMergeAll_LaterPresetsWin(t *testing.T) {
	base := merge.Tree{"button": merge.Tree{"radius": "$radius-md", "gap": "0.5rem"}}
	rounded := merge.Tree{"button": merge.Tree{"radius": "$radius-full"}}
	square := merge.Tree{"button": merge.Tree{"radius": "0"}}

	got := merge.MergeAll(base, rounded, square)

	assert.Equal(t, merge.Tree{"button": merge.Tree{"radius": "0", "gap": "0.5rem"}}, got)
}

func TestMergeAll_NilTarget(t *testing.T) {
	got := merge.MergeAll(nil, merge.Tree{"a": "1"})
	assert.Equal(t, merge.Tree{"a": "1"}, got)
}

func TestLookup(t *testing.T) {
	tree := merge.Tree{"a": merge.Tree{"b": merge.Tree{"c": "deep"}}}

	v, ok := merge.Lookup(tree, "a", "b", "c")
	require.True(t, ok)
	assert.Equal(t, "deep", v)

	_, ok = merge.Lookup(tree, "a", "missing")
	assert.False(t, ok)

	_, ok = merge.Lookup(tree, "a", "b", "c", "d")
	assert.False(t, ok)
}

// treeGen draws trees whose keys have a fixed kind: a, b and c always hold
// leaves, m, n and o always hold mappings. Keeping kinds stable per key is what
// makes the fold laws below hold.
func treeGen(depth int) *rapid.Generator[merge.Tree] {
	return rapid.Custom(func(t *rapid.T) merge.Tree {
		tree := merge.Tree{}
		n := rapid.IntRange(0, 4).Draw(t, "size")
		for range n {
			if depth > 0 && rapid.Bool().Draw(t, "nested") {
				key := rapid.SampledFrom([]string{"m", "n", "o"}).Draw(t, "mapKey")
				tree[key] = treeGen(depth-1).Draw(t, "child")
				continue
			}
			key := rapid.SampledFrom([]string{"a", "b", "c"}).Draw(t, "leafKey")
			tree[key] = leafGen().Draw(t, "leaf")
		}
		return tree
	})
}

func leafGen() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.StringMatching(`\$?[a-z]{1,6}`), func(s string) any { return s }),
		rapid.Map(rapid.SliceOfN(rapid.IntRange(0, 9), 0, 3), func(xs []int) any {
			out := make([]any, len(xs))
			for i, x := range xs {
				out[i] = x
			}
			return out
		}),
	)
}

func TestMerge_EmptySourceIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tree := treeGen(3).Draw(rt, "tree")
		if got := merge.Merge(tree, merge.Tree{}); !reflect.DeepEqual(got, tree) {
			rt.Fatalf("Merge(T, {}) = %v, want %v", got, tree)
		}
	})
}

func TestMerge_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		target := treeGen(3).Draw(rt, "target")
		source := treeGen(3).Draw(rt, "source")
		once := merge.Merge(target, source)
		twice := merge.Merge(once, source)
		if !reflect.DeepEqual(once, twice) {
			rt.Fatalf("merge not idempotent:\nonce:  %v\ntwice: %v", once, twice)
		}
	})
}

func TestMerge_Associative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := treeGen(2).Draw(rt, "a")
		b := treeGen(2).Draw(rt, "b")
		c := treeGen(2).Draw(rt, "c")
		left := merge.Merge(merge.Merge(a, b), c)
		right := merge.Merge(a, merge.Merge(b, c))
		if !reflect.DeepEqual(left, right) {
			rt.Fatalf("merge not associative:\nleft:  %v\nright: %v", left, right)
		}
		if folded := merge.MergeAll(a, b, c); !reflect.DeepEqual(folded, left) {
			rt.Fatalf("MergeAll differs from left fold:\nfold: %v\nleft: %v", folded, left)
		}
	})
}

func TestMerge_SourceLeavesWin(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		target := treeGen(2).Draw(rt, "target")
		source := treeGen(2).Draw(rt, "source")
		got := merge.Merge(target, source)
		for key, value := range source {
			if _, isMap := merge.AsTree(value); isMap {
				continue
			}
			if !reflect.DeepEqual(got[key], value) {
				rt.Fatalf("key %q: got %v, want source value %v", key, got[key], value)
			}
		}
	})
}

func TestMerge_NullClearsAnyShape(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		target := treeGen(3).Draw(rt, "target")
		key := rapid.SampledFrom([]string{"a", "b", "c", "m", "n", "o", "z"}).Draw(rt, "key")
		got := merge.Merge(target, merge.Tree{key: nil})
		value, present := got[key]
		if !present || value != nil {
			rt.Fatalf("key %q: got %v (present=%v), want nil", key, value, present)
		}
	})
}

func TestClone_IsDeep(t *testing.T) {
	original := merge.Tree{"a": merge.Tree{"b": []any{"x"}}}
	cloned := merge.Clone(original)

	cloned["a"].(merge.Tree)["b"].([]any)[0] = "y"
	cloned["a"].(merge.Tree)["c"] = "new"

	assert.Equal(t, merge.Tree{"a": merge.Tree{"b": []any{"x"}}}, original)
}
