/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Position is a one-based line and column in a stylesheet.
type Position struct {
	Line   uint
	Column uint
}

var cssLanguage = tree_sitter.NewLanguage(tree_sitter_css.Language())

// LintCSS parses src as CSS and reports the position of the first syntax
// error. It returns ok when the stylesheet parses cleanly. Nothing is
// rewritten: custom CSS is still emitted verbatim.
func LintCSS(src string) (pos Position, ok bool) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(cssLanguage); err != nil {
		return Position{}, true
	}

	tree := parser.Parse([]byte(src), nil)
	if tree == nil {
		return Position{}, true
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return Position{}, true
	}
	node := firstError(root)
	if node == nil {
		node = root
	}
	start := node.StartPosition()
	return Position{Line: start.Row + 1, Column: start.Column + 1}, false
}

func firstError(node *tree_sitter.Node) *tree_sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}
