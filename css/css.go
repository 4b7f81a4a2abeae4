/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css models generated stylesheets as rules and declarations,
// serialized once into text.
package css

import "strings"

// Decl is a single property declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule is a selector (or at-rule prelude) with declarations and nested rules.
// Nested rules are used for @media and @keyframes blocks.
type Rule struct {
	Selector string
	Decls    []Decl
	Rules    []*Rule
}

// NewRule creates an empty rule for selector.
func NewRule(selector string) *Rule {
	return &Rule{Selector: selector}
}

// Set appends a declaration. Empty values are ignored so callers can pass
// optional configuration straight through.
func (r *Rule) Set(property, value string) *Rule {
	if value == "" {
		return r
	}
	r.Decls = append(r.Decls, Decl{Property: property, Value: value})
	return r
}

// Nest appends a child rule and returns it.
func (r *Rule) Nest(selector string) *Rule {
	child := NewRule(selector)
	r.Rules = append(r.Rules, child)
	return child
}

// Empty reports whether the rule would serialize to nothing.
func (r *Rule) Empty() bool {
	if r == nil {
		return true
	}
	if len(r.Decls) > 0 {
		return false
	}
	for _, child := range r.Rules {
		if !child.Empty() {
			return false
		}
	}
	return true
}

// Value returns the last value declared for property.
func (r *Rule) Value(property string) (string, bool) {
	for i := len(r.Decls) - 1; i >= 0; i-- {
		if r.Decls[i].Property == property {
			return r.Decls[i].Value, true
		}
	}
	return "", false
}

func (r *Rule) write(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString(r.Selector)
	sb.WriteString(" {\n")
	for _, d := range r.Decls {
		sb.WriteString(indent)
		sb.WriteString("  ")
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	for _, child := range r.Rules {
		if child.Empty() {
			continue
		}
		child.write(sb, indent+"  ")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

// String serializes the rule.
func (r *Rule) String() string {
	if r.Empty() {
		return ""
	}
	var sb strings.Builder
	r.write(&sb, "")
	return sb.String()
}

// Sheet is an ordered list of rules followed by verbatim CSS.
type Sheet struct {
	Rules []*Rule

	// Raw is appended after all rules without modification.
	// It is trusted, developer-supplied text and is not sanitized.
	Raw string
}

// Add appends rules to the sheet.
func (s *Sheet) Add(rules ...*Rule) {
	s.Rules = append(s.Rules, rules...)
}

// Rule appends a new rule for selector and returns it.
func (s *Sheet) Rule(selector string) *Rule {
	r := NewRule(selector)
	s.Add(r)
	return r
}

// Find returns the first rule with the given selector.
func (s *Sheet) Find(selector string) *Rule {
	for _, r := range s.Rules {
		if r.Selector == selector {
			return r
		}
	}
	return nil
}

// String serializes the sheet. Empty rules are dropped and rules are
// separated by a blank line.
func (s *Sheet) String() string {
	var blocks []string
	for _, r := range s.Rules {
		if r.Empty() {
			continue
		}
		blocks = append(blocks, r.String())
	}
	out := strings.Join(blocks, "\n")
	if raw := strings.TrimSpace(s.Raw); raw != "" {
		if out != "" {
			out += "\n"
		}
		out += s.Raw
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
	}
	return out
}

// Var returns a var() expression for a custom property.
func Var(name string) string {
	return "var(" + name + ")"
}

// VarOr returns a var() expression with a fallback value.
func VarOr(name, fallback string) string {
	return "var(" + name + ", " + fallback + ")"
}
