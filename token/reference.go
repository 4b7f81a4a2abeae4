/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedToken indicates a value starts with the sigil but is not a valid reference.
var ErrMalformedToken = errors.New("malformed token reference")

// namePattern matches a dotted or hyphenated token name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// Reference is a parsed token reference.
type Reference struct {
	// Raw is the original configuration string, including the sigil.
	Raw string

	// Name is the token name with dots hyphenated (e.g., "color-primary").
	Name string

	// Category is the first segment of Name.
	Category Category

	// Opacity is the trimmed expression after the slash, if any.
	Opacity string
}

// IsReference reports whether value uses the token sigil.
func IsReference(value string) bool {
	return strings.HasPrefix(value, Sigil)
}

// Parse parses a token reference.
// It returns ErrMalformedToken for a bare sigil, an invalid name,
// more than one slash, or an empty opacity expression.
func Parse(value string) (Reference, error) {
	if !IsReference(value) {
		return Reference{}, fmt.Errorf("%w: %q does not start with %q", ErrMalformedToken, value, Sigil)
	}

	body := strings.TrimRight(value[len(Sigil):], " \t")
	name, opacity, hasOpacity := strings.Cut(body, "/")
	name = strings.TrimRight(name, " \t")

	if !namePattern.MatchString(name) {
		return Reference{}, fmt.Errorf("%w: invalid name in %q", ErrMalformedToken, value)
	}

	if hasOpacity {
		opacity = strings.TrimSpace(opacity)
		if opacity == "" {
			return Reference{}, fmt.Errorf("%w: empty opacity in %q", ErrMalformedToken, value)
		}
		if strings.Contains(opacity, "/") {
			return Reference{}, fmt.Errorf("%w: more than one opacity separator in %q", ErrMalformedToken, value)
		}
	}

	name = strings.ReplaceAll(name, ".", "-")
	category, _, _ := strings.Cut(name, "-")

	return Reference{
		Raw:      value,
		Name:     name,
		Category: Category(category),
		Opacity:  opacity,
	}, nil
}

// Key returns the name within the category, e.g. "primary-foreground" for
// "$color-primary-foreground". For font references it is the font suffix.
func (r Reference) Key() string {
	key, _ := strings.CutPrefix(r.Name, string(r.Category)+"-")
	if key == r.Name {
		return ""
	}
	return key
}

// Variable returns the custom property this reference points at.
func (r Reference) Variable() string {
	return VariableName(r.Name)
}

// IsColor reports whether the reference needs an hsl() wrapper.
func (r Reference) IsColor() bool {
	return r.Category == CategoryColor
}

// CSS returns the CSS value expression for the reference.
func (r Reference) CSS() string {
	v := "var(" + r.Variable() + ")"
	switch {
	case r.IsColor() && r.Opacity != "":
		return "hsl(" + v + " / " + r.Opacity + ")"
	case r.IsColor():
		return "hsl(" + v + ")"
	case r.Opacity != "":
		return v + " / " + r.Opacity
	default:
		return v
	}
}

// Resolve turns a configuration value into a CSS value expression.
//
// Empty input yields "". Literals pass through unchanged. Malformed references
// also pass through unchanged so the author's text is visible in the output;
// use Parse to detect them.
func Resolve(value string) string {
	if !IsReference(value) {
		return value
	}
	ref, err := Parse(value)
	if err != nil {
		return value
	}
	return ref.CSS()
}
