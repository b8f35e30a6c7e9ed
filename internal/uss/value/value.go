// Package value implements the USS value model: it classifies one syntax
// tree node into a typed Value. Classification is pure and side-effect
// free; unit validity and keyword validity are concerns of the matching
// engine, not of construction.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the typed model of one USS declaration value. Exactly one
// concrete variant is active per instance; consumers switch exhaustively
// on the concrete type.
type Value interface {
	fmt.Stringer

	// ussValue restricts the set of implementations to this package.
	ussValue()
}

// Identifier is a bare word: a keyword, a named color, or a property name.
// Whether the word is meaningful is a concern of callers.
type Identifier struct {
	Name string
}

// String is a quoted string literal with escapes decoded and the
// surrounding quotes stripped.
type String struct {
	Text string
}

// Integer is a whole-number literal without a unit suffix.
type Integer struct {
	Value int64
}

// Numeric is a number literal, possibly with a unit suffix. The unit text
// is stored verbatim; validity against a unit family (length, angle, time)
// is checked at match time.
type Numeric struct {
	Value         float64
	Unit          string // empty when no unit suffix is present
	HasFractional bool
}

// Color is either a normalized hex literal ("#rrggbb") or the verbatim
// source text of a color function call such as "rgb(255, 0, 0)".
type Color struct {
	Text string
}

// IsHex reports whether the color is a hex literal rather than a
// functional notation.
func (c Color) IsHex() bool {
	return strings.HasPrefix(c.Text, "#")
}

// Asset is a url() or resource() call. Text is the verbatim call source;
// Path is the decoded, non-empty asset path argument.
type Asset struct {
	Text string
	Path string
}

// VariableReference is a var() call. Name is the referenced custom
// property name without its leading "--" prefix. A fallback argument, if
// present in the source, is not retained.
type VariableReference struct {
	Name string
}

func (Identifier) ussValue()        {}
func (String) ussValue()            {}
func (Integer) ussValue()           {}
func (Numeric) ussValue()           {}
func (Color) ussValue()             {}
func (Asset) ussValue()             {}
func (VariableReference) ussValue() {}

func (v Identifier) String() string { return v.Name }

func (v String) String() string { return strconv.Quote(v.Text) }

func (v Integer) String() string { return strconv.FormatInt(v.Value, 10) }

func (v Numeric) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64) + v.Unit
}

func (v Color) String() string { return v.Text }

func (v Asset) String() string { return v.Text }

func (v VariableReference) String() string {
	return "var(--" + v.Name + ")"
}
