// Package format implements per-property value grammars: matchable value
// categories, concrete ordered formats, and the flexible builder that
// expands occurrence ranges into format alternatives.
package format

import (
	"fmt"
	"strings"
)

// TypeKind enumerates the matchable value categories.
type TypeKind int

const (
	// KindLength matches numbers with a length unit, or unitless zero
	KindLength TypeKind = iota
	// KindNumber matches any unitless number
	KindNumber
	// KindInteger matches unitless numbers without a fractional part
	KindInteger
	// KindColor matches hex literals, named colors, and color functions
	KindColor
	// KindString matches string literals
	KindString
	// KindAsset matches url() and resource() calls
	KindAsset
	// KindAngle matches numbers with an angle unit
	KindAngle
	// KindTime matches numbers with a time unit
	KindTime
	// KindPropertyName matches identifiers with a legal property name shape
	KindPropertyName
	// KindKeyword matches one exact identifier literal
	KindKeyword
)

// Type is one matchable category. A Keyword type carries the literal it
// matches; all other kinds leave the literal empty.
type Type struct {
	Kind    TypeKind
	Literal string
}

// Convenience values for the literal-free categories.
var (
	Length       = Type{Kind: KindLength}
	Number       = Type{Kind: KindNumber}
	Integer      = Type{Kind: KindInteger}
	Color        = Type{Kind: KindColor}
	String       = Type{Kind: KindString}
	Asset        = Type{Kind: KindAsset}
	Angle        = Type{Kind: KindAngle}
	Time         = Type{Kind: KindTime}
	PropertyName = Type{Kind: KindPropertyName}
)

// Keyword returns the type matching exactly the given identifier literal.
func Keyword(literal string) Type {
	return Type{Kind: KindKeyword, Literal: literal}
}

func (t Type) String() string {
	switch t.Kind {
	case KindLength:
		return "<length>"
	case KindNumber:
		return "<number>"
	case KindInteger:
		return "<integer>"
	case KindColor:
		return "<color>"
	case KindString:
		return "<string>"
	case KindAsset:
		return "<asset>"
	case KindAngle:
		return "<angle>"
	case KindTime:
		return "<time>"
	case KindPropertyName:
		return "<property-name>"
	case KindKeyword:
		return t.Literal
	default:
		return fmt.Sprintf("<unknown:%d>", int(t.Kind))
	}
}

// Entry is the OR-set of types acceptable at one sequence position.
type Entry []Type

// NewEntry builds an entry from one or more alternative types.
func NewEntry(types ...Type) Entry {
	return Entry(types)
}

func (e Entry) String() string {
	parts := make([]string, len(e))
	for i, t := range e {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// Format is one concrete accepted shape of a property's value list: an
// ordered sequence of entries, one per expected value.
type Format struct {
	Entries []Entry
}

func (f Format) String() string {
	parts := make([]string, len(f.Entries))
	for i, e := range f.Entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Compare totally orders formats so lists of them can be sorted and
// deduplicated. Shorter formats sort first; equal-length formats order by
// their entry strings.
func Compare(a, b Format) int {
	if len(a.Entries) != len(b.Entries) {
		if len(a.Entries) < len(b.Entries) {
			return -1
		}
		return 1
	}
	for i := range a.Entries {
		as, bs := a.Entries[i].String(), b.Entries[i].String()
		if as != bs {
			if as < bs {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Spec is the OR-set of accepted formats for one property.
type Spec struct {
	Formats []Format
}

// NewSpec builds a spec from its format alternatives.
func NewSpec(formats ...Format) *Spec {
	return &Spec{Formats: formats}
}
