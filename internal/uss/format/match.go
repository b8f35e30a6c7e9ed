package format

import (
	"regexp"
	"strings"

	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/value"
)

// propertyNamePattern is the legal shape of a property name identifier
var propertyNamePattern = regexp.MustCompile(`^-?-?[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Matches reports whether the ordered value list satisfies this format.
//
// A value list consisting of a single variable reference matches any
// format regardless of entry count: the reference's eventual expansion is
// unknown, so it is given the benefit of the doubt. The same leniency
// applies per position to any variable reference value.
func (f Format) Matches(values []value.Value, defs *definitions.Definitions) bool {
	if len(values) == 1 {
		if _, ok := values[0].(value.VariableReference); ok {
			return true
		}
	}

	if len(values) != len(f.Entries) {
		return false
	}

	for i, entry := range f.Entries {
		if _, ok := values[i].(value.VariableReference); ok {
			continue
		}
		if !entry.Accepts(values[i], defs) {
			return false
		}
	}

	return true
}

// Matches reports whether any of the spec's formats matches the value
// list. No detail about why a format failed is produced.
func (s *Spec) Matches(values []value.Value, defs *definitions.Definitions) bool {
	for _, f := range s.Formats {
		if f.Matches(values, defs) {
			return true
		}
	}
	return false
}

// Accepts reports whether any of the entry's alternative types accepts
// the value.
func (e Entry) Accepts(v value.Value, defs *definitions.Definitions) bool {
	for _, t := range e {
		if t.Accepts(v, defs) {
			return true
		}
	}
	return false
}

// Accepts reports whether the value belongs to this category.
func (t Type) Accepts(v value.Value, defs *definitions.Definitions) bool {
	switch t.Kind {
	case KindLength:
		switch n := v.(type) {
		case value.Integer:
			// unitless lengths are only legal at zero
			return n.Value == 0
		case value.Numeric:
			if n.Unit == "" {
				return n.Value == 0
			}
			return defs.LengthUnits.Has(n.Unit)
		}
		return false

	case KindNumber:
		switch n := v.(type) {
		case value.Integer:
			return true
		case value.Numeric:
			return n.Unit == ""
		}
		return false

	case KindInteger:
		switch n := v.(type) {
		case value.Integer:
			return true
		case value.Numeric:
			return n.Unit == "" && !n.HasFractional
		}
		return false

	case KindColor:
		switch c := v.(type) {
		case value.Color:
			// hex length and function names were validated at construction
			return true
		case value.Identifier:
			return defs.NamedColors.Has(strings.ToLower(c.Name))
		}
		return false

	case KindString:
		_, ok := v.(value.String)
		return ok

	case KindAsset:
		_, ok := v.(value.Asset)
		return ok

	case KindAngle:
		n, ok := v.(value.Numeric)
		return ok && defs.AngleUnits.Has(n.Unit)

	case KindTime:
		n, ok := v.(value.Numeric)
		return ok && defs.TimeUnits.Has(n.Unit)

	case KindPropertyName:
		id, ok := v.(value.Identifier)
		return ok && propertyNamePattern.MatchString(id.Name)

	case KindKeyword:
		id, ok := v.(value.Identifier)
		return ok && id.Name == t.Literal

	default:
		return false
	}
}
