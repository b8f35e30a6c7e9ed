// Package variables extracts custom property declarations from a parsed
// USS document and resolves var() references between them through a
// dependency walk with cycle and ambiguity detection.
package variables

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ussls.dev/ussls/internal/collections"
	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/value"
)

// Status describes the resolution outcome for one custom property name.
type Status int

const (
	// StatusUnresolved marks a variable whose values are not yet, or could
	// not be, concretely resolved (cyclic, or depending on a failed name)
	StatusUnresolved Status = iota
	// StatusResolved marks a variable with a concrete spliced value list
	StatusResolved
	// StatusAmbiguous marks a name declared more than once in the document
	StatusAmbiguous
	// StatusError marks a declaration whose raw values failed to parse
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUnresolved:
		return "unresolved"
	case StatusResolved:
		return "resolved"
	case StatusAmbiguous:
		return "ambiguous"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Variable is one custom property definition discovered in a document.
type Variable struct {
	// Name is the custom property name without its leading -- prefix.
	Name string

	// Status is the resolution outcome.
	Status Status

	// Values is the concrete, spliced value list; populated only when
	// Status is StatusResolved.
	Values []value.Value

	// Range covers the declaration that defined the variable.
	Range css.Range

	// raw holds the parsed but unspliced declaration values.
	raw []value.Value

	// Err records the parse failure behind StatusError.
	Err error
}

// Resolver extracts and resolves the custom properties of one document.
// The table is rebuilt from scratch on every ExtractAndResolve call and
// never patched incrementally. One resolver belongs to one document;
// concurrent use of a single instance is not supported.
type Resolver struct {
	defs      *definitions.Definitions
	variables map[string]*Variable
}

// NewResolver creates a resolver sharing the given read-only vocabulary.
func NewResolver(defs *definitions.Definitions) *Resolver {
	return &Resolver{
		defs:      defs,
		variables: map[string]*Variable{},
	}
}

// ExtractAndResolve rebuilds the variable table for the given tree: one
// depth-first walk collects every custom property declaration, then one
// resolution walk settles each name's status.
func (r *Resolver) ExtractAndResolve(root *sitter.Node, source []byte) {
	r.variables = map[string]*Variable{}
	r.extract(root, source)
	r.resolveAll()
}

// Variables returns the name to status table built by the last
// ExtractAndResolve call. Names are stored without the -- prefix.
func (r *Resolver) Variables() map[string]*Variable {
	return r.variables
}

// Lookup finds a variable by name, with or without the -- prefix.
func (r *Resolver) Lookup(name string) (*Variable, bool) {
	v, ok := r.variables[strings.TrimPrefix(name, "--")]
	return v, ok
}

func (r *Resolver) extract(root *sitter.Node, source []byte) {
	for _, decl := range css.Declarations(root, source) {
		if !strings.HasPrefix(decl.Property, "--") {
			continue
		}
		name := strings.TrimPrefix(decl.Property, "--")

		if existing, ok := r.variables[name]; ok {
			// Duplicate definitions are unknowable regardless of selector
			// scope; cascade is not modeled. Both collapse to ambiguous and
			// the new values are discarded.
			existing.Status = StatusAmbiguous
			existing.Values = nil
			existing.raw = nil
			existing.Err = nil
			continue
		}

		variable := &Variable{
			Name:   name,
			Status: StatusUnresolved,
			Range:  css.NodeRange(decl.Node),
		}
		r.variables[name] = variable

		for _, node := range decl.ValueNodes {
			v, err := value.FromNode(node, source, r.defs)
			if err != nil {
				variable.Status = StatusError
				variable.Err = err
				variable.raw = nil
				break
			}
			variable.raw = append(variable.raw, v)
		}
	}
}

func (r *Resolver) resolveAll() {
	visiting := collections.NewSet[string]()
	for name := range r.variables {
		r.resolve(name, visiting)
	}
}

// resolve settles one name and reports whether it reached StatusResolved.
// Cycles are detected with the explicit visiting set rather than a depth
// limit, so cycles of any length unwind deterministically.
func (r *Resolver) resolve(name string, visiting collections.Set[string]) bool {
	variable, ok := r.variables[name]
	if !ok {
		// reference to an undefined name
		return false
	}

	switch variable.Status {
	case StatusAmbiguous, StatusError:
		// terminal
		return false
	case StatusResolved:
		return true
	}

	if visiting.Has(name) {
		// cycle: the name stays unresolved and the walk unwinds
		return false
	}
	visiting.Add(name)
	defer visiting.Delete(name)

	values := make([]value.Value, 0, len(variable.raw))
	for _, raw := range variable.raw {
		ref, isRef := raw.(value.VariableReference)
		if !isRef {
			values = append(values, raw)
			continue
		}
		if !r.resolve(ref.Name, visiting) {
			return false
		}
		// splice the referenced list in place of the reference
		values = append(values, r.variables[ref.Name].Values...)
	}

	variable.Status = StatusResolved
	variable.Values = values
	return true
}
