// Package diagnostics validates a parsed USS document: declaration values
// are checked against the property catalog, and var() usages are checked
// against the document's variable table.
package diagnostics

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/properties"
	"ussls.dev/ussls/internal/uss/value"
	"ussls.dev/ussls/internal/uss/variables"
)

// Severity mirrors LSP diagnostic severities
type Severity int

const (
	// SeverityOff disables a diagnostic entirely
	SeverityOff Severity = iota
	// SeverityError is a violation that makes the document invalid
	SeverityError
	// SeverityWarning is a likely problem that does not invalidate the document
	SeverityWarning
	// SeverityInformation is a noteworthy but harmless finding
	SeverityInformation
	// SeverityHint is a suggestion
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "off"
	}
}

// Diagnostic codes
const (
	CodeUnknownProperty    = "unknown-property"
	CodeInvalidValue       = "invalid-value"
	CodeMalformedValue     = "malformed-value"
	CodeUndefinedVariable  = "undefined-variable"
	CodeUnresolvedVariable = "unresolved-variable"
	CodeAmbiguousVariable  = "ambiguous-variable"
)

var defaultSeverities = map[string]Severity{
	CodeUnknownProperty:    SeverityWarning,
	CodeInvalidValue:       SeverityError,
	CodeMalformedValue:     SeverityError,
	CodeUndefinedVariable:  SeverityError,
	CodeUnresolvedVariable: SeverityWarning,
	CodeAmbiguousVariable:  SeverityWarning,
}

// Diagnostic is one finding in a document
type Diagnostic struct {
	Range    css.Range
	Severity Severity
	Code     string
	Message  string
}

// Analyzer runs the validation pass over parsed documents. Severities can
// be overridden per code before use; the zero overrides keep the defaults.
type Analyzer struct {
	defs       *definitions.Definitions
	severities map[string]Severity
}

// NewAnalyzer creates an analyzer sharing the given read-only vocabulary
func NewAnalyzer(defs *definitions.Definitions) *Analyzer {
	severities := make(map[string]Severity, len(defaultSeverities))
	for code, sev := range defaultSeverities {
		severities[code] = sev
	}
	return &Analyzer{defs: defs, severities: severities}
}

// SetSeverity overrides the severity of one diagnostic code.
// SeverityOff disables the code.
func (a *Analyzer) SetSeverity(code string, severity Severity) {
	a.severities[code] = severity
}

// Analyze validates every declaration in the tree. vars is the variable
// table produced by the document's resolver for the same tree snapshot.
func (a *Analyzer) Analyze(root *sitter.Node, source []byte, vars map[string]*variables.Variable) []Diagnostic {
	var out []Diagnostic

	for _, decl := range css.Declarations(root, source) {
		if strings.HasPrefix(decl.Property, "--") {
			out = a.checkCustomProperty(decl, vars, out)
			continue
		}
		out = a.checkDeclaration(decl, source, vars, out)
	}

	return out
}

// checkCustomProperty surfaces the variable table's terminal states on
// the declarations that caused them.
func (a *Analyzer) checkCustomProperty(decl css.Declaration, vars map[string]*variables.Variable, out []Diagnostic) []Diagnostic {
	name := strings.TrimPrefix(decl.Property, "--")
	variable, ok := vars[name]
	if !ok {
		return out
	}

	switch variable.Status {
	case variables.StatusAmbiguous:
		out = a.report(out, css.NodeRange(decl.Node), CodeAmbiguousVariable,
			fmt.Sprintf("'%s' is declared more than once; none of its definitions can be used", decl.Property))
	case variables.StatusError:
		out = a.report(out, css.NodeRange(decl.Node), CodeMalformedValue,
			fmt.Sprintf("invalid value for '%s': %v", decl.Property, variable.Err))
	}
	return out
}

func (a *Analyzer) checkDeclaration(decl css.Declaration, source []byte, vars map[string]*variables.Variable, out []Diagnostic) []Diagnostic {
	spec, known := properties.SpecFor(decl.Property)
	if !known {
		return a.report(out, css.NodeRange(decl.PropertyNode), CodeUnknownProperty,
			fmt.Sprintf("unknown property '%s'", decl.Property))
	}

	values := make([]value.Value, 0, len(decl.ValueNodes))
	for _, node := range decl.ValueNodes {
		v, err := value.FromNode(node, source, a.defs)
		if err != nil {
			return a.report(out, css.NodeRange(node), CodeMalformedValue,
				fmt.Sprintf("invalid value for '%s': %v", decl.Property, err))
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return out
	}

	for i, v := range values {
		if ref, ok := v.(value.VariableReference); ok {
			out = a.checkReference(decl, ref, css.NodeRange(decl.ValueNodes[i]), vars, out)
		}
	}

	// the global initial keyword resets any property
	if len(values) == 1 {
		if id, ok := values[0].(value.Identifier); ok && id.Name == "initial" {
			return out
		}
	}

	if !spec.Matches(values, a.defs) {
		out = a.report(out, valuesRange(decl), CodeInvalidValue,
			fmt.Sprintf("invalid value for '%s'", decl.Property))
	}

	return out
}

func (a *Analyzer) checkReference(decl css.Declaration, ref value.VariableReference, rng css.Range, vars map[string]*variables.Variable, out []Diagnostic) []Diagnostic {
	variable, ok := vars[ref.Name]
	if !ok {
		return a.report(out, rng, CodeUndefinedVariable,
			fmt.Sprintf("'--%s' is not defined", ref.Name))
	}

	switch variable.Status {
	case variables.StatusAmbiguous:
		out = a.report(out, rng, CodeAmbiguousVariable,
			fmt.Sprintf("'--%s' has more than one definition", ref.Name))
	case variables.StatusUnresolved, variables.StatusError:
		out = a.report(out, rng, CodeUnresolvedVariable,
			fmt.Sprintf("'--%s' cannot be resolved", ref.Name))
	}
	return out
}

func (a *Analyzer) report(out []Diagnostic, rng css.Range, code, message string) []Diagnostic {
	severity, ok := a.severities[code]
	if !ok || severity == SeverityOff {
		return out
	}
	return append(out, Diagnostic{
		Range:    rng,
		Severity: severity,
		Code:     code,
		Message:  message,
	})
}

// valuesRange covers the whole value list of a declaration
func valuesRange(decl css.Declaration) css.Range {
	if len(decl.ValueNodes) == 0 {
		return css.NodeRange(decl.Node)
	}
	first := css.NodeRange(decl.ValueNodes[0])
	last := css.NodeRange(decl.ValueNodes[len(decl.ValueNodes)-1])
	return css.Range{Start: first.Start, End: last.End}
}
