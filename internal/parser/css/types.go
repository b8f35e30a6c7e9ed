package css

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node kind names exposed by the tree-sitter CSS grammar, which is
// compatible with USS concrete syntax.
const (
	KindDeclaration    = "declaration"
	KindPropertyName   = "property_name"
	KindPlainValue     = "plain_value"
	KindIntegerValue   = "integer_value"
	KindFloatValue     = "float_value"
	KindColorValue     = "color_value"
	KindStringValue    = "string_value"
	KindCallExpression = "call_expression"
	KindFunctionName   = "function_name"
	KindArguments      = "arguments"
	KindUnit           = "unit"
	KindComment        = "comment"
	KindImportant      = "important"
	KindColon          = ":"
	KindSemicolon      = ";"
)

// Position represents a position in a text document
type Position struct {
	Line      uint32
	Character uint32
}

// Range represents a range in a text document
type Range struct {
	Start Position
	End   Position
}

// NodeRange returns the document range covered by a syntax node.
func NodeRange(node *sitter.Node) Range {
	return Range{
		Start: Position{
			Line:      uint32(node.StartPosition().Row),
			Character: uint32(node.StartPosition().Column),
		},
		End: Position{
			Line:      uint32(node.EndPosition().Row),
			Character: uint32(node.EndPosition().Column),
		},
	}
}

// NodeText returns the source text covered by a syntax node.
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// Declaration is one structurally valid property declaration found in a
// tree walk: a property name, the colon, and the value nodes between the
// colon and the trailing semicolon (when present).
type Declaration struct {
	// Property is the declared property name, including any -- prefix.
	Property string

	// PropertyNode is the property_name node.
	PropertyNode *sitter.Node

	// ValueNodes are the value nodes in declaration order, excluding
	// punctuation, comments and !important.
	ValueNodes []*sitter.Node

	// Node is the whole declaration node.
	Node *sitter.Node

	// Important reports whether the declaration carries !important.
	Important bool
}
