package value

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
)

// FromNode classifies one syntax tree value node into a typed Value.
// It is pure and never panics on malformed input; every failure is a
// typed error.
func FromNode(node *sitter.Node, source []byte, defs *definitions.Definitions) (Value, error) {
	if node == nil {
		return nil, NewNodeError("nil")
	}

	switch node.Kind() {
	case css.KindPlainValue:
		return Identifier{Name: css.NodeText(node, source)}, nil

	case css.KindIntegerValue:
		return integerFromNode(node, source)

	case css.KindFloatValue:
		return floatFromNode(node, source)

	case css.KindColorValue:
		return colorFromNode(node, source)

	case css.KindStringValue:
		text, err := DecodeString(css.NodeText(node, source))
		if err != nil {
			return nil, err
		}
		return String{Text: text}, nil

	case css.KindCallExpression:
		return callFromNode(node, source, defs)

	default:
		return nil, NewNodeError(node.Kind())
	}
}

// splitUnit separates a numeric literal's number text from its unit child,
// if one is present.
func splitUnit(node *sitter.Node, source []byte) (number, unit string) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == css.KindUnit {
			return string(source[node.StartByte():child.StartByte()]), css.NodeText(child, source)
		}
	}
	return css.NodeText(node, source), ""
}

func integerFromNode(node *sitter.Node, source []byte) (Value, error) {
	number, unit := splitUnit(node, source)

	if unit == "" {
		if n, err := strconv.ParseInt(number, 10, 64); err == nil {
			return Integer{Value: n}, nil
		}
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return nil, NewNodeError(node.Kind())
	}
	return Numeric{Value: f, Unit: unit, HasFractional: false}, nil
}

func floatFromNode(node *sitter.Node, source []byte) (Value, error) {
	number, unit := splitUnit(node, source)

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return nil, NewNodeError(node.Kind())
	}
	return Numeric{Value: f, Unit: unit, HasFractional: true}, nil
}

func colorFromNode(node *sitter.Node, source []byte) (Value, error) {
	hex, err := NormalizeHex(css.NodeText(node, source))
	if err != nil {
		return nil, err
	}
	return Color{Text: hex}, nil
}

// NormalizeHex validates a hex color literal and normalizes it to a
// leading "#" with lowercase digits. 3, 6 and 8 digit forms are accepted,
// with or without the leading "#"; any other length is an error.
func NormalizeHex(text string) (string, error) {
	digits := strings.TrimPrefix(text, "#")
	switch len(digits) {
	case 3, 6, 8:
	default:
		return "", NewColorError(text, fmt.Sprintf("expected 3, 6 or 8 hex digits, got %d", len(digits)))
	}
	for _, ch := range digits {
		if !isHexDigit(ch) {
			return "", NewColorError(text, "contains a non-hex digit")
		}
	}
	return "#" + strings.ToLower(digits), nil
}

func callFromNode(node *sitter.Node, source []byte, defs *definitions.Definitions) (Value, error) {
	var nameNode, argsNode *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case css.KindFunctionName:
			nameNode = child
		case css.KindArguments:
			argsNode = child
		}
	}

	if nameNode == nil {
		return nil, NewNodeError(node.Kind())
	}

	name := css.NodeText(nameNode, source)
	fn := strings.ToLower(name)
	switch {
	case defs.ColorFunctions.Has(fn):
		// argument shape is not checked here
		return Color{Text: css.NodeText(node, source)}, nil

	case defs.AssetFunctions.Has(fn):
		return assetFromCall(node, name, argsNode, source)

	case defs.VariableFunctions.Has(fn):
		return variableFromCall(name, argsNode, source)

	default:
		return nil, NewUnknownFunctionError(name)
	}
}

// callArguments collects the argument nodes of a call, skipping the
// parentheses and comma punctuation.
func callArguments(argsNode *sitter.Node) []*sitter.Node {
	if argsNode == nil {
		return nil
	}
	var args []*sitter.Node
	for i := uint(0); i < argsNode.ChildCount(); i++ {
		child := argsNode.Child(i)
		switch child.Kind() {
		case "(", ")", ",", css.KindComment:
		default:
			args = append(args, child)
		}
	}
	return args
}

func assetFromCall(node *sitter.Node, name string, argsNode *sitter.Node, source []byte) (Value, error) {
	args := callArguments(argsNode)

	for _, arg := range args {
		if arg.Kind() == css.KindCallExpression {
			return nil, NewNestedCallError(name)
		}
	}

	if len(args) != 1 {
		return nil, NewArgumentError(name, fmt.Sprintf("expected exactly one argument, got %d", len(args)))
	}

	arg := args[0]
	var path string
	switch arg.Kind() {
	case css.KindStringValue:
		decoded, err := DecodeString(css.NodeText(arg, source))
		if err != nil {
			return nil, err
		}
		path = decoded
	case css.KindPlainValue:
		path = css.NodeText(arg, source)
	default:
		return nil, NewArgumentError(name, "argument must be a string or identifier")
	}

	if path == "" {
		return nil, NewArgumentError(name, "asset path is empty")
	}

	return Asset{Text: css.NodeText(node, source), Path: path}, nil
}

func variableFromCall(name string, argsNode *sitter.Node, source []byte) (Value, error) {
	args := callArguments(argsNode)
	if len(args) == 0 {
		return nil, NewArgumentError(name, "missing custom property name")
	}

	text := css.NodeText(args[0], source)
	if !strings.HasPrefix(text, "--") {
		return nil, NewArgumentError(name, "custom property name must start with --")
	}

	// A fallback second argument, if present, is not retained.
	return VariableReference{Name: strings.TrimPrefix(text, "--")}, nil
}
