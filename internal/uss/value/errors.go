package value

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrUnsupportedNode indicates a node kind the value model cannot classify
	ErrUnsupportedNode = errors.New("unsupported value node")

	// ErrMalformedString indicates a string literal that cannot be decoded
	ErrMalformedString = errors.New("malformed string literal")

	// ErrInvalidEscape indicates an invalid escape sequence inside a string
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrMalformedColor indicates a hex color literal of invalid length or content
	ErrMalformedColor = errors.New("malformed hex color literal")

	// ErrInvalidArgument indicates a function call with the wrong argument shape
	ErrInvalidArgument = errors.New("invalid function argument")

	// ErrNestedFunction indicates a function call nested inside another call,
	// which the language does not support
	ErrNestedFunction = errors.New("nested function call")

	// ErrUnknownFunction indicates a function name the language does not define
	ErrUnknownFunction = errors.New("unknown function")
)

// LiteralError reports a malformed string, escape, or hex color literal
type LiteralError struct {
	Text   string
	Reason string
	kind   error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.kind.Error(), e.Text, e.Reason)
}

func (e *LiteralError) Unwrap() error {
	return e.kind
}

// NewStringError creates an error for a string literal that cannot be decoded
func NewStringError(text, reason string) error {
	return &LiteralError{Text: text, Reason: reason, kind: ErrMalformedString}
}

// NewEscapeError creates an error for an invalid escape sequence
func NewEscapeError(text, reason string) error {
	return &LiteralError{Text: text, Reason: reason, kind: ErrInvalidEscape}
}

// NewColorError creates an error for a malformed hex color literal
func NewColorError(text, reason string) error {
	return &LiteralError{Text: text, Reason: reason, kind: ErrMalformedColor}
}

// FunctionError reports a function call the value model rejects
type FunctionError struct {
	Function string
	Reason   string
	kind     error
}

func (e *FunctionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s()", e.kind.Error(), e.Function)
	}
	return fmt.Sprintf("%s in %s(): %s", e.kind.Error(), e.Function, e.Reason)
}

func (e *FunctionError) Unwrap() error {
	return e.kind
}

// NewUnknownFunctionError creates an error for an unrecognized function name
func NewUnknownFunctionError(name string) error {
	return &FunctionError{Function: name, kind: ErrUnknownFunction}
}

// NewArgumentError creates an error for a wrong function argument shape
func NewArgumentError(name, reason string) error {
	return &FunctionError{Function: name, Reason: reason, kind: ErrInvalidArgument}
}

// NewNestedCallError creates an error for a call nested inside a function argument
func NewNestedCallError(name string) error {
	return &FunctionError{Function: name, Reason: "nested function calls are not supported", kind: ErrNestedFunction}
}

// NodeError reports a node kind the value model cannot classify
type NodeError struct {
	Kind string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("unsupported value node kind %q", e.Kind)
}

func (e *NodeError) Unwrap() error {
	return ErrUnsupportedNode
}

// NewNodeError creates an error for an unclassifiable node kind
func NewNodeError(kind string) error {
	return &NodeError{Kind: kind}
}
