package css

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing USS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable USS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// Tree is a parsed syntax tree snapshot together with its source bytes.
// Callers must Close it when done.
type Tree struct {
	tree   *sitter.Tree
	Source []byte
}

// Parse parses USS source into a syntax tree snapshot
func (p *Parser) Parse(source string) (*Tree, error) {
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse USS")
	}
	return &Tree{tree: tree, Source: src}, nil
}

// RootNode returns the root of the syntax tree
func (t *Tree) RootNode() *sitter.Node {
	return t.tree.RootNode()
}

// Close releases the underlying tree-sitter tree
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Declarations walks the tree depth-first and collects every structurally
// valid declaration: at least three children, a property name first, the
// colon second, and the trailing semicolon (when present) excluded from
// the value nodes.
func Declarations(root *sitter.Node, source []byte) []Declaration {
	var out []Declaration
	walkDeclarations(root, source, &out)
	return out
}

func walkDeclarations(node *sitter.Node, source []byte, out *[]Declaration) {
	if node == nil {
		return
	}

	if node.Kind() == KindDeclaration {
		if decl, ok := parseDeclaration(node, source); ok {
			*out = append(*out, decl)
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkDeclarations(node.Child(i), source, out)
	}
}

func parseDeclaration(node *sitter.Node, source []byte) (Declaration, bool) {
	if node.ChildCount() < 3 {
		return Declaration{}, false
	}

	propertyNode := node.Child(0)
	if propertyNode == nil || propertyNode.Kind() != KindPropertyName {
		return Declaration{}, false
	}
	if colon := node.Child(1); colon == nil || colon.Kind() != KindColon {
		return Declaration{}, false
	}

	decl := Declaration{
		Property:     NodeText(propertyNode, source),
		PropertyNode: propertyNode,
		Node:         node,
	}

	for i := uint(2); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case KindSemicolon, KindComment, ",", "!":
			// not part of the value
		case KindImportant:
			decl.Important = true
		default:
			decl.ValueNodes = append(decl.ValueNodes, child)
		}
	}

	return decl, true
}
