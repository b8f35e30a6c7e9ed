package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/value"
)

// parseValueNodes parses a declaration with the given value text and
// returns its value nodes together with the source bytes.
func parseValueNodes(t *testing.T, valueText string) ([]*sitter.Node, []byte) {
	t.Helper()
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	tree, err := parser.Parse(".x { p: " + valueText + "; }")
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	decls := css.Declarations(tree.RootNode(), tree.Source)
	require.Len(t, decls, 1, "Should find the wrapping declaration")
	require.NotEmpty(t, decls[0].ValueNodes)
	return decls[0].ValueNodes, tree.Source
}

// parseValue classifies a single-value declaration
func parseValue(t *testing.T, valueText string) (value.Value, error) {
	t.Helper()
	nodes, source := parseValueNodes(t, valueText)
	require.Len(t, nodes, 1)
	return value.FromNode(nodes[0], source, definitions.Default())
}

func TestFromNodeIdentifier(t *testing.T) {
	v, err := parseValue(t, "auto")
	require.NoError(t, err)
	assert.Equal(t, value.Identifier{Name: "auto"}, v)
}

func TestFromNodeNumbers(t *testing.T) {
	t.Run("bare integer", func(t *testing.T) {
		v, err := parseValue(t, "42")
		require.NoError(t, err)
		assert.Equal(t, value.Integer{Value: 42}, v)
	})

	t.Run("negative integer", func(t *testing.T) {
		v, err := parseValue(t, "-7")
		require.NoError(t, err)
		assert.Equal(t, value.Integer{Value: -7}, v)
	})

	t.Run("integer with unit", func(t *testing.T) {
		v, err := parseValue(t, "10px")
		require.NoError(t, err)
		assert.Equal(t, value.Numeric{Value: 10, Unit: "px", HasFractional: false}, v)
	})

	t.Run("float", func(t *testing.T) {
		v, err := parseValue(t, "1.5")
		require.NoError(t, err)
		assert.Equal(t, value.Numeric{Value: 1.5, Unit: "", HasFractional: true}, v)
	})

	t.Run("float with unit", func(t *testing.T) {
		v, err := parseValue(t, "2.5s")
		require.NoError(t, err)
		assert.Equal(t, value.Numeric{Value: 2.5, Unit: "s", HasFractional: true}, v)
	})

	t.Run("percentage", func(t *testing.T) {
		v, err := parseValue(t, "50%")
		require.NoError(t, err)
		assert.Equal(t, value.Numeric{Value: 50, Unit: "%", HasFractional: false}, v)
	})
}

func TestFromNodeHexColors(t *testing.T) {
	t.Run("three digits", func(t *testing.T) {
		v, err := parseValue(t, "#abc")
		require.NoError(t, err)
		assert.Equal(t, value.Color{Text: "#abc"}, v)
	})

	t.Run("six digits normalized to lowercase", func(t *testing.T) {
		v, err := parseValue(t, "#AABBCC")
		require.NoError(t, err)
		assert.Equal(t, value.Color{Text: "#aabbcc"}, v)
	})

	t.Run("eight digits", func(t *testing.T) {
		v, err := parseValue(t, "#aabbccdd")
		require.NoError(t, err)
		assert.Equal(t, value.Color{Text: "#aabbccdd"}, v)
	})

	t.Run("four digits rejected", func(t *testing.T) {
		_, err := parseValue(t, "#abcd")
		assert.ErrorIs(t, err, value.ErrMalformedColor)
	})

	t.Run("five digits rejected", func(t *testing.T) {
		_, err := parseValue(t, "#abcde")
		assert.ErrorIs(t, err, value.ErrMalformedColor)
	})
}

func TestNormalizeHex(t *testing.T) {
	t.Run("without leading hash", func(t *testing.T) {
		hex, err := value.NormalizeHex("AABBCC")
		require.NoError(t, err)
		assert.Equal(t, "#aabbcc", hex)
	})

	t.Run("non-hex digit rejected", func(t *testing.T) {
		_, err := value.NormalizeHex("#ggg")
		assert.ErrorIs(t, err, value.ErrMalformedColor)
	})

	t.Run("wrong lengths rejected", func(t *testing.T) {
		for _, text := range []string{"", "#", "#a", "#ab", "#abcd", "#abcde", "#abcdef0", "#abcdef012"} {
			_, err := value.NormalizeHex(text)
			assert.ErrorIs(t, err, value.ErrMalformedColor, "length of %q", text)
		}
	})
}

func TestFromNodeColorFunctions(t *testing.T) {
	t.Run("rgb keeps verbatim source text", func(t *testing.T) {
		v, err := parseValue(t, "rgb(255, 0, 0)")
		require.NoError(t, err)
		assert.Equal(t, value.Color{Text: "rgb(255, 0, 0)"}, v)
	})

	t.Run("hsla", func(t *testing.T) {
		v, err := parseValue(t, "hsla(120, 50%, 50%, 0.5)")
		require.NoError(t, err)
		c, ok := v.(value.Color)
		require.True(t, ok)
		assert.False(t, c.IsHex())
	})
}

func TestFromNodeStrings(t *testing.T) {
	v, err := parseValue(t, `"hello world"`)
	require.NoError(t, err)
	assert.Equal(t, value.String{Text: "hello world"}, v)
}

func TestFromNodeAssets(t *testing.T) {
	t.Run("url with string argument", func(t *testing.T) {
		v, err := parseValue(t, `url("img/icon.png")`)
		require.NoError(t, err)
		asset, ok := v.(value.Asset)
		require.True(t, ok)
		assert.Equal(t, `url("img/icon.png")`, asset.Text)
		assert.Equal(t, "img/icon.png", asset.Path)
	})

	t.Run("resource with string argument", func(t *testing.T) {
		v, err := parseValue(t, `resource("Fonts/RobotoMono")`)
		require.NoError(t, err)
		asset, ok := v.(value.Asset)
		require.True(t, ok)
		assert.Equal(t, "Fonts/RobotoMono", asset.Path)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := parseValue(t, `url("")`)
		assert.ErrorIs(t, err, value.ErrInvalidArgument)
	})

	t.Run("missing argument rejected", func(t *testing.T) {
		_, err := parseValue(t, `resource()`)
		assert.ErrorIs(t, err, value.ErrInvalidArgument)
	})

	t.Run("two arguments rejected", func(t *testing.T) {
		_, err := parseValue(t, `resource("a", "b")`)
		assert.ErrorIs(t, err, value.ErrInvalidArgument)
	})

	t.Run("nested function call rejected with distinct error", func(t *testing.T) {
		_, err := parseValue(t, `url(rgb(1, 2, 3))`)
		assert.ErrorIs(t, err, value.ErrNestedFunction)
		assert.NotErrorIs(t, err, value.ErrInvalidArgument)
	})
}

func TestFromNodeVariableReferences(t *testing.T) {
	t.Run("name is stored without prefix", func(t *testing.T) {
		v, err := parseValue(t, "var(--main-color)")
		require.NoError(t, err)
		assert.Equal(t, value.VariableReference{Name: "main-color"}, v)
	})

	t.Run("fallback argument is not retained", func(t *testing.T) {
		v, err := parseValue(t, "var(--main-color, red)")
		require.NoError(t, err)
		assert.Equal(t, value.VariableReference{Name: "main-color"}, v)
	})

	t.Run("missing prefix rejected", func(t *testing.T) {
		_, err := parseValue(t, "var(main-color)")
		assert.ErrorIs(t, err, value.ErrInvalidArgument)
	})
}

func TestFromNodeUnknownFunction(t *testing.T) {
	_, err := parseValue(t, "linear-gradient(#fff, #000)")
	assert.ErrorIs(t, err, value.ErrUnknownFunction)
}

func TestFromNodeMultipleValues(t *testing.T) {
	nodes, source := parseValueNodes(t, "1px 2 #aabbcc")
	require.Len(t, nodes, 3)

	defs := definitions.Default()
	values := make([]value.Value, 0, 3)
	for _, node := range nodes {
		v, err := value.FromNode(node, source, defs)
		require.NoError(t, err)
		values = append(values, v)
	}

	assert.Equal(t, value.Numeric{Value: 1, Unit: "px"}, values[0])
	assert.Equal(t, value.Integer{Value: 2}, values[1])
	assert.Equal(t, value.Color{Text: "#aabbcc"}, values[2])
}
