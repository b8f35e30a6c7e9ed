package variables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ussls.dev/ussls/internal/parser/css"
	"ussls.dev/ussls/internal/uss/definitions"
	"ussls.dev/ussls/internal/uss/value"
	"ussls.dev/ussls/internal/uss/variables"
)

// resolve parses the source and runs one full extract-and-resolve pass.
func resolve(t *testing.T, source string) *variables.Resolver {
	t.Helper()
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	tree, err := parser.Parse(source)
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	resolver := variables.NewResolver(definitions.Default())
	resolver.ExtractAndResolve(tree.RootNode(), tree.Source)
	return resolver
}

func TestResolveSimpleVariable(t *testing.T) {
	resolver := resolve(t, `:root { --color-primary: #0000ff; }`)

	v, ok := resolver.Lookup("color-primary")
	require.True(t, ok)
	assert.Equal(t, variables.StatusResolved, v.Status)
	require.Len(t, v.Values, 1)
	assert.Equal(t, value.Color{Text: "#0000ff"}, v.Values[0])
}

func TestLookupAcceptsPrefixedName(t *testing.T) {
	resolver := resolve(t, `:root { --a: 1px; }`)

	v, ok := resolver.Lookup("--a")
	require.True(t, ok)
	assert.Equal(t, variables.StatusResolved, v.Status)
}

func TestResolveReferenceChain(t *testing.T) {
	resolver := resolve(t, `:root {
  --base: 8px;
  --double: var(--base);
}`)

	v, ok := resolver.Lookup("double")
	require.True(t, ok)
	require.Equal(t, variables.StatusResolved, v.Status)
	require.Len(t, v.Values, 1)
	assert.Equal(t, value.Numeric{Value: 8, Unit: "px"}, v.Values[0])
}

func TestResolveSplicesMultiValueLists(t *testing.T) {
	resolver := resolve(t, `:root {
  --something: 1px 2 #aabbcc;
  --other: var(--something) 1px;
}`)

	v, ok := resolver.Lookup("other")
	require.True(t, ok)
	require.Equal(t, variables.StatusResolved, v.Status)

	// the referenced three-value list splices in place of the reference
	require.Len(t, v.Values, 4)
	assert.Equal(t, value.Numeric{Value: 1, Unit: "px"}, v.Values[0])
	assert.Equal(t, value.Integer{Value: 2}, v.Values[1])
	assert.Equal(t, value.Color{Text: "#aabbcc"}, v.Values[2])
	assert.Equal(t, value.Numeric{Value: 1, Unit: "px"}, v.Values[3])
}

func TestResolveCycle(t *testing.T) {
	resolver := resolve(t, `:root { --a: var(--b); } :root { --b: var(--a); }`)

	a, ok := resolver.Lookup("a")
	require.True(t, ok)
	b, ok := resolver.Lookup("b")
	require.True(t, ok)

	assert.Equal(t, variables.StatusUnresolved, a.Status, "cycle members stay unresolved")
	assert.Equal(t, variables.StatusUnresolved, b.Status)
	assert.Nil(t, a.Values)
	assert.Nil(t, b.Values)
}

func TestResolveSelfCycle(t *testing.T) {
	resolver := resolve(t, `:root { --a: var(--a); }`)

	a, ok := resolver.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, variables.StatusUnresolved, a.Status)
}

func TestResolveLongCycle(t *testing.T) {
	resolver := resolve(t, `:root {
  --a: var(--b);
  --b: var(--c);
  --c: var(--a);
}`)

	for _, name := range []string{"a", "b", "c"} {
		v, ok := resolver.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, variables.StatusUnresolved, v.Status, name)
	}
}

func TestResolveUndefinedDependency(t *testing.T) {
	resolver := resolve(t, `:root { --a: var(--missing); }`)

	a, ok := resolver.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, variables.StatusUnresolved, a.Status,
		"depending on an undefined name leaves the dependent unresolved")

	_, ok = resolver.Lookup("missing")
	assert.False(t, ok, "undefined names do not enter the table")
}

func TestResolveDuplicateIsAmbiguous(t *testing.T) {
	t.Run("same scope", func(t *testing.T) {
		resolver := resolve(t, `:root { --x: 1px; --x: 2px; }`)

		x, ok := resolver.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, variables.StatusAmbiguous, x.Status)
		assert.Nil(t, x.Values, "all duplicate values are discarded")
	})

	t.Run("different selector scopes", func(t *testing.T) {
		resolver := resolve(t, `.light { --x: white; } .dark { --x: black; }`)

		x, ok := resolver.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, variables.StatusAmbiguous, x.Status,
			"cascade is not modeled; duplicates anywhere are ambiguous")
	})

	t.Run("dependents of an ambiguous name stay unresolved", func(t *testing.T) {
		resolver := resolve(t, `:root { --x: 1px; --x: 2px; --y: var(--x); }`)

		y, ok := resolver.Lookup("y")
		require.True(t, ok)
		assert.Equal(t, variables.StatusUnresolved, y.Status)
	})
}

func TestResolveMalformedValueIsError(t *testing.T) {
	resolver := resolve(t, `:root { --bad: #abcd; }`)

	v, ok := resolver.Lookup("bad")
	require.True(t, ok)
	assert.Equal(t, variables.StatusError, v.Status)
	assert.ErrorIs(t, v.Err, value.ErrMalformedColor)
}

func TestResolveErrorIsTerminal(t *testing.T) {
	resolver := resolve(t, `:root {
  --bad: unknownfn(1);
  --uses-bad: var(--bad);
}`)

	bad, ok := resolver.Lookup("bad")
	require.True(t, ok)
	assert.Equal(t, variables.StatusError, bad.Status)

	user, ok := resolver.Lookup("uses-bad")
	require.True(t, ok)
	assert.Equal(t, variables.StatusUnresolved, user.Status)
}

func TestExtractAndResolveRebuildsFromScratch(t *testing.T) {
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	resolver := variables.NewResolver(definitions.Default())

	first, err := parser.Parse(`:root { --a: 1px; --gone: red; }`)
	require.NoError(t, err)
	resolver.ExtractAndResolve(first.RootNode(), first.Source)
	first.Close()

	_, ok := resolver.Lookup("gone")
	require.True(t, ok)

	second, err := parser.Parse(`:root { --a: 2px; }`)
	require.NoError(t, err)
	defer second.Close()
	resolver.ExtractAndResolve(second.RootNode(), second.Source)

	_, ok = resolver.Lookup("gone")
	assert.False(t, ok, "the table is rebuilt wholesale, never patched")

	a, ok := resolver.Lookup("a")
	require.True(t, ok)
	require.Equal(t, variables.StatusResolved, a.Status)
	assert.Equal(t, value.Numeric{Value: 2, Unit: "px"}, a.Values[0])
}

func TestVariablesTableNames(t *testing.T) {
	resolver := resolve(t, `:root { --one: 1; --two: 2; }`)

	vars := resolver.Variables()
	assert.Len(t, vars, 2)
	assert.Contains(t, vars, "one")
	assert.Contains(t, vars, "two")
}
