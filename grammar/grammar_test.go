package grammar_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	b.AddTerminal("+")
	b.AddTerminal("id")
	b.AddNonTerminal("E")
	b.SetStart("E")
	b.AddProduction("E", []string{"E", "+", "E"}, "", nil)
	b.AddProduction("E", []string{"id"}, "", nil)

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func Test_Builder_Build_EPSAndEOFAreAlwaysFirstTwoTerminals(t *testing.T) {
	g := buildSimpleGrammar(t)

	epsID, ok := g.TermByName("$eps")
	require.True(t, ok)
	assert.Equal(t, g.EPS(), epsID)
	assert.Equal(t, 0, g.TermIndex(epsID))

	eofID, ok := g.TermByName("$")
	require.True(t, ok)
	assert.Equal(t, g.EOF(), eofID)
	assert.Equal(t, 1, g.TermIndex(eofID))
}

func Test_Builder_Build_NoStartSymbol_ReturnsError(t *testing.T) {
	b := grammar.NewBuilder()
	b.AddNonTerminal("E")
	_, err := b.Build()
	assert.Error(t, err)
}

func Test_Builder_Build_UndefinedSymbolInRHS_ReturnsError(t *testing.T) {
	b := grammar.NewBuilder()
	b.AddNonTerminal("E")
	b.SetStart("E")
	b.AddProduction("E", []string{"nonexistent"}, "", nil)
	_, err := b.Build()
	assert.Error(t, err)
}

func Test_Grammar_IsTerminal_IsNonTerminal(t *testing.T) {
	g := buildSimpleGrammar(t)

	eID, ok := g.NTByName("E")
	require.True(t, ok)
	assert.True(t, g.IsNonTerminal(eID))
	assert.False(t, g.IsTerminal(eID))

	plusID, ok := g.TermByName("+")
	require.True(t, ok)
	assert.True(t, g.IsTerminal(plusID))
	assert.False(t, g.IsNonTerminal(plusID))
}

func Test_Grammar_Augmented_InsertsStartProductionAtIndexZero(t *testing.T) {
	g := buildSimpleGrammar(t)
	ag := g.Augmented()

	require.True(t, ag.IsAugmented())
	startProd := ag.Production(0)
	assert.Equal(t, ag.StartSymbol(), startProd.LHS)
	assert.Equal(t, 0, startProd.Index)

	// every original production shifted up by one, same relative order
	original := g.Productions()
	for i, p := range original {
		shifted := ag.Production(i + 1)
		assert.Equal(t, p.LHS, shifted.LHS)
		assert.Equal(t, p.RHS, shifted.RHS)
		assert.Equal(t, i+1, shifted.Index)
	}
}

func Test_Grammar_Augmented_StartSymbolIsLastNonTerminal(t *testing.T) {
	g := buildSimpleGrammar(t)
	ag := g.Augmented()

	assert.Equal(t, ag.NTNum()-1, ag.StartSymbol())
}

func Test_Grammar_ProductionsFor_ReturnsDeclarationOrder(t *testing.T) {
	g := buildSimpleGrammar(t)
	eID, _ := g.NTByName("E")

	indices := g.ProductionsFor(eID)
	require.Len(t, indices, 2)
	assert.Equal(t, 0, indices[0])
	assert.Equal(t, 1, indices[1])
}

func Test_PrecedenceTable_Of_UnknownTerminal(t *testing.T) {
	var pt grammar.PrecedenceTable
	_, _, ok := pt.Of(42)
	assert.False(t, ok)
}

func Test_PrecedenceTable_Higher(t *testing.T) {
	assert.True(t, grammar.Higher(1, 0))
	assert.False(t, grammar.Higher(0, 1))
	assert.False(t, grammar.Higher(1, 1))
}
