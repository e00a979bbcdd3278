package ll1_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/ll1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build_EmptyProduction_NoConflict(t *testing.T) {
	// A -> B c ; B -> b | eps  (spec's own worked example: FIRST(B) =
	// {b, EPS}, FOLLOW(B) = {c}, row B maps b -> B->b, c -> B->eps).
	b := grammar.NewBuilder()
	b.AddTerminal("b")
	b.AddTerminal("c")
	b.AddNonTerminal("A")
	b.AddNonTerminal("B")
	b.SetStart("A")

	b.AddProduction("A", []string{"B", "c"}, "", nil)
	b.AddProduction("B", []string{"b"}, "", nil)
	b.AddProduction("B", nil, "", nil)

	g, err := b.Build()
	require.NoError(t, err)

	var reports []string
	table := ll1.Build(g, func(msg string) { reports = append(reports, msg) })

	assert.Empty(t, reports)
	assert.True(t, table.IsLL1())

	bID, _ := g.NTByName("B")
	bTermID, _ := g.TermByName("b")
	cTermID, _ := g.TermByName("c")

	assert.Equal(t, []int{1}, table.ProductionsFor(bID, bTermID))
	assert.Equal(t, []int{2}, table.ProductionsFor(bID, cTermID))
}

func Test_Build_AmbiguousGrammar_ReportsConflictAndKeepsLowestIndex(t *testing.T) {
	// S -> A | id ; A -> id  — both S productions start with `id`
	// (S -> A through A -> id), forcing a PREDICT collision.
	b := grammar.NewBuilder()
	b.AddTerminal("id")
	b.AddNonTerminal("S")
	b.AddNonTerminal("A")
	b.SetStart("S")

	b.AddProduction("S", []string{"A"}, "", nil)
	b.AddProduction("S", []string{"id"}, "", nil)
	b.AddProduction("A", []string{"id"}, "", nil)

	g, err := b.Build()
	require.NoError(t, err)

	var reports []string
	table := ll1.Build(g, func(msg string) { reports = append(reports, msg) })

	assert.False(t, table.IsLL1())
	assert.NotEmpty(t, reports)

	sID, _ := g.NTByName("S")
	idTermID, _ := g.TermByName("id")
	prods := table.ProductionsFor(sID, idTermID)
	require.Len(t, prods, 2)
	assert.Equal(t, 0, prods[0], "lowest production index must be kept in position 0")
}

func Test_Build_NilSink_DoesNotPanic(t *testing.T) {
	b := grammar.NewBuilder()
	b.AddTerminal("id")
	b.AddNonTerminal("S")
	b.SetStart("S")
	b.AddProduction("S", []string{"id"}, "", nil)
	g, err := b.Build()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		ll1.Build(g, nil)
	})
}
