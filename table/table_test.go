package table_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lalr"
	"github.com/dekarrin/ictiobus/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArithGrammar(t *testing.T) *grammar.Grammar {
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

func buildLRTable(t *testing.T) *table.LRTable {
	t.Helper()
	g := buildArithGrammar(t)
	ag := g.Augmented()
	lr1 := automaton.BuildCanonicalCollection(ag)
	reduced := lalr.Reduce(lr1)
	return table.BuildActions(reduced)
}

func Test_BuildActions_AcceptOnlyOnAugmentedStartWithEOF(t *testing.T) {
	lrt := buildLRTable(t)
	g := lrt.FSM.Grammar

	foundAccept := false
	for _, row := range lrt.Actions {
		for localTerm, candidates := range row {
			for _, a := range candidates {
				if a.Type == table.Accept {
					foundAccept = true
					assert.Equal(t, g.TermIndex(g.EOF()), localTerm, "accept must be on the EOF column")
				}
			}
		}
	}
	assert.True(t, foundAccept, "an accepting state must exist for a non-empty grammar")
}

func Test_BuildActions_EveryRowSizedToTermNum(t *testing.T) {
	lrt := buildLRTable(t)
	g := lrt.FSM.Grammar

	for _, row := range lrt.Actions {
		assert.Len(t, row, g.TermNum())
	}
}

func Test_Action_String(t *testing.T) {
	assert.Equal(t, "shift 3", table.Action{Type: table.Shift, Target: 3}.String())
	assert.Equal(t, "reduce 1", table.Action{Type: table.Reduce, Prod: 1}.String())
	assert.Equal(t, "accept", table.Action{Type: table.Accept}.String())
	assert.Equal(t, "error", table.Action{Type: table.Err}.String())
}

func Test_SparseMatrix_UnsetCellsReadAsNull(t *testing.T) {
	m := table.NewSparseMatrix(5, 5, -1)
	assert.Equal(t, int32(-1), m.Value(2, 2))

	m.Set(2, 2, 7)
	assert.Equal(t, int32(7), m.Value(2, 2))
	assert.Equal(t, 1, m.Count())

	rows, cols := m.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
}

func Test_MinUnsignedWidth(t *testing.T) {
	assert.Equal(t, 8, table.MinUnsignedWidth(200))
	assert.Equal(t, 16, table.MinUnsignedWidth(1000))
	assert.Equal(t, 32, table.MinUnsignedWidth(1 << 20))
}
