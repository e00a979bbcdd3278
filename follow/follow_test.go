package follow_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/first"
	"github.com/dekarrin/ictiobus/follow"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	b.AddTerminal("+")
	b.AddTerminal("*")
	b.AddTerminal("(")
	b.AddTerminal(")")
	b.AddTerminal("id")
	b.AddNonTerminal("E")
	b.AddNonTerminal("E'")
	b.AddNonTerminal("T")
	b.AddNonTerminal("T'")
	b.AddNonTerminal("F")
	b.SetStart("E")

	b.AddProduction("E", []string{"T", "E'"}, "", nil)
	b.AddProduction("E'", []string{"+", "T", "E'"}, "", nil)
	b.AddProduction("E'", nil, "", nil)
	b.AddProduction("T", []string{"F", "T'"}, "", nil)
	b.AddProduction("T'", []string{"*", "F", "T'"}, "", nil)
	b.AddProduction("T'", nil, "", nil)
	b.AddProduction("F", []string{"(", "E", ")"}, "", nil)
	b.AddProduction("F", []string{"id"}, "", nil)

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func Test_Follow_Compute_MatchesKnownSets(t *testing.T) {
	g := buildExprGrammar(t)
	ft := first.Compute(g)
	flw := follow.Compute(g, ft)

	nameOf := func(li int) string { return g.TermName(g.TermID(li)) }
	ntID := func(name string) int {
		id, ok := g.NTByName(name)
		require.True(t, ok)
		return id
	}

	cases := []struct {
		nt       string
		expected []string
	}{
		{"E", []string{"$", ")"}},
		{"E'", []string{"$", ")"}},
		{"T", []string{"+", "$", ")"}},
		{"T'", []string{"+", "$", ")"}},
		{"F", []string{"+", "*", "$", ")"}},
	}

	for _, tc := range cases {
		t.Run(tc.nt, func(t *testing.T) {
			set := flw.Of(ntID(tc.nt))
			names := make([]string, 0, set.Count())
			for _, li := range set.Elements() {
				names = append(names, nameOf(li))
			}
			assert.ElementsMatch(t, tc.expected, names)
		})
	}
}

func Test_Follow_Compute_StartSymbolAlwaysHasEOF(t *testing.T) {
	g := buildExprGrammar(t)
	ft := first.Compute(g)
	flw := follow.Compute(g, ft)

	set := flw.Of(g.StartSymbol())
	assert.True(t, set.Test(g.TermIndex(g.EOF())))
}
