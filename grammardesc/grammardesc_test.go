package grammardesc_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/grammardesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arithDoc = `
start = "E"

[[priority]]
assoc = "Left"
terms = ["+"]

[[priority]]
assoc = "Left"
terms = ["*"]

[[lexical]]
regex = "\\+"
term = "+"

[[lexical]]
regex = "\\*"
term = "*"

[[lexical]]
regex = "[0-9]+"
term = "id"

[[production]]
lhs = "E"
rhs = "E + E"

[[production]]
lhs = "E"
rhs = "E * E"

[[production]]
lhs = "E"
rhs = "id"
`

func Test_Decode_Resolve_BuildsGrammar(t *testing.T) {
	doc, err := grammardesc.Decode([]byte(arithDoc))
	require.NoError(t, err)

	g, err := doc.Resolve()
	require.NoError(t, err)

	eID, ok := g.NTByName("E")
	require.True(t, ok)
	assert.Equal(t, g.StartSymbol(), eID)
	assert.Len(t, g.ProductionsFor(eID), 3)

	plusID, ok := g.TermByName("+")
	require.True(t, ok)
	row, assoc, ok := g.Precedence().Of(plusID)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, grammar.Left, assoc)
}

func Test_Resolve_UndefinedSymbolInRHS_ReturnsError(t *testing.T) {
	doc := &grammardesc.Doc{
		Start: "E",
		Production: []grammardesc.ProductionDesc{
			{LHS: "E", RHS: "ghost"},
		},
	}
	_, err := doc.Resolve()
	assert.Error(t, err)
}

func Test_Resolve_MissingStart_ReturnsError(t *testing.T) {
	doc := &grammardesc.Doc{
		Production: []grammardesc.ProductionDesc{
			{LHS: "E", RHS: "id"},
		},
	}
	_, err := doc.Resolve()
	assert.Error(t, err)
}

func Test_Decode_MalformedTOML_ReturnsError(t *testing.T) {
	_, err := grammardesc.Decode([]byte("not = [valid toml"))
	assert.Error(t, err)
}
