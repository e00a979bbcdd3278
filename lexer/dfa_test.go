package lexer_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/lexer"
	"github.com/stretchr/testify/assert"
)

func buildSimpleDFA() *lexer.DFA {
	d := &lexer.DFA{
		Nodes: []lexer.Node{
			{Accept: -1, Edges: map[int]int{0: 1}},
			{Accept: 7, Edges: map[int]int{0: 1}},
		},
	}
	for b := 0; b < 256; b++ {
		if b == 'a' {
			d.EquivClass[b] = 0
		} else {
			d.EquivClass[b] = 1
		}
	}
	return d
}

func Test_DFA_Next_FollowsEquivClass(t *testing.T) {
	d := buildSimpleDFA()
	target, ok := d.Next(0, 'a')
	assert.True(t, ok)
	assert.Equal(t, 1, target)

	_, ok = d.Next(0, 'b')
	assert.False(t, ok)
}

func Test_DFA_Accepts(t *testing.T) {
	d := buildSimpleDFA()
	_, ok := d.Accepts(0)
	assert.False(t, ok)

	term, ok := d.Accepts(1)
	assert.True(t, ok)
	assert.Equal(t, 7, term)
}

func Test_DFA_Validate_EmptyDFA(t *testing.T) {
	d := &lexer.DFA{}
	assert.Error(t, d.Validate())
}

func Test_DFA_Validate_AcceptsEmptyString(t *testing.T) {
	d := &lexer.DFA{Nodes: []lexer.Node{{Accept: 0, Edges: map[int]int{}}}}
	assert.Error(t, d.Validate())
}

func Test_DFA_Validate_WellFormed(t *testing.T) {
	d := buildSimpleDFA()
	assert.NoError(t, d.Validate())
}

func Test_DFA_NumClasses(t *testing.T) {
	d := buildSimpleDFA()
	assert.Equal(t, 2, d.NumClasses())
}
