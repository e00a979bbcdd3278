// Package follow computes FOLLOW sets for the LL(1) path (§4.2).
package follow

import (
	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/first"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/emirpasic/gods/queue/linkedlistqueue"
)

// Table holds the computed FOLLOW set of every non-terminal.
type Table struct {
	g    *grammar.Grammar
	sets []bitset.Set
}

// Of returns FOLLOW(nt).
func (t *Table) Of(nt int) bitset.Set { return t.sets[nt] }

// Compute runs the FOLLOW fixed-point of §4.2 to completion:
//
//   - FOLLOW(start) ⊇ {EOF}
//   - for A -> α X β: FOLLOW(X) ⊇ FIRST(β)\{EPS}; if EPS ∈ FIRST(β) or
//     β is empty, FOLLOW(X) ⊇ FOLLOW(A)
//
// g must not be augmented — FOLLOW is an LL(1)-path computation over
// the user's own start symbol, not the synthetic S' (§4.2, §4.6).
func Compute(g *grammar.Grammar, firstTable *first.Table) *Table {
	t := &Table{g: g, sets: make([]bitset.Set, g.NTNum())}
	for i := range t.sets {
		t.sets[i] = bitset.New(g.TermNum())
	}
	t.sets[g.StartSymbol()].Add(g.TermIndex(g.EOF()))

	pending := linkedlistqueue.New()
	for _, nt := range g.NonTerminals() {
		pending.Enqueue(nt)
	}

	for !pending.Empty() {
		changedThisPass := false
		pending.Clear()

		for _, p := range g.Productions() {
			for i, sym := range p.RHS {
				if !g.IsNonTerminal(sym) {
					continue
				}
				beta := p.RHS[i+1:]
				firstBeta := firstTable.OfString(beta)
				epsLocal := g.TermIndex(g.EPS())

				contribution := firstBeta.Clone()
				contribution.Remove(epsLocal)
				if t.sets[sym].UnionInPlace(contribution) {
					changedThisPass = true
				}

				if len(beta) == 0 || firstBeta.Test(epsLocal) {
					if t.sets[sym].UnionInPlace(t.sets[p.LHS]) {
						changedThisPass = true
					}
				}
			}
		}

		if changedThisPass {
			for _, nt := range g.NonTerminals() {
				pending.Enqueue(nt)
			}
		}
	}

	return t
}
