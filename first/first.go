// Package first computes FIRST sets: the per-non-terminal least
// fixed-point of §4.1, plus the FIRST-of-a-symbol-string operation
// ("first(β, a)") the LR(1) closure consumes directly.
package first

import (
	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/emirpasic/gods/queue/linkedlistqueue"
)

// Table holds the computed FIRST set of every non-terminal in a
// grammar. It is immutable once returned from Compute and borrows the
// grammar for the symbol-string helpers (§5 "borrow the grammar... for
// the duration of construction").
type Table struct {
	g    *grammar.Grammar
	sets []bitset.Set // indexed by non-terminal id
}

// Of returns the FIRST set of non-terminal nt.
func (t *Table) Of(nt int) bitset.Set { return t.sets[nt] }

// OfSymbol returns FIRST(X) for any symbol X: {X} if X is a terminal,
// the computed set if X is a non-terminal.
func (t *Table) OfSymbol(sym int) bitset.Set {
	if t.g.IsTerminal(sym) {
		s := bitset.New(t.g.TermNum())
		s.Add(t.g.TermIndex(sym))
		return s
	}
	return t.sets[sym]
}

// OfString computes FIRST(β) for a symbol string β, per §4.1: the
// union of FIRST(Y1)\{EPS}, extended through Y2, Y3, ... while every
// preceding symbol is nullable, with EPS added at the end iff every
// symbol in β is nullable (including when β is empty).
func (t *Table) OfString(beta []int) bitset.Set {
	result := bitset.New(t.g.TermNum())
	epsLocal := t.g.TermIndex(t.g.EPS())

	allNullable := true
	for _, sym := range beta {
		fy := t.OfSymbol(sym)
		for _, li := range fy.Elements() {
			if li != epsLocal {
				result.Add(li)
			}
		}
		if !fy.Test(epsLocal) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.Add(epsLocal)
	}
	return result
}

// Of1 is the "first(β, a)" operation of §4.1: FIRST of β with a
// fallback lookahead set a substituted for EPS. If β contains EPS in
// its FIRST set, EPS is removed and a is unioned in; per the DESIGN
// NOTES open question, when β is empty this makes the result exactly
// a, since OfString(nil) is {EPS} and removing EPS leaves the empty
// set before the union.
func (t *Table) Of1(beta []int, a bitset.Set) bitset.Set {
	fs := t.OfString(beta)
	epsLocal := t.g.TermIndex(t.g.EPS())
	if fs.Test(epsLocal) {
		fs.Remove(epsLocal)
		fs.UnionInPlace(a)
	}
	return fs
}

// Compute runs the FIRST fixed-point over every non-terminal of g to
// completion and returns the finished Table.
//
// The pending-non-terminal worklist is a linkedlistqueue.Queue: each
// pass drains the current queue, and if any production's contribution
// changed a FIRST set during that pass, every non-terminal is
// re-enqueued for another pass. Termination is guaranteed because each
// re-enqueue requires a set to have strictly grown, and FIRST sets are
// bounded by TermNum() (§4.1 "Failure semantics: none").
func Compute(g *grammar.Grammar) *Table {
	t := &Table{g: g, sets: make([]bitset.Set, g.NTNum())}
	for i := range t.sets {
		t.sets[i] = bitset.New(g.TermNum())
	}

	pending := linkedlistqueue.New()
	for _, nt := range g.NonTerminals() {
		pending.Enqueue(nt)
	}

	for !pending.Empty() {
		changedThisPass := false
		values := pending.Values()
		pending.Clear()

		for _, v := range values {
			nt := v.(int)
			for _, pi := range g.ProductionsFor(nt) {
				p := g.Production(pi)
				contribution := t.OfString(p.RHS)
				if t.sets[nt].UnionInPlace(contribution) {
					changedThisPass = true
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
