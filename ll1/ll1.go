// Package ll1 computes PREDICT sets and builds the LL(1) dispatch
// table (§4.6), over the grammar's own (unaugmented) start symbol.
package ll1

import (
	"fmt"

	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/first"
	"github.com/dekarrin/ictiobus/follow"
	"github.com/dekarrin/ictiobus/grammar"
)

// Sink receives one formatted line per reported PREDICT conflict.
type Sink func(msg string)

// Table is the finished LL(1) dispatch table: for each non-terminal
// and predicted terminal, the production indices whose PREDICT set
// contains that terminal, lowest index first (§4.6 "the first
// production (lowest index) is kept in position 0").
type Table struct {
	g *grammar.Grammar

	// Row[nt][localTerm] holds every production predicting that
	// terminal for nt, in ascending index order. A conflict is any
	// entry with len > 1.
	Row [][][]int
}

// Predict returns PREDICT(A -> α) for production prod, using ft/flw
// (§4.6): (FIRST(α) \ {EPS}) ∪ (FOLLOW(A) if EPS ∈ FIRST(α)).
func Predict(g *grammar.Grammar, ft *first.Table, flw *follow.Table, prod grammar.Production) bitset.Set {
	epsLocal := g.TermIndex(g.EPS())
	firstAlpha := ft.OfString(prod.RHS)

	result := firstAlpha.Clone()
	nullable := result.Test(epsLocal)
	result.Remove(epsLocal)

	if nullable {
		result.UnionInPlace(flw.Of(prod.LHS))
	}
	return result
}

// Build constructs the LL(1) table for g: for every production, adds
// its index to Row[LHS][t] for every t in its PREDICT set, then
// reports (and keeps the lowest index for) every cell with more than
// one candidate.
//
// g must not be augmented; LL(1) table construction operates over the
// grammar's own start symbol, never the synthetic LR augmented one
// (§4.2, §4.6).
func Build(g *grammar.Grammar, report Sink) *Table {
	if report == nil {
		report = func(string) {}
	}

	ft := first.Compute(g)
	flw := follow.Compute(g, ft)

	t := &Table{g: g, Row: make([][][]int, g.NTNum())}
	for nt := range t.Row {
		t.Row[nt] = make([][]int, g.TermNum())
	}

	for _, p := range g.Productions() {
		predict := Predict(g, ft, flw, p)
		for _, localTerm := range predict.Elements() {
			t.Row[p.LHS][localTerm] = append(t.Row[p.LHS][localTerm], p.Index)
		}
	}

	for nt, row := range t.Row {
		for localTerm, prods := range row {
			if len(prods) <= 1 {
				continue
			}
			report(fmt.Sprintf("non-terminal %s: PREDICT conflict on terminal %q between productions %v; kept production %d",
				g.NTName(nt), g.TermName(g.TermID(localTerm)), prods, prods[0]))
		}
	}

	return t
}

// ProductionsFor returns the production indices predicted for
// (nt, term), lowest index first. An empty result means no production
// of nt predicts term.
func (t *Table) ProductionsFor(nt, term int) []int {
	return t.Row[nt][t.g.TermIndex(term)]
}

// IsLL1 reports whether every cell of t has at most one predicting
// production (§3 "PREDICT soundness").
func (t *Table) IsLL1() bool {
	for _, row := range t.Row {
		for _, prods := range row {
			if len(prods) > 1 {
				return false
			}
		}
	}
	return true
}
