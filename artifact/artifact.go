// Package artifact assembles the finished LR or LL tables into the
// target-agnostic structures an emitter consumes (§4.7), independent
// of any particular output language.
package artifact

import (
	"fmt"

	"github.com/dekarrin/ictiobus/follow"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/ll1"
	"github.com/dekarrin/ictiobus/table"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

// ProductionMeta is the emitter-facing summary of a production: just
// enough to reduce a stack without consulting the full Grammar (§4.7
// "production[index] = (lhs, rhs_len, precedence?)").
type ProductionMeta struct {
	LHS    int
	RHSLen int
	Prec   int // explicit precedence terminal id, or -1
}

func productionMetas(g *grammar.Grammar) []ProductionMeta {
	metas := make([]ProductionMeta, len(g.Productions()))
	for i, p := range g.Productions() {
		metas[i] = ProductionMeta{LHS: p.LHS, RHSLen: len(p.RHS), Prec: p.Prec}
	}
	return metas
}

// LR is the assembled artifact for an LALR(1) table: fsm_size,
// term_num, nt_num, the action/goto tables, production metadata, and
// the width hints an emitter uses to size its generated arrays.
type LR struct {
	ID uuid.UUID

	FSMSize int
	TermNum int
	NTNum   int

	Action [][]table.Action // [state][localTermIdx]
	Goto   [][]int          // [state][nt]

	Productions []ProductionMeta
	Widths      table.WidthHints
}

// AssembleLR builds the LR artifact from a conflict-resolved table.
func AssembleLR(resolved *table.Resolved) *LR {
	g := resolved.FSM.Grammar
	return &LR{
		ID:          uuid.New(),
		FSMSize:     len(resolved.Actions),
		TermNum:     g.TermNum(),
		NTNum:       g.NTNum(),
		Action:      resolved.Actions,
		Goto:        resolved.Gotos,
		Productions: productionMetas(g),
		Widths:      table.ComputeWidths(len(resolved.Actions), g.TermNum(), g.NTNum(), len(g.Productions())),
	}
}

// SparseGoto builds a compact COO encoding of the goto table, useful
// for emission since the overwhelming majority of [state][nt] cells
// have no defined goto.
func (a *LR) SparseGoto() *table.SparseMatrix {
	m := table.NewSparseMatrix(a.FSMSize, a.NTNum, -1)
	for state, row := range a.Goto {
		for nt, target := range row {
			if target >= 0 {
				m.Set(state, nt, int32(target))
			}
		}
	}
	return m
}

// LL is the assembled artifact for an LL(1) table: the per-nonterminal
// dispatch table (already narrowed to its primary production by
// ll1.Build) and the FOLLOW sets an emitter needs for panic-mode error
// recovery sync sets.
type LL struct {
	ID uuid.UUID

	TermNum int
	NTNum   int

	// Table[nt][localTerm] is the chosen production index, or -1 if no
	// production of nt predicts that terminal.
	Table [][]int
	// Follow[nt] holds the local terminal indices in FOLLOW(nt).
	Follow [][]int

	Productions []ProductionMeta
	Widths      table.WidthHints
}

// AssembleLL builds the LL artifact from the grammar, its finished
// LL(1) table, and its FOLLOW table.
func AssembleLL(g *grammar.Grammar, t *ll1.Table, flw *follow.Table) *LL {
	a := &LL{
		ID:          uuid.New(),
		TermNum:     g.TermNum(),
		NTNum:       g.NTNum(),
		Table:       make([][]int, g.NTNum()),
		Follow:      make([][]int, g.NTNum()),
		Productions: productionMetas(g),
		Widths:      table.ComputeWidths(0, g.TermNum(), g.NTNum(), len(g.Productions())),
	}

	for nt := 0; nt < g.NTNum(); nt++ {
		row := make([]int, g.TermNum())
		for localTerm := range row {
			prods := t.ProductionsFor(nt, g.TermID(localTerm))
			if len(prods) == 0 {
				row[localTerm] = -1
			} else {
				row[localTerm] = prods[0]
			}
		}
		a.Table[nt] = row
		a.Follow[nt] = flw.Of(nt).Elements()
	}

	return a
}

// Encode serializes v to a portable binary blob so a build pipeline
// can cache it between runs.
func Encode(v interface{}) []byte {
	return rezi.EncBinary(v)
}

func decodeInto(data []byte, target interface{}) error {
	n, err := rezi.DecBinary(data, target)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("artifact: decoded %d/%d bytes, data is corrupt or truncated", n, len(data))
	}
	return nil
}

// DecodeLR reverses Encode for an LR artifact.
func DecodeLR(data []byte) (*LR, error) {
	a := &LR{}
	if err := decodeInto(data, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeLL reverses Encode for an LL artifact.
func DecodeLL(data []byte) (*LL, error) {
	a := &LL{}
	if err := decodeInto(data, a); err != nil {
		return nil, err
	}
	return a, nil
}
