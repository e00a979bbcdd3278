// Package table turns an LALR(1) FSM into the action/goto tables of
// §3/§4.4, before conflict resolution narrows each cell to a single
// action, and holds the compact representations (sparse matrix, width
// hints) the artifact assembler packs for emission (§4.7).
package table

import (
	"fmt"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
)

// ActionType is the kind of an LALR(1) action cell (§3).
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
	Err
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one LALR(1) table cell candidate.
type Action struct {
	Type   ActionType
	Target int // state id, valid when Type == Shift
	Prod   int // production index, valid when Type == Reduce
}

func (a Action) Equal(o Action) bool {
	return a.Type == o.Type && a.Target == o.Target && a.Prod == o.Prod
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("shift %d", a.Target)
	case Reduce:
		return fmt.Sprintf("reduce %d", a.Prod)
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// LRTable is the raw action/goto table built straight from an FSM,
// before conflict resolution: a cell may hold more than one candidate
// action.
type LRTable struct {
	FSM *automaton.FSM

	// Actions[state][localTermIdx] is the list of candidate actions for
	// that cell (§4.4). localTermIdx is grammar.Grammar.TermIndex of a
	// terminal id, i.e. the bitset.Set lookahead index space.
	Actions [][][]Action

	// Gotos[state][nt] is the goto target for that cell, or -1.
	Gotos [][]int
}

func appendUnique(list []Action, a Action) []Action {
	for _, existing := range list {
		if existing.Equal(a) {
			return list
		}
	}
	return append(list, a)
}

// BuildActions constructs the raw LALR(1) action/goto table for fsm
// per §4.4:
//
//   - for an item [A -> α ·, a] (dot at end), add Reduce at column t
//     for every t in a; Accept instead when A is the augmented start
//     and t is EOF.
//   - for an item [A -> α · t β, _] with t a terminal, add Shift(goto)
//     at column t.
//   - for every non-terminal with a defined goto, write the goto
//     column.
func BuildActions(fsm *automaton.FSM) *LRTable {
	g := fsm.Grammar
	t := &LRTable{
		FSM:     fsm,
		Actions: make([][][]Action, len(fsm.Nodes)),
		Gotos:   make([][]int, len(fsm.Nodes)),
	}

	for stateID, node := range fsm.Nodes {
		row := make([][]Action, g.TermNum())
		for i, it := range node.State.Items {
			if it.AtEnd(g) {
				lhs := g.Production(it.Prod).LHS
				for _, localT := range node.State.Lookaheads[i].Elements() {
					var act Action
					if lhs == g.StartSymbol() && localT == g.TermIndex(g.EOF()) {
						act = Action{Type: Accept}
					} else {
						act = Action{Type: Reduce, Prod: it.Prod}
					}
					row[localT] = appendUnique(row[localT], act)
				}
				continue
			}

			nextSym, _ := it.NextSymbol(g)
			if !g.IsTerminal(nextSym) {
				continue
			}
			target := fsm.Goto(stateID, nextSym)
			if target < 0 {
				continue
			}
			localT := g.TermIndex(nextSym)
			row[localT] = appendUnique(row[localT], Action{Type: Shift, Target: target})
		}
		t.Actions[stateID] = row

		gotoRow := make([]int, g.NTNum())
		for nt := 0; nt < g.NTNum(); nt++ {
			gotoRow[nt] = fsm.Goto(stateID, nt)
		}
		t.Gotos[stateID] = gotoRow
	}

	return t
}

// Resolved is the action table after conflict resolution: exactly one
// action (or Err) per cell.
type Resolved struct {
	FSM     *automaton.FSM
	Actions [][]Action // [state][localTermIdx]
	Gotos   [][]int    // [state][nt]
}

// Production exposes the production referenced by a Reduce/Accept
// action, for callers building human-readable output.
func (r *Resolved) Production(a Action) grammar.Production {
	return r.FSM.Grammar.Production(a.Prod)
}
