// Package conflict implements shift/reduce and reduce/reduce
// disambiguation via precedence and associativity (§4.5), narrowing
// a raw multi-candidate table.LRTable down to a table.Resolved with
// exactly one action per cell.
package conflict

import (
	"fmt"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sink receives one formatted line per reported conflict (§6
// "Conflict reporting... via a sink callback; one line per conflict
// including the involved productions and terminal").
type Sink func(msg string)

var titleCaser = cases.Title(language.English)

// Resolve narrows raw to a single action per cell, reporting every
// shift/reduce conflict that lacked a governing precedence/NoAssoc
// resolution, and every reduce/reduce conflict, to report. Resolution
// always produces a single action or table.Err; generation never
// aborts on a conflict (§4.5, §7).
func Resolve(raw *table.LRTable, g *grammar.Grammar, report Sink) *table.Resolved {
	if report == nil {
		report = func(string) {}
	}

	resolved := &table.Resolved{
		FSM:     raw.FSM,
		Actions: make([][]table.Action, len(raw.Actions)),
		Gotos:   raw.Gotos,
	}

	for state, row := range raw.Actions {
		out := make([]table.Action, len(row))
		for localTerm, candidates := range row {
			out[localTerm] = resolveCell(state, g.TermID(localTerm), candidates, g, report)
		}
		resolved.Actions[state] = out
	}

	return resolved
}

func resolveCell(state, termID int, candidates []table.Action, g *grammar.Grammar, report Sink) table.Action {
	if len(candidates) == 0 {
		return table.Action{Type: table.Err}
	}
	winner := candidates[0]
	reported := false

	for _, next := range candidates[1:] {
		var conflicted bool
		winner, conflicted = resolvePair(winner, next, g, termID)
		if conflicted {
			reported = true
		}
	}

	if reported {
		report(formatConflict(state, termID, candidates, winner, g))
	}
	return winner
}

// resolvePair resolves a against b, returning the surviving action and
// whether the resolution must be reported per the granularity chosen
// in DESIGN NOTES (one message per (state, terminal), not per pair).
func resolvePair(a, b table.Action, g *grammar.Grammar, termID int) (table.Action, bool) {
	if a.Type == table.Accept || b.Type == table.Accept {
		if a.Type == b.Type {
			return a, false
		}
		if a.Type == table.Accept {
			return a, true
		}
		return b, true
	}

	switch {
	case a.Type == table.Shift && b.Type == table.Reduce:
		return resolveShiftReduce(a, b, g, termID)
	case a.Type == table.Reduce && b.Type == table.Shift:
		return resolveShiftReduce(b, a, g, termID)
	case a.Type == table.Reduce && b.Type == table.Reduce:
		return resolveReduceReduce(a, b)
	case a.Type == table.Shift && b.Type == table.Shift:
		if a.Target == b.Target {
			return a, false
		}
		// two distinct shift targets for one terminal in one state is
		// an automaton-construction defect, not a grammar ambiguity;
		// still surface it rather than silently picking one.
		return a, true
	default:
		return a, false
	}
}

// resolveShiftReduce applies rule 1 of §4.5.
func resolveShiftReduce(shift, reduce table.Action, g *grammar.Grammar, termID int) (table.Action, bool) {
	prodRow, prodAssoc, prodOK := g.EffectivePrecedence(g.Production(reduce.Prod))
	termRow, _, termOK := g.Precedence().Of(termID)

	if !prodOK || !termOK {
		return shift, true
	}

	if grammar.Higher(prodRow, termRow) {
		return reduce, false
	}
	if grammar.Higher(termRow, prodRow) {
		return shift, false
	}

	switch prodAssoc {
	case grammar.Left:
		return reduce, false
	case grammar.Right:
		return shift, false
	default: // NoAssoc
		return table.Action{Type: table.Err}, true
	}
}

// resolveReduceReduce applies rule 2 of §4.5: keep the lower production
// index, and this is always reported.
func resolveReduceReduce(a, b table.Action) (table.Action, bool) {
	if a.Prod <= b.Prod {
		return a, true
	}
	return b, true
}

func formatConflict(state, termID int, candidates []table.Action, winner table.Action, g *grammar.Grammar) string {
	termName := g.TermName(termID)
	kinds := make([]string, 0, len(candidates))
	for _, c := range candidates {
		switch c.Type {
		case table.Shift:
			kinds = append(kinds, fmt.Sprintf("shift to state %d", c.Target))
		case table.Reduce:
			p := g.Production(c.Prod)
			kinds = append(kinds, fmt.Sprintf("reduce %s (production %d)", g.NTName(p.LHS), c.Prod))
		case table.Accept:
			kinds = append(kinds, "accept")
		}
	}
	return fmt.Sprintf("state %d: conflict on terminal %q between %v; resolved to %s",
		state, termName, kinds, titleCaser.String(winner.String()))
}
