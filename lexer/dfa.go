// Package lexer holds the external-collaborator contract for a
// compiled lexical DFA (§6 "Lexer DFA input (from external
// collaborator)"): this core never compiles a regular expression into
// a DFA itself (that is explicitly out of scope, §13 Non-goals) — it
// only consumes one that has already been built, to validate it and
// to let the artifact assembler and DOT renderer describe it.
package lexer

import "github.com/dekarrin/ictiobus/icterrors"

// Node is one DFA state: an optional accepting terminal id, and a
// sparse mapping from equivalence-class id to successor node id.
type Node struct {
	Accept int // terminal id, or -1 if this state does not accept
	Edges  map[int]int
}

// DFA is a compiled lexical automaton, handed in by an external
// collaborator (a regex-to-DFA compiler this core does not implement):
// an array of nodes plus a 256-entry table packing the byte alphabet
// into equivalence classes, so the transition function only needs to
// be keyed on class id rather than on all 256 byte values (§6).
type DFA struct {
	Nodes      []Node
	EquivClass [256]int
}

// NumClasses returns one past the highest equivalence class id used in
// EquivClass.
func (d *DFA) NumClasses() int {
	max := -1
	for _, c := range d.EquivClass {
		if c > max {
			max = c
		}
	}
	return max + 1
}

// Next returns the successor of (state, b), or (0, false) if there is
// no transition on b's equivalence class from state.
func (d *DFA) Next(state int, b byte) (int, bool) {
	class := d.EquivClass[b]
	target, ok := d.Nodes[state].Edges[class]
	return target, ok
}

// Accepts reports the terminal id state accepts, if any.
func (d *DFA) Accepts(state int) (termID int, ok bool) {
	a := d.Nodes[state].Accept
	return a, a >= 0
}

// Validate reports the lexer-unsuitability failures of §7: a DFA with
// no states or no accepting state (it accepts nothing), or one whose
// initial state already accepts (accepting the empty string would make
// every lex attempt trivially succeed with a zero-length token,
// starving the driver loop).
func (d *DFA) Validate() error {
	if len(d.Nodes) == 0 {
		return icterrors.Emitf("lexer DFA has no states")
	}
	if _, ok := d.Accepts(0); ok {
		return icterrors.Emitf("lexer DFA accepts the empty string at its initial state")
	}
	for state := range d.Nodes {
		if _, ok := d.Accepts(state); ok {
			return nil
		}
	}
	return icterrors.Emitf("lexer DFA has no accepting state")
}
