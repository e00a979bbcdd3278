// Package automaton implements the LR(1) core: item closure, goto,
// and the canonical collection build-out (§4.3).
package automaton

import (
	"sort"

	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/grammar"
)

// State is the closure of a set of LR(1) items: a sorted sequence of
// (LR0Item, lookahead) pairs, sorted by the underlying LR0Item so that
// two states are structurally equal iff their sequences are
// element-wise equal (§3).
type State struct {
	Items      []grammar.LR0Item
	Lookaheads []bitset.Set // parallel to Items
}

// canonicalize sorts m (keyed by LR0Item, merged beforehand so there
// are no duplicate LR0Items) into a State.
func canonicalize(m map[grammar.LR0Item]bitset.Set) State {
	items := make([]grammar.LR0Item, 0, len(m))
	for it := range m {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })

	s := State{Items: items, Lookaheads: make([]bitset.Set, len(items))}
	for i, it := range items {
		s.Lookaheads[i] = m[it]
	}
	return s
}

// Kernel returns the kernel of this state: items whose dot is not at
// the start, plus (per §4.4's getLR0Kernels treatment) the augmented
// start item even though its dot is at position 0.
func (s State) Kernel(g *grammar.Grammar) []grammar.LR0Item {
	kernel := make([]grammar.LR0Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Dot > 0 || isAugmentedStart(g, it) {
			kernel = append(kernel, it)
		}
	}
	return kernel
}

func isAugmentedStart(g *grammar.Grammar, it grammar.LR0Item) bool {
	if !g.IsAugmented() {
		return false
	}
	p := g.Production(it.Prod)
	return it.Dot == 0 && p.LHS == g.StartSymbol()
}

// Equal reports whether two states contain the same items with the
// same lookaheads. Both must already be canonicalized (i.e. produced
// by Closure or Goto).
func (s State) Equal(o State) bool {
	if len(s.Items) != len(o.Items) {
		return false
	}
	for i := range s.Items {
		if s.Items[i] != o.Items[i] {
			return false
		}
		if !s.Lookaheads[i].Equal(o.Lookaheads[i]) {
			return false
		}
	}
	return true
}
