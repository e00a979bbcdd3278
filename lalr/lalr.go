// Package lalr implements the LALR(1) reducer (§4.4): it collapses an
// LR(1) canonical collection into the smaller LALR(1) FSM by merging
// states with identical LR(0) kernels and unioning their lookaheads.
//
// This implements the build-then-merge strategy DESIGN NOTES
// recommends as the simpler of the two acceptable strategies
// (build-then-merge vs. merge-during-build); merge-during-build trades
// the up-front LR(1) collection for re-propagation passes and is left
// as a documented alternative, not implemented here.
package lalr

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/grammar"
)

// kernelKey is a comparable key for K(g, s), the kernel of LR(1) state
// s: a structural hash of its sorted LR0Item kernel. Two states with
// identical kernels always hash identically, which is exactly the
// "kernel-hash merge" the component table describes (§2).
func kernelKey(kernel []grammar.LR0Item) string {
	h, err := structhash.Hash(kernel, 1)
	if err != nil {
		// kernel is a slice of plain (int, int) structs; structhash
		// cannot fail to reflect over it.
		panic(fmt.Sprintf("lalr: unhashable kernel: %v", err))
	}
	return h
}

// Reduce collapses lr1, the canonical LR(1) collection, into an
// LALR(1) FSM: states sharing an LR(0) kernel are merged into one,
// their lookaheads unioned position-wise (items align 1:1 across a
// group because the closure of a kernel is a deterministic function of
// that kernel and the grammar, §4.4). State 0 of the result is always
// the state containing the augmented-start kernel (§4.4 "State 0 must
// remain the one containing the augmented-start kernel").
func Reduce(lr1 *automaton.FSM) *automaton.FSM {
	g := lr1.Grammar

	groups := map[string][]int{}
	order := make([]string, 0)
	for id, node := range lr1.Nodes {
		key := kernelKey(node.State.Kernel(g))
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], id)
	}

	zeroKey := kernelKey(lr1.Nodes[0].State.Kernel(g))
	ordered := make([]string, 0, len(order))
	ordered = append(ordered, zeroKey)
	for _, key := range order {
		if key != zeroKey {
			ordered = append(ordered, key)
		}
	}

	oldToNew := make(map[int]int, len(lr1.Nodes))
	merged := &automaton.FSM{Grammar: g}

	for newID, key := range ordered {
		ids := groups[key]
		base := lr1.Nodes[ids[0]].State

		mergedLA := make([]bitset.Set, len(base.Items))
		for i := range base.Items {
			mergedLA[i] = base.Lookaheads[i].Clone()
		}
		for _, sid := range ids[1:] {
			st := lr1.Nodes[sid].State
			for i := range st.Items {
				mergedLA[i].UnionInPlace(st.Lookaheads[i])
			}
		}

		merged.Nodes = append(merged.Nodes, automaton.Node{
			State: automaton.State{Items: base.Items, Lookaheads: mergedLA},
			Trans: map[int]int{},
		})
		for _, sid := range ids {
			oldToNew[sid] = newID
		}
	}

	for newID, key := range ordered {
		trans := merged.Nodes[newID].Trans
		for _, sid := range groups[key] {
			for sym, target := range lr1.Nodes[sid].Trans {
				trans[sym] = oldToNew[target]
			}
		}
	}

	return merged
}
