package automaton

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/bitset"
	"github.com/dekarrin/ictiobus/first"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/emirpasic/gods/queue/linkedlistqueue"
)

// Node is one state of the FSM: its closure and the sparse symbol ->
// successor-state-id goto links discovered for it (§3 "LR(1) FSM").
type Node struct {
	State State
	Trans map[int]int // symbol id -> successor state id
}

// FSM is the canonical collection of LR(1) states, in discovery order
// (§4.3 "ids are allocated in discovery order starting at 0").
type FSM struct {
	Grammar *grammar.Grammar // the augmented grammar this FSM was built over
	Nodes   []Node

	byItemsKey map[string][]int // narrows Equal candidates during dedup
}

// StateCount returns the number of states in the collection.
func (f *FSM) StateCount() int { return len(f.Nodes) }

// Goto returns the successor state id for (state, symbol), or -1 if
// there is no transition.
func (f *FSM) Goto(state, symbol int) int {
	if next, ok := f.Nodes[state].Trans[symbol]; ok {
		return next
	}
	return -1
}

func itemsKey(items []grammar.LR0Item) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "%d.%d|", it.Prod, it.Dot)
	}
	return sb.String()
}

func (f *FSM) findOrAdd(s State) (id int, isNew bool) {
	key := itemsKey(s.Items)
	for _, candidate := range f.byItemsKey[key] {
		if f.Nodes[candidate].State.Equal(s) {
			return candidate, false
		}
	}
	id = len(f.Nodes)
	f.Nodes = append(f.Nodes, Node{State: s, Trans: map[int]int{}})
	f.byItemsKey[key] = append(f.byItemsKey[key], id)
	return id, true
}

// Closure computes the closure of a kernel (a map from LR0Item to its
// lookahead set), per §4.3: repeatedly expand items whose dot precedes
// a non-terminal X by adding X's productions at dot 0 with lookahead
// first(β, a), re-processing any item whose lookahead grows.
//
// The pending-item worklist is a linkedlistqueue.Queue, draining in
// FIFO discovery order; termination follows from lookahead sets being
// monotonically non-decreasing and bounded by TermNum().
func Closure(seed map[grammar.LR0Item]bitset.Set, g *grammar.Grammar, ft *first.Table) State {
	m := make(map[grammar.LR0Item]bitset.Set, len(seed))
	pending := linkedlistqueue.New()
	for it, la := range seed {
		m[it] = la.Clone()
		pending.Enqueue(it)
	}

	for !pending.Empty() {
		v, _ := pending.Dequeue()
		item := v.(grammar.LR0Item)
		la := m[item]

		nextSym, ok := item.NextSymbol(g)
		if !ok || g.IsTerminal(nextSym) {
			continue
		}

		beta := item.Rest(g)
		propagated := ft.Of1(beta, la)

		for _, pi := range g.ProductionsFor(nextSym) {
			newItem := grammar.LR0Item{Prod: pi, Dot: 0}
			existing, exists := m[newItem]
			if !exists {
				existing = bitset.New(g.TermNum())
				m[newItem] = existing
			}
			changed := existing.UnionInPlace(propagated)
			if !exists || changed {
				pending.Enqueue(newItem)
			}
		}
	}

	return canonicalize(m)
}

// Goto computes GOTO(s, X): advance every item in s whose next symbol
// is X, merge lookaheads for items that land on the same LR0Item, then
// take the closure (§4.3). An empty State (nil Items) means there is
// no transition.
func Goto(s State, sym int, g *grammar.Grammar, ft *first.Table) State {
	kernel := map[grammar.LR0Item]bitset.Set{}
	for i, it := range s.Items {
		next, ok := it.NextSymbol(g)
		if !ok || next != sym {
			continue
		}
		advanced := it.Advance()
		existing, exists := kernel[advanced]
		if !exists {
			existing = bitset.New(g.TermNum())
			kernel[advanced] = existing
		}
		existing.UnionInPlace(s.Lookaheads[i])
	}
	if len(kernel) == 0 {
		return State{}
	}
	return Closure(kernel, g, ft)
}

// BuildCanonicalCollection runs the worklist build-out of §4.3:
// augment g, seed state 0 with the closure of {[S' -> ·S EOF, {EOF}]},
// then for every discovered state and every symbol id in ascending
// order compute GOTO and enqueue any newly-discovered state. Symbol
// iteration is by ascending id, which is what makes state id
// assignment deterministic.
func BuildCanonicalCollection(g *grammar.Grammar) *FSM {
	ag := g
	if !g.IsAugmented() {
		ag = g.Augmented()
	}
	ft := first.Compute(ag)

	startItem := grammar.LR0Item{Prod: 0, Dot: 0}
	startLA := bitset.New(ag.TermNum())
	startLA.Add(ag.TermIndex(ag.EOF()))
	start := Closure(map[grammar.LR0Item]bitset.Set{startItem: startLA}, ag, ft)

	fsm := &FSM{Grammar: ag, byItemsKey: map[string][]int{}}
	fsm.findOrAdd(start)

	work := linkedlistqueue.New()
	work.Enqueue(0)

	for !work.Empty() {
		v, _ := work.Dequeue()
		id := v.(int)
		st := fsm.Nodes[id].State

		for sym := 0; sym < ag.SymbolNum(); sym++ {
			next := Goto(st, sym, ag, ft)
			if len(next.Items) == 0 {
				continue
			}
			target, isNew := fsm.findOrAdd(next)
			fsm.Nodes[id].Trans[sym] = target
			if isNew {
				work.Enqueue(target)
			}
		}
	}

	return fsm
}
