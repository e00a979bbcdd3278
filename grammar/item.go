package grammar

import "fmt"

// LR0Item is ⟨production index, dot position⟩ (§3). The production
// reference itself is looked up from the owning Grammar by index; the
// item value alone never needs to carry the RHS slice around.
type LR0Item struct {
	Prod int // production index
	Dot  int // dot position, in [0, len(RHS)]
}

// Less gives LR0Item a total order (by production index, then dot),
// which is the sort key the LR(1) state canonicalization (§3, §4.3)
// sorts closures by.
func (i LR0Item) Less(o LR0Item) bool {
	if i.Prod != o.Prod {
		return i.Prod < o.Prod
	}
	return i.Dot < o.Dot
}

func (i LR0Item) String() string { return fmt.Sprintf("(p%d@%d)", i.Prod, i.Dot) }

// AtEnd reports whether the dot has reached the end of the RHS of p.
func (i LR0Item) AtEnd(g *Grammar) bool {
	return i.Dot >= len(g.Production(i.Prod).RHS)
}

// NextSymbol returns the symbol immediately after the dot and true, or
// (0, false) if the dot is at the end.
func (i LR0Item) NextSymbol(g *Grammar) (int, bool) {
	rhs := g.Production(i.Prod).RHS
	if i.Dot >= len(rhs) {
		return 0, false
	}
	return rhs[i.Dot], true
}

// Advance returns the item with the dot moved one position right. It
// is a caller error to call Advance on an item already AtEnd.
func (i LR0Item) Advance() LR0Item { return LR0Item{Prod: i.Prod, Dot: i.Dot + 1} }

// Rest returns the symbols of the RHS after the symbol that follows the
// dot (the "β" in the closure rule [A -> α · X β]).
func (i LR0Item) Rest(g *Grammar) []int {
	rhs := g.Production(i.Prod).RHS
	if i.Dot+1 >= len(rhs) {
		return nil
	}
	return rhs[i.Dot+1:]
}
