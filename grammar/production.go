package grammar

// Production is one grammar rule: LHS -> RHS, with a stable 0-based
// insertion-order index, an optional explicit precedence terminal, and
// an opaque semantic payload the core never interprets (§9 "Semantic
// actions").
type Production struct {
	LHS    int   // non-terminal id
	RHS    []int // symbol ids, possibly empty (epsilon production)
	Index  int   // stable, 0-based insertion order
	Prec   int   // explicit precedence terminal id, or -1 if none
	Action interface{}
}

// HasExplicitPrec reports whether this production declared an explicit
// precedence symbol (the `prec` field of a production in the grammar
// description, §6).
func (p Production) HasExplicitPrec() bool { return p.Prec >= 0 }

// rightmostTerminal returns the rightmost terminal id in the RHS, and
// whether one exists.
func (p Production) rightmostTerminal(g *Grammar) (int, bool) {
	for i := len(p.RHS) - 1; i >= 0; i-- {
		if g.IsTerminal(p.RHS[i]) {
			return p.RHS[i], true
		}
	}
	return 0, false
}

// EffectivePrecedence returns the row/associativity that governs
// conflict resolution for a reduction by p: its explicit precedence
// symbol's row if declared, else the row of the right-most terminal in
// its RHS, else ok=false (undefined precedence, §3).
func (g *Grammar) EffectivePrecedence(p Production) (row int, assoc Assoc, ok bool) {
	if p.HasExplicitPrec() {
		return g.prec.Of(p.Prec)
	}
	if t, found := p.rightmostTerminal(g); found {
		return g.prec.Of(t)
	}
	return 0, Left, false
}
