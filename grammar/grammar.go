// Package grammar is the shared grammar model for the table
// construction pipeline: dense symbol ids, productions, and the
// precedence table every other component (FIRST, FOLLOW, the LR(1)
// core, the LALR(1) reducer, the conflict resolver, and the LL(1)
// table builder) is built against.
//
// Non-terminals occupy the dense id range [0, NTNum), terminals occupy
// [NTNum, NTNum+TermNum) (§3). EPS and EOF are always the first two
// terminals, reserved by the Builder before any user-declared lexical
// terminal is added.
package grammar

import "github.com/dekarrin/ictiobus/icterrors"

// Reserved local terminal indices; EPS and EOF always occupy these
// before any user terminal, so every Grammar built through Builder
// agrees on their ids regardless of what the grammar description
// declares.
const (
	epsLocal = 0
	eofLocal = 1
)

// Grammar is an immutable grammar model: terminals, non-terminals,
// productions, and a precedence table, all addressed by dense integer
// id. Construct one with NewBuilder.
type Grammar struct {
	ntNames   []string
	ntIndex   map[string]int
	termNames []string
	termIndex map[string]int

	start int // non-terminal id of the user-declared start symbol

	productions []Production
	byLHS       [][]int // non-terminal id -> production indices with that LHS

	prec PrecedenceTable

	// augmentedStart is non-nil only on a Grammar returned by Augmented;
	// it names the synthetic start non-terminal's id for callers that
	// need to recognize it (e.g. the Accept-action rule, §4.3/§4.4).
	augmentedStart *int
}

// NTNum returns the number of non-terminals.
func (g *Grammar) NTNum() int { return len(g.ntNames) }

// TermNum returns the number of terminals, i.e. token_num (§3).
func (g *Grammar) TermNum() int { return len(g.termNames) }

// SymbolNum returns the total number of distinct symbol ids.
func (g *Grammar) SymbolNum() int { return g.NTNum() + g.TermNum() }

// IsTerminal reports whether id names a terminal.
func (g *Grammar) IsTerminal(id int) bool { return id >= g.NTNum() }

// IsNonTerminal reports whether id names a non-terminal.
func (g *Grammar) IsNonTerminal(id int) bool { return id >= 0 && id < g.NTNum() }

// TermIndex converts a terminal symbol id to its 0-based local
// terminal index (the index a bitset.Set lookahead set is keyed on).
func (g *Grammar) TermIndex(id int) int { return id - g.NTNum() }

// TermID converts a local terminal index back to a symbol id.
func (g *Grammar) TermID(localIdx int) int { return localIdx + g.NTNum() }

// EPS returns the terminal id of the distinguished empty symbol.
func (g *Grammar) EPS() int { return g.TermID(epsLocal) }

// EOF returns the terminal id of the distinguished end-of-input symbol.
func (g *Grammar) EOF() int { return g.TermID(eofLocal) }

// StartSymbol returns the non-terminal id of the grammar's start
// symbol (the synthetic S' if this Grammar came from Augmented).
func (g *Grammar) StartSymbol() int { return g.start }

// IsAugmented reports whether this Grammar is the result of Augmented.
func (g *Grammar) IsAugmented() bool { return g.augmentedStart != nil }

// NTName returns the declared name of non-terminal id.
func (g *Grammar) NTName(id int) string {
	if id < 0 || id >= len(g.ntNames) {
		return ""
	}
	return g.ntNames[id]
}

// TermName returns the declared name of terminal id.
func (g *Grammar) TermName(id int) string {
	li := g.TermIndex(id)
	if li < 0 || li >= len(g.termNames) {
		return ""
	}
	return g.termNames[li]
}

// SymbolName returns NTName or TermName, whichever applies to id.
func (g *Grammar) SymbolName(id int) string {
	if g.IsTerminal(id) {
		return g.TermName(id)
	}
	return g.NTName(id)
}

// NonTerminals returns all non-terminal ids in declaration order.
func (g *Grammar) NonTerminals() []int {
	ids := make([]int, g.NTNum())
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Terminals returns all terminal ids in declaration order, including
// EPS and EOF.
func (g *Grammar) Terminals() []int {
	ids := make([]int, g.TermNum())
	for i := range ids {
		ids[i] = g.TermID(i)
	}
	return ids
}

// Productions returns every production in stable index order.
func (g *Grammar) Productions() []Production { return g.productions }

// Production returns the production at index idx.
func (g *Grammar) Production(idx int) Production { return g.productions[idx] }

// ProductionsFor returns the indices of the productions with the given
// non-terminal as LHS, in declaration order.
func (g *Grammar) ProductionsFor(nt int) []int {
	if nt < 0 || nt >= len(g.byLHS) {
		return nil
	}
	return g.byLHS[nt]
}

// Precedence returns the grammar's precedence table.
func (g *Grammar) Precedence() PrecedenceTable { return g.prec }

// NTByName resolves a non-terminal name to its id.
func (g *Grammar) NTByName(name string) (int, bool) {
	id, ok := g.ntIndex[name]
	return id, ok
}

// TermByName resolves a terminal name to its id.
func (g *Grammar) TermByName(name string) (int, bool) {
	li, ok := g.termIndex[name]
	if !ok {
		return 0, false
	}
	return g.TermID(li), true
}

// Augmented returns a new Grammar G' with a synthetic start
// non-terminal S' (always the last non-terminal) and a single added
// production S' -> S EOF at index 0; every production of g is
// preserved with its Index shifted up by one to make room (§3: "The
// start symbol is a synthetic non-terminal... it is always the last
// non-terminal" and "Production 0 is the synthetic augmented start").
//
// g must not itself be augmented.
func (g *Grammar) Augmented() *Grammar {
	primeNT := g.NTNum()
	ag := &Grammar{
		ntNames:   append(append([]string{}, g.ntNames...), g.ntNames[g.start]+"'"),
		termNames: append([]string{}, g.termNames...),
		termIndex: g.termIndex,
		start:     primeNT,
	}
	ag.ntIndex = make(map[string]int, len(ag.ntNames))
	for i, n := range ag.ntNames {
		ag.ntIndex[n] = i
	}
	ag.prec = g.prec

	startProd := Production{LHS: primeNT, RHS: []int{g.start, g.EOF()}, Index: 0, Prec: -1}
	ag.productions = make([]Production, 0, len(g.productions)+1)
	ag.productions = append(ag.productions, startProd)
	for _, p := range g.productions {
		shifted := p
		shifted.Index = p.Index + 1
		ag.productions = append(ag.productions, shifted)
	}

	ag.byLHS = make([][]int, ag.NTNum())
	for _, p := range ag.productions {
		ag.byLHS[p.LHS] = append(ag.byLHS[p.LHS], p.Index)
	}

	sp := primeNT
	ag.augmentedStart = &sp
	return ag
}

// Builder assembles a Grammar from declared terminals, non-terminals,
// productions, and precedence rows, validating names at resolution
// time rather than at every call site.
type Builder struct {
	ntNames   []string
	ntIndex   map[string]int
	termNames []string
	termIndex map[string]int

	start   string
	startOK bool

	prods []pendingProduction
	prec  PrecedenceTable

	// precTermNames mirrors prec.Rows, holding the as-yet-unresolved
	// terminal names for each row until Build resolves them to ids.
	precTermNames [][]string
}

type pendingProduction struct {
	lhs    string
	rhs    []string
	prec   string
	hasPrc bool
	action interface{}
}

// NewBuilder returns a Builder with EPS and EOF pre-registered as the
// first two terminals.
func NewBuilder() *Builder {
	b := &Builder{
		ntIndex:   map[string]int{},
		termIndex: map[string]int{},
	}
	b.termNames = append(b.termNames, "$eps", "$")
	b.termIndex["$eps"] = epsLocal
	b.termIndex["$"] = eofLocal
	return b
}

// AddTerminal declares a lexical terminal in declaration order. It is
// a caller error to declare "$eps" or "$" again.
func (b *Builder) AddTerminal(name string) {
	if _, ok := b.termIndex[name]; ok {
		return
	}
	b.termIndex[name] = len(b.termNames)
	b.termNames = append(b.termNames, name)
}

// AddNonTerminal declares a non-terminal, if not already declared.
func (b *Builder) AddNonTerminal(name string) {
	if _, ok := b.ntIndex[name]; ok {
		return
	}
	b.ntIndex[name] = len(b.ntNames)
	b.ntNames = append(b.ntNames, name)
}

// SetStart declares the grammar's start symbol by name.
func (b *Builder) SetStart(name string) {
	b.start = name
	b.startOK = true
}

// AddPrecedenceRow appends a new, tightest-so-far priority row.
func (b *Builder) AddPrecedenceRow(assoc Assoc, terms ...string) {
	row := PrecRow{Assoc: assoc}
	for _, t := range terms {
		row.Terms = append(row.Terms, -1) // resolved in Build
	}
	b.prec.Rows = append(b.prec.Rows, row)
	b.precTermNames = append(b.precTermNames, terms)
}

// AddProduction declares lhs -> rhs (rhs may be empty for an epsilon
// production), with an opaque semantic action payload and an optional
// explicit precedence terminal name ("" for none).
func (b *Builder) AddProduction(lhs string, rhs []string, prec string, action interface{}) {
	b.prods = append(b.prods, pendingProduction{
		lhs: lhs, rhs: rhs, prec: prec, hasPrc: prec != "", action: action,
	})
}

// Build resolves all declared names to dense ids and returns the
// finished Grammar, or a *icterrors.GrammarError if a name is
// undefined.
func (b *Builder) Build() (*Grammar, error) {
	if !b.startOK {
		return nil, icterrors.Grammarf("grammar has no declared start symbol")
	}
	startID, ok := b.ntIndex[b.start]
	if !ok {
		return nil, icterrors.Grammarf("start symbol %q is not a declared non-terminal", b.start)
	}

	g := &Grammar{
		ntNames:   append([]string{}, b.ntNames...),
		ntIndex:   b.ntIndex,
		termNames: append([]string{}, b.termNames...),
		termIndex: b.termIndex,
		start:     startID,
	}

	// resolve precedence rows
	for i, row := range b.prec.Rows {
		resolved := make([]int, 0, len(b.precTermNames[i]))
		for _, name := range b.precTermNames[i] {
			id, ok := g.TermByName(name)
			if !ok {
				return nil, icterrors.Grammarf("precedence row references undefined terminal %q", name)
			}
			resolved = append(resolved, id)
		}
		row.Terms = resolved
		b.prec.Rows[i] = row
	}
	g.prec = b.prec

	g.productions = make([]Production, 0, len(b.prods))
	for i, pp := range b.prods {
		lhsID, ok := g.NTByName(pp.lhs)
		if !ok {
			return nil, icterrors.Grammarf("production %d: undefined non-terminal %q on LHS", i, pp.lhs)
		}
		rhs := make([]int, 0, len(pp.rhs))
		for _, sym := range pp.rhs {
			if id, ok := g.NTByName(sym); ok {
				rhs = append(rhs, id)
				continue
			}
			if id, ok := g.TermByName(sym); ok {
				rhs = append(rhs, id)
				continue
			}
			return nil, icterrors.Grammarf("production %d (%s): undefined symbol %q in RHS", i, pp.lhs, sym)
		}
		precID := -1
		if pp.hasPrc {
			id, ok := g.TermByName(pp.prec)
			if !ok {
				return nil, icterrors.Grammarf("production %d (%s): undefined precedence terminal %q", i, pp.lhs, pp.prec)
			}
			precID = id
		}
		g.productions = append(g.productions, Production{
			LHS: lhsID, RHS: rhs, Index: i, Prec: precID, Action: pp.action,
		})
	}

	g.byLHS = make([][]int, g.NTNum())
	for _, p := range g.productions {
		g.byLHS[p.LHS] = append(g.byLHS[p.LHS], p.Index)
	}

	return g, nil
}
