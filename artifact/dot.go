package artifact

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lexer"
)

// DOTFromFSM renders fsm as a Graphviz DOT digraph: one node per
// state, labeled with its id and item summary, one edge per
// transition labeled with the symbol name. Accepting states (those
// with at least one Accept action reachable from their items) are
// drawn as a doublecircle (§6 "DOT-format renderings... of the FSM").
func DOTFromFSM(id string, fsm *automaton.FSM) string {
	g := fsm.Grammar
	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph FSM_%s {\n", sanitizeID(id))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box fontname=\"monospace\"];\n")

	for stateID, node := range fsm.Nodes {
		shape := "box"
		if isAccepting(node.State, g) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  s%d [shape=%s label=%q];\n", stateID, shape, stateLabel(stateID, node.State, g))
	}

	for stateID, node := range fsm.Nodes {
		for sym, target := range node.Trans {
			fmt.Fprintf(&sb, "  s%d -> s%d [label=%q];\n", stateID, target, g.SymbolName(sym))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func isAccepting(s automaton.State, g *grammar.Grammar) bool {
	for _, it := range s.Items {
		if it.AtEnd(g) && g.Production(it.Prod).LHS == g.StartSymbol() {
			return true
		}
	}
	return false
}

func stateLabel(id int, s automaton.State, g *grammar.Grammar) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I%d\\n", id)
	for i, it := range s.Items {
		p := g.Production(it.Prod)
		fmt.Fprintf(&sb, "%s ->", g.NTName(p.LHS))
		for k, sym := range p.RHS {
			if k == it.Dot {
				sb.WriteString(" .")
			}
			fmt.Fprintf(&sb, " %s", g.SymbolName(sym))
		}
		if it.Dot == len(p.RHS) {
			sb.WriteString(" .")
		}
		sb.WriteString("\\n")
		_ = i
	}
	return sb.String()
}

func sanitizeID(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// DOTFromLexerDFA renders an external lexer DFA (§6 "Lexer DFA input")
// as a Graphviz DOT digraph, one node per DFA node and one edge per
// distinct equivalence-class transition.
func DOTFromLexerDFA(id string, d *lexer.DFA) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph DFA_%s {\n", sanitizeID(id))
	sb.WriteString("  rankdir=LR;\n")

	for i, n := range d.Nodes {
		shape := "circle"
		if n.Accept >= 0 {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  n%d [shape=%s label=\"%d\"];\n", i, shape, i)
	}

	for i, n := range d.Nodes {
		for class, target := range n.Edges {
			fmt.Fprintf(&sb, "  n%d -> n%d [label=\"class %d\"];\n", i, target, class)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
