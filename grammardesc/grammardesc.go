// Package grammardesc decodes the declarative TOML grammar-description
// document of §6 ("Input: grammar description") and resolves it into a
// grammar.Grammar.
package grammardesc

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/icterrors"
)

// PrecRow is one `priority` row of the document.
type PrecRow struct {
	Assoc string   `toml:"assoc"` // "Left", "Right", or "NoAssoc"
	Terms []string `toml:"terms"`
}

// Lexical is one `lexical` entry: a regular expression paired with the
// terminal name it produces. The regex itself is opaque to this core
// (compiling it to a DFA is an external collaborator's job, §13
// Non-goals); it is carried through only so an emitter can hand it to
// that collaborator.
type Lexical struct {
	Regex string `toml:"regex"`
	Term  string `toml:"term"`
}

// ProductionDesc is one `production` entry. RHS is a whitespace
// separated symbol list, split at Resolve time.
type ProductionDesc struct {
	LHS    string `toml:"lhs"`
	RHS    string `toml:"rhs"`
	Prec   string `toml:"prec"`
	Action string `toml:"semantic_action"`
}

// Doc is the decoded, not-yet-resolved grammar description.
type Doc struct {
	Start      string           `toml:"start"`
	Priority   []PrecRow        `toml:"priority"`
	Lexical    []Lexical        `toml:"lexical"`
	Production []ProductionDesc `toml:"production"`
}

// Decode parses TOML source into a Doc.
func Decode(data []byte) (*Doc, error) {
	var d Doc
	if _, err := toml.Decode(string(data), &d); err != nil {
		return nil, icterrors.Grammarf("decode grammar description: %v", err)
	}
	return &d, nil
}

// Load reads and decodes the grammar description at path.
func Load(path string) (*Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, icterrors.WrapGrammar(err, "read grammar description")
	}
	return Decode(data)
}

var assocNames = map[string]grammar.Assoc{
	"Left":    grammar.Left,
	"Right":   grammar.Right,
	"NoAssoc": grammar.NoAssoc,
}

// Resolve builds a grammar.Grammar from the document: terminals are
// declared in the order they appear under `lexical`, non-terminals and
// productions in the order they appear under `production`, and
// `priority` rows become the grammar's precedence table in document
// order (row 0 is the loosest-binding, per §3 "higher index = tighter
// binding").
func (d *Doc) Resolve() (*grammar.Grammar, error) {
	b := grammar.NewBuilder()

	for _, lex := range d.Lexical {
		if lex.Term == "" {
			return nil, icterrors.Grammarf("lexical entry with regex %q has no terminal name", lex.Regex)
		}
		b.AddTerminal(lex.Term)
	}

	for _, p := range d.Production {
		if p.LHS == "" {
			return nil, icterrors.Grammarf("production missing lhs")
		}
		b.AddNonTerminal(p.LHS)
	}

	if d.Start == "" {
		return nil, icterrors.Grammarf("grammar description has no start symbol")
	}
	b.SetStart(d.Start)

	for _, row := range d.Priority {
		assoc, ok := assocNames[row.Assoc]
		if !ok {
			return nil, icterrors.Grammarf("priority row has unknown associativity %q", row.Assoc)
		}
		b.AddPrecedenceRow(assoc, row.Terms...)
	}

	for _, p := range d.Production {
		rhs := splitSymbols(p.RHS)
		b.AddProduction(p.LHS, rhs, p.Prec, p.Action)
	}

	return b.Build()
}

func splitSymbols(rhs string) []string {
	var symbols []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			symbols = append(symbols, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range rhs {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			flush()
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return symbols
}
