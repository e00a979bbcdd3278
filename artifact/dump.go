package artifact

import (
	"fmt"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/table"
	"github.com/dekarrin/rosed"
)

// DumpTable renders a's action/goto table as a formatted text table,
// one row per state, one column per terminal and non-terminal, in the
// same verbose-dump style the core's teacher used for its own
// canonical-LR(1) table print-out.
func DumpTable(a *LR, g *grammar.Grammar) string {
	header := []string{"state", "|"}
	for _, id := range g.Terminals() {
		header = append(header, g.TermName(id))
	}
	header = append(header, "|")
	for _, id := range g.NonTerminals() {
		header = append(header, g.NTName(id))
	}

	data := [][]string{header}
	for state := 0; state < a.FSMSize; state++ {
		row := []string{fmt.Sprintf("%d", state), "|"}
		for localTerm := 0; localTerm < a.TermNum; localTerm++ {
			row = append(row, cellString(a.Action[state][localTerm]))
		}
		row = append(row, "|")
		for nt := 0; nt < a.NTNum; nt++ {
			target := a.Goto[state][nt]
			if target < 0 {
				row = append(row, "")
			} else {
				row = append(row, fmt.Sprintf("%d", target))
			}
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func cellString(a table.Action) string {
	switch a.Type {
	case table.Shift:
		return fmt.Sprintf("s%d", a.Target)
	case table.Reduce:
		return fmt.Sprintf("r%d", a.Prod)
	case table.Accept:
		return "acc"
	default:
		return ""
	}
}

// DumpLLTable renders an LL artifact's per-non-terminal dispatch table
// in the same tabular style as DumpTable.
func DumpLLTable(a *LL, g *grammar.Grammar) string {
	header := []string{"non-terminal", "|"}
	for _, id := range g.Terminals() {
		header = append(header, g.TermName(id))
	}

	data := [][]string{header}
	for nt := 0; nt < a.NTNum; nt++ {
		row := []string{g.NTName(nt), "|"}
		for localTerm := 0; localTerm < a.TermNum; localTerm++ {
			prod := a.Table[nt][localTerm]
			if prod < 0 {
				row = append(row, "")
			} else {
				row = append(row, fmt.Sprintf("p%d", prod))
			}
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
