/*
Ictiobus compiles a TOML grammar description into an LALR(1) or LL(1)
parse table artifact.

Usage:

	ictiobus [flags] GRAMMAR_FILE

The flags are:

	-v, --version
		Give the current version of ictiobus and then exit.

	-o, --out FILE
		Write the binary-encoded artifact to FILE. Defaults to
		"parser.ictbin" in the current working directory.

	--ll1
		Build an LL(1) table instead of the default LALR(1) table.

	--verbose
		Print a text dump of the finished table to stdout in addition
		to writing the binary artifact.

	--dot FILE
		Additionally render the FSM (or, with --ll1, nothing — LL(1)
		has no automaton to render) as Graphviz DOT to FILE.

GRAMMAR_FILE is a TOML document with `start`, `priority`, `lexical`,
and `production` sections; see grammardesc for the exact shape.

Every conflict encountered while resolving the table is printed to
stderr as it is found; generation continues regardless.
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dekarrin/ictiobus/artifact"
	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/conflict"
	"github.com/dekarrin/ictiobus/first"
	"github.com/dekarrin/ictiobus/follow"
	"github.com/dekarrin/ictiobus/grammardesc"
	"github.com/dekarrin/ictiobus/lalr"
	"github.com/dekarrin/ictiobus/ll1"
	"github.com/dekarrin/ictiobus/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitValidationError indicates the grammar description failed to
	// decode or resolve.
	ExitValidationError

	// ExitIOError indicates a problem reading the grammar file or
	// writing an output artifact.
	ExitIOError
)

// version is the ictiobus release printed by --version; there is no
// attached build pipeline, so this is a fixed placeholder.
const version = "v0.0.0-dev"

var (
	returnCode  int
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagOut     = pflag.StringP("out", "o", "parser.ictbin", "File to write the binary-encoded artifact to")
	flagLL1     = pflag.Bool("ll1", false, "Build an LL(1) table instead of LALR(1)")
	flagVerbose = pflag.Bool("verbose", false, "Print a text dump of the finished table to stdout")
	flagDOT     = pflag.String("dot", "", "Additionally render the FSM as Graphviz DOT to this file")
)

// buildStart is process-start time, read once by the timing counter
// printed at the end of a run; the only global mutable state in this
// program, confined entirely to the CLI's own timing display (§5).
var buildStart = time.Now()

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("ictiobus %s\n", version)
		return
	}

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: a grammar file argument is required")
		returnCode = ExitValidationError
		return
	}

	grammarPath := pflag.Arg(0)
	doc, err := grammardesc.Load(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitValidationError
		return
	}

	g, err := doc.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitValidationError
		return
	}

	reportConflict := func(msg string) {
		fmt.Fprintf(os.Stderr, "conflict: %s\n", msg)
	}

	var outData []byte
	var stateCount int

	if *flagLL1 {
		ft := first.Compute(g)
		flw := follow.Compute(g, ft)
		llTable := ll1.Build(g, func(msg string) { reportConflict(msg) })
		art := artifact.AssembleLL(g, llTable, flw)

		if *flagVerbose {
			fmt.Println(artifact.DumpLLTable(art, g))
		}
		outData = artifact.Encode(art)
	} else {
		ag := g.Augmented()
		lr1 := automaton.BuildCanonicalCollection(ag)
		reduced := lalr.Reduce(lr1)
		raw := table.BuildActions(reduced)
		resolved := conflict.Resolve(raw, ag, reportConflict)
		art := artifact.AssembleLR(resolved)
		stateCount = art.FSMSize

		if *flagVerbose {
			fmt.Println(artifact.DumpTable(art, ag))
		}
		if *flagDOT != "" {
			if err := os.WriteFile(*flagDOT, []byte(artifact.DOTFromFSM(art.ID.String(), resolved.FSM)), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: writing DOT file: %s\n", err.Error())
				returnCode = ExitIOError
				return
			}
		}
		outData = artifact.Encode(art)
	}

	if err := os.WriteFile(*flagOut, outData, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: writing artifact: %s\n", err.Error())
		returnCode = ExitIOError
		return
	}

	elapsed := humanize.RelTime(buildStart, time.Now(), "", "")
	if stateCount > 0 {
		fmt.Printf("wrote %s (%s, %s states) in %s\n", *flagOut, humanize.Bytes(uint64(len(outData))), humanize.Comma(int64(stateCount)), elapsed)
	} else {
		fmt.Printf("wrote %s (%s) in %s\n", *flagOut, humanize.Bytes(uint64(len(outData))), elapsed)
	}
}
