/*
File    : go-mix/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command gomix is the outer collaborator around the interpreter core:
// zero positional arguments starts the REPL, one reads and runs a file,
// more than one is a usage error (spec §6). Banner/flag presentation is
// kept from the teacher's CLI; the TCP server mode is dropped (see
// DESIGN.md) since nothing in the spec calls for a network protocol.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/fatih/color"
)

const (
	version = "1.0.0"
	author  = "Akash Maji <akashmaji(@iisc.ac.in)>"
	license = "MIT"
	line    = "-------------------------------------------"
	banner  = `
   ____           __  __ _
  / ___| ___     |  \/  (_)_  __
 | |  _ / _ \    | |\/| | \ \/ /
 | |_| | (_) |   | |  | | |>  <
  \____|\___/    |_|  |_|_/_/\_\
`
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		runRepl()
	case len(args) == 1 && (args[0] == "--help" || args[0] == "-h"):
		printUsage()
	case len(args) == 1 && (args[0] == "--version" || args[0] == "-v"):
		fmt.Println("go-mix version " + version)
	case len(args) == 1:
		runFile(args[0])
	default:
		printUsage()
		os.Exit(64)
	}
}

func printUsage() {
	fmt.Println("usage: gomix [script]")
	fmt.Println("  with no arguments, starts an interactive REPL")
	fmt.Println("  with one argument, interprets the named file")
}

func runRepl() {
	r := repl.NewRepl(banner, version, author, line, license, "gm >>> ")
	r.Start(os.Stdin, os.Stdout)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(74)
	}

	toks, lexErr := lexer.NewLexer(string(src)).ConsumeTokens()
	if lexErr != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", lexErr.Message)
		os.Exit(65)
	}

	stmts, parseErrs := parser.NewParser(toks).Parse()
	if parseErrs != nil {
		for _, e := range parseErrs {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", e.Message)
		}
		os.Exit(65)
	}

	executeFileWithRecovery(stmts)
}

// executeFileWithRecovery runs the interpreted program, recovering from
// any unexpected panic the same way repl.go's executeWithRecovery does
// at the REPL boundary, so a host panic exits 70 instead of crashing
// uncaught.
func executeFileWithRecovery(stmts []parser.Stmt) {
	defer func() {
		if recovered := recover(); recovered != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(70)
		}
	}()

	interp := eval.New(os.Stdout, os.Stdin)
	if runErr := interp.Interpret(stmts); runErr != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", runErr.Message)
		os.Exit(70)
	}
}
