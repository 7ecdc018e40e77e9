package main

import (
	"flag"
	"fmt"
	"os"

	meow "github.com/meow-lang/meow-lang"
	"github.com/meow-lang/meow-lang/internal/diag"
)

const (
	exitUsage   = 64
	exitDataErr = 65 // lex or parse error
	exitNoInput = 66
	exitRuntime = 70 // runtime error
)

func main() {
	noColor := flag.Bool("no-color", false, "disable colored output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: meow [options] [script]\n")
		fmt.Fprintf(os.Stderr, "\nWith no script, meow starts an interactive prompt.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	colorize := !*noColor

	switch flag.NArg() {
	case 0:
		runREPL(colorize)
	case 1:
		os.Exit(runFile(flag.Arg(0), colorize))
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(path string, colorize bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meow: %v\n", err)
		return exitNoInput
	}

	result := meow.Run(string(source),
		meow.WithFilename(path),
		meow.WithOutput(os.Stdout),
	)

	if result.Failed() {
		formatter := diag.NewFormatter(os.Stderr, colorize)
		formatter.Format(*result.Diagnostic)
		if result.Diagnostic.Stage == diag.StageEval {
			return exitRuntime
		}
		return exitDataErr
	}

	return 0
}
