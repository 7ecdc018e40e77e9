package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	meow "github.com/meow-lang/meow-lang"
	"github.com/meow-lang/meow-lang/internal/diag"
)

const replHelpMessage = `
Enter statements to evaluate them.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the interpreter
.help     Print this help message

Press ^C to abort the current line, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

var replSuggestions = []prompt.Suggest{
	{Text: "meow", Description: "declare or rebind a variable"},
	{Text: "purr", Description: "print a value"},
	{Text: "grr", Description: "if"},
	{Text: "grrr", Description: "else"},
	{Text: "mrrr", Description: "while"},
	{Text: "prrr", Description: "declare a function"},
	{Text: "mew", Description: "return from a function"},
	{Text: "and", Description: "logical and"},
	{Text: "or", Description: "logical or"},
	{Text: "true", Description: "boolean literal"},
	{Text: "false", Description: "boolean literal"},
	{Text: "nil", Description: "no value"},
	{Text: "PSPSPS", Description: "equal"},
	{Text: "HISSS", Description: "not equal"},
	{Text: "TAIL_UP", Description: "greater than"},
	{Text: "TAIL_UP_UP", Description: "greater or equal"},
	{Text: "TAIL_DOWN", Description: "less than"},
	{Text: "TAIL_DOWN_DOWN", Description: "less or equal"},
}

func runREPL(colorize bool) {
	printReplWelcome()

	session := meow.NewSession()
	formatter := diag.NewFormatter(os.Stderr, colorize)

	executor := func(line string) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return
		}

		if strings.HasPrefix(trimmed, ".") {
			handleCommand(trimmed, colorize)
			return
		}

		result := session.Run(line, meow.WithOutput(os.Stdout))
		if result.Failed() {
			formatter.Format(*result.Diagnostic)
			return
		}

		if result.Value != nil {
			fmt.Println(formatValue(result.Value, colorize))
		}
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 {
			return nil
		}
		return prompt.FilterHasPrefix(replSuggestions, word, false)
	}

	prompt.New(executor, suggest,
		prompt.OptionPrefix("meow> "),
	).Run()
}

func handleCommand(command string, colorize bool) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage), colorize))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to meow %s!\n%s\n\n", meow.Version, replAssistanceMessage)
}
