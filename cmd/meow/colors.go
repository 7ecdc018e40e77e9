package main

import (
	"github.com/logrusorgru/aurora/v4"

	"github.com/meow-lang/meow-lang/internal/interp"
)

func formatValue(value interp.Value, colorize bool) string {
	if value == nil {
		return ""
	}
	if !colorize {
		return value.String()
	}
	return aurora.Colorize(value.String(), aurora.YellowFg|aurora.BrightFg).String()
}

func colorizeError(message string, colorize bool) string {
	if !colorize {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
