// Package ui renders selection runs for operators at the console.
//
// ConsoleReporter receives the stage outputs of a selection run and prints them with
// lipgloss styles: prompts in cyan, results in green and failures in red. Styles degrade
// to plain text when the output is not a terminal.
package ui
