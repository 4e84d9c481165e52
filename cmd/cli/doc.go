// Package cli constructs the las command-line interface, wiring the Cobra
// command hierarchy, configuration loader, structured logging and the console
// reporter used by the select and availability commands.
package cli
