// Package datasource loads audit history, auditor rosters, and schedules from the
// tabular files and databases maintained by the compliance team.
//
// History is read from CSV exports or an SQLite database. Rosters and schedules are
// read from YAML, TOML, or the same SQLite database. Every load produces a fresh
// snapshot so concurrent selection runs never share mutable state.
package datasource
