// Package flags provides flag helpers shared by the selection commands: enumerated choice
// usage strings and yes/no toggles mirroring the prompts operators already know.
package flags
