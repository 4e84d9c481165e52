// Package auditerrors defines the failure taxonomy reported by auditor selection runs.
//
// Every error carries a user-facing Message so command-line front ends can report the
// outcome without inspecting the concrete type, while callers that need to branch on
// the failure use errors.As with the exported types.
package auditerrors
