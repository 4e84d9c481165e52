// Package selection runs the lead auditor selection pipeline and exposes it as Cobra commands.
//
// A run validates the SelectionRequest before touching any data, loads immutable snapshots of
// the audit history, roster, and schedule, and then chains record parsing, availability
// filtering, experience ranking, and the lead/co-auditor decision. Presentation is delegated
// to a Reporter so the pipeline only returns structured results.
package selection
