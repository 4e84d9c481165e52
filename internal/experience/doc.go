// Package experience ranks candidate auditors by historical involvement in a
// material or service category.
//
// Ranking runs in two stages. Raw auditor fields are tallied as they appear in the
// history, then Expand splits comma-separated fields into individual
// contributions: the first name is the lead and earns a full point per occurrence,
// every following name is a co-auditor and earns half a point.
package experience
