// Package decision picks the lead auditor and, on request, a co-auditor from a ranked candidate list.
package decision
