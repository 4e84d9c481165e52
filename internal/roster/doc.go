// Package roster models the auditor roster and committed schedule, and computes
// which auditors are free during a padded audit window.
package roster
