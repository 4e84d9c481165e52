package auditerrors

import (
	"fmt"
	"strings"
)

const (
	invalidInputTemplateConstant             = "invalid %s %q: %s"
	invalidInputWithoutValueTemplateConstant = "invalid %s: %s"
	invalidInputMessageTemplateConstant      = "ERROR: Please provide a valid %s (%s)."
	invalidPolicyTemplateConstant            = "invalid co-auditor policy %q: expected Experienced or New"
	invalidPolicyMessageConstant             = "ERROR: Please select the co-auditor type (Experienced/New)."
	emptyCandidatesTemplateConstant          = "no eligible lead auditor for category %q"
	emptyCandidatesMessageConstant           = "No eligible lead auditor: no available auditor has matching experience."
	insufficientCandidatesTemplateConstant   = "only %d candidate available; cannot name an experienced co-auditor"
	insufficientCandidatesMessageConstant    = "Only one candidate; cannot name a second."
)

// MessageProvider exposes a user-facing description of a failure.
type MessageProvider interface {
	Message() string
}

// InvalidInputError reports a malformed selection request value. It is raised before any data source is read.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

// Error describes the offending field and value.
func (inputError InvalidInputError) Error() string {
	if len(strings.TrimSpace(inputError.Value)) == 0 {
		return fmt.Sprintf(invalidInputWithoutValueTemplateConstant, inputError.Field, inputError.Reason)
	}
	return fmt.Sprintf(invalidInputTemplateConstant, inputError.Field, inputError.Value, inputError.Reason)
}

// Message returns the prompt-style correction hint shown to operators.
func (inputError InvalidInputError) Message() string {
	return fmt.Sprintf(invalidInputMessageTemplateConstant, inputError.Field, inputError.Reason)
}

// InvalidPolicyError reports an unrecognized co-auditor policy.
type InvalidPolicyError struct {
	Policy string
}

// Error describes the rejected policy.
func (policyError InvalidPolicyError) Error() string {
	return fmt.Sprintf(invalidPolicyTemplateConstant, policyError.Policy)
}

// Message returns the operator-facing correction hint.
func (policyError InvalidPolicyError) Message() string {
	return invalidPolicyMessageConstant
}

// EmptyCandidatesError reports that no lead auditor can be chosen.
type EmptyCandidatesError struct {
	Category string
}

// Error describes the category that produced no candidates.
func (candidatesError EmptyCandidatesError) Error() string {
	return fmt.Sprintf(emptyCandidatesTemplateConstant, candidatesError.Category)
}

// Message returns the terminal outcome shown to operators.
func (candidatesError EmptyCandidatesError) Message() string {
	return emptyCandidatesMessageConstant
}

// InsufficientCandidatesError reports that an experienced co-auditor was requested with a single candidate.
type InsufficientCandidatesError struct {
	Available int
}

// Error describes how many candidates were available.
func (candidatesError InsufficientCandidatesError) Error() string {
	return fmt.Sprintf(insufficientCandidatesTemplateConstant, candidatesError.Available)
}

// Message returns the terminal outcome shown to operators.
func (candidatesError InsufficientCandidatesError) Message() string {
	return insufficientCandidatesMessageConstant
}
