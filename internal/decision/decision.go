package decision

import (
	"strings"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/experience"
)

// CoAuditorPolicy selects which ranked candidate becomes the co-auditor.
type CoAuditorPolicy string

// Supported co-auditor policies.
const (
	CoAuditorPolicyExperienced CoAuditorPolicy = "Experienced"
	CoAuditorPolicyNew         CoAuditorPolicy = "New"
)

// ParseCoAuditorPolicy resolves a policy name case-insensitively.
func ParseCoAuditorPolicy(rawValue string) (CoAuditorPolicy, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	switch {
	case strings.EqualFold(trimmedValue, string(CoAuditorPolicyExperienced)):
		return CoAuditorPolicyExperienced, nil
	case strings.EqualFold(trimmedValue, string(CoAuditorPolicyNew)):
		return CoAuditorPolicyNew, nil
	default:
		return "", auditerrors.InvalidPolicyError{Policy: trimmedValue}
	}
}

// Decision is the outcome of a selection: a lead and an optional co-auditor.
type Decision struct {
	Lead              string
	CoAuditor         string
	CoAuditorAssigned bool
}

// CoAuditorIsLead reports the degenerate outcome where the New policy picked the lead itself.
func (decision Decision) CoAuditorIsLead() bool {
	return decision.CoAuditorAssigned && decision.CoAuditor == decision.Lead
}

// Decide takes the top-ranked candidate as lead. When a co-auditor is requested the Experienced policy takes
// the second-ranked candidate and the New policy takes the lowest-ranked candidate, which may be the lead.
func Decide(rankedAuditors []experience.RankedAuditor, coAuditorRequested bool, policy CoAuditorPolicy) (Decision, error) {
	if len(rankedAuditors) == 0 {
		return Decision{}, auditerrors.EmptyCandidatesError{}
	}

	decision := Decision{Lead: rankedAuditors[0].Auditor}
	if !coAuditorRequested {
		return decision, nil
	}

	switch policy {
	case CoAuditorPolicyExperienced:
		if len(rankedAuditors) < 2 {
			return Decision{}, auditerrors.InsufficientCandidatesError{Available: len(rankedAuditors)}
		}
		decision.CoAuditor = rankedAuditors[1].Auditor
	case CoAuditorPolicyNew:
		decision.CoAuditor = rankedAuditors[len(rankedAuditors)-1].Auditor
	default:
		return Decision{}, auditerrors.InvalidPolicyError{Policy: string(policy)}
	}

	decision.CoAuditorAssigned = true
	return decision, nil
}
