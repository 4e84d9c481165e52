package selection

import (
	"time"

	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
)

// DefaultPadDaysConstant is the preparation and reporting pad applied when none is requested.
const DefaultPadDaysConstant = 1

// RequestInput carries the raw values collected by a front end before validation.
type RequestInput struct {
	Organization       string
	SupplierType       string
	AuditStart         string
	AuditEnd           string
	PadDays            string
	Category           string
	CoAuditorRequested bool
	CoAuditorPolicy    string
}

// SelectionRequest is the validated, read-only description of one selection run.
type SelectionRequest struct {
	Organization       string
	SupplierType       records.SupplierType
	AuditStart         time.Time
	AuditEnd           time.Time
	PadDays            int
	Category           string
	CoAuditorRequested bool
	CoAuditorPolicy    decision.CoAuditorPolicy
}

// AvailabilityRequest describes the window checked by an availability-only run.
type AvailabilityRequest struct {
	AuditStart time.Time
	AuditEnd   time.Time
	PadDays    int
}

// AvailabilityResult lists the auditors free during the padded window.
type AvailabilityResult struct {
	RunID             string
	Window            roster.Window
	AvailableAuditors []string
}

// Result collects every stage output of a selection run. Decided is false when the run failed before a lead was chosen.
type Result struct {
	RunID             string
	Request           SelectionRequest
	Window            roster.Window
	AvailableAuditors []string
	RankedAuditors    []experience.RankedAuditor
	Decision          decision.Decision
	Decided           bool
}
