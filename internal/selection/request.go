package selection

import (
	"strconv"
	"strings"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
)

const (
	organizationFieldConstant  = "organization"
	supplierTypeFieldConstant  = "supplier type"
	auditStartFieldConstant    = "audit start date"
	auditEndFieldConstant      = "audit end date"
	padFieldConstant           = "pad"
	categoryFieldConstant      = "material/service category"
	auditWindowFieldConstant   = "audit window"
	requiredReasonConstant     = "a value is required"
	supplierTypeReasonConstant = "expected Supplier or Service Provider"
	dateFormatReasonConstant   = "expected YYYY-M-D"
	padReasonConstant          = "expected a whole number of days from 0 to 36500"
	windowOrderReasonConstant  = "start date must not be after end date"
)

// NewSelectionRequest validates raw front-end input. Every failure is an InvalidInputError or, for the
// co-auditor type, an InvalidPolicyError; no data source is consulted.
func NewSelectionRequest(input RequestInput) (SelectionRequest, error) {
	organization := strings.TrimSpace(input.Organization)
	if len(organization) == 0 {
		return SelectionRequest{}, auditerrors.InvalidInputError{Field: organizationFieldConstant, Reason: requiredReasonConstant}
	}

	supplierType, supplierTypeKnown := records.ParseSupplierType(input.SupplierType)
	if !supplierTypeKnown {
		return SelectionRequest{}, auditerrors.InvalidInputError{Field: supplierTypeFieldConstant, Value: strings.TrimSpace(input.SupplierType), Reason: supplierTypeReasonConstant}
	}

	availabilityRequest, availabilityError := NewAvailabilityRequest(input.AuditStart, input.AuditEnd, input.PadDays)
	if availabilityError != nil {
		return SelectionRequest{}, availabilityError
	}

	category := strings.TrimSpace(input.Category)
	if len(category) == 0 {
		return SelectionRequest{}, auditerrors.InvalidInputError{Field: categoryFieldConstant, Reason: requiredReasonConstant}
	}

	selectionRequest := SelectionRequest{
		Organization:       organization,
		SupplierType:       supplierType,
		AuditStart:         availabilityRequest.AuditStart,
		AuditEnd:           availabilityRequest.AuditEnd,
		PadDays:            availabilityRequest.PadDays,
		Category:           category,
		CoAuditorRequested: input.CoAuditorRequested,
	}

	if input.CoAuditorRequested {
		policy, policyError := decision.ParseCoAuditorPolicy(input.CoAuditorPolicy)
		if policyError != nil {
			return SelectionRequest{}, policyError
		}
		selectionRequest.CoAuditorPolicy = policy
	}

	return selectionRequest, nil
}

// NewAvailabilityRequest validates the audit window and pad. A blank pad selects DefaultPadDaysConstant.
func NewAvailabilityRequest(rawStart string, rawEnd string, rawPadDays string) (AvailabilityRequest, error) {
	auditStart, startError := dates.Parse(rawStart)
	if startError != nil {
		return AvailabilityRequest{}, auditerrors.InvalidInputError{Field: auditStartFieldConstant, Value: strings.TrimSpace(rawStart), Reason: dateFormatReasonConstant}
	}

	auditEnd, endError := dates.Parse(rawEnd)
	if endError != nil {
		return AvailabilityRequest{}, auditerrors.InvalidInputError{Field: auditEndFieldConstant, Value: strings.TrimSpace(rawEnd), Reason: dateFormatReasonConstant}
	}

	if auditStart.After(auditEnd) {
		return AvailabilityRequest{}, auditerrors.InvalidInputError{Field: auditWindowFieldConstant, Value: dates.Format(auditStart) + ".." + dates.Format(auditEnd), Reason: windowOrderReasonConstant}
	}

	padDays, padError := parsePadDays(rawPadDays)
	if padError != nil {
		return AvailabilityRequest{}, padError
	}

	return AvailabilityRequest{AuditStart: auditStart, AuditEnd: auditEnd, PadDays: padDays}, nil
}

func parsePadDays(rawPadDays string) (int, error) {
	trimmedPadDays := strings.TrimSpace(rawPadDays)
	if len(trimmedPadDays) == 0 {
		return DefaultPadDaysConstant, nil
	}

	padDays, conversionError := strconv.Atoi(trimmedPadDays)
	if conversionError != nil || padDays < 0 || padDays > roster.MaximumPadDaysConstant {
		return 0, auditerrors.InvalidInputError{Field: padFieldConstant, Value: trimmedPadDays, Reason: padReasonConstant}
	}
	return padDays, nil
}
