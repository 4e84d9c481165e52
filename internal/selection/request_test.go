package selection_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/selection"
)

const requestSubtestTemplateConstant = "%d_%s"

func validRequestInput() selection.RequestInput {
	return selection.RequestInput{
		Organization: " " + testOrganizationConstant + " ",
		SupplierType: "Service Provider",
		AuditStart:   "2024-6-5",
		AuditEnd:     "2024-06-06",
		PadDays:      "",
		Category:     " " + testWeldingCategoryConstant,
	}
}

func TestNewSelectionRequestNormalizesInput(testInstance *testing.T) {
	request, requestError := selection.NewSelectionRequest(validRequestInput())
	require.NoError(testInstance, requestError)

	require.Equal(testInstance, testOrganizationConstant, request.Organization)
	require.Equal(testInstance, records.SupplierTypeServiceProvider, request.SupplierType)
	require.Equal(testInstance, mustParseDay("2024-06-05"), request.AuditStart)
	require.Equal(testInstance, mustParseDay("2024-06-06"), request.AuditEnd)
	require.Equal(testInstance, selection.DefaultPadDaysConstant, request.PadDays)
	require.Equal(testInstance, testWeldingCategoryConstant, request.Category)
	require.False(testInstance, request.CoAuditorRequested)
	require.Empty(testInstance, request.CoAuditorPolicy)
}

func TestNewSelectionRequestParsesCoAuditorPolicy(testInstance *testing.T) {
	input := validRequestInput()
	input.CoAuditorRequested = true
	input.CoAuditorPolicy = " experienced "
	input.PadDays = "0"

	request, requestError := selection.NewSelectionRequest(input)
	require.NoError(testInstance, requestError)
	require.Equal(testInstance, decision.CoAuditorPolicyExperienced, request.CoAuditorPolicy)
	require.Equal(testInstance, 0, request.PadDays)

	input.CoAuditorRequested = false
	input.CoAuditorPolicy = "Veteran"
	_, ignoredPolicyError := selection.NewSelectionRequest(input)
	require.NoError(testInstance, ignoredPolicyError)
}

func TestNewSelectionRequestRejectsInvalidInput(testInstance *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(input *selection.RequestInput)
		expectedField string
	}{
		{name: "missing_organization", mutate: func(input *selection.RequestInput) { input.Organization = "  " }, expectedField: "organization"},
		{name: "unknown_supplier_type", mutate: func(input *selection.RequestInput) { input.SupplierType = "Vendor" }, expectedField: "supplier type"},
		{name: "malformed_start", mutate: func(input *selection.RequestInput) { input.AuditStart = "06/05/2024" }, expectedField: "audit start date"},
		{name: "malformed_end", mutate: func(input *selection.RequestInput) { input.AuditEnd = "2024-13-01" }, expectedField: "audit end date"},
		{name: "reversed_window", mutate: func(input *selection.RequestInput) { input.AuditStart = "2024-06-09" }, expectedField: "audit window"},
		{name: "non_numeric_pad", mutate: func(input *selection.RequestInput) { input.PadDays = "two" }, expectedField: "pad"},
		{name: "negative_pad", mutate: func(input *selection.RequestInput) { input.PadDays = "-1" }, expectedField: "pad"},
		{name: "excessive_pad", mutate: func(input *selection.RequestInput) { input.PadDays = "36501" }, expectedField: "pad"},
		{name: "missing_category", mutate: func(input *selection.RequestInput) { input.Category = "" }, expectedField: "material/service category"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(requestSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			input := validRequestInput()
			testCase.mutate(&input)

			_, requestError := selection.NewSelectionRequest(input)
			require.Error(testInstance, requestError)

			var invalidInputError auditerrors.InvalidInputError
			require.True(testInstance, errors.As(requestError, &invalidInputError))
			require.Equal(testInstance, testCase.expectedField, invalidInputError.Field)
		})
	}
}

func TestNewSelectionRequestRejectsUnknownPolicy(testInstance *testing.T) {
	input := validRequestInput()
	input.CoAuditorRequested = true
	input.CoAuditorPolicy = "Veteran"

	_, requestError := selection.NewSelectionRequest(input)

	var invalidPolicyError auditerrors.InvalidPolicyError
	require.True(testInstance, errors.As(requestError, &invalidPolicyError))
	require.Equal(testInstance, "Veteran", invalidPolicyError.Policy)
}

func TestNewAvailabilityRequest(testInstance *testing.T) {
	request, requestError := selection.NewAvailabilityRequest("2024-6-5", "2024-6-6", " 3 ")
	require.NoError(testInstance, requestError)
	require.Equal(testInstance, 3, request.PadDays)

	_, sameDayError := selection.NewAvailabilityRequest("2024-6-5", "2024-6-5", "")
	require.NoError(testInstance, sameDayError)

	maximumRequest, maximumError := selection.NewAvailabilityRequest("2024-6-5", "2024-6-6", "36500")
	require.NoError(testInstance, maximumError)
	require.Equal(testInstance, 36500, maximumRequest.PadDays)

	for _, excessivePad := range []string{"36501", "4611686018427387903", "99999999999999999999"} {
		_, excessiveError := selection.NewAvailabilityRequest("2024-06-05", "2024-06-06", excessivePad)
		var invalidInputError auditerrors.InvalidInputError
		require.True(testInstance, errors.As(excessiveError, &invalidInputError))
		require.Equal(testInstance, "pad", invalidInputError.Field)
	}
}
