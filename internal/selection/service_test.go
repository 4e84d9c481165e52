package selection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/selection"
	"github.com/temirov/las/internal/utils"
)

func scenarioRequest(coAuditorRequested bool, policy decision.CoAuditorPolicy) selection.SelectionRequest {
	return selection.SelectionRequest{
		Organization:       testOrganizationConstant,
		SupplierType:       records.SupplierTypeSupplier,
		AuditStart:         mustParseDay("2024-06-05"),
		AuditEnd:           mustParseDay("2024-06-06"),
		PadDays:            1,
		Category:           testWeldingCategoryConstant,
		CoAuditorRequested: coAuditorRequested,
		CoAuditorPolicy:    policy,
	}
}

func TestServiceSelectEndToEnd(testInstance *testing.T) {
	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	reporter := &recordingReporter{}
	historySource := scenarioHistorySource()
	rosterSource := scenarioRosterSource()

	service, serviceError := selection.NewService(zap.New(observedCore), historySource, rosterSource, reporter)
	require.NoError(testInstance, serviceError)

	result, selectError := service.Select(context.Background(), scenarioRequest(true, decision.CoAuditorPolicyNew))
	require.NoError(testInstance, selectError)

	require.Equal(testInstance, []string{testAuditorBConstant, testAuditorCConstant}, result.AvailableAuditors)
	require.Equal(testInstance, mustParseDay("2024-06-03"), result.Window.Start)
	require.Equal(testInstance, mustParseDay("2024-06-08"), result.Window.End)
	require.Equal(testInstance, []experience.RankedAuditor{
		{Auditor: testAuditorBConstant, Score: 1.5},
		{Auditor: testAuditorCConstant, Score: 1.0},
	}, result.RankedAuditors)
	require.True(testInstance, result.Decided)
	require.Equal(testInstance, decision.Decision{Lead: testAuditorBConstant, CoAuditor: testAuditorCConstant, CoAuditorAssigned: true}, result.Decision)

	require.Len(testInstance, reporter.availability, 1)
	require.Len(testInstance, reporter.rankings, 1)
	require.Equal(testInstance, []decision.Decision{result.Decision}, reporter.decisions)

	require.NotEmpty(testInstance, result.RunID)
	accessor := utils.NewCommandContextAccessor()
	for _, loadContext := range append(historySource.contexts, rosterSource.contexts...) {
		runIdentifier, runIdentifierAvailable := accessor.RunIdentifier(loadContext)
		require.True(testInstance, runIdentifierAvailable)
		require.Equal(testInstance, result.RunID, runIdentifier)
	}

	require.Equal(testInstance, 1, observedLogs.FilterMessage("selection decided").Len())
	require.Equal(testInstance, 2, observedLogs.FilterMessage("candidate score").Len())
}

func TestServiceSelectPolicies(testInstance *testing.T) {
	testCases := []struct {
		name               string
		coAuditorRequested bool
		policy             decision.CoAuditorPolicy
		expectedDecision   decision.Decision
	}{
		{
			name:             "lead_only",
			expectedDecision: decision.Decision{Lead: testAuditorBConstant},
		},
		{
			name:               "experienced_second",
			coAuditorRequested: true,
			policy:             decision.CoAuditorPolicyExperienced,
			expectedDecision:   decision.Decision{Lead: testAuditorBConstant, CoAuditor: testAuditorCConstant, CoAuditorAssigned: true},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			service, serviceError := selection.NewService(zap.NewNop(), scenarioHistorySource(), scenarioRosterSource(), nil)
			require.NoError(testInstance, serviceError)

			result, selectError := service.Select(context.Background(), scenarioRequest(testCase.coAuditorRequested, testCase.policy))
			require.NoError(testInstance, selectError)
			require.Equal(testInstance, testCase.expectedDecision, result.Decision)
		})
	}
}

func TestServiceSelectEmptyCandidates(testInstance *testing.T) {
	reporter := &recordingReporter{}
	service, serviceError := selection.NewService(zap.NewNop(), scenarioHistorySource(), scenarioRosterSource(), reporter)
	require.NoError(testInstance, serviceError)

	request := scenarioRequest(false, "")
	request.Category = "Painting"

	result, selectError := service.Select(context.Background(), request)
	require.Error(testInstance, selectError)

	var emptyCandidatesError auditerrors.EmptyCandidatesError
	require.True(testInstance, errors.As(selectError, &emptyCandidatesError))
	require.Equal(testInstance, "Painting", emptyCandidatesError.Category)
	require.False(testInstance, result.Decided)
	require.Empty(testInstance, result.RankedAuditors)
	require.Equal(testInstance, []string{testAuditorBConstant, testAuditorCConstant}, result.AvailableAuditors)
	require.Empty(testInstance, reporter.decisions)
}

func TestServiceSelectServiceProviderUsesServiceHistory(testInstance *testing.T) {
	rosterSource := scenarioRosterSource()
	rosterSource.snapshot.Schedule = nil

	service, serviceError := selection.NewService(zap.NewNop(), scenarioHistorySource(), rosterSource, nil)
	require.NoError(testInstance, serviceError)

	request := scenarioRequest(false, "")
	request.SupplierType = records.SupplierTypeServiceProvider
	request.Category = "calibration"

	result, selectError := service.Select(context.Background(), request)
	require.NoError(testInstance, selectError)
	require.Equal(testInstance, testAuditorAConstant, result.Decision.Lead)
}

func TestServiceSelectSourceFailures(testInstance *testing.T) {
	loadFailure := errors.New("disk unavailable")

	historyFailure := scenarioHistorySource()
	historyFailure.loadError = loadFailure
	service, serviceError := selection.NewService(zap.NewNop(), historyFailure, scenarioRosterSource(), nil)
	require.NoError(testInstance, serviceError)
	_, selectError := service.Select(context.Background(), scenarioRequest(false, ""))
	require.ErrorIs(testInstance, selectError, loadFailure)

	rosterFailure := scenarioRosterSource()
	rosterFailure.loadError = loadFailure
	service, serviceError = selection.NewService(zap.NewNop(), scenarioHistorySource(), rosterFailure, nil)
	require.NoError(testInstance, serviceError)
	_, selectError = service.Select(context.Background(), scenarioRequest(false, ""))
	require.ErrorIs(testInstance, selectError, loadFailure)

	_, serviceError = selection.NewService(zap.NewNop(), scenarioHistorySource(), nil, nil)
	require.Error(testInstance, serviceError)

	availabilityOnly, serviceError := selection.NewService(zap.NewNop(), nil, scenarioRosterSource(), nil)
	require.NoError(testInstance, serviceError)
	_, selectError = availabilityOnly.Select(context.Background(), scenarioRequest(false, ""))
	require.Error(testInstance, selectError)
}

func TestServiceCheckAvailability(testInstance *testing.T) {
	reporter := &recordingReporter{}
	service, serviceError := selection.NewService(nil, nil, scenarioRosterSource(), reporter)
	require.NoError(testInstance, serviceError)

	result, availabilityError := service.CheckAvailability(context.Background(), selection.AvailabilityRequest{
		AuditStart: mustParseDay("2024-06-10"),
		AuditEnd:   mustParseDay("2024-06-12"),
		PadDays:    1,
	})
	require.NoError(testInstance, availabilityError)
	require.Equal(testInstance, []string{testAuditorAConstant, testAuditorBConstant, testAuditorCConstant}, result.AvailableAuditors)
	require.Equal(testInstance, [][]string{result.AvailableAuditors}, reporter.availability)
	require.NotEmpty(testInstance, result.RunID)
}
