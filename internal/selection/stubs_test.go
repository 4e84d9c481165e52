package selection_test

import (
	"context"
	"time"

	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
	"github.com/temirov/las/internal/selection"
)

const (
	testAuditorAConstant        = "A"
	testAuditorBConstant        = "B"
	testAuditorCConstant        = "C"
	testOrganizationConstant    = "Acme Forge"
	testWeldingCategoryConstant = "Welding"
)

type stubHistorySource struct {
	auditRecords []records.AuditRecord
	loadError    error
	contexts     []context.Context
}

func (source *stubHistorySource) LoadAuditRecords(executionContext context.Context) ([]records.AuditRecord, error) {
	source.contexts = append(source.contexts, executionContext)
	if source.loadError != nil {
		return nil, source.loadError
	}
	return source.auditRecords, nil
}

type stubRosterSource struct {
	snapshot  roster.Snapshot
	loadError error
	contexts  []context.Context
}

func (source *stubRosterSource) LoadRoster(executionContext context.Context) (roster.Snapshot, error) {
	source.contexts = append(source.contexts, executionContext)
	if source.loadError != nil {
		return roster.Snapshot{}, source.loadError
	}
	return source.snapshot, nil
}

type recordingReporter struct {
	availability [][]string
	rankings     [][]experience.RankedAuditor
	decisions    []decision.Decision
}

func (reporter *recordingReporter) ReportAvailability(_ selection.AvailabilityRequest, availableAuditors []string) {
	reporter.availability = append(reporter.availability, availableAuditors)
}

func (reporter *recordingReporter) ReportRanking(_ selection.SelectionRequest, rankedAuditors []experience.RankedAuditor) {
	reporter.rankings = append(reporter.rankings, rankedAuditors)
}

func (reporter *recordingReporter) ReportDecision(_ selection.SelectionRequest, outcome decision.Decision) {
	reporter.decisions = append(reporter.decisions, outcome)
}

func mustParseDay(rawDay string) time.Time {
	day, parseError := dates.Parse(rawDay)
	if parseError != nil {
		panic(parseError)
	}
	return day
}

// scenarioRosterSource holds roster {A, B, C} with A booked 2024-06-01..2024-06-03.
func scenarioRosterSource() *stubRosterSource {
	return &stubRosterSource{snapshot: roster.Snapshot{
		Roster: roster.NewRoster(testAuditorAConstant, testAuditorBConstant, testAuditorCConstant),
		Schedule: []roster.ScheduleEntry{
			{Auditor1: testAuditorAConstant, Start: mustParseDay("2024-06-01"), End: mustParseDay("2024-06-03")},
		},
	}}
}

// scenarioHistorySource holds two welding audits: B alone, then C leading with B.
func scenarioHistorySource() *stubHistorySource {
	return &stubHistorySource{auditRecords: []records.AuditRecord{
		{Organization: "Northwind", MaterialCategory: "Welding rods", AuditorField: testAuditorBConstant},
		{Organization: "Contoso", MaterialCategory: "Arc welding", AuditorField: "C, B"},
		{Organization: "Fabrikam", ServiceCategory: "Calibration", AuditorField: testAuditorAConstant},
	}}
}
