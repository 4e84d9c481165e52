package selection

import (
	"github.com/temirov/las/internal/datasource"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
)

// HistorySource loads historical audit records for a run.
type HistorySource = datasource.HistorySource

// RosterSource loads the roster and schedule snapshot for a run.
type RosterSource = datasource.RosterSource

// Reporter receives stage outputs as the pipeline produces them. Implementations own all presentation.
type Reporter interface {
	ReportAvailability(request AvailabilityRequest, availableAuditors []string)
	ReportRanking(request SelectionRequest, rankedAuditors []experience.RankedAuditor)
	ReportDecision(request SelectionRequest, outcome decision.Decision)
}

type silentReporter struct{}

func (silentReporter) ReportAvailability(AvailabilityRequest, []string) {}

func (silentReporter) ReportRanking(SelectionRequest, []experience.RankedAuditor) {}

func (silentReporter) ReportDecision(SelectionRequest, decision.Decision) {}
