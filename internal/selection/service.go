package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
	"github.com/temirov/las/internal/utils"
)

const (
	missingHistorySourceMessageConstant = "audit history source not configured"
	missingRosterSourceMessageConstant  = "roster source not configured"
	historyLoadErrorTemplateConstant    = "loading audit history: %w"
	rosterLoadErrorTemplateConstant     = "loading roster: %w"
	availabilityLogMessageConstant      = "availability computed"
	historyLogMessageConstant           = "audit history parsed"
	rankingLogMessageConstant           = "experience ranking computed"
	scoreLogMessageConstant             = "candidate score"
	decisionLogMessageConstant          = "selection decided"
	decisionFailedLogMessageConstant    = "selection failed"
	logFieldRunIDConstant               = "run_id"
	logFieldWindowStartConstant         = "window_start"
	logFieldWindowEndConstant           = "window_end"
	logFieldPadDaysConstant             = "pad_days"
	logFieldRosterSizeConstant          = "roster_size"
	logFieldScheduleSizeConstant        = "schedule_entries"
	logFieldAvailableCountConstant      = "available_count"
	logFieldMaterialCountConstant       = "material_records"
	logFieldServiceCountConstant        = "service_records"
	logFieldCategoryConstant            = "category"
	logFieldSupplierTypeConstant        = "supplier_type"
	logFieldRankedCountConstant         = "ranked_count"
	logFieldAuditorConstant             = "auditor"
	logFieldScoreConstant               = "score"
	logFieldLeadConstant                = "lead"
	logFieldCoAuditorConstant           = "co_auditor"
	logFieldOrganizationConstant        = "organization"
)

var (
	errMissingHistorySource = errors.New(missingHistorySourceMessageConstant)
	errMissingRosterSource  = errors.New(missingRosterSourceMessageConstant)
)

// Service drives selection runs against history and roster sources.
type Service struct {
	logger                 *zap.Logger
	historySource          HistorySource
	rosterSource           RosterSource
	reporter               Reporter
	runIdentifierGenerator func() string
	contextAccessor        utils.CommandContextAccessor
}

// NewService constructs a Service. The history source may be nil for availability-only use.
func NewService(logger *zap.Logger, historySource HistorySource, rosterSource RosterSource, reporter Reporter) (*Service, error) {
	if rosterSource == nil {
		return nil, errMissingRosterSource
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = silentReporter{}
	}
	return &Service{
		logger:                 logger,
		historySource:          historySource,
		rosterSource:           rosterSource,
		reporter:               reporter,
		runIdentifierGenerator: uuid.NewString,
		contextAccessor:        utils.NewCommandContextAccessor(),
	}, nil
}

// CheckAvailability loads a roster snapshot and reports the auditors free during the padded window.
func (service *Service) CheckAvailability(executionContext context.Context, request AvailabilityRequest) (AvailabilityResult, error) {
	runContext, runIdentifier := service.beginRun(executionContext)
	return service.checkAvailability(runContext, runIdentifier, request)
}

// Select runs the full pipeline. The returned Result holds every completed stage even when an error is returned.
func (service *Service) Select(executionContext context.Context, request SelectionRequest) (Result, error) {
	if service.historySource == nil {
		return Result{}, errMissingHistorySource
	}

	runContext, runIdentifier := service.beginRun(executionContext)
	result := Result{RunID: runIdentifier, Request: request}

	auditRecords, historyError := service.historySource.LoadAuditRecords(runContext)
	if historyError != nil {
		return result, fmt.Errorf(historyLoadErrorTemplateConstant, historyError)
	}
	parsedRecords := records.Parse(auditRecords)
	service.logger.Debug(
		historyLogMessageConstant,
		zap.String(logFieldRunIDConstant, runIdentifier),
		zap.Int(logFieldMaterialCountConstant, len(parsedRecords.Material)),
		zap.Int(logFieldServiceCountConstant, len(parsedRecords.Service)),
	)

	availabilityResult, availabilityError := service.checkAvailability(runContext, runIdentifier, AvailabilityRequest{
		AuditStart: request.AuditStart,
		AuditEnd:   request.AuditEnd,
		PadDays:    request.PadDays,
	})
	if availabilityError != nil {
		return result, availabilityError
	}
	result.Window = availabilityResult.Window
	result.AvailableAuditors = availabilityResult.AvailableAuditors

	rankedAuditors := experience.Rank(parsedRecords.ForSupplierType(request.SupplierType), request.Category, availabilityResult.AvailableAuditors)
	result.RankedAuditors = rankedAuditors
	service.logRanking(runIdentifier, request, rankedAuditors)
	service.reporter.ReportRanking(request, rankedAuditors)

	outcome, decisionError := decision.Decide(rankedAuditors, request.CoAuditorRequested, request.CoAuditorPolicy)
	if decisionError != nil {
		decisionError = attachCategory(decisionError, request.Category)
		service.logger.Info(
			decisionFailedLogMessageConstant,
			zap.String(logFieldRunIDConstant, runIdentifier),
			zap.String(logFieldOrganizationConstant, request.Organization),
			zap.Error(decisionError),
		)
		return result, decisionError
	}

	result.Decision = outcome
	result.Decided = true
	service.logger.Info(
		decisionLogMessageConstant,
		zap.String(logFieldRunIDConstant, runIdentifier),
		zap.String(logFieldOrganizationConstant, request.Organization),
		zap.String(logFieldLeadConstant, outcome.Lead),
		zap.String(logFieldCoAuditorConstant, outcome.CoAuditor),
	)
	service.reporter.ReportDecision(request, outcome)

	return result, nil
}

func (service *Service) beginRun(executionContext context.Context) (context.Context, string) {
	if executionContext == nil {
		executionContext = context.Background()
	}
	runIdentifier := service.runIdentifierGenerator()
	return service.contextAccessor.WithRunIdentifier(executionContext, runIdentifier), runIdentifier
}

func (service *Service) checkAvailability(runContext context.Context, runIdentifier string, request AvailabilityRequest) (AvailabilityResult, error) {
	snapshot, rosterError := service.rosterSource.LoadRoster(runContext)
	if rosterError != nil {
		return AvailabilityResult{}, fmt.Errorf(rosterLoadErrorTemplateConstant, rosterError)
	}

	availableAuditors, availabilityError := roster.AvailableAuditors(request.AuditStart, request.AuditEnd, request.PadDays, snapshot.Roster, snapshot.Schedule)
	if availabilityError != nil {
		return AvailabilityResult{}, availabilityError
	}

	window := roster.PaddedWindow(request.AuditStart, request.AuditEnd, request.PadDays)
	service.logger.Info(
		availabilityLogMessageConstant,
		zap.String(logFieldRunIDConstant, runIdentifier),
		zap.String(logFieldWindowStartConstant, dates.Format(window.Start)),
		zap.String(logFieldWindowEndConstant, dates.Format(window.End)),
		zap.Int(logFieldPadDaysConstant, request.PadDays),
		zap.Int(logFieldRosterSizeConstant, len(snapshot.Roster)),
		zap.Int(logFieldScheduleSizeConstant, len(snapshot.Schedule)),
		zap.Int(logFieldAvailableCountConstant, len(availableAuditors)),
	)
	service.reporter.ReportAvailability(request, availableAuditors)

	return AvailabilityResult{RunID: runIdentifier, Window: window, AvailableAuditors: availableAuditors}, nil
}

func (service *Service) logRanking(runIdentifier string, request SelectionRequest, rankedAuditors []experience.RankedAuditor) {
	service.logger.Info(
		rankingLogMessageConstant,
		zap.String(logFieldRunIDConstant, runIdentifier),
		zap.String(logFieldSupplierTypeConstant, string(request.SupplierType)),
		zap.String(logFieldCategoryConstant, request.Category),
		zap.Int(logFieldRankedCountConstant, len(rankedAuditors)),
	)
	for _, rankedAuditor := range rankedAuditors {
		service.logger.Debug(
			scoreLogMessageConstant,
			zap.String(logFieldRunIDConstant, runIdentifier),
			zap.String(logFieldAuditorConstant, rankedAuditor.Auditor),
			zap.Float64(logFieldScoreConstant, rankedAuditor.Score),
		)
	}
}

func attachCategory(decisionError error, category string) error {
	var emptyCandidatesError auditerrors.EmptyCandidatesError
	if errors.As(decisionError, &emptyCandidatesError) {
		emptyCandidatesError.Category = category
		return emptyCandidatesError
	}
	return decisionError
}
