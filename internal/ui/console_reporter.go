package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/decision"
	"github.com/temirov/las/internal/experience"
	"github.com/temirov/las/internal/selection"
)

const (
	promptColorConstant                = "6"
	resultColorConstant                = "10"
	failureColorConstant               = "9"
	availabilityHeaderTemplateConstant = "Auditors available for audit from %s to %s:"
	rankingHeaderTemplateConstant      = "Experience with %q among available auditors:"
	rankingLineTemplateConstant        = "%-*s  %s"
	leadDecisionTemplateConstant       = ">> Suggested Lead Auditor for %s from %s to %s: %s"
	coAuditorDecisionTemplateConstant  = ">> Suggested Co-auditor: %s"
	coAuditorIsLeadSuffixConstant      = " (same as lead; no other ranked candidate)"
	emptyListMarkerConstant            = "NONE."
	genericFailureTemplateConstant     = "ERROR: %s"
	scoreFormatByteConstant            = 'f'
	scorePrecisionConstant             = -1
	scoreBitSizeConstant               = 64
)

// ConsoleReporter prints selection stage outputs to a writer.
type ConsoleReporter struct {
	output       io.Writer
	promptStyle  lipgloss.Style
	resultStyle  lipgloss.Style
	failureStyle lipgloss.Style
}

// NewConsoleReporter constructs a reporter whose colour profile follows the writer.
func NewConsoleReporter(output io.Writer) *ConsoleReporter {
	if output == nil {
		output = io.Discard
	}
	renderer := lipgloss.NewRenderer(output)
	return &ConsoleReporter{
		output:       output,
		promptStyle:  renderer.NewStyle().Foreground(lipgloss.Color(promptColorConstant)),
		resultStyle:  renderer.NewStyle().Foreground(lipgloss.Color(resultColorConstant)),
		failureStyle: renderer.NewStyle().Foreground(lipgloss.Color(failureColorConstant)).Bold(true),
	}
}

// ReportAvailability lists the free auditors, or NONE. when nobody is free.
func (reporter *ConsoleReporter) ReportAvailability(request selection.AvailabilityRequest, availableAuditors []string) {
	reporter.writeLine("")
	reporter.writeLine(reporter.resultStyle.Render(fmt.Sprintf(availabilityHeaderTemplateConstant, dates.Format(request.AuditStart), dates.Format(request.AuditEnd))))
	if len(availableAuditors) == 0 {
		reporter.writeLine(reporter.resultStyle.Render(emptyListMarkerConstant))
		return
	}
	for _, auditorName := range availableAuditors {
		reporter.writeLine(auditorName)
	}
}

// ReportRanking prints each ranked auditor with its experience score.
func (reporter *ConsoleReporter) ReportRanking(request selection.SelectionRequest, rankedAuditors []experience.RankedAuditor) {
	reporter.writeLine("")
	reporter.writeLine(reporter.resultStyle.Render(fmt.Sprintf(rankingHeaderTemplateConstant, request.Category)))
	if len(rankedAuditors) == 0 {
		reporter.writeLine(reporter.resultStyle.Render(emptyListMarkerConstant))
		return
	}

	nameWidth := 0
	for _, rankedAuditor := range rankedAuditors {
		nameWidth = max(nameWidth, lipgloss.Width(rankedAuditor.Auditor))
	}
	for _, rankedAuditor := range rankedAuditors {
		reporter.writeLine(fmt.Sprintf(rankingLineTemplateConstant, nameWidth, rankedAuditor.Auditor, FormatScore(rankedAuditor.Score)))
	}
}

// ReportDecision prints the suggested lead and, when assigned, the co-auditor.
func (reporter *ConsoleReporter) ReportDecision(request selection.SelectionRequest, outcome decision.Decision) {
	reporter.writeLine("")
	reporter.writeLine(reporter.resultStyle.Render(fmt.Sprintf(leadDecisionTemplateConstant, request.Organization, dates.Format(request.AuditStart), dates.Format(request.AuditEnd), outcome.Lead)))
	if !outcome.CoAuditorAssigned {
		return
	}
	coAuditorLine := fmt.Sprintf(coAuditorDecisionTemplateConstant, outcome.CoAuditor)
	if outcome.CoAuditorIsLead() {
		coAuditorLine += coAuditorIsLeadSuffixConstant
	}
	reporter.writeLine(reporter.resultStyle.Render(coAuditorLine))
}

// StylePrompt renders an interactive question in the prompt style.
func (reporter *ConsoleReporter) StylePrompt(question string) string {
	return reporter.promptStyle.Render(question)
}

// ReportFailure prints the operator-facing message of a failure, followed by its technical detail.
func (reporter *ConsoleReporter) ReportFailure(failure error) {
	if failure == nil {
		return
	}
	for _, failureLine := range FailureLines(failure) {
		reporter.writeLine(reporter.failureStyle.Render(failureLine))
	}
}

// FailureLines describes failure for operators. Known selection errors contribute their correction
// hint ahead of the wrapped error text.
func FailureLines(failure error) []string {
	var messageProvider auditerrors.MessageProvider
	if errors.As(failure, &messageProvider) {
		return []string{messageProvider.Message(), failure.Error()}
	}
	return []string{fmt.Sprintf(genericFailureTemplateConstant, failure.Error())}
}

// FormatScore renders scores without trailing zeros, e.g. 1.5 or 2.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, scoreFormatByteConstant, scorePrecisionConstant, scoreBitSizeConstant)
}

func (reporter *ConsoleReporter) writeLine(line string) {
	_, _ = fmt.Fprintln(reporter.output, line)
}
