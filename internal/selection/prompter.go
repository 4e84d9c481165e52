package selection

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/utils/flags"
)

const (
	organizationPromptConstant     = "Enter Organization: "
	supplierTypePromptConstant     = "Enter Supplier type (Supplier/Service Provider): "
	auditStartPromptConstant       = "Enter audit start date (YYYY-M-D): "
	auditEndPromptConstant         = "Enter audit end date (YYYY-M-D): "
	padDaysPromptConstant          = "OPTIONAL: Number of days before and after the audit for preparation and reporting (+- X days). Default +- 1 day: "
	categoryPromptConstant         = "Enter Material/Service Category: "
	coAuditorRequestPromptConstant = "Request for co-auditor suggestion (Yes/No): "
	coAuditorPolicyPromptConstant  = "Select Co-Auditor Type (Experienced/New): "
	coAuditorRequestFieldConstant  = "co-auditor request"
	coAuditorRequestReasonConstant = "expected Yes or No"
	promptLineSeparatorConstant    = "\n"
)

// LinePrompter asks a single question and returns the trimmed answer.
type LinePrompter interface {
	Prompt(question string) (string, error)
}

// PromptDecorator styles a question before it is written.
type PromptDecorator func(question string) string

// IOLinePrompter reads answers line by line from an io.Reader.
type IOLinePrompter struct {
	reader    *bufio.Reader
	writer    io.Writer
	decorator PromptDecorator
}

// NewIOLinePrompter constructs a prompter from the provided reader and writer. A nil decorator writes questions unchanged.
func NewIOLinePrompter(input io.Reader, output io.Writer, decorator PromptDecorator) *IOLinePrompter {
	return &IOLinePrompter{reader: bufio.NewReader(input), writer: output, decorator: decorator}
}

// Prompt writes the question and reads one line. End of input yields an empty answer.
func (prompter *IOLinePrompter) Prompt(question string) (string, error) {
	if prompter.writer != nil {
		renderedQuestion := question
		if prompter.decorator != nil {
			renderedQuestion = prompter.decorator(question)
		}
		if _, writeError := io.WriteString(prompter.writer, promptLineSeparatorConstant+renderedQuestion); writeError != nil {
			return "", writeError
		}
	}

	answer, readError := prompter.reader.ReadString('\n')
	if readError != nil && !errors.Is(readError, io.EOF) {
		return "", readError
	}
	return strings.TrimSpace(answer), nil
}

// interactiveFields records which values were already supplied and must not be asked for.
type interactiveFields struct {
	coAuditorDecided bool
}

// completeInteractively asks for every missing value in the order operators expect: organization,
// supplier type, dates, pad, category, then the co-auditor request and its type.
func completeInteractively(prompter LinePrompter, input RequestInput, supplied interactiveFields) (RequestInput, error) {
	completed := input

	textPrompts := []struct {
		target   *string
		question string
	}{
		{target: &completed.Organization, question: organizationPromptConstant},
		{target: &completed.SupplierType, question: supplierTypePromptConstant},
		{target: &completed.AuditStart, question: auditStartPromptConstant},
		{target: &completed.AuditEnd, question: auditEndPromptConstant},
		{target: &completed.PadDays, question: padDaysPromptConstant},
		{target: &completed.Category, question: categoryPromptConstant},
	}

	for _, textPrompt := range textPrompts {
		if len(strings.TrimSpace(*textPrompt.target)) > 0 {
			continue
		}
		answer, promptError := prompter.Prompt(textPrompt.question)
		if promptError != nil {
			return RequestInput{}, promptError
		}
		*textPrompt.target = answer
	}

	if !supplied.coAuditorDecided {
		answer, promptError := prompter.Prompt(coAuditorRequestPromptConstant)
		if promptError != nil {
			return RequestInput{}, promptError
		}
		if len(answer) > 0 {
			requested, parseError := flags.ParseToggle(answer)
			if parseError != nil {
				return RequestInput{}, auditerrors.InvalidInputError{Field: coAuditorRequestFieldConstant, Value: answer, Reason: coAuditorRequestReasonConstant}
			}
			completed.CoAuditorRequested = requested
		}
	}

	if completed.CoAuditorRequested && len(strings.TrimSpace(completed.CoAuditorPolicy)) == 0 {
		answer, promptError := prompter.Prompt(coAuditorPolicyPromptConstant)
		if promptError != nil {
			return RequestInput{}, promptError
		}
		completed.CoAuditorPolicy = answer
	}

	return completed, nil
}
