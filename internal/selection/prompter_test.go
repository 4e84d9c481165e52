package selection

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/las/internal/auditerrors"
)

func TestIOLinePrompterWritesDecoratedQuestion(testInstance *testing.T) {
	output := &bytes.Buffer{}
	prompter := NewIOLinePrompter(strings.NewReader("  Acme  \n"), output, func(question string) string {
		return "[" + question + "]"
	})

	answer, promptError := prompter.Prompt(organizationPromptConstant)
	require.NoError(testInstance, promptError)
	require.Equal(testInstance, "Acme", answer)
	require.Equal(testInstance, "\n["+organizationPromptConstant+"]", output.String())

	exhaustedAnswer, exhaustedError := prompter.Prompt(categoryPromptConstant)
	require.NoError(testInstance, exhaustedError)
	require.Empty(testInstance, exhaustedAnswer)
}

func TestCompleteInteractivelyAsksInOrder(testInstance *testing.T) {
	answers := strings.Join([]string{"Acme", "Supplier", "2024-6-5", "2024-6-6", "", "Welding", "Yes", "New"}, "\n") + "\n"
	output := &bytes.Buffer{}
	prompter := NewIOLinePrompter(strings.NewReader(answers), output, nil)

	completed, completeError := completeInteractively(prompter, RequestInput{}, interactiveFields{})
	require.NoError(testInstance, completeError)
	require.Equal(testInstance, RequestInput{
		Organization:       "Acme",
		SupplierType:       "Supplier",
		AuditStart:         "2024-6-5",
		AuditEnd:           "2024-6-6",
		PadDays:            "",
		Category:           "Welding",
		CoAuditorRequested: true,
		CoAuditorPolicy:    "New",
	}, completed)

	renderedOutput := output.String()
	expectedOrder := []string{
		organizationPromptConstant,
		supplierTypePromptConstant,
		auditStartPromptConstant,
		auditEndPromptConstant,
		padDaysPromptConstant,
		categoryPromptConstant,
		coAuditorRequestPromptConstant,
		coAuditorPolicyPromptConstant,
	}
	previousIndex := -1
	for _, question := range expectedOrder {
		questionIndex := strings.Index(renderedOutput, question)
		require.Greater(testInstance, questionIndex, previousIndex, question)
		previousIndex = questionIndex
	}
}

func TestCompleteInteractivelySkipsSuppliedValues(testInstance *testing.T) {
	output := &bytes.Buffer{}
	prompter := NewIOLinePrompter(strings.NewReader("Welding\n"), output, nil)

	supplied := RequestInput{
		Organization: "Acme",
		SupplierType: "Supplier",
		AuditStart:   "2024-6-5",
		AuditEnd:     "2024-6-6",
		PadDays:      "2",
	}
	completed, completeError := completeInteractively(prompter, supplied, interactiveFields{coAuditorDecided: true})
	require.NoError(testInstance, completeError)
	require.Equal(testInstance, "Welding", completed.Category)
	require.False(testInstance, completed.CoAuditorRequested)
	require.Equal(testInstance, "\n"+categoryPromptConstant, output.String())
}

func TestCompleteInteractivelyRejectsUnclearCoAuditorAnswer(testInstance *testing.T) {
	prompter := NewIOLinePrompter(strings.NewReader("perhaps\n"), &bytes.Buffer{}, nil)

	supplied := RequestInput{Organization: "Acme", SupplierType: "Supplier", AuditStart: "2024-6-5", AuditEnd: "2024-6-6", PadDays: "1", Category: "Welding"}
	_, completeError := completeInteractively(prompter, supplied, interactiveFields{})

	var invalidInputError auditerrors.InvalidInputError
	require.True(testInstance, errors.As(completeError, &invalidInputError))
	require.Equal(testInstance, coAuditorRequestFieldConstant, invalidInputError.Field)
}
