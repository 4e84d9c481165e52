package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/las/cmd/cli"
)

const (
	testRosterFileNameConstant      = "roster.yaml"
	testHistoryFileNameConstant     = "history.csv"
	testConfigurationFileConstant   = "config.yaml"
	testApplicationSubtestTemplate  = "%d_%s"
	testRosterContentConstant       = "auditors: [A, B, C]\nschedule:\n  - auditor1: A\n    start_date: 2024-06-01\n    end_date: 2024-06-03\n"
	testHistoryContentConstant      = "Organization,Material Category,Service Category,Auditor Name\nNorthwind,Welding rods,,B\nContoso,Arc welding,,\"C, B\"\n"
	testConfigurationTemplate       = "tools:\n  selection:\n    roster: %s\n    history: %s\n    pad_days: %d\n"
	testLeadSuggestionConstant      = ">> Suggested Lead Auditor for Acme from 2024-06-05 to 2024-06-06: B"
	testCoAuditorSuggestionConstant = ">> Suggested Co-auditor: C"
)

type dataFiles struct {
	rosterPath  string
	historyPath string
}

func writeDataFiles(testInstance *testing.T) dataFiles {
	testInstance.Helper()
	dataDirectory := testInstance.TempDir()
	files := dataFiles{
		rosterPath:  filepath.Join(dataDirectory, testRosterFileNameConstant),
		historyPath: filepath.Join(dataDirectory, testHistoryFileNameConstant),
	}
	require.NoError(testInstance, os.WriteFile(files.rosterPath, []byte(testRosterContentConstant), 0o600))
	require.NoError(testInstance, os.WriteFile(files.historyPath, []byte(testHistoryContentConstant), 0o600))
	return files
}

func executeApplication(testInstance *testing.T, arguments ...string) (string, string, error) {
	testInstance.Helper()
	testInstance.Setenv("XDG_CONFIG_HOME", testInstance.TempDir())

	application := cli.NewApplication()
	standardOutput := &bytes.Buffer{}
	standardError := &bytes.Buffer{}
	application.SetOutput(standardOutput, standardError)
	application.SetArguments(arguments)

	executionError := application.Execute()
	return standardOutput.String(), standardError.String(), executionError
}

func TestApplicationRegistersSelectionCommands(testInstance *testing.T) {
	standardOutput, _, executionError := executeApplication(testInstance, "--help")
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, standardOutput, "select")
	require.Contains(testInstance, standardOutput, "availability")
}

func TestApplicationSelectEndToEnd(testInstance *testing.T) {
	files := writeDataFiles(testInstance)

	standardOutput, standardError, executionError := executeApplication(testInstance,
		"select",
		"--history", files.historyPath,
		"--roster", files.rosterPath,
		"--organization", "Acme",
		"--supplier-type", "Supplier",
		"--start", "2024-6-5",
		"--end", "2024-6-6",
		"--category", "Welding",
		"--co-auditor",
		"--co-auditor-policy", "New",
	)
	require.NoError(testInstance, executionError, standardError)
	require.Contains(testInstance, standardOutput, "Auditors available for audit from 2024-06-05 to 2024-06-06:\nB\nC\n")
	require.Contains(testInstance, standardOutput, "B  1.5\nC  1\n")
	require.Contains(testInstance, standardOutput, testLeadSuggestionConstant)
	require.Contains(testInstance, standardOutput, testCoAuditorSuggestionConstant)
}

func TestApplicationReadsConfiguration(testInstance *testing.T) {
	files := writeDataFiles(testInstance)
	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(fmt.Sprintf(testConfigurationTemplate, files.rosterPath, files.historyPath, 0)), 0o600))

	testCases := []struct {
		name              string
		environmentPad    string
		expectedAvailable string
	}{
		{name: "configured_pad", environmentPad: "", expectedAvailable: "2024-06-04 to 2024-06-04:\nA\nB\nC\n"},
		{name: "environment_pad", environmentPad: "1", expectedAvailable: "2024-06-04 to 2024-06-04:\nB\nC\n"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testApplicationSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			if len(testCase.environmentPad) > 0 {
				testInstance.Setenv("LAS_TOOLS_SELECTION_PAD_DAYS", testCase.environmentPad)
			}

			standardOutput, standardError, executionError := executeApplication(testInstance,
				"availability",
				"--config", configurationPath,
				"--start", "2024-6-4",
				"--end", "2024-6-4",
			)
			require.NoError(testInstance, executionError, standardError)
			require.Contains(testInstance, standardOutput, testCase.expectedAvailable)
		})
	}
}

func TestApplicationResolvesConfiguredFilesNextToConfiguration(testInstance *testing.T) {
	files := writeDataFiles(testInstance)
	configurationPath := filepath.Join(filepath.Dir(files.rosterPath), testConfigurationFileConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(fmt.Sprintf(testConfigurationTemplate, testRosterFileNameConstant, testHistoryFileNameConstant, 1)), 0o600))
	testInstance.Chdir(testInstance.TempDir())

	standardOutput, standardError, executionError := executeApplication(testInstance,
		"select",
		"--config", configurationPath,
		"--organization", "Acme",
		"--supplier-type", "Supplier",
		"--start", "2024-6-5",
		"--end", "2024-6-6",
		"--category", "Welding",
	)
	require.NoError(testInstance, executionError, standardError)
	require.Contains(testInstance, standardOutput, testLeadSuggestionConstant)
}

func TestApplicationReportsFailures(testInstance *testing.T) {
	files := writeDataFiles(testInstance)

	testCases := []struct {
		name            string
		arguments       []string
		expectedMessage string
	}{
		{
			name:            "invalid_pad",
			arguments:       []string{"availability", "--roster", files.rosterPath, "--start", "2024-6-5", "--end", "2024-6-6", "--pad", "-2"},
			expectedMessage: "ERROR: Please provide a valid pad",
		},
		{
			name:            "no_experience",
			arguments:       []string{"select", "--history", files.historyPath, "--roster", files.rosterPath, "--organization", "Acme", "--supplier-type", "Supplier", "--start", "2024-6-5", "--end", "2024-6-6", "--category", "Painting"},
			expectedMessage: "No eligible lead auditor",
		},
		{
			name:            "single_candidate_experienced",
			arguments:       []string{"select", "--history", files.historyPath, "--roster", files.rosterPath, "--organization", "Acme", "--supplier-type", "Supplier", "--start", "2024-6-5", "--end", "2024-6-6", "--category", "rods", "--co-auditor", "--co-auditor-policy", "Experienced"},
			expectedMessage: "Only one candidate; cannot name a second.",
		},
		{
			name:            "unsupported_roster_format",
			arguments:       []string{"availability", "--roster", files.historyPath, "--start", "2024-6-5", "--end", "2024-6-6"},
			expectedMessage: "ERROR: unsupported roster format",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testApplicationSubtestTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			_, standardError, executionError := executeApplication(testInstance, testCase.arguments...)
			require.Error(testInstance, executionError)
			require.Contains(testInstance, standardError, testCase.expectedMessage)
		})
	}
}

func TestEmbeddedDefaultConfiguration(testInstance *testing.T) {
	configurationContent, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)
	require.Contains(testInstance, string(configurationContent), "selection:")
	require.Contains(testInstance, string(configurationContent), "pad_days: 1")
}
