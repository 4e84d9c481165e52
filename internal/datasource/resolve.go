package datasource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/las/internal/records"
	"github.com/temirov/las/internal/roster"
)

const (
	csvExtensionConstant              = ".csv"
	yamlExtensionConstant             = ".yaml"
	ymlExtensionConstant              = ".yml"
	tomlExtensionConstant             = ".toml"
	sqliteExtensionConstant           = ".sqlite"
	sqlite3ExtensionConstant          = ".sqlite3"
	databaseExtensionConstant         = ".db"
	missingPathTemplateConstant       = "%s path is required"
	unsupportedFormatTemplateConstant = "unsupported %s format %q for %s"
	historySourceLabelConstant        = "audit history"
	rosterSourceLabelConstant         = "roster"
)

// HistorySource loads historical audit records.
type HistorySource interface {
	LoadAuditRecords(executionContext context.Context) ([]records.AuditRecord, error)
}

// RosterSource loads the auditor roster together with the committed schedule.
type RosterSource interface {
	LoadRoster(executionContext context.Context) (roster.Snapshot, error)
}

// OpenHistorySource picks a history reader from the file extension: .csv or an SQLite database (.db, .sqlite, .sqlite3).
func OpenHistorySource(filePath string) (HistorySource, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return nil, fmt.Errorf(missingPathTemplateConstant, historySourceLabelConstant)
	}

	extension := strings.ToLower(filepath.Ext(trimmedPath))
	switch {
	case extension == csvExtensionConstant:
		return NewCSVHistorySource(trimmedPath), nil
	case isDatabaseExtension(extension):
		return NewSQLiteSource(trimmedPath), nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplateConstant, historySourceLabelConstant, extension, trimmedPath)
	}
}

// OpenRosterSource picks a roster reader from the file extension: .yaml, .yml, .toml, or an SQLite database.
func OpenRosterSource(filePath string) (RosterSource, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return nil, fmt.Errorf(missingPathTemplateConstant, rosterSourceLabelConstant)
	}

	extension := strings.ToLower(filepath.Ext(trimmedPath))
	switch {
	case extension == yamlExtensionConstant || extension == ymlExtensionConstant:
		return NewYAMLRosterSource(trimmedPath), nil
	case extension == tomlExtensionConstant:
		return NewTOMLRosterSource(trimmedPath), nil
	case isDatabaseExtension(extension):
		return NewSQLiteSource(trimmedPath), nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplateConstant, rosterSourceLabelConstant, extension, trimmedPath)
	}
}

func isDatabaseExtension(extension string) bool {
	switch extension {
	case databaseExtensionConstant, sqliteExtensionConstant, sqlite3ExtensionConstant:
		return true
	default:
		return false
	}
}
