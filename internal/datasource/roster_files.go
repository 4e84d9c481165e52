package datasource

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/temirov/las/internal/dates"
	"github.com/temirov/las/internal/roster"
)

const (
	rosterReadErrorTemplateConstant    = "unable to read roster %s: %w"
	rosterParseErrorTemplateConstant   = "unable to parse roster %s: %w"
	scheduleDateErrorTemplateConstant  = "schedule entry %d %s: %w"
	scheduleEntryErrorTemplateConstant = "schedule entry %d: %w"
	scheduleStartDateFieldNameConstant = "start_date"
	scheduleEndDateFieldNameConstant   = "end_date"
)

type yamlRosterDocument struct {
	Auditors []string            `yaml:"auditors"`
	Schedule []yamlScheduleEntry `yaml:"schedule"`
}

type yamlScheduleEntry struct {
	Auditor1  string `yaml:"auditor1"`
	Auditor2  string `yaml:"auditor2"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type tomlRosterDocument struct {
	Auditors []string            `toml:"auditors"`
	Schedule []tomlScheduleEntry `toml:"schedule"`
}

type tomlScheduleEntry struct {
	Auditor1  string         `toml:"auditor1"`
	Auditor2  string         `toml:"auditor2"`
	StartDate toml.LocalDate `toml:"start_date"`
	EndDate   toml.LocalDate `toml:"end_date"`
}

// YAMLRosterSource reads the auditor list and schedule from a YAML document:
//
//	auditors: [Alice, Bob]
//	schedule:
//	  - {auditor1: Alice, auditor2: Bob, start_date: 2024-06-01, end_date: 2024-06-03}
type YAMLRosterSource struct {
	filePath string
}

// NewYAMLRosterSource constructs a source for the provided file.
func NewYAMLRosterSource(filePath string) *YAMLRosterSource {
	return &YAMLRosterSource{filePath: filePath}
}

// LoadRoster decodes the roster snapshot.
func (source *YAMLRosterSource) LoadRoster(executionContext context.Context) (roster.Snapshot, error) {
	contentBytes, readError := readRosterFile(executionContext, source.filePath)
	if readError != nil {
		return roster.Snapshot{}, readError
	}

	var document yamlRosterDocument
	if unmarshalError := yaml.Unmarshal(contentBytes, &document); unmarshalError != nil {
		return roster.Snapshot{}, fmt.Errorf(rosterParseErrorTemplateConstant, source.filePath, unmarshalError)
	}

	schedule := make([]roster.ScheduleEntry, 0, len(document.Schedule))
	for entryIndex, documentEntry := range document.Schedule {
		startDate, startError := dates.Parse(documentEntry.StartDate)
		if startError != nil {
			return roster.Snapshot{}, fmt.Errorf(scheduleDateErrorTemplateConstant, entryIndex, scheduleStartDateFieldNameConstant, startError)
		}
		endDate, endError := dates.Parse(documentEntry.EndDate)
		if endError != nil {
			return roster.Snapshot{}, fmt.Errorf(scheduleDateErrorTemplateConstant, entryIndex, scheduleEndDateFieldNameConstant, endError)
		}
		schedule = append(schedule, roster.ScheduleEntry{
			Auditor1: documentEntry.Auditor1,
			Auditor2: documentEntry.Auditor2,
			Start:    startDate,
			End:      endDate,
		})
	}

	return buildSnapshot(document.Auditors, schedule)
}

// TOMLRosterSource reads the auditor list and schedule from a TOML document using native local dates:
//
//	auditors = ["Alice", "Bob"]
//	[[schedule]]
//	auditor1 = "Alice"
//	start_date = 2024-06-01
//	end_date = 2024-06-03
type TOMLRosterSource struct {
	filePath string
}

// NewTOMLRosterSource constructs a source for the provided file.
func NewTOMLRosterSource(filePath string) *TOMLRosterSource {
	return &TOMLRosterSource{filePath: filePath}
}

// LoadRoster decodes the roster snapshot.
func (source *TOMLRosterSource) LoadRoster(executionContext context.Context) (roster.Snapshot, error) {
	contentBytes, readError := readRosterFile(executionContext, source.filePath)
	if readError != nil {
		return roster.Snapshot{}, readError
	}

	var document tomlRosterDocument
	decoder := toml.NewDecoder(bytes.NewReader(contentBytes))
	decoder.DisallowUnknownFields()
	if decodeError := decoder.Decode(&document); decodeError != nil {
		return roster.Snapshot{}, fmt.Errorf(rosterParseErrorTemplateConstant, source.filePath, decodeError)
	}

	schedule := make([]roster.ScheduleEntry, 0, len(document.Schedule))
	for _, documentEntry := range document.Schedule {
		schedule = append(schedule, roster.ScheduleEntry{
			Auditor1: documentEntry.Auditor1,
			Auditor2: documentEntry.Auditor2,
			Start:    documentEntry.StartDate.AsTime(time.UTC),
			End:      documentEntry.EndDate.AsTime(time.UTC),
		})
	}

	return buildSnapshot(document.Auditors, schedule)
}

func readRosterFile(executionContext context.Context, filePath string) ([]byte, error) {
	if contextError := executionContext.Err(); contextError != nil {
		return nil, contextError
	}
	contentBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil, fmt.Errorf(rosterReadErrorTemplateConstant, filePath, readError)
	}
	return contentBytes, nil
}

func buildSnapshot(auditorNames []string, schedule []roster.ScheduleEntry) (roster.Snapshot, error) {
	for entryIndex, entry := range schedule {
		if validationError := entry.Validate(); validationError != nil {
			return roster.Snapshot{}, fmt.Errorf(scheduleEntryErrorTemplateConstant, entryIndex, validationError)
		}
	}
	return roster.Snapshot{Roster: roster.NewRoster(auditorNames...), Schedule: schedule}, nil
}
