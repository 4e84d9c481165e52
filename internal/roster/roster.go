package roster

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/temirov/las/internal/auditerrors"
	"github.com/temirov/las/internal/dates"
)

// MaximumPadDaysConstant bounds the pad so the padded window stays within representable dates.
const MaximumPadDaysConstant = 36500

const (
	padDaysMultiplierConstant            = 2
	padFieldNameConstant                 = "pad"
	padNegativeReasonConstant            = "must be a non-negative number of days"
	padExcessiveReasonConstant           = "must not exceed 36500 days"
	windowFieldNameConstant              = "audit window"
	windowReversedReasonConstant         = "start date must not be after end date"
	scheduleFieldNameConstant            = "schedule entry"
	scheduleReversedReasonConstant       = "start_date must not be after end_date"
	scheduleMissingAuditorReasonConstant = "auditor1 is required"
)

// Roster is the set of auditors eligible for consideration.
type Roster map[string]struct{}

// NewRoster builds a roster from names, trimming whitespace and ignoring blanks.
func NewRoster(auditorNames ...string) Roster {
	roster := make(Roster, len(auditorNames))
	for _, auditorName := range auditorNames {
		normalizedName := NormalizeName(auditorName)
		if len(normalizedName) == 0 {
			continue
		}
		roster[normalizedName] = struct{}{}
	}
	return roster
}

// Contains reports whether the auditor is on the roster.
func (roster Roster) Contains(auditorName string) bool {
	_, exists := roster[NormalizeName(auditorName)]
	return exists
}

// Names returns the roster members in ascending order.
func (roster Roster) Names() []string {
	names := make([]string, 0, len(roster))
	for auditorName := range roster {
		names = append(names, auditorName)
	}
	sort.Strings(names)
	return names
}

// NormalizeName trims surrounding whitespace; names are otherwise opaque and case-sensitive.
func NormalizeName(auditorName string) string {
	return strings.TrimSpace(auditorName)
}

// ScheduleEntry is one committed engagement. Auditor2 is empty when the engagement has a single auditor.
// Start and End are inclusive calendar days.
type ScheduleEntry struct {
	Auditor1 string
	Auditor2 string
	Start    time.Time
	End      time.Time
}

// Validate checks the entry invariants.
func (entry ScheduleEntry) Validate() error {
	if len(NormalizeName(entry.Auditor1)) == 0 {
		return auditerrors.InvalidInputError{Field: scheduleFieldNameConstant, Reason: scheduleMissingAuditorReasonConstant}
	}
	if dates.Day(entry.Start).After(dates.Day(entry.End)) {
		return auditerrors.InvalidInputError{Field: scheduleFieldNameConstant, Value: NormalizeName(entry.Auditor1), Reason: scheduleReversedReasonConstant}
	}
	return nil
}

// Overlaps reports whether the entry intersects the inclusive window.
func (entry ScheduleEntry) Overlaps(windowStart time.Time, windowEnd time.Time) bool {
	entryStart := dates.Day(entry.Start)
	entryEnd := dates.Day(entry.End)
	return !entryStart.After(dates.Day(windowEnd)) && !entryEnd.Before(dates.Day(windowStart))
}

// Auditors lists the non-empty auditor names committed by the entry.
func (entry ScheduleEntry) Auditors() []string {
	auditors := make([]string, 0, 2)
	if firstAuditor := NormalizeName(entry.Auditor1); len(firstAuditor) > 0 {
		auditors = append(auditors, firstAuditor)
	}
	if secondAuditor := NormalizeName(entry.Auditor2); len(secondAuditor) > 0 {
		auditors = append(auditors, secondAuditor)
	}
	return auditors
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// PaddedWindow widens the audit range by twice the pad on each side.
// The doubling mirrors the historical selector behaviour and is kept as observed.
func PaddedWindow(auditStart time.Time, auditEnd time.Time, padDays int) Window {
	paddingDays := padDays * padDaysMultiplierConstant
	return Window{
		Start: dates.AddDays(auditStart, -paddingDays),
		End:   dates.AddDays(auditEnd, paddingDays),
	}
}

// BusyAuditors returns every auditor named by a schedule entry overlapping the window.
func BusyAuditors(window Window, schedule []ScheduleEntry) map[string]struct{} {
	busyAuditors := make(map[string]struct{})
	for _, entry := range schedule {
		if !entry.Overlaps(window.Start, window.End) {
			continue
		}
		for _, auditorName := range entry.Auditors() {
			busyAuditors[auditorName] = struct{}{}
		}
	}
	return busyAuditors
}

// AvailableAuditors returns the roster members without a commitment in the padded window, sorted by name.
// An empty result is a valid outcome meaning no auditors are available.
func AvailableAuditors(auditStart time.Time, auditEnd time.Time, padDays int, roster Roster, schedule []ScheduleEntry) ([]string, error) {
	if padDays < 0 {
		return nil, auditerrors.InvalidInputError{Field: padFieldNameConstant, Reason: padNegativeReasonConstant}
	}
	if padDays > MaximumPadDaysConstant {
		return nil, auditerrors.InvalidInputError{Field: padFieldNameConstant, Value: strconv.Itoa(padDays), Reason: padExcessiveReasonConstant}
	}
	if dates.Day(auditStart).After(dates.Day(auditEnd)) {
		return nil, auditerrors.InvalidInputError{Field: windowFieldNameConstant, Reason: windowReversedReasonConstant}
	}

	window := PaddedWindow(auditStart, auditEnd, padDays)
	busyAuditors := BusyAuditors(window, schedule)

	availableAuditors := make([]string, 0, len(roster))
	for _, auditorName := range roster.Names() {
		if _, busy := busyAuditors[auditorName]; busy {
			continue
		}
		availableAuditors = append(availableAuditors, auditorName)
	}

	return availableAuditors, nil
}

// Snapshot is an immutable view of the roster and schedule loaded for one selection run.
type Snapshot struct {
	Roster   Roster
	Schedule []ScheduleEntry
}
