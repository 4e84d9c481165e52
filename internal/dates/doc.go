// Package dates parses and formats the calendar days used by audit windows and
// auditor schedules.
package dates
