package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// InputLayoutConstant accepts year-month-day values with optional zero padding (2024-6-5 or 2024-06-05).
	InputLayoutConstant = "2006-1-2"
	// OutputLayoutConstant renders calendar days in ISO form.
	OutputLayoutConstant        = "2006-01-02"
	emptyDateMessageConstant    = "date value is empty"
	invalidDateTemplateConstant = "invalid date %q: expected YYYY-M-D"
)

// Parse converts a YYYY-M-D string into a calendar day anchored at midnight UTC.
func Parse(rawValue string) (time.Time, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return time.Time{}, errors.New(emptyDateMessageConstant)
	}

	parsedValue, parseError := time.Parse(InputLayoutConstant, trimmedValue)
	if parseError != nil {
		return time.Time{}, fmt.Errorf(invalidDateTemplateConstant, trimmedValue)
	}

	return parsedValue, nil
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(timestamp time.Time) time.Time {
	year, month, day := timestamp.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a calendar day by the provided number of days.
func AddDays(day time.Time, dayCount int) time.Time {
	return Day(day).AddDate(0, 0, dayCount)
}

// Format renders a calendar day as YYYY-MM-DD.
func Format(day time.Time) string {
	return Day(day).Format(OutputLayoutConstant)
}
