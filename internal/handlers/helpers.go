package handlers

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var errInvertedRange = errors.New("date range start is after end")

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// dateRangeOrMonth reads from/to query params, defaulting to the current
// calendar month when absent. A range whose start falls after its end is
// rejected rather than silently matching nothing.
func dateRangeOrMonth(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if fromStr != "" {
		parsed, err := parseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := parseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errInvertedRange
	}
	return from, to, nil
}
