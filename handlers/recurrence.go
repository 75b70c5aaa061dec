package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"school-management-backend/models"
	"school-management-backend/repository"
)

// expandOccurrences turns a stored RRULE into the concrete dates it produces
// inside [start, end]. An empty rule yields the single dtstart date when it
// falls inside the range.
func expandOccurrences(recurrenceRule string, dtstart, start, end time.Time) ([]time.Time, error) {
	if recurrenceRule == "" {
		if !dtstart.Before(start) && !dtstart.After(end) {
			return []time.Time{dtstart}, nil
		}
		return nil, nil
	}

	rOption, err := rrule.StrToROption(recurrenceRule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	rOption.Dtstart = dtstart

	r, err := rrule.NewRRule(*rOption)
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	ruleSet := rrule.Set{}
	ruleSet.RRule(r)

	return ruleSet.Between(start, end, true), nil
}

// holidayDatesInRange collects every date marked as a holiday override between
// start and end inclusive, keyed "2006-01-02". Recurrence expansion skips
// these dates.
func holidayDatesInRange(ctx context.Context, repo repository.DayOverrideRepository, start, end time.Time) (map[string]bool, error) {
	holidays := make(map[string]bool)

	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(last) {
		marked, err := repo.MarkedDaysMap(ctx, int(cursor.Month()), cursor.Year())
		if err != nil {
			return nil, err
		}
		for date, dayType := range marked {
			if dayType == models.DayTypeHoliday {
				holidays[date] = true
			}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return holidays, nil
}

// parseDateRange reads start/end query values, defaulting to the current
// month.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var err error
	if startStr != "" {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date, expected 2006-01-02")
		}
	}
	if endStr != "" {
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date, expected 2006-01-02")
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date must not be before start date")
	}
	return start, end, nil
}
