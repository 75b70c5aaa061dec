package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-management-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandOccurrencesWeeklyRule(t *testing.T) {
	// Mondays of February 2024.
	dates, err := expandOccurrences("FREQ=WEEKLY;BYDAY=MO", day(2024, time.February, 5), day(2024, time.February, 1), day(2024, time.February, 29))
	require.NoError(t, err)

	require.Len(t, dates, 4)
	assert.Equal(t, "2024-02-05", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2024-02-12", dates[1].Format("2006-01-02"))
	assert.Equal(t, "2024-02-19", dates[2].Format("2006-01-02"))
	assert.Equal(t, "2024-02-26", dates[3].Format("2006-01-02"))
}

func TestExpandOccurrencesEmptyRuleSingleDate(t *testing.T) {
	dtstart := day(2024, time.March, 15)

	dates, err := expandOccurrences("", dtstart, day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, dtstart, dates[0])

	dates, err = expandOccurrences("", dtstart, day(2024, time.April, 1), day(2024, time.April, 30))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandOccurrencesInvalidRule(t *testing.T) {
	_, err := expandOccurrences("FREQ=SOMETIMES", day(2024, time.February, 5), day(2024, time.February, 1), day(2024, time.February, 29))
	assert.Error(t, err)
}

func TestHolidayDatesInRangeSpansMonths(t *testing.T) {
	repo := &fakeDayOverrideRepo{
		markedDaysMapFn: func(ctx context.Context, month, year int) (map[string]string, error) {
			switch month {
			case 1:
				return map[string]string{
					"2024-01-01": models.DayTypeHoliday,
					"2024-01-15": models.DayTypeLeave,
				}, nil
			case 2:
				return map[string]string{"2024-02-10": models.DayTypeHoliday}, nil
			default:
				return map[string]string{}, nil
			}
		},
	}

	holidays, err := holidayDatesInRange(context.Background(), repo, day(2024, time.January, 10), day(2024, time.February, 20))
	require.NoError(t, err)

	assert.True(t, holidays["2024-01-01"])
	assert.True(t, holidays["2024-02-10"])
	// Leave overrides are not holidays.
	assert.False(t, holidays["2024-01-15"])
}
