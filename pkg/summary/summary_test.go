package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
)

func newSummary(month, year int, records ...models.AttendanceRecord) *models.MonthlySummary {
	return &models.MonthlySummary{
		UserID:  primitive.NewObjectID(),
		Month:   month,
		Year:    year,
		Records: records,
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2024))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 28, DaysInMonth(2, 2100)) // century years are not leap years
	assert.Equal(t, 29, DaysInMonth(2, 2000))
	assert.Equal(t, 30, DaysInMonth(4, 2024))
	assert.Equal(t, 31, DaysInMonth(12, 2025))
}

func TestRecomputeEmptyLeapFebruary(t *testing.T) {
	s := newSummary(2, 2024)

	Recompute(s, nil)

	assert.Equal(t, 29, s.TotalDays)
	assert.Zero(t, s.PresentDays)
	assert.Zero(t, s.AbsentDays)
	assert.Zero(t, s.LateDays)
	assert.Zero(t, s.HolidayDays)
	assert.Zero(t, s.LeaveDays)
	assert.Zero(t, s.WorkingDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeWorkingOverrideWithPresentRecord(t *testing.T) {
	s := newSummary(3, 2025, models.AttendanceRecord{Date: "2025-03-10", Status: models.StatusPresent})
	overrides := map[string]string{"2025-03-10": models.DayTypeWorking}

	Recompute(s, overrides)

	// present on an explicitly marked working day feeds the denominator twice
	assert.Equal(t, 2, s.WorkingDays)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, float64(50), s.Percentage)
}

func TestRecomputeHolidayOverrideOnly(t *testing.T) {
	s := newSummary(3, 2025)
	overrides := map[string]string{"2025-03-17": models.DayTypeHoliday}

	Recompute(s, overrides)

	assert.Equal(t, 1, s.HolidayDays)
	assert.Zero(t, s.PresentDays)
	assert.Zero(t, s.AbsentDays)
	assert.Zero(t, s.LateDays)
	assert.Zero(t, s.WorkingDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeHolidayOverrideBeatsRecord(t *testing.T) {
	s := newSummary(3, 2025, models.AttendanceRecord{Date: "2025-03-17", Status: models.StatusPresent})
	overrides := map[string]string{"2025-03-17": models.DayTypeHoliday}

	Recompute(s, overrides)

	assert.Equal(t, 1, s.HolidayDays)
	assert.Zero(t, s.PresentDays)
	assert.Zero(t, s.WorkingDays)
}

func TestRecomputeLeaveOverride(t *testing.T) {
	s := newSummary(3, 2025)
	overrides := map[string]string{"2025-03-05": models.DayTypeLeave}

	Recompute(s, overrides)

	assert.Equal(t, 1, s.LeaveDays)
	assert.Equal(t, 1, s.WorkingDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeWorkingOverrideWithoutRecordIsAbsent(t *testing.T) {
	s := newSummary(3, 2025)
	overrides := map[string]string{"2025-03-11": models.DayTypeWorking}

	Recompute(s, overrides)

	assert.Equal(t, 1, s.WorkingDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeUnmarkedAbsentSkipsDenominator(t *testing.T) {
	s := newSummary(3, 2025, models.AttendanceRecord{Date: "2025-03-12", Status: models.StatusAbsent})

	Recompute(s, nil)

	assert.Equal(t, 1, s.AbsentDays)
	assert.Zero(t, s.WorkingDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeUnmarkedLateSkipsDenominator(t *testing.T) {
	s := newSummary(3, 2025, models.AttendanceRecord{Date: "2025-03-12", Status: models.StatusLate})

	Recompute(s, nil)

	assert.Equal(t, 1, s.LateDays)
	assert.Zero(t, s.WorkingDays)
	assert.Zero(t, s.Percentage)
}

func TestRecomputeUnmarkedPresent(t *testing.T) {
	s := newSummary(3, 2025, models.AttendanceRecord{Date: "2025-03-03", Status: models.StatusPresent})

	Recompute(s, nil)

	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 1, s.WorkingDays)
	assert.Equal(t, float64(100), s.Percentage)
}

func TestRecomputeMixedMonth(t *testing.T) {
	s := newSummary(4, 2025,
		models.AttendanceRecord{Date: "2025-04-01", Status: models.StatusPresent},
		models.AttendanceRecord{Date: "2025-04-02", Status: models.StatusLate},
		models.AttendanceRecord{Date: "2025-04-03", Status: models.StatusAbsent},
		models.AttendanceRecord{Date: "2025-04-07", Status: models.StatusPresent},
	)
	overrides := map[string]string{
		"2025-04-04": models.DayTypeHoliday,
		"2025-04-05": models.DayTypeLeave,
		"2025-04-07": models.DayTypeWorking,
		"2025-04-08": models.DayTypeWorking,
	}

	Recompute(s, overrides)

	assert.Equal(t, 30, s.TotalDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.LateDays)
	// 04-03 explicit absent + 04-08 working override with no record
	assert.Equal(t, 2, s.AbsentDays)
	assert.Equal(t, 1, s.HolidayDays)
	assert.Equal(t, 1, s.LeaveDays)
	// 04-01 (1) + leave 04-05 (1) + 04-07 working+present (2) + 04-08 (1)
	assert.Equal(t, 5, s.WorkingDays)
	assert.InDelta(t, 60.0, s.Percentage, 0.0001)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	s := newSummary(4, 2025, models.AttendanceRecord{Date: "2025-04-01", Status: models.StatusPresent})
	overrides := map[string]string{"2025-04-02": models.DayTypeLeave}

	Recompute(s, overrides)
	first := *s
	Recompute(s, overrides)

	assert.Equal(t, first.PresentDays, s.PresentDays)
	assert.Equal(t, first.WorkingDays, s.WorkingDays)
	assert.Equal(t, first.LeaveDays, s.LeaveDays)
	assert.Equal(t, first.Percentage, s.Percentage)
}

func TestRecomputeLateCountsTowardPercentage(t *testing.T) {
	s := newSummary(5, 2025,
		models.AttendanceRecord{Date: "2025-05-01", Status: models.StatusPresent},
		models.AttendanceRecord{Date: "2025-05-02", Status: models.StatusLate},
	)
	overrides := map[string]string{
		"2025-05-02": models.DayTypeWorking,
		"2025-05-05": models.DayTypeWorking,
	}

	Recompute(s, overrides)

	// working 05-02 (1) + unmarked present 05-01 (1) + working 05-05 (1)
	assert.Equal(t, 3, s.WorkingDays)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.InDelta(t, 66.6667, s.Percentage, 0.001)
}

func TestUpsertRecordReplacesExistingDate(t *testing.T) {
	s := newSummary(6, 2025, models.AttendanceRecord{Date: "2025-06-02", Status: models.StatusAbsent})

	UpsertRecord(s, models.AttendanceRecord{Date: "2025-06-02", Status: models.StatusPresent})
	UpsertRecord(s, models.AttendanceRecord{Date: "2025-06-03", Status: models.StatusLate})

	assert.Len(t, s.Records, 2)
	assert.Equal(t, models.StatusPresent, s.Records[0].Status)
	assert.Equal(t, "2025-06-03", s.Records[1].Date)
}
