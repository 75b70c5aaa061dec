// Package summary computes the per-month attendance counters from a user's
// raw attendance records and the shared day-override calendar. Every write
// path (manual mark, bulk mark, scan check-in) funnels through Recompute so
// the classification rules live in exactly one place.
package summary

import (
	"time"

	"school-management-backend/models"
)

const dateLayout = "2006-01-02"

// DaysInMonth returns the number of calendar days in the given month,
// including leap-year February.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf formats day d of the summary's month as a "2006-01-02" string.
func DateOf(month, year, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// UpsertRecord replaces the record for rec.Date if one exists, otherwise
// appends it. A summary never holds two records for the same date.
func UpsertRecord(s *models.MonthlySummary, rec models.AttendanceRecord) {
	for i := range s.Records {
		if s.Records[i].Date == rec.Date {
			s.Records[i] = rec
			return
		}
	}
	s.Records = append(s.Records, rec)
}

// Recompute walks every calendar day of the summary's month, classifies it
// against the override calendar and the user's records, and rebuilds all
// counters from scratch. overrides maps "2006-01-02" dates to a day type
// (holiday, leave or working); dates missing from the map are unmarked.
//
// Classification precedence per day:
//   - holiday override: counts toward holidayDays only.
//   - leave override: counts toward leaveDays and the workingDays denominator.
//   - working override: counts toward workingDays; a present record adds
//     presentDays and a second workingDays increment (presence on an
//     explicitly marked working day feeds the denominator twice); a missing
//     record is an implicit absent.
//   - unmarked day: only an existing record contributes — present adds to
//     presentDays and workingDays, absent and late never touch the
//     denominator.
func Recompute(s *models.MonthlySummary, overrides map[string]string) {
	byDate := make(map[string]*models.AttendanceRecord, len(s.Records))
	for i := range s.Records {
		byDate[s.Records[i].Date] = &s.Records[i]
	}

	s.TotalDays = DaysInMonth(s.Month, s.Year)
	s.PresentDays = 0
	s.AbsentDays = 0
	s.LateDays = 0
	s.HolidayDays = 0
	s.LeaveDays = 0
	s.WorkingDays = 0

	for day := 1; day <= s.TotalDays; day++ {
		date := DateOf(s.Month, s.Year, day)
		rec := byDate[date]

		switch overrides[date] {
		case models.DayTypeHoliday:
			s.HolidayDays++

		case models.DayTypeLeave:
			s.LeaveDays++
			s.WorkingDays++

		case models.DayTypeWorking:
			s.WorkingDays++
			if rec == nil {
				s.AbsentDays++
				break
			}
			switch rec.Status {
			case models.StatusPresent:
				s.PresentDays++
				s.WorkingDays++
			case models.StatusAbsent:
				s.AbsentDays++
			case models.StatusLate:
				s.LateDays++
			}

		default: // unmarked
			if rec == nil {
				break
			}
			switch rec.Status {
			case models.StatusPresent:
				s.PresentDays++
				s.WorkingDays++
			case models.StatusAbsent:
				s.AbsentDays++
			case models.StatusLate:
				s.LateDays++
			}
		}
	}

	if s.WorkingDays > 0 {
		s.Percentage = float64(s.PresentDays+s.LateDays) / float64(s.WorkingDays) * 100
	} else {
		s.Percentage = 0
	}
}
