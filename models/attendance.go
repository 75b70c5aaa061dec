package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"

	DayTypeHalfDay = "half-day"
	DayTypeFullDay = "full-day"

	// Scan-triggered records always carry these wall-clock values,
	// regardless of the actual scan time.
	ScanCheckInTime  = "09:00"
	ScanCheckOutTime = "16:00"
)

// AttendanceRecord is one observed attendance event, embedded in the
// MonthlySummary of its month. There is at most one record per date.
type AttendanceRecord struct {
	Date     string `json:"date" bson:"date"`
	Status   string `json:"status" bson:"status"`
	DayType  string `json:"day_type,omitempty" bson:"day_type,omitempty"`
	CheckIn  string `json:"check_in,omitempty" bson:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty" bson:"check_out,omitempty"`
	Remarks  string `json:"remarks,omitempty" bson:"remarks,omitempty"`
}

// MonthlySummary holds one user's attendance records for one calendar month
// together with the derived counters. One document per (user, month, year).
type MonthlySummary struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Month       int                `json:"month" bson:"month"`
	Year        int                `json:"year" bson:"year"`
	Records     []AttendanceRecord `json:"records" bson:"records"`
	TotalDays   int                `json:"total_days" bson:"total_days"`
	PresentDays int                `json:"present_days" bson:"present_days"`
	AbsentDays  int                `json:"absent_days" bson:"absent_days"`
	LateDays    int                `json:"late_days" bson:"late_days"`
	HolidayDays int                `json:"holiday_days" bson:"holiday_days"`
	LeaveDays   int                `json:"leave_days" bson:"leave_days"`
	WorkingDays int                `json:"working_days" bson:"working_days"`
	Percentage  float64            `json:"percentage" bson:"percentage"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type AttendanceMarkPayload struct {
	UserID   string `json:"user_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status" validate:"required,oneof=present absent late"`
	CheckIn  string `json:"check_in" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=15:04"`
	Remarks  string `json:"remarks"`
}

// BulkAttendanceEntry uses the numeric status codes the mobile client sends:
// 0 = working, 1 = present, 2 = absent.
type BulkAttendanceEntry struct {
	UserID string `json:"user_id"`
	Status *int   `json:"status"`
}

type AttendanceBulkMarkPayload struct {
	Date    string                `json:"date" validate:"required,datetime=2006-01-02"`
	Records []BulkAttendanceEntry `json:"records" validate:"required,min=1"`
}

type BulkMarkResult struct {
	UserID string `json:"user_id"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ScanAttendancePayload struct {
	Code string `json:"code" validate:"required"`
}
