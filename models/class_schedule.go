package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassSchedule is one timetable period for a class. Date is the start of the
// rule; a weekly RRULE repeats the period across the term.
type ClassSchedule struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClassName      string             `json:"class_name" bson:"class_name"`
	Subject        string             `json:"subject" bson:"subject"`
	TeacherID      primitive.ObjectID `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	Date           string             `json:"date" bson:"date"`
	StartTime      string             `json:"start_time" bson:"start_time"`
	EndTime        string             `json:"end_time" bson:"end_time"`
	Room           string             `json:"room,omitempty" bson:"room,omitempty"`
	RecurrenceRule string             `json:"recurrence_rule,omitempty" bson:"recurrence_rule,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ClassScheduleCreatePayload struct {
	ClassName      string `json:"class_name" validate:"required"`
	Subject        string `json:"subject" validate:"required"`
	TeacherID      string `json:"teacher_id"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	Room           string `json:"room"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type ClassScheduleUpdatePayload struct {
	Subject        string `json:"subject,omitempty"`
	TeacherID      string `json:"teacher_id,omitempty"`
	Date           string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime        string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Room           string `json:"room,omitempty"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}
