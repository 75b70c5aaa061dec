package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a school-wide calendar entry. Date is the first occurrence;
// RecurrenceRule, when set, is an RFC 5545 RRULE that expands it over a range.
type Event struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Date           string             `json:"date" bson:"date"`
	StartTime      string             `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime        string             `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Audience       string             `json:"audience" bson:"audience"`
	RecurrenceRule string             `json:"recurrence_rule,omitempty" bson:"recurrence_rule,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type EventCreatePayload struct {
	Title          string `json:"title" validate:"required,min=3,max=200"`
	Description    string `json:"description" validate:"omitempty,max=2000"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Audience       string `json:"audience" validate:"required,oneof=all students teachers"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type EventUpdatePayload struct {
	Title          string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Date           string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime        string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Audience       string `json:"audience,omitempty" validate:"omitempty,oneof=all students teachers"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}
