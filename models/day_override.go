package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DayTypeHoliday = "holiday"
	DayTypeLeave   = "leave"
	DayTypeWorking = "working"
)

// DayOverride classifies a calendar date for every user at once.
// A date without an override is simply unmarked.
type DayOverride struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date        string             `json:"date" bson:"date"`
	DayType     string             `json:"day_type" bson:"day_type"`
	HolidayType string             `json:"holiday_type,omitempty" bson:"holiday_type,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type DayOverrideCreatePayload struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	DayType     string `json:"day_type" validate:"required,oneof=holiday leave working"`
	HolidayType string `json:"holiday_type"`
	Description string `json:"description"`
}

type DayOverrideUpdatePayload struct {
	DayType     string `json:"day_type" validate:"required,oneof=holiday leave working"`
	HolidayType string `json:"holiday_type"`
	Description string `json:"description"`
}
