package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SchoolClass struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Grade     int                `json:"grade" bson:"grade"`
	Section   string             `json:"section,omitempty" bson:"section,omitempty"`
	TeacherID primitive.ObjectID `json:"teacher_id,omitempty" bson:"teacher_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type SchoolClassCreatePayload struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	Grade     int    `json:"grade" validate:"required,min=1,max=12"`
	Section   string `json:"section"`
	TeacherID string `json:"teacher_id"`
}

type SchoolClassUpdatePayload struct {
	Name      string `json:"name,omitempty"`
	Grade     int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
	Section   string `json:"section,omitempty"`
	TeacherID string `json:"teacher_id,omitempty"`
}
