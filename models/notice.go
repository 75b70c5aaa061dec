package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notice struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	Audience  string             `json:"audience" bson:"audience"`
	Date      string             `json:"date" bson:"date"`
	PostedBy  primitive.ObjectID `json:"posted_by" bson:"posted_by"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type NoticeCreatePayload struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Body     string `json:"body" validate:"required,min=3,max=5000"`
	Audience string `json:"audience" validate:"required,oneof=all students teachers"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

type NoticeUpdatePayload struct {
	Title    string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Body     string `json:"body,omitempty" validate:"omitempty,min=3,max=5000"`
	Audience string `json:"audience,omitempty" validate:"omitempty,oneof=all students teachers"`
	Date     string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
