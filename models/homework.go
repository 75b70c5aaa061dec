package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Homework struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClassName   string             `json:"class_name" bson:"class_name"`
	Subject     string             `json:"subject" bson:"subject"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	DueDate     string             `json:"due_date" bson:"due_date"`
	AssignedBy  primitive.ObjectID `json:"assigned_by" bson:"assigned_by"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type HomeworkCreatePayload struct {
	ClassName   string `json:"class_name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type HomeworkUpdatePayload struct {
	Subject     string `json:"subject,omitempty"`
	Title       string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DueDate     string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
