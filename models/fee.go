package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeeStatusUnpaid = "unpaid"
	FeeStatusPaid   = "paid"
)

type Fee struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentID primitive.ObjectID `json:"student_id" bson:"student_id"`
	Term      string             `json:"term" bson:"term"`
	Amount    float64            `json:"amount" bson:"amount"`
	DueDate   string             `json:"due_date" bson:"due_date"`
	Status    string             `json:"status" bson:"status"`
	PaidAt    *time.Time         `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	Method    string             `json:"method,omitempty" bson:"method,omitempty"`
	Remarks   string             `json:"remarks,omitempty" bson:"remarks,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type FeeCreatePayload struct {
	StudentID string  `json:"student_id" validate:"required"`
	Term      string  `json:"term" validate:"required,min=2,max=100"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	DueDate   string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	Remarks   string  `json:"remarks"`
}

type FeePaymentPayload struct {
	Method  string `json:"method" validate:"required,oneof=cash card transfer online"`
	Remarks string `json:"remarks"`
}
