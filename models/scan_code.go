package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScanCode is the daily QR code students scan to mark themselves present.
type ScanCode struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string               `json:"code" bson:"code"`
	Date      string               `json:"date" bson:"date"`
	ExpiresAt time.Time            `json:"expires_at" bson:"expires_at"`
	UsedBy    []primitive.ObjectID `json:"used_by" bson:"used_by"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at,omitempty"`
}
