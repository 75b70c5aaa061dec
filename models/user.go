package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Password     string             `json:"password,omitempty" bson:"password,omitempty"`
	Role         string             `json:"role" bson:"role,omitempty"`
	ClassName    string             `json:"class_name,omitempty" bson:"class_name,omitempty"`
	GuardianName string             `json:"guardian_name,omitempty" bson:"guardian_name,omitempty"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Photo        string             `json:"photo,omitempty" bson:"photo,omitempty"`
	IsFirstLogin bool               `json:"is_first_login" bson:"is_first_login,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name         string `json:"name" validate:"required,min=3,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role         string `json:"role" validate:"required,oneof=student teacher management"`
	ClassName    string `json:"class_name"`
	GuardianName string `json:"guardian_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address" validate:"omitempty,min=5,max=255"`
	Photo        string `json:"photo" validate:"omitempty,url"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	ClassName    string `json:"class_name,omitempty"`
	GuardianName string `json:"guardian_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	Photo        string `json:"photo,omitempty" validate:"omitempty,url"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}
