package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedPayload struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,hasuppercase"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status   string `json:"status" validate:"omitempty,oneof=present absent late"`
}

func findError(t *testing.T, errors []*ErrorResponse, field string) *ErrorResponse {
	t.Helper()
	for _, e := range errors {
		if e.Field == field {
			return e
		}
	}
	t.Fatalf("no validation error for field %s", field)
	return nil
}

func TestValidateStructPassesValidPayload(t *testing.T) {
	errors := ValidateStruct(validatedPayload{
		Name:     "Aisha Khan",
		Email:    "aisha@school.example",
		Password: "Password123",
		Date:     "2024-02-29",
		Status:   "late",
	})
	assert.Nil(t, errors)
}

func TestValidateStructRequiredMessage(t *testing.T) {
	errors := ValidateStruct(validatedPayload{})
	require.Len(t, errors, 1)

	e := findError(t, errors, "Name")
	assert.Equal(t, "required", e.Tag)
	assert.Equal(t, "Field 'Name' is required.", e.Msg)
}

func TestValidateStructHasUppercaseMessage(t *testing.T) {
	errors := ValidateStruct(validatedPayload{Name: "Aisha", Password: "alllowercase1"})

	e := findError(t, errors, "Password")
	assert.Equal(t, "hasuppercase", e.Tag)
	assert.Equal(t, "Password must contain at least one uppercase letter.", e.Msg)
}

func TestValidateStructDatetimeMessage(t *testing.T) {
	errors := ValidateStruct(validatedPayload{Name: "Aisha", Date: "29-02-2024"})

	e := findError(t, errors, "Date")
	assert.Equal(t, "datetime", e.Tag)
	assert.Equal(t, "Field 'Date' must match the format 2006-01-02.", e.Msg)
}

func TestValidateStructOneofMessage(t *testing.T) {
	errors := ValidateStruct(validatedPayload{Name: "Aisha", Status: "holiday"})

	e := findError(t, errors, "Status")
	assert.Equal(t, "oneof", e.Tag)
	assert.Equal(t, "Field 'Status' must be one of: present absent late.", e.Msg)
}

func TestValidateStructMinAndEmailMessages(t *testing.T) {
	errors := ValidateStruct(validatedPayload{Name: "Al", Email: "not-an-email"})
	require.Len(t, errors, 2)

	nameErr := findError(t, errors, "Name")
	assert.Equal(t, "Field 'Name' must have at least 3 characters/value.", nameErr.Msg)

	emailErr := findError(t, errors, "Email")
	assert.Equal(t, "Invalid email format.", emailErr.Msg)
}
