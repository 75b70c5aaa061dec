package models

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type LoginSuccessResponse struct {
	Message      string `json:"message" example:"Login successful"`
	Token        string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID       string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role         string `json:"role" example:"student"`
	IsFirstLogin bool   `json:"is_first_login" example:"true"`
}

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// BulkMarkResponse is the always-200 envelope of the bulk marking endpoint.
type BulkMarkResponse struct {
	Successful []BulkMarkResult `json:"successful"`
	Errors     []BulkMarkResult `json:"errors"`
}
