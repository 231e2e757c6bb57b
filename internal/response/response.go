package response

// SuccessResponse is a plain acknowledgement.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	// Machine readable error code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human readable message
	// example: Invalid request data
	Message string `json:"message"`

	// Optional details
	// example: Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag
	Details string `json:"details,omitempty"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`

	Role string `json:"role" example:"doctor"`
}
