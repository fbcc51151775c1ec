package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Username          string  `json:"username" validate:"required,min=3,max=50"`
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=6"`
	DisplayName       *string `json:"display_name,omitempty"`
	HomeCountry       *string `json:"home_country,omitempty"`
	PreferredCurrency *string `json:"preferred_currency,omitempty"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	DisplayName       *string `json:"display_name"`
	AvatarURL         *string `json:"avatar_url"`
	HomeCountry       *string `json:"home_country"`
	PreferredCurrency *string `json:"preferred_currency"`
	Role              string  `json:"role"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// UpdateProfileRequest represents fields allowed to update on a profile
// All fields are optional; only provided ones will be updated
type UpdateProfileRequest struct {
	DisplayName       *string `json:"display_name"`
	AvatarURL         *string `json:"avatar_url"`
	HomeCountry       *string `json:"home_country"`
	PreferredCurrency *string `json:"preferred_currency"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyResetCodeRequest exchanges an emailed code for a reset token
type VerifyResetCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ForgotPasswordResponse acknowledges a reset code email
type ForgotPasswordResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expires_in"`
}

// VerifyResetCodeResponse carries the short-lived reset token
type VerifyResetCodeResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
	ExpiresIn  string `json:"expires_in"`
}

// ResetPasswordResponse acknowledges a completed password reset
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// GoogleUserInfo holds the profile fields fetched from Google
type GoogleUserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Verified bool   `json:"verified"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
