package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the system
type User struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	Username          string    `json:"username" db:"username"`
	DisplayName       *string   `json:"display_name" db:"display_name"`
	AvatarURL         *string   `json:"avatar_url" db:"avatar_url"`
	HomeCountry       *string   `json:"home_country" db:"home_country"`
	PreferredCurrency *string   `json:"preferred_currency" db:"preferred_currency"`
	Role              string    `json:"role" db:"role"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
