package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"WANDERPLAN_BACK-END/internal/config"
)

// ResetClaims represents the claims of a short-lived password reset token
type ResetClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	Purpose string    `json:"purpose"`
	jwt.RegisteredClaims
}

const resetPurpose = "password_reset"

// GenerateResetToken creates a short-lived token tied to the verified
// reset code flow. It is only accepted by ValidateResetToken.
func GenerateResetToken(userID uuid.UUID, cfg *config.JWTConfig) (string, error) {
	claims := ResetClaims{
		UserID:  userID,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateResetToken validates a password reset token and returns the
// user id it was issued for.
func ValidateResetToken(tokenString string, cfg *config.JWTConfig) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.Purpose != resetPurpose {
		return uuid.Nil, jwt.ErrTokenMalformed
	}
	return claims.UserID, nil
}
