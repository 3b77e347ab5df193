package handler

import (
	"errors"
	"net/http"
	"os"
	"time"

	"unsent/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"
)

// The system stays anonymous: the token carries nothing but a random
// anon_id, letting a client keep one label across reconnects without any
// account.
func jwtSecret() []byte {
	if s := os.Getenv("UNSENT_JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("unsent-dev-secret")
}

// generateAnonToken signs a token for the given anonymous ID.
func generateAnonToken(anonID string) (string, error) {
	claims := jwt.MapClaims{
		"anon_id": anonID,
		"exp":     time.Now().Add(config.AnonTokenTTL).Unix(),
		"iss":     "unsent-backend",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// validateAnonToken returns the anon_id carried by a valid token.
func validateAnonToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	anonID, ok := claims["anon_id"].(string)
	if !ok || anonID == "" {
		return "", errors.New("missing anon_id")
	}
	return anonID, nil
}

// GetAnonID mints a fresh anonymous ID and returns it with a signed token.
func (h *Handler) GetAnonID(c *gin.Context) {
	anonID := uuid.New().String()

	token, err := generateAnonToken(anonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "anon_id": anonID})
}
