package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gabacode/AInteract/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ServiceAuth verifies HS256 bearer tokens minted by the background workers
// on mutating endpoints. With an empty secret the API stays open and the
// middleware is a pass-through.
func ServiceAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewValidationError("Missing bearer token"))
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewValidationError("Invalid bearer token"))
		}

		if subject, err := token.Claims.GetSubject(); err == nil && subject != "" {
			c.SetUserContext(context.WithValue(c.UserContext(), ServiceKey, subject))
		}
		return c.Next()
	}
}

// NewServiceToken mints a short-lived HS256 token identifying a worker.
func NewServiceToken(secret, service string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   service,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString([]byte(secret))
}
