package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"trs-service/internal/apperrors"
)

// UserIDKey is the Locals key under which the authenticated user's ID is
// stored for handlers.
const UserIDKey = "x-user-id"

// JWTAuth validates the bearer token on every request and stores the
// subject user ID in the request Locals.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperrors.Auth("Missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return apperrors.Auth("Missing token")
		}

		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				return apperrors.Auth("Token signature verification failed")
			case errors.Is(err, jwt.ErrTokenExpired):
				return apperrors.Auth("Expired token")
			default:
				return apperrors.Auth("Unable to decode token")
			}
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid {
			return apperrors.Auth("Unable to decode token")
		}
		userID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil || userID == 0 {
			return apperrors.Auth("Unable to decode token")
		}

		c.Locals(UserIDKey, uint(userID))
		return c.Next()
	}
}

// UserID returns the authenticated user's ID placed by JWTAuth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
