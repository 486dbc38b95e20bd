package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "blogapi/internal/errors"
)

// Context keys populated by ClaimsContext for downstream handlers.
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextTokenIDKey  = "token_id"
	ContextTokenExpKey = "token_exp"
)

// ClaimsContext pulls identity claims out of the token parsed by the JWT
// middleware, rejects revoked tokens, and exposes the identity to
// handlers via the echo context.
func ClaimsContext(store TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
			}

			tokenID, _ := claims["jti"].(string)
			if tokenID != "" {
				if denied, _ := store.IsTokenDenied(c.Request().Context(), tokenID); denied {
					return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "token has been revoked"})
				}
			}

			c.Set(ContextUserIDKey, uint(userID))
			c.Set(ContextTokenIDKey, tokenID)
			if username, ok := claims["username"].(string); ok {
				c.Set(ContextUsernameKey, username)
			}
			if exp, ok := claims["exp"].(float64); ok {
				c.Set(ContextTokenExpKey, time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}
