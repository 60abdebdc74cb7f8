package middleware

import (
	"strings"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/utils"
	authService "github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	authSvc authService.AuthServiceInterface
}

func NewMiddleware(authSvc authService.AuthServiceInterface) *Middleware {
	return &Middleware{authSvc: authSvc}
}

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// stores the parsed claims on the echo context under ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, err := m.authSvc.ValidateToken(c.Request().Context(), token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRoles restricts a route group to the listed roles. Comparison is
// case-insensitive, matching how role tags are stored on requests.
func (m *Middleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData := c.Get(constants.ContextTokenData)
			claims, ok := tokenData.(*utils.TokenClaims)
			if !ok || claims == nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "User not authenticated")
			}
			for _, r := range roles {
				if strings.EqualFold(r, claims.Role) {
					return next(c)
				}
			}
			return controller.NewErrorResponse(403, errors.ErrForbidden, "Insufficient role")
		}
	}
}
