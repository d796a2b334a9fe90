package middleware

import (
	"errors"
	"net/http"
	"slices"

	"meca-api/core/constants"
	"meca-api/core/controller"
	appErrors "meca-api/core/errors"
	"meca-api/core/logger"
	"meca-api/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	secret string
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// AuthMiddleware validates the bearer token and stores its claims under "token_data".
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := utils.GetTokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErrors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			claims, err := utils.ValidateAndParseToken(token, m.secret)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				if errors.Is(err, jwt.ErrTokenExpired) {
					return controller.NewErrorResponse(http.StatusUnauthorized, appErrors.ErrTokenExpired, "token expired")
				}
				return controller.NewErrorResponse(http.StatusUnauthorized, appErrors.ErrInvalidTokenFormat, "invalid token")
			}

			c.Set(constants.ContextKeyTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole must run after AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextKeyTokenData).(*utils.TokenClaims)
			if !ok || claims == nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErrors.ErrUnauthorized, "unauthorized")
			}
			if !slices.Contains(roles, claims.Role) {
				return controller.NewErrorResponse(http.StatusForbidden, appErrors.ErrForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// GetClaims reads the claims stored by AuthMiddleware.
func GetClaims(c echo.Context) (*utils.TokenClaims, *appErrors.AppError) {
	tokenData := c.Get(constants.ContextKeyTokenData)
	if tokenData == nil {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "Token data not found in context", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "Invalid token data format", nil)
	}
	return claims, nil
}
