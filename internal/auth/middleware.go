package auth

import (
	"net/http"
	"strings"

	"medizone/internal/domain/user"
	"medizone/internal/repository"
	apperrors "medizone/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	tokenService *TokenService
	userRepo     repository.UserRepository
}

func NewMiddleware(tokenService *TokenService, userRepo repository.UserRepository) *Middleware {
	return &Middleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// RequireToken gates a route behind a valid Bearer token. On success the
// verified claims are attached to the request context as the principal.
func (m *Middleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			claims, err := m.tokenService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyPrincipal, claims)

			return next(c)
		}
	}
}

// RequireSelf runs after RequireToken and rejects the request when the named
// path parameter does not match the principal's email claim.
func (m *Middleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := PrincipalEmail(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgPrincipalNotFound)
			}

			if !strings.EqualFold(c.Param(param), email) {
				return respondError(c, http.StatusUnauthorized, msgIdentityMismatch)
			}

			return next(c)
		}
	}
}

// RequireAdmin runs after RequireToken and admits only principals whose
// stored role assignment is admin. The role is read, never written.
func (m *Middleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := PrincipalEmail(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgPrincipalNotFound)
			}

			u, err := m.userRepo.GetByEmail(c.Request().Context(), email)
			if err != nil || u == nil || u.Role != user.RoleAdmin {
				return respondError(c, http.StatusForbidden, msgAdminRequired)
			}

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

// Principal returns the verified claims attached by RequireToken.
func Principal(c echo.Context) (jwt.MapClaims, error) {
	raw := c.Get(ContextKeyPrincipal)
	if raw == nil {
		return nil, apperrors.Unauthorized(msgPrincipalNotFound)
	}

	claims, ok := raw.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.InternalServer(msgInvalidPrincipalCtx, nil)
	}

	return claims, nil
}

func PrincipalEmail(c echo.Context) (string, error) {
	claims, err := Principal(c)
	if err != nil {
		return "", err
	}

	email, ok := claims[claimEmail].(string)
	if !ok || email == "" {
		return "", apperrors.Unauthorized(msgPrincipalEmailMissing)
	}

	return email, nil
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}
