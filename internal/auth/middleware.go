package auth

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"markbook/internal/model"
)

const identityKey = "identity"

// ErrTokenFormat marks an Authorization header whose bearer value is
// structurally empty after the scheme. Distinct from ErrTokenMalformed,
// which Verify raises for a present-but-undecodable token.
var ErrTokenFormat = errors.New("empty bearer token")

// Identity returns the verified claims attached to the context by Required,
// or nil if the request was not authenticated.
func Identity(c echo.Context) *Claims {
	claims, _ := c.Get(identityKey).(*Claims)
	return claims
}

// Required authenticates every request on a route group via the bearer token
// in the Authorization header. The three failure classes stay distinct: no
// header at all, a header with no token after the scheme, and a token that
// does not verify.
func Required(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, value string) (interface{}, error) {
			parts := strings.SplitN(value, " ", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				return nil, ErrTokenFormat
			}
			claims, err := jwtService.Verify(parts[1])
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrMissingSecret):
				c.Logger().Error("JWT secret is not configured")
				return echo.NewHTTPError(http.StatusInternalServerError, "Server configuration error")
			case errors.Is(err, ErrTokenFormat):
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
			case errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			default:
				// extraction failed: no Authorization header on the request
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}
		},
	})
}

var roleDeniedMessages = map[string]string{
	model.RoleAdmin:   "Access denied. Admin only.",
	model.RoleFaculty: "Access denied. Faculty only.",
	model.RoleStudent: "Access denied. Students only.",
}

// RequireRole restricts a route group to identities holding a single role.
// The message is per-role so a wrong-role rejection is distinguishable from
// the course-ownership rejections raised deeper in the faculty services.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := Identity(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}
			if identity.Role != role {
				msg := roleDeniedMessages[role]
				if msg == "" {
					msg = "Access denied."
				}
				return echo.NewHTTPError(http.StatusForbidden, msg)
			}
			return next(c)
		}
	}
}
