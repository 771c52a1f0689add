package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"inventory/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo context key the middleware stores the
// verified caller identity under.
const identityContextKey = "identity"

var errNoToken = errors.New("missing bearer token")

// IdentityMiddleware verifies the caller's JWT and stores the resulting
// Identity in the request context. Tokens are HS256-signed by the external
// auth service and carry user_id, username and is_admin claims.
//
// The token usually arrives as an Authorization bearer header; websocket
// clients cannot set headers from the browser, so a `token` query parameter
// is accepted as a fallback.
func IdentityMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := identityFromRequest(c, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing credentials",
				})
			}

			c.Set(identityContextKey, ident)
			return next(c)
		}
	}
}

// IdentityFromContext returns the verified caller identity stored by
// IdentityMiddleware.
func IdentityFromContext(c echo.Context) (kernel.Identity, error) {
	ident, ok := c.Get(identityContextKey).(kernel.Identity)
	if !ok {
		return kernel.Identity{}, kernel.ErrIdentityIsNotConstructed
	}

	return ident, ident.Validate()
}

func identityFromRequest(c echo.Context, secret []byte) (kernel.Identity, error) {
	raw, err := extractToken(c)
	if err != nil {
		return kernel.Identity{}, err
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return kernel.Identity{}, err
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return kernel.Identity{}, fmt.Errorf("token has no user_id claim")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return kernel.Identity{}, fmt.Errorf("token has no username claim")
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return kernel.NewIdentity(int64(userID), username, isAdmin)
}

func extractToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if bearer, ok := strings.CutPrefix(header, "Bearer "); ok && bearer != "" {
		return bearer, nil
	}

	if token := c.QueryParam("token"); token != "" {
		return token, nil
	}

	return "", errNoToken
}
