package http

import (
	"fmt"
	"net/http"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the authenticated actor
// in the echo context.
const actorContextKey = "actor"

// AuthMiddleware validates bearer tokens and resolves them to an Actor.
// Tokens are HMAC-signed JWTs carrying the subject's identifier and role.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates middleware validating tokens against secret.
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Require returns an echo middleware rejecting requests without a valid
// bearer token. On success the actor is stored in the request context.
func (m *AuthMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := m.authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing credentials",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// authenticate parses the Authorization header into an Actor.
func (m *AuthMiddleware) authenticate(header string) (account.Actor, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return account.Actor{}, fmt.Errorf("missing bearer token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		})
	if err != nil {
		return account.Actor{}, err
	}
	if !token.Valid {
		return account.Actor{}, fmt.Errorf("token is not valid")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return account.Actor{}, fmt.Errorf("token has no subject")
	}
	roleClaim, ok := claims["role"].(string)
	if !ok {
		return account.Actor{}, fmt.Errorf("token has no role")
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(roleClaim)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(id, role)
}

// actorFromContext returns the actor the auth middleware resolved for this
// request. Handlers behind Require() can rely on it being present.
func actorFromContext(c echo.Context) (account.Actor, error) {
	actor, ok := c.Get(actorContextKey).(account.Actor)
	if !ok {
		return account.Actor{}, fmt.Errorf("no authenticated actor in request context")
	}
	return actor, nil
}
