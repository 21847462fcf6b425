package middleware

import (
	"net/http"
	"strings"

	"devfinder/internal/entity"
	"devfinder/internal/repository"
	"devfinder/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const unauthorizedMessage = "Usuário(a) não possui permissão para realizar essa ação"

// AuthMiddleware gates protected routes. Every failure mode is a 401
// with the same message, including missing resources, so that user
// existence is never leaked.
type AuthMiddleware struct {
	JWT   *utils.JWTManager
	Users repository.UserRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return err
		}
		SetAuthContext(c, user.ID, user.Email, string(user.Role))
		return next(c)
	}
}

func (m AuthMiddleware) RequireRecruiter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return err
		}
		if user.Role != entity.UserRoleRecruiter {
			return unauthorized()
		}
		SetAuthContext(c, user.ID, user.Email, string(user.Role))
		return next(c)
	}
}

func (m AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	if m.JWT == nil || m.Users == nil {
		return nil, unauthorized()
	}
	token := extractBearerToken(c.Request())
	if token == "" {
		return nil, unauthorized()
	}
	claims, err := m.JWT.ParseSessionToken(token)
	if err != nil {
		return nil, unauthorized()
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, unauthorized()
	}
	user, err := m.Users.FindByID(c.Request().Context(), userID)
	if err != nil || user == nil {
		return nil, unauthorized()
	}
	return user, nil
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
