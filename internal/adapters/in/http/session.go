package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sales/internal/core/domain/model/kernel"
)

const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	roleAdmin  = "admin"
	sessionKey = "session"
)

// requireSession builds a kernel.Session from the identity headers and
// rejects requests without a valid caller email.
func requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Request().Header.Get(HeaderUserEmail)
		if strings.TrimSpace(email) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing "+HeaderUserEmail+" header")
		}

		newSession := kernel.NewSession
		if strings.EqualFold(strings.TrimSpace(c.Request().Header.Get(HeaderUserRole)), roleAdmin) {
			newSession = kernel.NewAdminSession
		}

		session, err := newSession(email)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserEmail+" header")
		}

		c.Set(sessionKey, session)
		return next(c)
	}
}

func sessionFrom(c echo.Context) kernel.Session {
	session, _ := c.Get(sessionKey).(kernel.Session)
	return session
}
