package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/server/sessions"
)

const sessionKey = "session"

// RoleCustomer is the session role of storefront accounts. Any other role
// belongs to staff.
const RoleCustomer = "Customer"

// RequestLogger writes one line per request once the response is done.
func RequestLogger(log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Info(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"bytes", res.Size,
				"latency", time.Since(start).String(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// LoadSession attaches the session named by the session cookie, if it is
// still live, to the echo context.
func LoadSession(store *sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(common.SessionCookieName); err == nil && cookie.Value != "" {
				if sess, err := store.Get(c.Request().Context(), cookie.Value); err == nil {
					c.Set(sessionKey, sess)
				}
			}
			return next(c)
		}
	}
}

func currentSession(c echo.Context) (sessions.Session, bool) {
	sess, ok := c.Get(sessionKey).(sessions.Session)
	return sess, ok
}

// RequireStaff rejects requests without a staff session.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := currentSession(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, resultResponse{Message: "Not authenticated"})
		}
		if sess.Role == RoleCustomer {
			return c.JSON(http.StatusForbidden, resultResponse{Message: "Staff access required."})
		}
		return next(c)
	}
}
