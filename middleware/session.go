// Package middleware carries the request guards: session authentication
// and the role gate. Both short-circuit with a failure envelope before
// the handler runs.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/services"
)

const sessionContextKey = "partsdesk.session"

// RequireSession authenticates the bearer token and stores the resolved
// session on the request context. A missing or malformed header yields
// invalid.token; an unknown or expired token yields invalid.session.
func RequireSession(sessions *services.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidToken))
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidToken))
			}

			session, err := sessions.Validate(c.Request().Context(), parts[1])
			if err != nil {
				if !errors.Is(err, domain.ErrInvalidSession) {
					log.Error().Err(err).Msg("Session validation failed")
				}
				return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidSession))
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the authenticated session stored by RequireSession,
// or nil when the request was never authenticated.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionContextKey).(*domain.Session)
	return session
}
