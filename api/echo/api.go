// Package echo wires the HTTP surface: route registration, request
// validation, and the mapping from internal errors to the uniform
// response envelope.
package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/middleware"
	"go.pilab.hu/partsdesk/services"
)

// API holds the handler dependencies.
type API struct {
	sessions  *services.SessionService
	users     *services.UserService
	products  *services.ProductService
	incidents *services.IncidentService
}

// NewAPI initializes the HTTP API.
func NewAPI(
	sessions *services.SessionService,
	users *services.UserService,
	products *services.ProductService,
	incidents *services.IncidentService,
) *API {
	return &API{
		sessions:  sessions,
		users:     users,
		products:  products,
		incidents: incidents,
	}
}

// RegisterRoutes registers every endpoint with its guards.
func (a *API) RegisterRoutes(e *echo.Echo) {
	authn := middleware.RequireSession(a.sessions)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleUser)
	userOnly := middleware.RequireRole(domain.RoleUser)

	user := e.Group("/user")
	user.POST("/login", a.Login)
	user.GET("/profile", a.Profile, authn)
	user.GET("/logout", a.Logout, authn)
	user.POST("/page/:page", a.UserList, authn, adminOnly)

	products := e.Group("/products")
	products.POST("/update", a.ProductUpdate, authn, adminOnly)
	products.GET("/profile/:id", a.ProductProfile)
	products.POST("/search/:page", a.ProductSearch)
	products.GET("/showcase/:showcase/:size", a.ProductShowcase)
	products.GET("/type/:type", a.ProductFacet)
	products.DELETE("/remove", a.ProductRemove, authn, adminOnly)

	incident := e.Group("/incident", authn)
	incident.POST("/update", a.IncidentUpdate, adminOnly)
	incident.GET("/profile/:id", a.IncidentProfile, anyRole)
	incident.POST("/page/:page", a.IncidentList, anyRole)
	incident.DELETE("/remove", a.IncidentRemove, adminOnly)
	incident.PUT("/view", a.IncidentView, userOnly)
	incident.PUT("/resolve", a.IncidentResolve, userOnly)
}

// ErrorHandler is the framework-level fallback. Unmatched routes answer
// 404; anything else that escapes a handler answers 500. In normal
// operation handlers respond first and this never fires.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
		_ = c.JSON(http.StatusNotFound, api.Failure(domain.CodeNotFound))
		return
	}
	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
	_ = c.JSON(http.StatusInternalServerError, api.Failure(domain.CodeErrorServer))
}

// fail translates an internal error into its failure envelope. Validation
// failures carry their field codes under the given system code; store
// failures are logged and reported as a generic failure without detail.
func (a *API) failAs(c echo.Context, err error, validationCode string) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.JSON(http.StatusOK, api.FailureWith(validationCode, ve.Fields))
	}

	var code string
	switch {
	case errors.Is(err, domain.ErrInvalidPage):
		code = domain.CodeInvalidPage
	case errors.Is(err, domain.ErrInvalidID):
		code = domain.CodeInvalidRequest
	case errors.Is(err, domain.ErrTitleTaken):
		code = domain.CodeExistTitle
	case errors.Is(err, domain.ErrDeniedPermission):
		code = domain.CodeDeniedPermission
	case errors.Is(err, domain.ErrInvalidUser):
		code = domain.CodeInvalidUser
	case errors.Is(err, domain.ErrInvalidSession):
		code = domain.CodeInvalidSession
	case errors.Is(err, domain.ErrNoRecord):
		code = domain.CodeNoRecord
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
		code = domain.CodeFailed
	}
	return c.JSON(http.StatusOK, api.Failure(code))
}

func (a *API) fail(c echo.Context, err error) error {
	return a.failAs(c, err, domain.CodeFailed)
}

// listFail handles list-endpoint failures: an empty matching set answers
// no.record with an explicitly empty page so clients always see the
// pagination shape.
func (a *API) listFail(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNoRecord) {
		return c.JSON(http.StatusOK, api.FailureWith(domain.CodeNoRecord, domain.Page[any]{
			Collection: []any{},
		}))
	}
	return a.fail(c, err)
}
