package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
	"go.pilab.hu/partsdesk/middleware"
)

// Login verifies credentials and answers with a fresh session, token
// included.
func (a *API) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	session, err := a.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(session))
}

// Profile returns the caller's own session.
func (a *API) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, api.Success(middleware.SessionFrom(c)))
}

// Logout revokes the caller's session.
func (a *API) Logout(c echo.Context) error {
	session := middleware.SessionFrom(c)
	removed, err := a.sessions.Revoke(c.Request().Context(), session.Token)
	if err != nil {
		return a.fail(c, err)
	}
	if !removed {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeFailed))
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}

// UserList returns one page of non-admin accounts. Admin only.
func (a *API) UserList(c echo.Context) error {
	offset, err := query.ParsePage(c.Param("page"))
	if err != nil {
		return a.fail(c, err)
	}

	var req userListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}

	page, err := a.users.List(c.Request().Context(), query.UserList{
		Term:   req.Username,
		Offset: offset,
	})
	if err != nil {
		return a.listFail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(page))
}
