package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
	"go.pilab.hu/partsdesk/middleware"
)

// IncidentUpdate upserts a ticket. Admin only; the creator is stamped
// from the session.
func (a *API) IncidentUpdate(c echo.Context) error {
	var req incidentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	session := middleware.SessionFrom(c)
	err := a.incidents.Update(c.Request().Context(), domain.IncidentUpsert{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.IncidentType(req.Type),
		Comment:     req.Comment,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   session.UserID,
	})
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}

// IncidentProfile returns one ticket with usernames joined.
func (a *API) IncidentProfile(c echo.Context) error {
	profile, err := a.incidents.Profile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(profile))
}

// IncidentList returns one page of matching tickets.
func (a *API) IncidentList(c echo.Context) error {
	var req incidentListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	sort, err := query.ParseSort(req.Sort, req.OrderBy, query.IncidentSortFields)
	if err != nil {
		return a.fail(c, err)
	}
	offset, err := query.ParsePage(c.Param("page"))
	if err != nil {
		return a.fail(c, err)
	}

	page, err := a.incidents.List(c.Request().Context(), query.IncidentList{
		Term:   req.Search,
		Type:   req.Type,
		Sort:   sort,
		Offset: offset,
	})
	if err != nil {
		return a.listFail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(page))
}

// IncidentRemove deletes one ticket by id. Admin only.
func (a *API) IncidentRemove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	if err := a.incidents.Remove(c.Request().Context(), req.ID); err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}

// IncidentView marks a ticket viewed and reassigns it to the caller.
func (a *API) IncidentView(c echo.Context) error {
	var req incidentViewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.failAs(c, err, domain.CodeInvalidRequest)
	}

	session := middleware.SessionFrom(c)
	if err := a.incidents.MarkViewed(c.Request().Context(), req.ID, req.IsViewed, session.UserID); err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}

// IncidentResolve writes the resolution state of a ticket. Only the
// assigned user may resolve it.
func (a *API) IncidentResolve(c echo.Context) error {
	var req incidentResolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.failAs(c, err, domain.CodeInvalidRequest)
	}

	session := middleware.SessionFrom(c)
	err := a.incidents.Resolve(c.Request().Context(), req.ID, req.Comment, req.IsResolved, session.UserID)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}
