package echo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"go.pilab.hu/partsdesk/api"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
	"go.pilab.hu/partsdesk/middleware"
)

// ProductUpdate upserts a catalog entry. Admin only.
func (a *API) ProductUpdate(c echo.Context) error {
	var req productUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	session := middleware.SessionFrom(c)
	err := a.products.Update(c.Request().Context(), domain.ProductUpsert{
		ID:          req.ID,
		Brand:       req.Brand,
		Name:        req.Name,
		Category:    req.Category,
		CarMake:     req.CarMake,
		Description: req.Description,
		PartNumber:  req.PartNumber,
		Position:    req.Position,
		Price:       req.Price,
		PictureCode: req.PictureCode,
		Infos:       req.Infos,
		IsFeatured:  req.IsFeatured,
		IsPopular:   req.IsPopular,
		IsView:      req.IsView,
		UpdatedBy:   session.UserID,
	})
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}

// ProductProfile returns one product by id. Public.
func (a *API) ProductProfile(c echo.Context) error {
	product, err := a.products.Profile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(product))
}

// ProductSearch returns one page of matching products. Public.
func (a *API) ProductSearch(c echo.Context) error {
	var req productSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}

	sort, err := query.ParseSort(req.Sort, req.OrderBy, query.ProductSortFields)
	if err != nil {
		return a.fail(c, err)
	}
	offset, err := query.ParsePage(c.Param("page"))
	if err != nil {
		return a.fail(c, err)
	}

	page, err := a.products.Search(c.Request().Context(), query.ProductSearch{
		Term:     req.Search,
		Category: req.Category,
		CarMake:  req.CarMake,
		Sort:     sort,
		Offset:   offset,
	})
	if err != nil {
		return a.listFail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(page))
}

// ProductShowcase returns a random sample of curated products. Public.
func (a *API) ProductShowcase(c echo.Context) error {
	flag := domain.ShowcaseFlag(c.Param("showcase"))
	var fields []domain.FieldError
	if flag != domain.ShowcaseFeatured && flag != domain.ShowcasePopular {
		fields = append(fields, domain.FieldError{Field: "showcase", Code: domain.CodeInvalidType})
	}
	size, err := strconv.Atoi(c.Param("size"))
	if err != nil || size < 0 || size > domain.ShowcaseMaxSize {
		fields = append(fields, domain.FieldError{Field: "size", Code: domain.CodeSizeExceeded})
	}
	if len(fields) > 0 {
		return a.fail(c, domain.NewValidationError(fields...))
	}

	products, err := a.products.Showcase(c.Request().Context(), flag, size)
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(products))
}

// ProductFacet returns the distinct values of one facet field. Public.
func (a *API) ProductFacet(c echo.Context) error {
	values, err := a.products.Facet(c.Request().Context(), c.Param("type"))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(values))
}

// ProductRemove deletes one product by id. Admin only.
func (a *API) ProductRemove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, api.Failure(domain.CodeInvalidRequest))
	}
	if err := c.Validate(&req); err != nil {
		return a.fail(c, err)
	}

	if err := a.products.Remove(c.Request().Context(), req.ID); err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, api.Success(nil))
}
