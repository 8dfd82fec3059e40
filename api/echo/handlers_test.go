package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go.pilab.hu/partsdesk/cache"
	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
	"go.pilab.hu/partsdesk/services"
)

type fixture struct {
	e        *echo.Echo
	sessions *services.SessionService

	sessionRepo  *mockSessionRepo
	userRepo     *mockUserRepo
	productRepo  *mockProductRepo
	incidentRepo *mockIncidentRepo
	hasher       *mockHasher
}

func newFixture() *fixture {
	f := &fixture{
		sessionRepo:  new(mockSessionRepo),
		userRepo:     new(mockUserRepo),
		productRepo:  new(mockProductRepo),
		incidentRepo: new(mockIncidentRepo),
		hasher:       new(mockHasher),
	}

	f.sessions = services.NewSessionService(f.sessionRepo, cache.NewSessionCache(time.Hour), time.Hour)
	users := services.NewUserService(f.userRepo, f.sessions, f.hasher)
	products := services.NewProductService(f.productRepo)
	incidents := services.NewIncidentService(f.incidentRepo)

	f.e = echo.New()
	f.e.Validator = NewValidator()
	f.e.HTTPErrorHandler = ErrorHandler
	NewAPI(f.sessions, users, products, incidents).RegisterRoutes(f.e)
	return f
}

// login issues a real session so authenticated requests hit the cache
// fast path without a token lookup expectation.
func (f *fixture) login(t *testing.T, role domain.Role) *domain.Session {
	t.Helper()
	f.sessionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil).Once()
	session, err := f.sessions.Issue(context.Background(), domain.NewID(), "tester", role)
	require.NoError(t, err)
	return session
}

func (f *fixture) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   bool            `json:"status"`
	System   string          `json:"system"`
	Response json.RawMessage `json:"response"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func fieldCodes(t *testing.T, raw json.RawMessage) map[string]string {
	t.Helper()
	var fields []domain.FieldError
	require.NoError(t, json.Unmarshal(raw, &fields))
	codes := make(map[string]string, len(fields))
	for _, f := range fields {
		codes[f.Field] = f.Code
	}
	return codes
}

func TestLogin(t *testing.T) {
	t.Run("empty credentials list both field failures", func(t *testing.T) {
		f := newFixture()
		rec := f.request(t, http.MethodPost, "/user/login", map[string]string{}, "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeFailed, env.System)

		codes := fieldCodes(t, env.Response)
		require.Len(t, codes, 2)
		assert.Equal(t, domain.CodeEmptyUsername, codes["username"])
		assert.Equal(t, domain.CodeEmptyPassword, codes["password"])

		f.userRepo.AssertNotCalled(t, "FindByUsername")
	})

	t.Run("valid credentials answer with the session", func(t *testing.T) {
		f := newFixture()
		account := &domain.User{ID: domain.NewID(), Username: "alice", Password: "hash", Role: domain.RoleAdmin}
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(account, nil).Once()
		f.hasher.On("Verify", "hash", "secret").Return(nil).Once()
		f.sessionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil).Once()

		rec := f.request(t, http.MethodPost, "/user/login", map[string]string{
			"username": "alice",
			"password": "secret",
		}, "")

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Status)
		assert.Equal(t, domain.CodeSuccess, env.System)

		var session domain.Session
		require.NoError(t, json.Unmarshal(env.Response, &session))
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "alice", session.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture()
		account := &domain.User{ID: domain.NewID(), Username: "alice", Password: "hash"}
		f.userRepo.On("FindByUsername", mock.Anything, "alice").Return(account, nil).Once()
		f.hasher.On("Verify", "hash", "nope").Return(assert.AnError).Once()

		rec := f.request(t, http.MethodPost, "/user/login", map[string]string{
			"username": "alice",
			"password": "nope",
		}, "")

		env := decodeEnvelope(t, rec)
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeInvalidUser, env.System)
	})
}

func TestSessionGuard(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := newFixture()
		rec := f.request(t, http.MethodGet, "/user/profile", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeInvalidToken, env.System)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newFixture()
		f.sessionRepo.On("FindByToken", mock.Anything, "bogus").Return(nil, domain.ErrNoRecord).Once()

		rec := f.request(t, http.MethodGet, "/user/profile", nil, "bogus")
		env := decodeEnvelope(t, rec)
		assert.Equal(t, domain.CodeInvalidSession, env.System)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleUser)

		f.sessionRepo.On("DeleteByToken", mock.Anything, session.Token).Return(true, nil).Once()
		env := decodeEnvelope(t, f.request(t, http.MethodGet, "/user/logout", nil, session.Token))
		assert.True(t, env.Status)

		f.sessionRepo.On("FindByToken", mock.Anything, session.Token).Return(nil, domain.ErrNoRecord).Once()
		env = decodeEnvelope(t, f.request(t, http.MethodGet, "/user/profile", nil, session.Token))
		assert.Equal(t, domain.CodeInvalidSession, env.System)
	})
}

func TestRoleGate(t *testing.T) {
	t.Run("user role on an admin endpoint never mutates", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleUser)

		rec := f.request(t, http.MethodPost, "/products/update", map[string]any{
			"brand":       "Bosch",
			"name":        "Spark plug",
			"category":    "ignition",
			"carMake":     "Audi",
			"description": "plug",
		}, session.Token)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeInvalidPermission, env.System)

		f.productRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("admin role on a user-only endpoint", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleAdmin)

		rec := f.request(t, http.MethodPut, "/incident/view", map[string]any{
			"id":       domain.NewID(),
			"isViewed": true,
		}, session.Token)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, domain.CodeInvalidPermission, env.System)
		f.incidentRepo.AssertNotCalled(t, "SetViewed")
	})
}

func TestProductShowcase(t *testing.T) {
	t.Run("size over the cap", func(t *testing.T) {
		f := newFixture()
		rec := f.request(t, http.MethodGet, "/products/showcase/featured/10", nil, "")

		env := decodeEnvelope(t, rec)
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeFailed, env.System)

		codes := fieldCodes(t, env.Response)
		assert.Equal(t, domain.CodeSizeExceeded, codes["size"])
		f.productRepo.AssertNotCalled(t, "Showcase")
	})

	t.Run("unknown flag", func(t *testing.T) {
		f := newFixture()
		env := decodeEnvelope(t, f.request(t, http.MethodGet, "/products/showcase/newest/4", nil, ""))

		codes := fieldCodes(t, env.Response)
		assert.Equal(t, domain.CodeInvalidType, codes["showcase"])
	})

	t.Run("valid request samples the store", func(t *testing.T) {
		f := newFixture()
		f.productRepo.On("Showcase", mock.Anything, domain.ShowcaseFeatured, 4).
			Return([]domain.Product{{Name: "Oil filter"}}, nil).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodGet, "/products/showcase/featured/4", nil, ""))
		assert.True(t, env.Status)

		var products []domain.Product
		require.NoError(t, json.Unmarshal(env.Response, &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Oil filter", products[0].Name)
	})
}

func TestProductSearch(t *testing.T) {
	sortBody := map[string]string{"search": "", "sort": "name", "orderBy": "ascending"}

	t.Run("page must be a positive integer", func(t *testing.T) {
		f := newFixture()
		for _, page := range []string{"0", "-1", "abc"} {
			env := decodeEnvelope(t, f.request(t, http.MethodPost, "/products/search/"+page, sortBody, ""))
			assert.Equal(t, domain.CodeInvalidPage, env.System, "page %q", page)
		}
		f.productRepo.AssertNotCalled(t, "Search")
	})

	t.Run("sort outside the allow-list", func(t *testing.T) {
		f := newFixture()
		env := decodeEnvelope(t, f.request(t, http.MethodPost, "/products/search/1", map[string]string{
			"sort":    "price",
			"orderBy": "ascending",
		}, ""))

		codes := fieldCodes(t, env.Response)
		assert.Equal(t, domain.CodeInvalidType, codes["sort"])
		f.productRepo.AssertNotCalled(t, "Search")
	})

	t.Run("empty matching set is no.record with an empty page", func(t *testing.T) {
		f := newFixture()
		f.productRepo.On("Search", mock.Anything, mock.AnythingOfType("query.ProductSearch")).
			Return(nil, domain.ErrNoRecord).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodPost, "/products/search/1", sortBody, ""))
		assert.False(t, env.Status)
		assert.Equal(t, domain.CodeNoRecord, env.System)

		var page struct {
			Collection []any `json:"collection"`
		}
		require.NoError(t, json.Unmarshal(env.Response, &page))
		assert.NotNil(t, page.Collection)
		assert.Empty(t, page.Collection)
	})

	t.Run("matching page passes filter and window through", func(t *testing.T) {
		f := newFixture()
		expected := &domain.Page[domain.Product]{
			Collection: []domain.Product{{Name: "Oil filter"}},
			Pagination: domain.Pagination{Total: 51, TotalPage: 2, Page: 2, Limit: query.ProductPageLimit},
		}
		f.productRepo.On("Search", mock.Anything, query.ProductSearch{
			Term:   "filter",
			Sort:   query.Sort{Field: "name", Order: query.OrderAscending},
			Offset: 1,
		}).Return(expected, nil).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodPost, "/products/search/2", map[string]string{
			"search":  "filter",
			"sort":    "name",
			"orderBy": "ascending",
		}, ""))
		assert.True(t, env.Status)

		var page domain.Page[domain.Product]
		require.NoError(t, json.Unmarshal(env.Response, &page))
		assert.Equal(t, 2, page.Pagination.Page)
		assert.Equal(t, 2, page.Pagination.TotalPage)
	})
}

func TestIncidentResolve(t *testing.T) {
	t.Run("missing id is an invalid request", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleUser)

		env := decodeEnvelope(t, f.request(t, http.MethodPut, "/incident/resolve", map[string]any{
			"comment": "done",
		}, session.Token))
		assert.Equal(t, domain.CodeInvalidRequest, env.System)

		codes := fieldCodes(t, env.Response)
		assert.Equal(t, domain.CodeEmptyID, codes["id"])
	})

	t.Run("only the assignee may resolve", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleUser)

		id := domain.NewID()
		f.incidentRepo.On("FindByID", mock.Anything, id).Return(&domain.IncidentProfile{
			Incident: domain.Incident{ID: id, AssignedTo: domain.NewID()},
		}, nil).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodPut, "/incident/resolve", map[string]any{
			"id":         id,
			"comment":    "done",
			"isResolved": true,
		}, session.Token))
		assert.Equal(t, domain.CodeDeniedPermission, env.System)
		f.incidentRepo.AssertNotCalled(t, "Resolve")
	})

	t.Run("assignee resolves", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleUser)

		id := domain.NewID()
		f.incidentRepo.On("FindByID", mock.Anything, id).Return(&domain.IncidentProfile{
			Incident: domain.Incident{ID: id, AssignedTo: session.UserID},
		}, nil).Once()
		f.incidentRepo.On("Resolve", mock.Anything, id, "done", true).Return(nil).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodPut, "/incident/resolve", map[string]any{
			"id":         id,
			"comment":    "done",
			"isResolved": true,
		}, session.Token))
		assert.True(t, env.Status)
		f.incidentRepo.AssertExpectations(t)
	})
}

func TestIncidentUpdate(t *testing.T) {
	t.Run("duplicate title", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleAdmin)

		f.incidentRepo.On("IsTitleTaken", mock.Anything, "Flicker", "").Return(true, nil).Once()

		env := decodeEnvelope(t, f.request(t, http.MethodPost, "/incident/update", map[string]any{
			"title":       "Flicker",
			"description": "d",
			"type":        "bug",
			"assignedTo":  domain.NewID(),
		}, session.Token))
		assert.Equal(t, domain.CodeExistTitle, env.System)
		f.incidentRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("unknown type", func(t *testing.T) {
		f := newFixture()
		session := f.login(t, domain.RoleAdmin)

		env := decodeEnvelope(t, f.request(t, http.MethodPost, "/incident/update", map[string]any{
			"title":       "Flicker",
			"description": "d",
			"type":        "outage",
			"assignedTo":  domain.NewID(),
		}, session.Token))
		assert.Equal(t, domain.CodeFailed, env.System)

		codes := fieldCodes(t, env.Response)
		assert.Equal(t, domain.CodeInvalidType, codes["type"])
	})
}

func TestNotFoundFallback(t *testing.T) {
	f := newFixture()
	rec := f.request(t, http.MethodGet, "/nope", nil, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, domain.CodeNotFound, env.System)
}
