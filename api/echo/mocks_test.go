package echo

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Upsert(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, q query.UserList) (*domain.Page[domain.User], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.User]), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Upsert(ctx context.Context, up domain.ProductUpsert) error {
	return m.Called(ctx, up).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepo) Search(ctx context.Context, q query.ProductSearch) (*domain.Page[domain.Product], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Product]), args.Error(1)
}

func (m *mockProductRepo) Showcase(ctx context.Context, flag domain.ShowcaseFlag, size int) ([]domain.Product, error) {
	args := m.Called(ctx, flag, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepo) FacetValues(ctx context.Context, storedField string) ([]string, error) {
	args := m.Called(ctx, storedField)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockIncidentRepo struct {
	mock.Mock
}

func (m *mockIncidentRepo) Upsert(ctx context.Context, up domain.IncidentUpsert) error {
	return m.Called(ctx, up).Error(0)
}

func (m *mockIncidentRepo) SetViewed(ctx context.Context, id string, viewed bool, assignedTo string) error {
	return m.Called(ctx, id, viewed, assignedTo).Error(0)
}

func (m *mockIncidentRepo) Resolve(ctx context.Context, id, comment string, resolved bool) error {
	return m.Called(ctx, id, comment, resolved).Error(0)
}

func (m *mockIncidentRepo) FindByID(ctx context.Context, id string) (*domain.IncidentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentProfile), args.Error(1)
}

func (m *mockIncidentRepo) List(ctx context.Context, q query.IncidentList) (*domain.Page[domain.IncidentProfile], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.IncidentProfile]), args.Error(1)
}

func (m *mockIncidentRepo) IsTitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockIncidentRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(hashedPassword, password string) error {
	return m.Called(hashedPassword, password).Error(0)
}
