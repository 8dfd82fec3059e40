package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Upsert(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q query.UserList) (*domain.Page[domain.User], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.User]), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Upsert(ctx context.Context, up domain.ProductUpsert) error {
	args := m.Called(ctx, up)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, q query.ProductSearch) (*domain.Page[domain.Product], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Product]), args.Error(1)
}

func (m *MockProductRepository) Showcase(ctx context.Context, flag domain.ShowcaseFlag, size int) ([]domain.Product, error) {
	args := m.Called(ctx, flag, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FacetValues(ctx context.Context, storedField string) ([]string, error) {
	args := m.Called(ctx, storedField)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) Upsert(ctx context.Context, up domain.IncidentUpsert) error {
	args := m.Called(ctx, up)
	return args.Error(0)
}

func (m *MockIncidentRepository) SetViewed(ctx context.Context, id string, viewed bool, assignedTo string) error {
	args := m.Called(ctx, id, viewed, assignedTo)
	return args.Error(0)
}

func (m *MockIncidentRepository) Resolve(ctx context.Context, id, comment string, resolved bool) error {
	args := m.Called(ctx, id, comment, resolved)
	return args.Error(0)
}

func (m *MockIncidentRepository) FindByID(ctx context.Context, id string) (*domain.IncidentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentProfile), args.Error(1)
}

func (m *MockIncidentRepository) List(ctx context.Context, q query.IncidentList) (*domain.Page[domain.IncidentProfile], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.IncidentProfile]), args.Error(1)
}

func (m *MockIncidentRepository) IsTitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIncidentRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
