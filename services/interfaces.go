package services

import (
	"context"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// SessionRepository persists login sessions.
type SessionRepository interface {
	Upsert(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) (bool, error)
}

// UserRepository reads user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, q query.UserList) (*domain.Page[domain.User], error)
}

// ProductRepository stores the parts catalog.
type ProductRepository interface {
	Upsert(ctx context.Context, up domain.ProductUpsert) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, q query.ProductSearch) (*domain.Page[domain.Product], error)
	Showcase(ctx context.Context, flag domain.ShowcaseFlag, size int) ([]domain.Product, error)
	FacetValues(ctx context.Context, storedField string) ([]string, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IncidentRepository stores support tickets.
type IncidentRepository interface {
	Upsert(ctx context.Context, up domain.IncidentUpsert) error
	SetViewed(ctx context.Context, id string, viewed bool, assignedTo string) error
	Resolve(ctx context.Context, id, comment string, resolved bool) error
	FindByID(ctx context.Context, id string) (*domain.IncidentProfile, error)
	List(ctx context.Context, q query.IncidentList) (*domain.Page[domain.IncidentProfile], error)
	IsTitleTaken(ctx context.Context, title, excludeID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}
