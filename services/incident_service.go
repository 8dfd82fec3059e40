package services

import (
	"context"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// IncidentService handles ticket lifecycle rules: title uniqueness,
// viewing/reassignment, and assignee-only resolution.
type IncidentService struct {
	incidents IncidentRepository
}

// NewIncidentService creates an IncidentService.
func NewIncidentService(incidents IncidentRepository) *IncidentService {
	return &IncidentService{incidents: incidents}
}

// Update upserts a ticket. The title must not collide with any other
// ticket; a record keeping its own title on update is fine.
func (s *IncidentService) Update(ctx context.Context, up domain.IncidentUpsert) error {
	if up.ID != "" {
		if err := domain.ValidateID(up.ID); err != nil {
			return err
		}
	}
	if err := domain.ValidateID(up.AssignedTo); err != nil {
		return err
	}

	taken, err := s.incidents.IsTitleTaken(ctx, up.Title, up.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrTitleTaken
	}

	return s.incidents.Upsert(ctx, up)
}

// Profile returns one ticket with usernames joined.
func (s *IncidentService) Profile(ctx context.Context, id string) (*domain.IncidentProfile, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.incidents.FindByID(ctx, id)
}

// List returns one page of matching tickets.
func (s *IncidentService) List(ctx context.Context, q query.IncidentList) (*domain.Page[domain.IncidentProfile], error) {
	return s.incidents.List(ctx, q)
}

// MarkViewed flags a ticket viewed and reassigns it to the acting user.
func (s *IncidentService) MarkViewed(ctx context.Context, id string, viewed bool, actorID string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	if _, err := s.incidents.FindByID(ctx, id); err != nil {
		return err
	}
	return s.incidents.SetViewed(ctx, id, viewed, actorID)
}

// Resolve writes the resolution state of a ticket. Only the assigned user
// may resolve, regardless of a valid session.
func (s *IncidentService) Resolve(ctx context.Context, id, comment string, resolved bool, actorID string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	profile, err := s.incidents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if profile.AssignedTo != actorID {
		return domain.ErrDeniedPermission
	}
	return s.incidents.Resolve(ctx, id, comment, resolved)
}

// Remove deletes one ticket by id.
func (s *IncidentService) Remove(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	removed, err := s.incidents.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNoRecord
	}
	return nil
}
