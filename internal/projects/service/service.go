package service

import (
	"context"
	"time"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// Repository is the persistence contract the service drives.
// *repository.Repo satisfies it; tests substitute an in-memory fake.
type Repository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindAllByCreatedDateDesc(ctx context.Context) ([]domain.Project, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// AttachmentStore durably stores uploaded bytes and returns a URL.
type AttachmentStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// ProjectService owns validation, ownership checks and update-merge logic.
type ProjectService struct {
	repo  Repository
	store AttachmentStore
	now   func() time.Time
}

func NewProjectService(repo Repository, store AttachmentStore) *ProjectService {
	return &ProjectService{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

// Get returns the project or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all projects in storage order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}

// ListRecent returns all projects, most recently created first.
func (s *ProjectService) ListRecent(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAllByCreatedDateDesc(ctx)
}

// ListUpcoming returns projects still open for applications: application
// deadline strictly after today, soonest first, ties broken by popularity.
func (s *ProjectService) ListUpcoming(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindUpcoming(ctx, s.now())
}

// Delete removes the project and its images. The not-found check comes
// before the ownership check, so a missing id never reports Forbidden.
func (s *ProjectService) Delete(ctx context.Context, principalID, id string) error {
	if _, err := s.authorize(ctx, principalID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize loads the target and verifies ownership, mutating nothing.
func (s *ProjectService) authorize(ctx context.Context, principalID, id string) (*domain.Project, error) {
	if principalID == "" {
		return nil, domain.ErrUnauthenticated
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(principalID) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// checkDeadlines rejects an application deadline after the project deadline.
func checkDeadlines(p *domain.Project) error {
	if p.ApplicationDeadline.After(p.ProjectDeadline) {
		return domain.Invalid("application_deadline", "must not be after project_deadline")
	}
	return nil
}
