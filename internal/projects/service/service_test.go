package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	mu       sync.Mutex
	seq      int
	inserted []string // insertion order, for stable ties
	projects map[string]*domain.Project
	failSave error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{projects: map[string]*domain.Project{}}
}

func (f *fakeRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave != nil {
		return nil, f.failSave
	}
	f.seq++
	cp := clone(p)
	cp.ID = fmt.Sprintf("proj-%05d-0001", f.seq)
	f.projects[cp.ID] = cp
	f.inserted = append(f.inserted, cp.ID)
	return clone(cp), nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(p), nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Project, 0, len(f.inserted))
	for _, id := range f.inserted {
		if p, ok := f.projects[id]; ok {
			out = append(out, *clone(p))
		}
	}
	return out, nil
}

func (f *fakeRepo) FindAllByCreatedDateDesc(ctx context.Context) ([]domain.Project, error) {
	out, _ := f.FindAll(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedDate.After(out[j].CreatedDate)
	})
	return out, nil
}

func (f *fakeRepo) FindUpcoming(ctx context.Context, after time.Time) ([]domain.Project, error) {
	all, _ := f.FindAll(ctx)
	day := domain.Day(after)
	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.ApplicationDeadline.After(day) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ApplicationDeadline.Equal(out[j].ApplicationDeadline) {
			return out[i].ApplicationDeadline.Before(out[j].ApplicationDeadline)
		}
		return out[i].Liked > out[j].Liked
	})
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave != nil {
		return nil, f.failSave
	}
	stored, ok := f.projects[p.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := clone(p)
	// the update path never writes these columns
	cp.OwnerID = stored.OwnerID
	cp.CreatedDate = stored.CreatedDate
	cp.Liked = stored.Liked
	cp.Images = stored.Images
	f.projects[p.ID] = cp
	return clone(cp), nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func clone(p *domain.Project) *domain.Project {
	cp := *p
	cp.RequiredCategories = append([]domain.RequiredCategory(nil), p.RequiredCategories...)
	cp.Images = append([]domain.ProjectImage(nil), p.Images...)
	return &cp
}

// fakeStore uploads into memory; filenames in fail cause an UploadError.
type fakeStore struct {
	fail map[string]bool
}

func (s *fakeStore) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	if s.fail[filename] {
		return "", errors.New("upload failed")
	}
	return "https://cdn.test/projects/" + filename, nil
}
