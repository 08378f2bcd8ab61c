package service

import (
	"context"
	"strings"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// Replace overwrites every mutable field from the supplied representation.
// ID, owner, created date, images and liked are kept from the stored record.
func (s *ProjectService) Replace(ctx context.Context, principalID, id string, rp domain.Replacement) (*domain.Project, error) {
	p, err := s.authorize(ctx, principalID, id)
	if err != nil {
		return nil, err
	}
	if err := validateReplacement(&rp); err != nil {
		return nil, err
	}

	rp.Apply(p)
	if err := checkDeadlines(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

// Patch applies a sparse merge: only populated slots change, everything
// else stays bit-identical. The deadline invariant is checked against the
// post-merge pair.
func (s *ProjectService) Patch(ctx context.Context, principalID, id string, pt domain.Patch) (*domain.Project, error) {
	p, err := s.authorize(ctx, principalID, id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(&pt); err != nil {
		return nil, err
	}

	pt.Apply(p)
	if err := checkDeadlines(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func validateReplacement(rp *domain.Replacement) error {
	if strings.TrimSpace(rp.Name) == "" {
		return domain.Invalid("name", "required")
	}
	if _, err := domain.ParseCategory(string(rp.Category)); err != nil {
		return domain.Invalid("category", err.Error())
	}
	if rp.ProjectDeadline.IsZero() {
		return domain.Invalid("project_deadline", "required")
	}
	if rp.ApplicationDeadline.IsZero() {
		return domain.Invalid("application_deadline", "required")
	}
	if len(rp.RequiredCategories) == 0 {
		return domain.Invalid("required_category", "required")
	}
	for _, rc := range rp.RequiredCategories {
		if _, err := domain.ParseRequiredCategory(string(rc)); err != nil {
			return domain.Invalid("required_category", err.Error())
		}
	}
	if strings.TrimSpace(rp.Description) == "" {
		return domain.Invalid("description", "required")
	}
	if _, err := domain.ParseRemoteStatus(string(rp.RemoteStatus)); err != nil {
		return domain.Invalid("remote_status", err.Error())
	}
	return nil
}

func validatePatch(pt *domain.Patch) error {
	if pt.Name != nil && strings.TrimSpace(*pt.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if pt.Category != nil {
		if _, err := domain.ParseCategory(string(*pt.Category)); err != nil {
			return domain.Invalid("category", err.Error())
		}
	}
	for _, rc := range pt.RequiredCategories {
		if _, err := domain.ParseRequiredCategory(string(rc)); err != nil {
			return domain.Invalid("required_category", err.Error())
		}
	}
	if pt.RequiredPeople != nil && *pt.RequiredPeople < 0 {
		return domain.Invalid("required_people", "must not be negative")
	}
	if pt.ProjectDeadline != nil && pt.ProjectDeadline.IsZero() {
		return domain.Invalid("project_deadline", "must be a valid date")
	}
	if pt.ApplicationDeadline != nil && pt.ApplicationDeadline.IsZero() {
		return domain.Invalid("application_deadline", "must be a valid date")
	}
	if pt.RemoteStatus != nil {
		if _, err := domain.ParseRemoteStatus(string(*pt.RemoteStatus)); err != nil {
			return domain.Invalid("remote_status", err.Error())
		}
	}
	return nil
}
