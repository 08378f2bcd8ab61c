package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p        domain.Project
		category string
		remote   string
		roles    []string
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &category, &p.Location, &p.CreatedDate,
		&p.ProjectDeadline, &p.ApplicationDeadline, &roles, &p.RequiredPeople,
		&p.SwipeAlgorithm, &p.Description, &p.OngoingStatus, &remote, &p.Liked,
	)
	if err != nil {
		return nil, err
	}
	p.Category = domain.Category(category)
	p.RemoteStatus = domain.RemoteStatus(remote)
	p.RequiredCategories = roleValues(roles)
	return &p, nil
}

func (r *Repo) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Project, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.attachImages(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// attachImages loads the image lists for the given projects in one query.
func (r *Repo) attachImages(ctx context.Context, ps []*domain.Project) error {
	if len(ps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(ps))
	byID := make(map[string]*domain.Project, len(ps))
	for _, p := range ps {
		p.Images = []domain.ProjectImage{}
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	const q = `
select project_id, url, position
from project_images
where project_id = any($1)
order by project_id, position;
`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			projectID string
			img       domain.ProjectImage
		)
		if err := rows.Scan(&projectID, &img.URL, &img.Position); err != nil {
			return err
		}
		if p, ok := byID[projectID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

func roleStrings(rcs []domain.RequiredCategory) []string {
	out := make([]string, len(rcs))
	for i, rc := range rcs {
		out[i] = string(rc)
	}
	return out
}

func roleValues(ss []string) []domain.RequiredCategory {
	out := make([]domain.RequiredCategory, len(ss))
	for i, s := range ss {
		out[i] = domain.RequiredCategory(s)
	}
	return out
}
