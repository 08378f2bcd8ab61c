package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

// Repo provides persistence for projects and their owned images.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectCols = `
public_id, owner_id, name, category, location, created_date,
project_deadline, application_deadline, required_categories, required_people,
swipe_algorithm, description, ongoing_status, remote_status, liked`

// Create inserts the project and its images in one transaction.
// The project's ID is assigned here; a public-id collision is retried.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	for i := 0; i < 5; i++ {
		publicID, err := domain.NewPublicID("proj")
		if err != nil {
			return nil, err
		}

		saved, err := r.insertOnce(ctx, publicID, p)
		if err == nil {
			return saved, nil
		}

		// unique violation on public_id → retry with a fresh one
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

func (r *Repo) insertOnce(ctx context.Context, publicID string, p *domain.Project) (*domain.Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
insert into projects (` + projectCols + `)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
returning ` + projectCols + `;
`
	row := tx.QueryRow(ctx, q,
		publicID, p.OwnerID, p.Name, string(p.Category), p.Location, p.CreatedDate,
		p.ProjectDeadline, p.ApplicationDeadline, roleStrings(p.RequiredCategories), p.RequiredPeople,
		p.SwipeAlgorithm, p.Description, p.OngoingStatus, string(p.RemoteStatus), p.Liked,
	)
	saved, err := scanProject(row)
	if err != nil {
		return nil, err
	}

	for _, img := range p.Images {
		const qi = `
insert into project_images (project_id, url, position)
values ($1, $2, $3);
`
		if _, err := tx.Exec(ctx, qi, saved.ID, img.URL, img.Position); err != nil {
			return nil, fmt.Errorf("insert image: %w", err)
		}
	}
	saved.Images = p.Images

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return saved, nil
}

// FindByID loads a project with its images, or domain.ErrNotFound.
func (r *Repo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
select ` + projectCols + `
from projects
where public_id = $1;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachImages(ctx, []*domain.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// FindAll returns every project in storage order.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Project, error) {
	return r.queryProjects(ctx, `select `+projectCols+` from projects;`)
}

// FindAllByCreatedDateDesc returns every project, most recent first.
// The public_id tie-break keeps the ordering stable.
func (r *Repo) FindAllByCreatedDateDesc(ctx context.Context) ([]domain.Project, error) {
	return r.queryProjects(ctx, `
select `+projectCols+`
from projects
order by created_date desc, public_id;
`)
}

// FindUpcoming returns projects whose application deadline is strictly after
// the given day, soonest deadline first, then most liked.
func (r *Repo) FindUpcoming(ctx context.Context, after time.Time) ([]domain.Project, error) {
	return r.queryProjects(ctx, `
select `+projectCols+`
from projects
where application_deadline > $1
order by application_deadline asc, liked desc;
`, domain.Day(after))
}

// Update rewrites the mutable fields of an existing project.
// ID, owner, created date, liked and images are never written by this path.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
update projects
set name = $2, category = $3, location = $4,
    project_deadline = $5, application_deadline = $6,
    required_categories = $7, required_people = $8,
    swipe_algorithm = $9, description = $10,
    ongoing_status = $11, remote_status = $12
where public_id = $1
returning ` + projectCols + `;
`
	row := r.db.QueryRow(ctx, q,
		p.ID, p.Name, string(p.Category), p.Location,
		p.ProjectDeadline, p.ApplicationDeadline,
		roleStrings(p.RequiredCategories), p.RequiredPeople,
		p.SwipeAlgorithm, p.Description,
		p.OngoingStatus, string(p.RemoteStatus),
	)
	saved, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	saved.Images = p.Images
	return saved, nil
}

// Delete removes a project; its images go with it (on delete cascade).
func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `delete from projects where public_id = $1;`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustLiked moves the liked counter by delta and returns the new value.
func (r *Repo) AdjustLiked(ctx context.Context, id string, delta int64) (int64, error) {
	const q = `
update projects
set liked = greatest(liked + $2, 0)
where public_id = $1
returning liked;
`
	var liked int64
	if err := r.db.QueryRow(ctx, q, id, delta).Scan(&liked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return liked, nil
}

// CloseExpired flips ongoing_status off for projects whose project deadline
// is before the given day. Returns how many rows changed.
func (r *Repo) CloseExpired(ctx context.Context, today time.Time) (int64, error) {
	const q = `
update projects
set ongoing_status = false
where ongoing_status = true and project_deadline < $1;
`
	ct, err := r.db.Exec(ctx, q, domain.Day(today))
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
