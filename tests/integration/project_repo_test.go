package integration

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atogato/portfolio-backend/internal/bootstrap"
	"github.com/atogato/portfolio-backend/internal/projects/domain"
	"github.com/atogato/portfolio-backend/internal/projects/repository"
)

const schema = `
create table if not exists projects (
	public_id text primary key,
	owner_id text not null,
	name text not null,
	category text not null,
	location text not null,
	created_date date not null,
	project_deadline date not null,
	application_deadline date not null,
	required_categories text[] not null default '{}',
	required_people int not null default 0,
	swipe_algorithm boolean not null default true,
	description text not null,
	ongoing_status boolean not null default true,
	remote_status text not null default 'both',
	liked bigint not null default 0
);

create table if not exists project_images (
	id bigserial primary key,
	project_id text not null references projects(public_id) on delete cascade,
	url text not null,
	position int not null
);
`

// setupRepo connects to the test database, creating the schema on the way.
// Skips the test when TEST_DB_DSN is not set.
func setupRepo(t *testing.T) *repository.Repo {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = sqlDB.Exec(schema)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`truncate projects cascade;`)
	require.NoError(t, err)

	pool, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.NewRepo(pool)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleProject(owner, name string) *domain.Project {
	return &domain.Project{
		OwnerID:             owner,
		Name:                name,
		Category:            domain.CategoryPainting,
		Location:            "Unknown",
		CreatedDate:         day(2026, 5, 1),
		ProjectDeadline:     day(2026, 7, 1),
		ApplicationDeadline: day(2026, 6, 1),
		RequiredCategories:  []domain.RequiredCategory{domain.RolePainter, domain.RolePhotographer},
		RequiredPeople:      2,
		SwipeAlgorithm:      true,
		Description:         "wall art",
		OngoingStatus:       true,
		RemoteStatus:        domain.RemoteBoth,
		Images: []domain.ProjectImage{
			{URL: "https://cdn.test/a.png", Position: 0},
			{URL: "https://cdn.test/b.png", Position: 1},
		},
	}
}

func TestRepo_CreateAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleProject("alice", "Mural"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice", got.OwnerID)
	assert.Equal(t, domain.CategoryPainting, got.Category)
	assert.Equal(t, []domain.RequiredCategory{domain.RolePainter, domain.RolePhotographer}, got.RequiredCategories)
	assert.True(t, got.CreatedDate.Equal(day(2026, 5, 1)))
	require.Len(t, got.Images, 2)
	assert.Equal(t, "https://cdn.test/a.png", got.Images[0].URL)
	assert.Equal(t, 1, got.Images[1].Position)

	_, err = repo.FindByID(ctx, "proj-00000-0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_UpdateKeepsIdentityColumns(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleProject("alice", "Mural"))
	require.NoError(t, err)

	mod := *saved
	mod.Name = "Mural v2"
	mod.OwnerID = "bob"                // must be ignored by the update path
	mod.CreatedDate = day(2030, 1, 1) // likewise

	_, err = repo.Update(ctx, &mod)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mural v2", got.Name)
	assert.Equal(t, "alice", got.OwnerID)
	assert.True(t, got.CreatedDate.Equal(day(2026, 5, 1)))
	require.Len(t, got.Images, 2, "images survive updates")
}

func TestRepo_DeleteCascadesImages(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleProject("alice", "Mural"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), domain.ErrNotFound)
}

func TestRepo_FindUpcoming(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := day(2026, 5, 10)

	mk := func(name string, appDeadline time.Time, liked int64) {
		p := sampleProject("alice", name)
		p.Images = nil
		p.ApplicationDeadline = appDeadline
		p.ProjectDeadline = appDeadline.AddDate(0, 1, 0)
		saved, err := repo.Create(ctx, p)
		require.NoError(t, err)
		if liked != 0 {
			_, err = repo.AdjustLiked(ctx, saved.ID, liked)
			require.NoError(t, err)
		}
	}

	mk("expired", now.AddDate(0, 0, -1), 50)
	mk("boundary", now, 50) // deadline == today: excluded
	mk("later-popular", now.AddDate(0, 0, 20), 9)
	mk("soon", now.AddDate(0, 0, 2), 0)
	mk("later-quiet", now.AddDate(0, 0, 20), 1)

	items, err := repo.FindUpcoming(ctx, now)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, p := range items {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"soon", "later-popular", "later-quiet"}, names)
}

func TestRepo_FindAllByCreatedDateDesc(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i, name := range []string{"old", "mid", "new"} {
		p := sampleProject("alice", name)
		p.Images = nil
		p.CreatedDate = day(2026, 5, 1+i)
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	items, err := repo.FindAllByCreatedDateDesc(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "new", items[0].Name)
	assert.Equal(t, "old", items[2].Name)
}

func TestRepo_AdjustLikedFloorsAtZero(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleProject("alice", "Mural"))
	require.NoError(t, err)

	liked, err := repo.AdjustLiked(ctx, saved.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked)

	liked, err = repo.AdjustLiked(ctx, saved.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), liked)

	_, err = repo.AdjustLiked(ctx, "proj-00000-0000", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_CloseExpired(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := day(2026, 5, 10)

	past := sampleProject("alice", "past")
	past.Images = nil
	past.ProjectDeadline = now.AddDate(0, 0, -1)
	past.ApplicationDeadline = now.AddDate(0, 0, -10)
	savedPast, err := repo.Create(ctx, past)
	require.NoError(t, err)

	future := sampleProject("alice", "future")
	future.Images = nil
	savedFuture, err := repo.Create(ctx, future)
	require.NoError(t, err)

	n, err := repo.CloseExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(ctx, savedPast.ID)
	require.NoError(t, err)
	assert.False(t, got.OngoingStatus)

	got, err = repo.FindByID(ctx, savedFuture.ID)
	require.NoError(t, err)
	assert.True(t, got.OngoingStatus)
}
