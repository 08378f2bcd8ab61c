package likes

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/atogato/portfolio-backend/internal/projects/domain"
)

const likeSetPrefix = "project:likes:" // Set of user IDs that liked a project: project:likes:{project_id}

// Counter is the write-through side of a like: the durable liked counter
// lives next to the project row. *repository.Repo satisfies it.
type Counter interface {
	AdjustLiked(ctx context.Context, projectID string, delta int64) (int64, error)
}

// Service tracks who liked which project in redis and writes the counter
// through to the project store. Repeat likes by the same user are no-ops.
type Service struct {
	client  *redis.Client
	counter Counter
}

func NewService(client *redis.Client, counter Counter) *Service {
	return &Service{client: client, counter: counter}
}

// Like records that userID likes projectID. Returns the liked count and
// whether this call changed anything.
func (s *Service) Like(ctx context.Context, userID, projectID string) (int64, bool, error) {
	if userID == "" {
		return 0, false, domain.ErrUnauthenticated
	}

	added, err := s.client.SAdd(ctx, s.likeSetKey(projectID), userID).Result()
	if err != nil {
		return 0, false, fmt.Errorf("record like: %w", err)
	}
	if added == 0 {
		// already liked; read the current counter without bumping it
		liked, err := s.counter.AdjustLiked(ctx, projectID, 0)
		return liked, false, err
	}

	liked, err := s.counter.AdjustLiked(ctx, projectID, 1)
	if err != nil {
		// keep redis and the counter consistent on write-through failure
		s.client.SRem(ctx, s.likeSetKey(projectID), userID)
		return 0, false, err
	}
	return liked, true, nil
}

// Unlike removes userID's like. Unliking a project never liked is a no-op.
func (s *Service) Unlike(ctx context.Context, userID, projectID string) (int64, bool, error) {
	if userID == "" {
		return 0, false, domain.ErrUnauthenticated
	}

	removed, err := s.client.SRem(ctx, s.likeSetKey(projectID), userID).Result()
	if err != nil {
		return 0, false, fmt.Errorf("remove like: %w", err)
	}
	if removed == 0 {
		liked, err := s.counter.AdjustLiked(ctx, projectID, 0)
		return liked, false, err
	}

	liked, err := s.counter.AdjustLiked(ctx, projectID, -1)
	if err != nil {
		s.client.SAdd(ctx, s.likeSetKey(projectID), userID)
		return 0, false, err
	}
	return liked, true, nil
}

func (s *Service) likeSetKey(projectID string) string {
	return likeSetPrefix + projectID
}
