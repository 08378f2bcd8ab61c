package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Closer flips ongoing_status off for projects past their deadline.
// *repository.Repo satisfies it.
type Closer interface {
	CloseExpired(ctx context.Context, today time.Time) (int64, error)
}

type Scheduler struct {
	closer Closer
	cron   *cron.Cron
}

func NewScheduler(closer Closer) *Scheduler {
	return &Scheduler{closer: closer}
}

// Start registers the nightly deadline sweep (12:00 AM) and starts cron.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runDeadlineSweep()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (deadline sweep nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) runDeadlineSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.closer.CloseExpired(ctx, time.Now())
	if err != nil {
		log.Printf("[jobs] deadline sweep failed: %v", err)
		return
	}
	log.Printf("[jobs] deadline sweep closed %d project(s)", n)
}
