package jobs

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OrphanCounter is the single query the sweep needs, implemented by
// *repository.Repository.
type OrphanCounter interface {
	CountOrphanExpenses() (int64, error)
}

// OrphanSweeper periodically counts expenses whose user_id no longer resolves
// to a user. Deleting a user does not cascade to its expenses, so orphans
// accumulate; the sweep surfaces them in the logs.
type OrphanSweeper struct {
	repo OrphanCounter
	log  *logrus.Logger
	cron *cron.Cron
}

// NewOrphanSweeper initializes a new sweeper
func NewOrphanSweeper(repo OrphanCounter, log *logrus.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		repo: repo,
		log:  log,
		cron: cron.New(),
	}
}

// Start schedules the sweep. The schedule uses standard cron syntax.
func (s *OrphanSweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule. A sweep already running finishes on its own.
func (s *OrphanSweeper) Stop() {
	s.cron.Stop()
}

// Sweep runs one orphan count.
func (s *OrphanSweeper) Sweep() {
	n, err := s.repo.CountOrphanExpenses()
	if err != nil {
		s.log.Errorf("Orphan sweep failed: %v", err)
		return
	}
	if n > 0 {
		s.log.Warnf("Found %d expenses without an owning user", n)
		return
	}
	s.log.Debug("Orphan sweep found no orphaned expenses")
}
