package job

import (
	"log/slog"
	"time"
)

// Sweeper drops expired entries as of now and reports how many it removed.
type Sweeper interface {
	Sweep(now time.Time) int
}

type ViewSweepJob struct {
	s   Sweeper
	now func() time.Time
}

func NewViewSweepJob(s Sweeper) *ViewSweepJob {
	return &ViewSweepJob{s: s, now: time.Now}
}

// SweepViews is registered with cron.
func (j *ViewSweepJob) SweepViews() {
	removed := j.s.Sweep(j.now())
	slog.Debug("view sweep finished", "removed", removed)
}
