// Package scheduler advances simulated days on a real-time cadence. It is
// the only place wall-clock time exists; the economy itself only ever sees a
// "day has elapsed" call.
package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DayScheduler fires a day-elapsed callback every few real seconds.
type DayScheduler struct {
	cron         *cron.Cron
	onDayElapsed func()
	paused       func() bool
	halted       bool
}

// New creates a scheduler firing onDayElapsed every secondsPerDay real
// seconds, skipping beats while paused() reports true.
func New(secondsPerDay int, paused func() bool, onDayElapsed func()) (*DayScheduler, error) {
	if secondsPerDay < 1 || secondsPerDay > 59 {
		return nil, fmt.Errorf("seconds per day must be in [1,59], got %d", secondsPerDay)
	}

	s := &DayScheduler{
		cron:         cron.New(cron.WithSeconds()),
		onDayElapsed: onDayElapsed,
		paused:       paused,
	}

	spec := fmt.Sprintf("*/%d * * * * *", secondsPerDay)
	if _, err := s.cron.AddFunc(spec, s.beat); err != nil {
		return nil, fmt.Errorf("register day beat: %w", err)
	}
	return s, nil
}

func (s *DayScheduler) beat() {
	if s.halted {
		return
	}
	if s.paused != nil && s.paused() {
		return
	}
	s.onDayElapsed()
}

// Start begins advancing days.
func (s *DayScheduler) Start() {
	s.cron.Start()
	slog.Info("day scheduler started")
}

// Halt stops day advancement permanently. Called on bankruptcy or victory;
// there is no resume.
func (s *DayScheduler) Halt() {
	s.halted = true
	s.cron.Stop()
	slog.Info("day scheduler halted")
}
