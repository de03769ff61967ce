// Package reminder runs the meal-log reminder loop. Instead of polling the
// wall clock every minute and matching the exact minute, it computes the
// next absolute trigger time and sleeps until it, so a slow tick can never
// skip a slot.
package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/saadjs/fitguide-cli/internal/model"
	"github.com/saadjs/fitguide-cli/internal/state"
)

// Backend is the slice of the API client the scheduler needs.
type Backend interface {
	GetProfile(ctx context.Context) (model.Profile, error)
	DashboardSummary(ctx context.Context) (model.DashboardSummary, error)
}

// Notifier delivers one reminder. The default writes to the terminal and
// the log; desktop notification delivery is a matter of swapping this in.
type Notifier interface {
	Notify(title, body string) error
}

type Scheduler struct {
	DB       *sql.DB
	Client   Backend
	Notifier Notifier

	// Hours holds local trigger hours; zero value means 13:00 and 20:00.
	Hours []int

	// Now is a test hook; nil means time.Now.
	Now func() time.Time
}

func (s *Scheduler) hours() []int {
	if len(s.Hours) == 0 {
		return []int{13, 20}
	}
	h := append([]int(nil), s.Hours...)
	sort.Ints(h)
	return h
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NextFire returns the earliest trigger strictly after now: today's next
// configured hour, or the first hour tomorrow.
func (s *Scheduler) NextFire(now time.Time) time.Time {
	hours := s.hours()
	for _, h := range hours {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, now.Location())
		if candidate.After(now) {
			return candidate
		}
	}
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hours[0], 0, 0, 0, now.Location())
}

// Run loops until ctx is cancelled; cancellation is the normal shutdown
// path and returns nil. Fire-time failures are logged and the loop moves to
// the next slot; reminders are advisory.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		next := s.NextFire(s.now())
		slog.Info("reminder scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := s.Check(ctx, next); err != nil {
			slog.Error("reminder check failed", "err", err)
		}
	}
}

// Check evaluates one trigger slot: dedup first, then the opt-in flag, then
// today's intake. It fires at most once per (date, hour) bucket even when
// called repeatedly within the slot.
func (s *Scheduler) Check(ctx context.Context, at time.Time) error {
	key := dedupKey(at)
	last, ok, err := state.Get(s.DB, state.KeyLastReminder)
	if err != nil {
		return err
	}
	if ok && last == key {
		return nil
	}

	profile, err := s.Client.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	if !profile.RemindersEnabled {
		return nil
	}

	summary, err := s.Client.DashboardSummary(ctx)
	if err != nil {
		return fmt.Errorf("fetch dashboard: %w", err)
	}
	if summary.ConsumedCalories != 0 {
		return nil
	}

	if err := s.Notifier.Notify(
		"Meal Log Reminder",
		"Log what you've eaten today to track your calories and stay on target.",
	); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	return state.Set(s.DB, state.KeyLastReminder, key)
}

func dedupKey(t time.Time) string {
	return t.Format("2006-01-02") + fmt.Sprintf("T%02d", t.Hour())
}
