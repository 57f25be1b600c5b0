// Package loader orchestrates refresh cycles: fetch the roster and the
// dashboard bundle, derive the daily and monthly views, publish the result
// as an immutable snapshot.
package loader

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"presensi/internal/recap"
	"presensi/internal/roster"
	"presensi/internal/sheets"
)

// Fetcher abstracts the sheet backends the loader polls.
type Fetcher interface {
	FetchDirectory(ctx context.Context) ([]roster.Person, error)
	FetchDashboard(ctx context.Context) (sheets.Bundle, error)
}

// Snapshot is one fully derived view. It is never mutated after publication;
// Refresh replaces the whole value, so a consumer holding a reference keeps
// a consistent (if possibly stale) picture.
type Snapshot struct {
	Roster       []roster.Person
	Daily        []recap.DailyStatus
	Teaching     []recap.Activity
	Recaps       []recap.MonthlyRecap
	Stats        recap.Stats
	UsedFallback bool
	RefreshedAt  time.Time
}

// Loader polls the sheet sources and publishes derived snapshots.
type Loader struct {
	src Fetcher
	log *logrus.Logger

	mu      sync.RWMutex
	current *Snapshot
}

// New creates a loader. The initial snapshot is empty with a zero
// RefreshedAt, which the health check reports as "never refreshed".
func New(src Fetcher, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
	}
	return &Loader{src: src, log: log, current: &Snapshot{}}
}

// Current returns the last published snapshot. The returned value is shared
// and must be treated as read-only.
func (l *Loader) Current() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Refresh fetches a (roster, bundle) pair, derives the views and publishes
// them. Fetch failures degrade — fallback roster, empty bundle — so Refresh
// never fails; downstream always sees a valid snapshot.
//
// The periodic ticker can fire while a refresh is still in flight; the two
// race and whichever publishes last wins. Each snapshot is internally
// consistent because both fetches happen within the same call.
func (l *Loader) Refresh(ctx context.Context) *Snapshot {
	started := time.Now()
	refreshTotal.Inc()

	var (
		people       []roster.Person
		bundle       sheets.Bundle
		usedFallback bool
		wg           sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		fetched, err := l.src.FetchDirectory(ctx)
		if err != nil {
			l.log.WithError(err).Warn("directory fetch failed, using fallback roster")
			rosterFallbackTotal.Inc()
			people = roster.Fallback()
			usedFallback = true
			return
		}
		people = fetched
	}()
	go func() {
		defer wg.Done()
		fetched, err := l.src.FetchDashboard(ctx)
		if err != nil {
			l.log.WithError(err).Warn("dashboard fetch failed, using empty bundle")
			dashboardDegradedTotal.Inc()
			return
		}
		bundle = fetched
	}()
	wg.Wait()

	operational := roster.Operational(people)
	daily := recap.Reconcile(operational, bundle.Attendance, bundle.Leaves)
	recap.SortDaily(daily)
	teaching := recap.FormatSessions(bundle.Teaching)
	recaps := recap.Monthly(operational, bundle.Attendance)

	snap := &Snapshot{
		Roster:       operational,
		Daily:        daily,
		Teaching:     teaching,
		Recaps:       recaps,
		Stats:        recap.Summarize(daily, teaching, recaps),
		UsedFallback: usedFallback,
		RefreshedAt:  time.Now(),
	}
	l.publish(snap)

	l.log.WithFields(logrus.Fields{
		"roster":   len(operational),
		"present":  snap.Stats.Present,
		"teaching": len(teaching),
		"fallback": usedFallback,
		"took":     time.Since(started).Round(time.Millisecond),
	}).Info("snapshot refreshed")
	return snap
}

func (l *Loader) publish(s *Snapshot) {
	l.mu.Lock()
	l.current = s
	l.mu.Unlock()
	lastRefreshSeconds.SetToCurrentTime()
}
