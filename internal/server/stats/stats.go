// Package stats aggregates application progress and upcoming deadlines.
package stats

import (
	"strings"
	"time"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

const week = 7 * 24 * time.Hour

// deadlineLayouts are tried in order. Layouts without a zone are read as UTC.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDeadline reads a free-form deadline string. ok is false when no known
// layout matches.
func ParseDeadline(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Compute builds the dashboard summary. Deadline windows are half-open on the
// left: (now, now+7d], (now+7d, now+14d] and (now+14d, now+21d]. Applications
// with a missing or unparseable deadline count toward the status totals only.
func Compute(apps []*models.Application, totalLeads int, now time.Time) models.Stats {
	s := models.Stats{
		TotalLeads:        totalLeads,
		TotalApplications: len(apps),
	}

	for _, a := range apps {
		switch {
		case a.Status == models.ApplicationNotStarted:
			s.NotStarted++
		case a.Status == models.ApplicationInProgress:
			s.InProgress++
		case models.IsCompleted(a.Status):
			s.Completed++
		}

		if a.Deadline == nil {
			continue
		}
		d, ok := ParseDeadline(*a.Deadline)
		if !ok {
			continue
		}

		until := d.Sub(now)
		switch {
		case until <= 0:
		case until <= week:
			s.Upcoming7++
		case until <= 2*week:
			s.Upcoming14++
		case until <= 3*week:
			s.Upcoming21++
		}
	}

	return s
}
