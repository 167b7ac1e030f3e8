package stats

import (
	"testing"
	"time"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func app(status string, deadline *string) *models.Application {
	return &models.Application{Name: "x", Status: status, Deadline: deadline}
}

func inDays(days int) *string {
	return models.Ptr(now.Add(time.Duration(days) * 24 * time.Hour).Format(time.RFC3339))
}

func TestCompute_Scenario(t *testing.T) {
	apps := []*models.Application{
		app(models.ApplicationNotStarted, inDays(3)),
		app(models.ApplicationInProgress, inDays(10)),
		app(models.ApplicationSubmitted, inDays(18)),
		app(models.ApplicationAccepted, inDays(40)),
	}

	got := Compute(apps, 5, now)

	assert.Equal(t, models.Stats{
		TotalLeads:        5,
		TotalApplications: 4,
		InProgress:        1,
		Completed:         2,
		NotStarted:        1,
		Upcoming7:         1,
		Upcoming14:        1,
		Upcoming21:        1,
	}, got)
}

func TestCompute_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		deadline *string
		want     [3]int
	}{
		{name: "exactly now is excluded", deadline: models.Ptr(now.Format(time.RFC3339)), want: [3]int{0, 0, 0}},
		{name: "past", deadline: inDays(-1), want: [3]int{0, 0, 0}},
		{name: "exactly 7 days", deadline: inDays(7), want: [3]int{1, 0, 0}},
		{name: "just over 7 days", deadline: models.Ptr(now.Add(7*24*time.Hour + time.Second).Format(time.RFC3339)), want: [3]int{0, 1, 0}},
		{name: "exactly 14 days", deadline: inDays(14), want: [3]int{0, 1, 0}},
		{name: "exactly 21 days", deadline: inDays(21), want: [3]int{0, 0, 1}},
		{name: "22 days", deadline: inDays(22), want: [3]int{0, 0, 0}},
		{name: "missing", deadline: nil, want: [3]int{0, 0, 0}},
		{name: "unparseable", deadline: models.Ptr("rolling"), want: [3]int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute([]*models.Application{app(models.ApplicationInProgress, tt.deadline)}, 0, now)
			assert.Equal(t, tt.want, [3]int{got.Upcoming7, got.Upcoming14, got.Upcoming21})
			assert.Equal(t, 1, got.InProgress)
		})
	}
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil, 0, now)
	assert.Equal(t, models.Stats{}, got)
}

func TestParseDeadline(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2026-06-01T00:00:00Z", want: day, ok: true},
		{in: "2026-06-01T08:00:00+08:00", want: day, ok: true},
		{in: "2026-06-01T00:00:00", want: day, ok: true},
		{in: "2026-06-01 00:00:00", want: day, ok: true},
		{in: "2026-06-01", want: day, ok: true},
		{in: " 2026-06-01 ", want: day, ok: true},
		{in: "2026/06/01", want: day, ok: true},
		{in: "June 1, 2026", want: day, ok: true},
		{in: "Jun 1, 2026", want: day, ok: true},
		{in: "1 June 2026", want: day, ok: true},
		{in: "", ok: false},
		{in: "next spring", ok: false},
		{in: "2026-13-01", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDeadline(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			}
		})
	}
}
