// Package dispatch hands trigger requests to out-of-process workers. The API
// only acknowledges a trigger; crawling, scheduling and tracking happen
// elsewhere.
package dispatch

import (
	"context"
	"time"
)

// Kind names the worker a job is meant for.
type Kind string

const (
	KindSearch   Kind = "search"
	KindSchedule Kind = "schedule"
	KindTrack    Kind = "track"
)

// Job is the message handed to a worker.
type Job struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	RequestedAt time.Time `json:"requestedAt"`
}

type Dispatcher interface {
	// Dispatch enqueues a job of the given kind and returns its id. An empty
	// id means nothing was enqueued.
	Dispatch(ctx context.Context, kind Kind) (string, error)
	Close() error
}

// Noop acknowledges every trigger without side effects.
type Noop struct{}

func (Noop) Dispatch(context.Context, Kind) (string, error) { return "", nil }
func (Noop) Close() error                                   { return nil }
