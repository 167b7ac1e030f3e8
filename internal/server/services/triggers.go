package services

import (
	"context"

	"github.com/scholarshipops/scholarshipops/internal/logging"
	"github.com/scholarshipops/scholarshipops/internal/server/dispatch"
)

const (
	triggerStatusPending = "pending"
	notePending          = "Implementation pending - requires script execution setup"
	noteQueued           = "Queued for an external worker"
)

// TriggerResult is the acknowledgement returned for a trigger request.
type TriggerResult struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Note    string `json:"note"`
	JobID   string `json:"jobId,omitempty"`
}

// TriggerService acknowledges crawler, scheduler and tracker triggers and
// forwards them to the configured dispatcher. It never fails: a dispatch
// error is logged and the trigger is still acknowledged.
type TriggerService struct {
	dispatcher dispatch.Dispatcher
	logger     logging.Logger
}

func NewTriggerService(d dispatch.Dispatcher, logger logging.Logger) *TriggerService {
	if d == nil {
		d = dispatch.Noop{}
	}
	return &TriggerService{dispatcher: d, logger: logger.With("module", "triggers")}
}

func (s *TriggerService) Search(ctx context.Context) *TriggerResult {
	return s.trigger(ctx, dispatch.KindSearch, "Search trigger received")
}

func (s *TriggerService) Schedule(ctx context.Context) *TriggerResult {
	return s.trigger(ctx, dispatch.KindSchedule, "Schedule trigger received")
}

func (s *TriggerService) Track(ctx context.Context) *TriggerResult {
	return s.trigger(ctx, dispatch.KindTrack, "Track trigger received")
}

func (s *TriggerService) trigger(ctx context.Context, kind dispatch.Kind, message string) *TriggerResult {
	res := &TriggerResult{Message: message, Status: triggerStatusPending, Note: notePending}

	id, err := s.dispatcher.Dispatch(ctx, kind)
	if err != nil {
		s.logger.Error(ctx, "dispatch failed", "kind", string(kind), "error", err)
		return res
	}
	if id != "" {
		res.JobID = id
		res.Note = noteQueued
		s.logger.Info(ctx, "job dispatched", "kind", string(kind), "job_id", id)
	}

	return res
}
