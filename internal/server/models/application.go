package models

import "time"

const (
	ApplicationNotStarted = "not_started"
	ApplicationInProgress = "in_progress"
	ApplicationSubmitted  = "submitted"
	ApplicationAccepted   = "accepted"
	ApplicationRejected   = "rejected"
)

// Application tracks progress toward submitting for one opportunity. It has
// no link to a Lead.
type Application struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Deadline     *string  `json:"deadline,omitempty"`
	Status       string   `json:"status"`
	CurrentStage *string  `json:"currentStage,omitempty"`
	NextAction   *string  `json:"nextAction,omitempty"`
	RequiredDocs []string `json:"requiredDocs,omitzero"`
	Progress     int      `json:"progress"`
	Notes        *string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplicationInput is the writable subset of Application; nil means "not
// provided".
type ApplicationInput struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	Deadline     *string  `json:"deadline"`
	Status       *string  `json:"status" validate:"omitempty,oneof=not_started in_progress submitted accepted rejected"`
	CurrentStage *string  `json:"currentStage"`
	NextAction   *string  `json:"nextAction"`
	RequiredDocs []string `json:"requiredDocs"`
	Progress     *int     `json:"progress" validate:"omitempty,min=0,max=100"`
	Notes        *string  `json:"notes"`
}

func (in ApplicationInput) WithDefaults() ApplicationInput {
	if in.Status == nil {
		in.Status = Ptr(ApplicationNotStarted)
	}
	if in.Progress == nil {
		in.Progress = Ptr(0)
	}
	return in
}

// IsCompleted reports whether the status is one of the terminal states.
func IsCompleted(status string) bool {
	switch status {
	case ApplicationSubmitted, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}
