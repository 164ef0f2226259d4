package usecases

import (
	"context"

	"inkwell/internal/application/ticket/dto"
)

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error)
}

// NotificationForwarder delivers a ticket payload to the external
// automation webhook. The boolean result reports whether the remote
// accepted the payload; delivery failures never surface as errors.
type NotificationForwarder interface {
	Forward(ctx context.Context, payload dto.TicketPayload) bool
}
