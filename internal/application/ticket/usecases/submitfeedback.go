package usecases

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"inkwell/internal/application/ticket/dto"
	"inkwell/internal/domain/ticket"
	vo "inkwell/internal/domain/ticket/valueobjects"
	"inkwell/internal/shared/errors"
	"inkwell/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	IssueTitle       string
	IssueDescription string
	CustomerName     string
	CustomerEmail    string
	Urgency          string
}

type SubmitFeedbackResult struct {
	TicketID  uint
	Message   string
	Ticket    dto.TicketDTO
	Forwarded bool
}

// Response messages keyed by urgency tier.
var urgencyMessages = map[vo.Urgency]string{
	vo.UrgencyCritical: "Your feedback has been received. Our on-call team has been alerted and will respond immediately.",
	vo.UrgencyHigh:     "Your feedback has been received and will be handled with priority.",
	vo.UrgencyNormal:   "Your feedback has been received. We will get back to you shortly.",
	vo.UrgencyLow:      "Thank you for your feedback. Your suggestion has been recorded.",
}

const (
	genericMessage   = "Your feedback has been received."
	forwardingCaveat = " Note: automated notification delivery failed; our team will pick up the ticket manually."
)

// SubmitFeedbackUseCase sequences the durable ticket write with the
// best-effort webhook forward. Persistence failures are fatal;
// forwarding failures never are.
type SubmitFeedbackUseCase struct {
	ticketRepo ticket.TicketRepository
	forwarder  NotificationForwarder
	validate   *validator.Validate
	logger     logger.Interface
}

func NewSubmitFeedbackUseCase(
	ticketRepo ticket.TicketRepository,
	forwarder NotificationForwarder,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		ticketRepo: ticketRepo,
		forwarder:  forwarder,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	normalized, urgency, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid feedback submission", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		normalized.IssueTitle,
		normalized.IssueDescription,
		normalized.CustomerName,
		normalized.CustomerEmail,
		urgency,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Durable write first; nothing is forwarded unless this commits.
	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to persist feedback ticket", "error", err)
		return nil, errors.NewInternalError("failed to save feedback ticket")
	}

	sent := uc.forwarder.Forward(ctx, dto.NewTicketPayload(newTicket))

	status := vo.ForwardingStatusFromOutcome(sent)
	if err := uc.ticketRepo.UpdateForwardingStatus(ctx, newTicket.ID(), status); err != nil {
		// Bookkeeping only; the client-visible contract is about receipt.
		uc.logger.Errorw("failed to record forwarding status",
			"ticket_id", newTicket.ID(),
			"status", status.String(),
			"error", err,
		)
	}
	if err := newTicket.MarkForwarded(sent); err != nil {
		// Freshly saved tickets are always pending, so this transition
		// cannot be rejected; log loudly if that invariant ever breaks.
		uc.logger.Errorw("failed to record forwarding outcome on ticket",
			"ticket_id", newTicket.ID(),
			"error", err,
		)
	}

	if !sent {
		uc.logger.Warnw("webhook forwarding failed", "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("feedback ticket created",
		"ticket_id", newTicket.ID(),
		"urgency", urgency.String(),
		"forwarded", sent,
	)

	return &SubmitFeedbackResult{
		TicketID:  newTicket.ID(),
		Message:   uc.buildMessage(urgency, sent),
		Ticket:    dto.NewTicketDTO(newTicket),
		Forwarded: sent,
	}, nil
}

func (uc *SubmitFeedbackUseCase) validateCommand(cmd SubmitFeedbackCommand) (SubmitFeedbackCommand, vo.Urgency, error) {
	normalized := SubmitFeedbackCommand{
		IssueTitle:       strings.TrimSpace(cmd.IssueTitle),
		IssueDescription: strings.TrimSpace(cmd.IssueDescription),
		CustomerName:     strings.TrimSpace(cmd.CustomerName),
		CustomerEmail:    strings.TrimSpace(cmd.CustomerEmail),
	}

	if normalized.IssueTitle == "" {
		return normalized, "", errors.NewValidationError("issue_title is required")
	}
	if normalized.IssueDescription == "" {
		return normalized, "", errors.NewValidationError("issue_description is required")
	}
	if normalized.CustomerName == "" {
		return normalized, "", errors.NewValidationError("customer_name is required")
	}
	if err := uc.validate.Var(normalized.CustomerEmail, "required,email"); err != nil {
		return normalized, "", errors.NewValidationError("customer_email must be a valid email address")
	}

	urgency, err := vo.NewUrgency(cmd.Urgency)
	if err != nil {
		return normalized, "", errors.NewValidationError("urgency must be one of: critical, high, normal, low")
	}

	return normalized, urgency, nil
}

func (uc *SubmitFeedbackUseCase) buildMessage(urgency vo.Urgency, sent bool) string {
	message, ok := urgencyMessages[urgency]
	if !ok {
		message = genericMessage
	}
	if !sent {
		message += forwardingCaveat
	}
	return message
}
