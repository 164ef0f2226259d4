package dto

import (
	"inkwell/internal/domain/ticket"
	"inkwell/internal/shared/biztime"
)

// TicketDTO is the API representation of a feedback ticket.
type TicketDTO struct {
	ID               uint   `json:"id"`
	IssueTitle       string `json:"issue_title"`
	IssueDescription string `json:"issue_description"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Urgency          string `json:"urgency"`
	ForwardingStatus string `json:"forwarding_status"`
	CreatedAt        string `json:"created_at"`
}

// NewTicketDTO converts a domain ticket to its API representation.
func NewTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:               t.ID(),
		IssueTitle:       t.IssueTitle(),
		IssueDescription: t.IssueDescription(),
		CustomerName:     t.CustomerName(),
		CustomerEmail:    t.CustomerEmail(),
		Urgency:          t.Urgency().String(),
		ForwardingStatus: t.ForwardingStatus().String(),
		CreatedAt:        biztime.FormatDisplay(t.CreatedAt()),
	}
}

// TicketPayload is the wire format posted to the automation webhook.
type TicketPayload struct {
	IssueTitle       string `json:"issue_title"`
	IssueDescription string `json:"issue_description"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Urgency          string `json:"urgency"`
}

// NewTicketPayload builds the webhook payload from a persisted ticket.
func NewTicketPayload(t *ticket.Ticket) TicketPayload {
	return TicketPayload{
		IssueTitle:       t.IssueTitle(),
		IssueDescription: t.IssueDescription(),
		CustomerName:     t.CustomerName(),
		CustomerEmail:    t.CustomerEmail(),
		Urgency:          t.Urgency().String(),
	}
}
