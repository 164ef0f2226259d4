package ticket

import (
	"context"

	vo "inkwell/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	// UpdateForwardingStatus overwrites the forwarding status of the
	// given ticket. Last write wins; repeated calls are not an error.
	UpdateForwardingStatus(ctx context.Context, ticketID uint, status vo.ForwardingStatus) error
}
