package mappers

import (
	"time"

	"inkwell/internal/domain/ticket"
	vo "inkwell/internal/domain/ticket/valueobjects"
	"inkwell/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities
// and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		IssueTitle:       t.IssueTitle(),
		IssueDescription: t.IssueDescription(),
		CustomerName:     t.CustomerName(),
		CustomerEmail:    t.CustomerEmail(),
		Urgency:          t.Urgency().String(),
		ForwardingStatus: t.ForwardingStatus().String(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewForwardingStatus(model.ForwardingStatus)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.IssueTitle,
		model.IssueDescription,
		model.CustomerName,
		model.CustomerEmail,
		urgency,
		status,
		ticketConvertMillisToTime(model.CreatedAt),
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
