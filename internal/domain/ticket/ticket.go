package ticket

import (
	"fmt"
	"time"

	vo "inkwell/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id               uint
	issueTitle       string
	issueDescription string
	customerName     string
	customerEmail    string
	urgency          vo.Urgency
	forwardingStatus vo.ForwardingStatus
	createdAt        time.Time
}

func NewTicket(
	issueTitle string,
	issueDescription string,
	customerName string,
	customerEmail string,
	urgency vo.Urgency,
) (*Ticket, error) {
	if len(issueTitle) == 0 {
		return nil, fmt.Errorf("issue title is required")
	}
	if len(issueTitle) > 200 {
		return nil, fmt.Errorf("issue title exceeds maximum length of 200 characters")
	}
	if len(issueDescription) == 0 {
		return nil, fmt.Errorf("issue description is required")
	}
	if len(issueDescription) > 5000 {
		return nil, fmt.Errorf("issue description exceeds maximum length of 5000 characters")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customerEmail) == 0 {
		return nil, fmt.Errorf("customer email is required")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}

	return &Ticket{
		issueTitle:       issueTitle,
		issueDescription: issueDescription,
		customerName:     customerName,
		customerEmail:    customerEmail,
		urgency:          urgency,
		forwardingStatus: vo.ForwardingPending,
		createdAt:        time.Now().UTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	issueTitle string,
	issueDescription string,
	customerName string,
	customerEmail string,
	urgency vo.Urgency,
	forwardingStatus vo.ForwardingStatus,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if !forwardingStatus.IsValid() {
		return nil, fmt.Errorf("invalid forwarding status")
	}

	return &Ticket{
		id:               id,
		issueTitle:       issueTitle,
		issueDescription: issueDescription,
		customerName:     customerName,
		customerEmail:    customerEmail,
		urgency:          urgency,
		forwardingStatus: forwardingStatus,
		createdAt:        createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) IssueTitle() string {
	return t.issueTitle
}

func (t *Ticket) IssueDescription() string {
	return t.issueDescription
}

func (t *Ticket) CustomerName() string {
	return t.customerName
}

func (t *Ticket) CustomerEmail() string {
	return t.customerEmail
}

func (t *Ticket) Urgency() vo.Urgency {
	return t.urgency
}

func (t *Ticket) ForwardingStatus() vo.ForwardingStatus {
	return t.forwardingStatus
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// MarkForwarded records the outcome of the forwarding attempt.
// A ticket transitions out of pending exactly once.
func (t *Ticket) MarkForwarded(success bool) error {
	newStatus := vo.ForwardingStatusFromOutcome(success)

	if !t.forwardingStatus.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition forwarding status from %s to %s", t.forwardingStatus, newStatus)
	}

	t.forwardingStatus = newStatus
	return nil
}
