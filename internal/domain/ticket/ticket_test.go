package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "inkwell/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		customer    string
		email       string
		urgency     vo.Urgency
		wantErr     string
	}{
		{
			name:        "valid ticket",
			title:       "Login broken",
			description: "Cannot sign in since this morning",
			customer:    "Alice",
			email:       "alice@example.com",
			urgency:     vo.UrgencyHigh,
		},
		{
			name:        "missing title",
			description: "desc",
			customer:    "Alice",
			email:       "alice@example.com",
			urgency:     vo.UrgencyNormal,
			wantErr:     "issue title is required",
		},
		{
			name:        "title too long",
			title:       strings.Repeat("a", 201),
			description: "desc",
			customer:    "Alice",
			email:       "alice@example.com",
			urgency:     vo.UrgencyNormal,
			wantErr:     "issue title exceeds maximum length",
		},
		{
			name:     "missing description",
			title:    "Login broken",
			customer: "Alice",
			email:    "alice@example.com",
			urgency:  vo.UrgencyNormal,
			wantErr:  "issue description is required",
		},
		{
			name:        "description too long",
			title:       "Login broken",
			description: strings.Repeat("a", 5001),
			customer:    "Alice",
			email:       "alice@example.com",
			urgency:     vo.UrgencyNormal,
			wantErr:     "issue description exceeds maximum length",
		},
		{
			name:        "missing customer name",
			title:       "Login broken",
			description: "desc",
			email:       "alice@example.com",
			urgency:     vo.UrgencyNormal,
			wantErr:     "customer name is required",
		},
		{
			name:        "missing customer email",
			title:       "Login broken",
			description: "desc",
			customer:    "Alice",
			urgency:     vo.UrgencyNormal,
			wantErr:     "customer email is required",
		},
		{
			name:        "invalid urgency",
			title:       "Login broken",
			description: "desc",
			customer:    "Alice",
			email:       "alice@example.com",
			urgency:     vo.Urgency("urgent"),
			wantErr:     "invalid urgency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.title, tt.description, tt.customer, tt.email, tt.urgency)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, ticket.IssueTitle())
			assert.Equal(t, vo.ForwardingPending, ticket.ForwardingStatus())
			assert.False(t, ticket.CreatedAt().IsZero())
			assert.Zero(t, ticket.ID())
		})
	}
}

func TestTicketMarkForwarded(t *testing.T) {
	newTicket := func(t *testing.T) *Ticket {
		ticket, err := NewTicket("title", "desc", "Alice", "alice@example.com", vo.UrgencyNormal)
		require.NoError(t, err)
		return ticket
	}

	t.Run("pending to success", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.MarkForwarded(true))
		assert.Equal(t, vo.ForwardingSuccess, ticket.ForwardingStatus())
	})

	t.Run("pending to failed", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.MarkForwarded(false))
		assert.Equal(t, vo.ForwardingFailed, ticket.ForwardingStatus())
	})

	t.Run("second transition is rejected", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.MarkForwarded(true))
		err := ticket.MarkForwarded(false)
		require.Error(t, err)
		assert.Equal(t, vo.ForwardingSuccess, ticket.ForwardingStatus())
	})
}

func TestTicketSetID(t *testing.T) {
	ticket, err := NewTicket("title", "desc", "Alice", "alice@example.com", vo.UrgencyLow)
	require.NoError(t, err)

	require.NoError(t, ticket.SetID(42))
	assert.Equal(t, uint(42), ticket.ID())

	assert.Error(t, ticket.SetID(43))
	assert.Error(t, ticket.SetID(0))
}

func TestReconstructTicket(t *testing.T) {
	ticket, err := NewTicket("title", "desc", "Alice", "alice@example.com", vo.UrgencyCritical)
	require.NoError(t, err)

	restored, err := ReconstructTicket(7, ticket.IssueTitle(), ticket.IssueDescription(),
		ticket.CustomerName(), ticket.CustomerEmail(), ticket.Urgency(), vo.ForwardingFailed, ticket.CreatedAt())
	require.NoError(t, err)
	assert.Equal(t, uint(7), restored.ID())
	assert.Equal(t, vo.ForwardingFailed, restored.ForwardingStatus())

	_, err = ReconstructTicket(0, "t", "d", "n", "e@example.com", vo.UrgencyLow, vo.ForwardingPending, ticket.CreatedAt())
	assert.Error(t, err)

	_, err = ReconstructTicket(7, "t", "d", "n", "e@example.com", vo.Urgency("bogus"), vo.ForwardingPending, ticket.CreatedAt())
	assert.Error(t, err)
}
