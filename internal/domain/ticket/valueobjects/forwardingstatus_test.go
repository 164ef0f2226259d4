package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ForwardingStatus
		to   ForwardingStatus
		want bool
	}{
		{name: "pending to success", from: ForwardingPending, to: ForwardingSuccess, want: true},
		{name: "pending to failed", from: ForwardingPending, to: ForwardingFailed, want: true},
		{name: "pending to pending", from: ForwardingPending, to: ForwardingPending, want: false},
		{name: "success is terminal", from: ForwardingSuccess, to: ForwardingFailed, want: false},
		{name: "failed is terminal", from: ForwardingFailed, to: ForwardingSuccess, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewForwardingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "success", "failed"} {
		got, err := NewForwardingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got.String())
	}

	_, err := NewForwardingStatus("retrying")
	assert.Error(t, err)
}

func TestForwardingStatusFromOutcome(t *testing.T) {
	assert.Equal(t, ForwardingSuccess, ForwardingStatusFromOutcome(true))
	assert.Equal(t, ForwardingFailed, ForwardingStatusFromOutcome(false))
}

func TestForwardingStatusIsPending(t *testing.T) {
	assert.True(t, ForwardingPending.IsPending())
	assert.False(t, ForwardingSuccess.IsPending())
}
