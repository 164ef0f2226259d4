package valueobjects

import "fmt"

type ForwardingStatus string

const (
	ForwardingPending ForwardingStatus = "pending"
	ForwardingSuccess ForwardingStatus = "success"
	ForwardingFailed  ForwardingStatus = "failed"
)

var validForwardingStatuses = map[ForwardingStatus]bool{
	ForwardingPending: true,
	ForwardingSuccess: true,
	ForwardingFailed:  true,
}

// Only pending tickets transition; success and failed are terminal.
var forwardingStatusTransitions = map[ForwardingStatus][]ForwardingStatus{
	ForwardingPending: {
		ForwardingSuccess,
		ForwardingFailed,
	},
}

func (fs ForwardingStatus) String() string {
	return string(fs)
}

func (fs ForwardingStatus) IsValid() bool {
	return validForwardingStatuses[fs]
}

func (fs ForwardingStatus) IsPending() bool {
	return fs == ForwardingPending
}

func (fs ForwardingStatus) CanTransitionTo(newStatus ForwardingStatus) bool {
	allowedTransitions, ok := forwardingStatusTransitions[fs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewForwardingStatus(s string) (ForwardingStatus, error) {
	fs := ForwardingStatus(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("invalid forwarding status: %s", s)
	}
	return fs, nil
}

// ForwardingStatusFromOutcome maps a forwarding attempt outcome to the
// status recorded on the ticket.
func ForwardingStatusFromOutcome(success bool) ForwardingStatus {
	if success {
		return ForwardingSuccess
	}
	return ForwardingFailed
}
