package valueobjects

import (
	"fmt"
	"strings"
)

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyNormal   Urgency = "normal"
	UrgencyLow      Urgency = "low"
)

var validUrgencies = map[Urgency]bool{
	UrgencyCritical: true,
	UrgencyHigh:     true,
	UrgencyNormal:   true,
	UrgencyLow:      true,
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	return validUrgencies[u]
}

func (u Urgency) IsCritical() bool {
	return u == UrgencyCritical
}

// NewUrgency normalizes the input (trims whitespace, lowercases) and
// validates it against the known urgency tiers.
func NewUrgency(s string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
