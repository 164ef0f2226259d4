// Package biztime provides utilities for the display timezone.
// All storage and transport use UTC. The display timezone is only used
// when formatting timestamps for API responses.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default display timezone (UTC+8).
	DefaultTimezone = "Asia/Shanghai"
)

var (
	displayLocation     *time.Location
	displayLocationOnce sync.Once
	initErr             error
)

// Init initializes the display timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Shanghai.
func Init(tz string) error {
	displayLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		displayLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the display timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize display timezone %q: %v", tz, err))
	}
}

// Location returns the display timezone location.
// If not explicitly initialized, automatically initializes with the default.
func Location() *time.Location {
	if displayLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return displayLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToDisplayTimezone converts a UTC time to the display timezone.
// Use this only at the API boundary when formatting timestamps for clients.
func ToDisplayTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatDisplay formats a UTC time as RFC3339 in the display timezone.
func FormatDisplay(t time.Time) string {
	return t.In(Location()).Format(time.RFC3339)
}
