package model

import (
	"fmt"
	"strings"
)

// PartitionMode selects how drivers are split into run groups.
type PartitionMode int

const (
	// ByLevel groups drivers by skill level.
	ByLevel PartitionMode = iota
	// Random shuffles drivers into a fixed number of balanced groups.
	Random
)

// EventConfig defines the timing parameters of one track day. All
// durations are integer minutes; StartMinute is a minute-of-day.
type EventConfig struct {
	StartMinute        int           `json:"start_minute" yaml:"start_minute"`
	TotalDuration      int           `json:"total_duration" yaml:"total_duration"`
	SessionDuration    int           `json:"session_duration" yaml:"session_duration"`
	GroupCount         int           `json:"group_count" yaml:"group_count"`
	Mode               PartitionMode `json:"mode" yaml:"mode"`
	LunchDuration      int           `json:"lunch_duration" yaml:"lunch_duration"`
	InspectionDuration int           `json:"inspection_duration" yaml:"inspection_duration"`
	BriefingDuration   int           `json:"briefing_duration" yaml:"briefing_duration"`
	SessionGap         int           `json:"session_gap" yaml:"session_gap"`
}

// String returns a human-readable representation of the mode.
func (m PartitionMode) String() string {
	switch m {
	case ByLevel:
		return "byLevel"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePartitionMode maps a label to its PartitionMode.
func ParsePartitionMode(s string) (PartitionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bylevel", "by_level", "level":
		return ByLevel, nil
	case "random":
		return Random, nil
	}
	return ByLevel, fmt.Errorf("unknown partition mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m PartitionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PartitionMode) UnmarshalText(b []byte) error {
	v, err := ParsePartitionMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
