package model

import "strings"

// SkillLevel classifies a driver into one of the three run groups used
// when partitioning by level. Levels are ordered: Novice < Intermediate
// < Advanced.
type SkillLevel int

const (
	Novice SkillLevel = iota
	Intermediate
	Advanced
)

// Levels lists all skill levels in display priority order.
var Levels = []SkillLevel{Novice, Intermediate, Advanced}

// Participant represents a registered driver. The record is immutable
// once created; regrouping changes group membership, never the
// participant itself.
type Participant struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// String returns a human-readable representation of the skill level.
func (l SkillLevel) String() string {
	switch l {
	case Novice:
		return "Novice"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return "unknown"
	}
}

// ParseSkillLevel maps a label to its SkillLevel, case-insensitively.
// The second return value reports whether the label was recognised.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "novice", "low":
		return Novice, true
	case "intermediate", "medium":
		return Intermediate, true
	case "advanced", "high":
		return Advanced, true
	}
	return Novice, false
}

// MarshalText implements encoding.TextMarshaler so levels render as
// their label in JSON and YAML output.
func (l SkillLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown labels
// map to Novice so malformed rosters degrade instead of failing; the
// config layer validates labels before this point.
func (l *SkillLevel) UnmarshalText(b []byte) error {
	v, _ := ParseSkillLevel(string(b))
	*l = v
	return nil
}
