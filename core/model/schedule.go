package model

import "fmt"

// AllGroups is the group label of activities that apply to every run
// group at once (briefing, inspection, lunch, paddock breaks).
const AllGroups = "All"

// ActivityKind identifies the type of a timetable block.
type ActivityKind int

const (
	KindSession ActivityKind = iota
	KindBreak
	KindBriefing
	KindInspection
)

// Activity is one timed block of the day. Start and End are absolute
// minutes-of-day; End is always strictly greater than Start.
type Activity struct {
	ID          int          `json:"id"`
	Start       int          `json:"start"`
	End         int          `json:"end"`
	Group       string       `json:"group"`
	Kind        ActivityKind `json:"kind"`
	Description string       `json:"description"`
}

// Timeline is the full ordered day plan, sorted by Start non-decreasing.
type Timeline []Activity

// Group is one named run group with its drivers in display order.
type Group struct {
	Label        string        `json:"label"`
	Participants []Participant `json:"participants"`
}

// GroupAssignment holds the run groups in display order. Every input
// participant belongs to exactly one group.
type GroupAssignment struct {
	Groups []Group `json:"groups"`
}

// String returns a human-readable representation of the kind.
func (k ActivityKind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindBreak:
		return "break"
	case KindBriefing:
		return "briefing"
	case KindInspection:
		return "inspection"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ActivityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActivityKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "session":
		*k = KindSession
	case "break":
		*k = KindBreak
	case "briefing":
		*k = KindBriefing
	case "inspection":
		*k = KindInspection
	default:
		return fmt.Errorf("unknown activity kind %q", b)
	}
	return nil
}

// Labels returns the group labels in display order.
func (a GroupAssignment) Labels() []string {
	out := make([]string, len(a.Groups))
	for i, g := range a.Groups {
		out[i] = g.Label
	}
	return out
}

// Size returns the total number of participants across all groups.
func (a GroupAssignment) Size() int {
	n := 0
	for _, g := range a.Groups {
		n += len(g.Participants)
	}
	return n
}
