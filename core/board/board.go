// Package board applies drag-and-drop style regrouping as pure
// transformations over a GroupAssignment. Every operation returns a
// fresh assignment and leaves its input untouched, so the partition
// invariant (each driver in exactly one group) cannot be broken by
// aliasing.
package board

import (
	"fmt"

	"github.com/wrydhan/trackday/core/model"
)

// Move transfers the driver with the given id from one group to a
// position in another (or the same) group. pos is clamped into the
// destination's valid insertion range.
func Move(a model.GroupAssignment, participantID, from, to string, pos int) (model.GroupAssignment, error) {
	out := clone(a)

	fi, err := groupIndex(out, from)
	if err != nil {
		return a, err
	}
	ti, err := groupIndex(out, to)
	if err != nil {
		return a, err
	}

	src := out.Groups[fi].Participants
	pi := -1
	for i, p := range src {
		if p.ID == participantID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return a, fmt.Errorf("participant %s not in group %s", participantID, from)
	}

	moved := src[pi]
	out.Groups[fi].Participants = append(src[:pi], src[pi+1:]...)

	dst := out.Groups[ti].Participants
	if pos < 0 {
		pos = 0
	}
	if pos > len(dst) {
		pos = len(dst)
	}
	dst = append(dst, model.Participant{})
	copy(dst[pos+1:], dst[pos:])
	dst[pos] = moved
	out.Groups[ti].Participants = dst

	return out, nil
}

// Reorder moves the driver at fromIdx to toIdx within one group.
func Reorder(a model.GroupAssignment, label string, fromIdx, toIdx int) (model.GroupAssignment, error) {
	out := clone(a)

	gi, err := groupIndex(out, label)
	if err != nil {
		return a, err
	}
	members := out.Groups[gi].Participants
	if fromIdx < 0 || fromIdx >= len(members) {
		return a, fmt.Errorf("index %d out of range for group %s", fromIdx, label)
	}
	if toIdx < 0 {
		toIdx = 0
	}
	if toIdx >= len(members) {
		toIdx = len(members) - 1
	}

	moved := members[fromIdx]
	members = append(members[:fromIdx], members[fromIdx+1:]...)
	members = append(members, model.Participant{})
	copy(members[toIdx+1:], members[toIdx:])
	members[toIdx] = moved
	out.Groups[gi].Participants = members

	return out, nil
}

func groupIndex(a model.GroupAssignment, label string) (int, error) {
	for i, g := range a.Groups {
		if g.Label == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown group %s", label)
}

// clone deep-copies the assignment so callers can keep the original.
func clone(a model.GroupAssignment) model.GroupAssignment {
	out := model.GroupAssignment{Groups: make([]model.Group, len(a.Groups))}
	for i, g := range a.Groups {
		out.Groups[i].Label = g.Label
		out.Groups[i].Participants = append([]model.Participant(nil), g.Participants...)
	}
	return out
}
