package timetable

import (
	"fmt"

	"github.com/wrydhan/trackday/core/model"
)

// lunchCutoff is the latest wall-clock minute-of-day at which lunch may
// start (14:00).
const lunchCutoff = 840

// desiredLunchOffset is how far into the day lunch should ideally start
// (4 hours), subject to the cutoff.
const desiredLunchOffset = 240

// builder carries the running cursor and the activity sequence while a
// day plan is assembled.
type builder struct {
	cfg    model.EventConfig
	groups []string
	nextID int
	cursor int // minutes elapsed since cfg.StartMinute
	out    model.Timeline
}

// Build produces the ordered day plan for the given run groups. It is
// pure and never fails: degenerate timing parameters (zero session
// length, no groups, start past the lunch cutoff) produce a degenerate
// but structurally valid plan with zero session rounds.
func Build(cfg model.EventConfig, groupLabels []string) model.Timeline {
	b := &builder{cfg: cfg, groups: groupLabels}

	b.emit(cfg.BriefingDuration, model.AllGroups, model.KindBriefing, "Drivers briefing")
	b.emit(cfg.InspectionDuration, model.AllGroups, model.KindInspection, "Technical inspection")

	maxLunchStart := lunchCutoff - cfg.StartMinute
	desiredLunchStart := desiredLunchOffset
	if maxLunchStart < desiredLunchStart {
		desiredLunchStart = maxLunchStart
	}

	b.packRounds(desiredLunchStart, "Morning")

	// Lunch may start before the cursor only when the cutoff is already
	// infeasible; the ceiling is hard either way.
	lunchStart := b.cursor
	if lunchStart > maxLunchStart {
		lunchStart = maxLunchStart
	}
	if lunchStart < 0 {
		lunchStart = 0
	}
	lunchDur := cfg.LunchDuration
	if lunchDur < 0 {
		lunchDur = 0
	}
	b.emitAt(lunchStart, lunchDur, model.AllGroups, model.KindBreak, "Lunch break")
	b.cursor = lunchStart + lunchDur

	b.packRounds(cfg.TotalDuration, "Afternoon")

	return b.out
}

// packRounds fills the window [cursor, windowEnd) with as many full
// rounds as fit. One round runs every group once, back to back; the
// round count comes from dividing the window by the round slot alone,
// so inter-round paddock breaks may push the block past windowEnd.
func (b *builder) packRounds(windowEnd int, half string) {
	groupCount := len(b.groups)
	slot := b.cfg.SessionDuration * groupCount
	if groupCount == 0 || slot <= 0 {
		return
	}

	rounds := 0
	if window := windowEnd - b.cursor; window > 0 {
		rounds = window / slot
	}

	for r := 1; r <= rounds; r++ {
		for _, g := range b.groups {
			b.emit(b.cfg.SessionDuration, g, model.KindSession,
				fmt.Sprintf("%s session %d: %s", half, r, g))
		}
		if r < rounds && b.cfg.SessionGap > 0 {
			b.emit(b.cfg.SessionGap, model.AllGroups, model.KindBreak, "Paddock break")
		}
	}
}

func (b *builder) emit(duration int, group string, kind model.ActivityKind, desc string) {
	if duration < 0 {
		duration = 0
	}
	b.emitAt(b.cursor, duration, group, kind, desc)
	b.cursor += duration
}

// emitAt appends an activity at an explicit offset without moving the
// cursor. Zero-length blocks are dropped entirely so End > Start holds
// for every emitted activity.
func (b *builder) emitAt(start, duration int, group string, kind model.ActivityKind, desc string) {
	if duration < 1 {
		return
	}
	b.nextID++
	b.out = append(b.out, model.Activity{
		ID:          b.nextID,
		Start:       b.cfg.StartMinute + start,
		End:         b.cfg.StartMinute + start + duration,
		Group:       group,
		Kind:        kind,
		Description: desc,
	})
}
