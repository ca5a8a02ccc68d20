package timetable

import (
	"testing"

	"github.com/wrydhan/trackday/core/model"
)

var groups3 = []string{"Group 1", "Group 2", "Group 3"}

// The reference day: 08:00 start, 8 hours, 20-minute sessions for three
// groups, 15-minute briefing, 30-minute inspection, one-hour lunch and
// 15-minute paddock breaks.
func referenceConfig() model.EventConfig {
	return model.EventConfig{
		StartMinute:        480,
		TotalDuration:      480,
		SessionDuration:    20,
		GroupCount:         3,
		LunchDuration:      60,
		InspectionDuration: 30,
		BriefingDuration:   15,
		SessionGap:         15,
	}
}

func sessionsByHalf(tl model.Timeline, lunchID int) (morning, afternoon int) {
	for _, a := range tl {
		if a.Kind != model.KindSession {
			continue
		}
		if a.ID < lunchID {
			morning++
		} else {
			afternoon++
		}
	}
	return
}

func findLunch(t *testing.T, tl model.Timeline) model.Activity {
	t.Helper()
	for _, a := range tl {
		if a.Kind == model.KindBreak && a.Description == "Lunch break" {
			return a
		}
	}
	t.Fatalf("no lunch break in timeline")
	return model.Activity{}
}

func TestBuildReferenceDay(t *testing.T) {
	cfg := referenceConfig()
	tl := Build(cfg, groups3)

	if tl[0].Kind != model.KindBriefing || tl[0].Start != 480 || tl[0].End != 495 {
		t.Fatalf("briefing wrong: %+v", tl[0])
	}
	if tl[1].Kind != model.KindInspection || tl[1].Start != 495 || tl[1].End != 525 {
		t.Fatalf("inspection wrong: %+v", tl[1])
	}

	// morning window is 195 minutes, one round slot is 60: three rounds
	// fit even though the two paddock breaks push the block to 210.
	lunch := findLunch(t, tl)
	morning, afternoon := sessionsByHalf(tl, lunch.ID)
	if morning != 9 {
		t.Fatalf("expected 9 morning sessions (3 rounds), got %d", morning)
	}
	if lunch.Start != 480+255 || lunch.End != 480+315 {
		t.Fatalf("lunch at %s-%s, want 12:15-13:15",
			model.FormatClock(lunch.Start), model.FormatClock(lunch.End))
	}

	// afternoon window is 165 minutes: two full rounds fit.
	if afternoon != 6 {
		t.Fatalf("expected 6 afternoon sessions (2 rounds), got %d", afternoon)
	}

	last := tl[len(tl)-1]
	if last.End > 480+cfg.TotalDuration {
		t.Fatalf("day overruns: last activity ends %s", model.FormatClock(last.End))
	}
}

func TestBuildLunchDeadline(t *testing.T) {
	// Starting at 11:00 leaves only 180 minutes before the 14:00 cutoff,
	// tighter than the 4-hour preference.
	cfg := referenceConfig()
	cfg.StartMinute = 660
	tl := Build(cfg, groups3)
	lunch := findLunch(t, tl)
	if lunch.Start-cfg.StartMinute > 840-cfg.StartMinute {
		t.Fatalf("lunch starts after the cutoff: %s", model.FormatClock(lunch.Start))
	}
	if lunch.Start > 840 {
		t.Fatalf("lunch starts at %s, cutoff is 14:00", model.FormatClock(lunch.Start))
	}
}

func TestBuildLunchInfeasibleStart(t *testing.T) {
	// Event starts at 15:00, past the cutoff entirely. The lunch is
	// still emitted, clamped to the event start.
	cfg := referenceConfig()
	cfg.StartMinute = 900
	tl := Build(cfg, groups3)
	lunch := findLunch(t, tl)
	if lunch.Start != cfg.StartMinute {
		t.Fatalf("infeasible cutoff should clamp lunch to event start, got %s",
			model.FormatClock(lunch.Start))
	}
}

func TestBuildNoGroups(t *testing.T) {
	tl := Build(referenceConfig(), nil)
	for _, a := range tl {
		if a.Kind == model.KindSession {
			t.Fatalf("no groups must mean no sessions, got %+v", a)
		}
	}
	// briefing, inspection and lunch are still mandatory
	if len(tl) != 3 {
		t.Fatalf("expected 3 mandatory blocks, got %d", len(tl))
	}
}

func TestBuildZeroSessionDuration(t *testing.T) {
	cfg := referenceConfig()
	cfg.SessionDuration = 0
	tl := Build(cfg, groups3)
	for _, a := range tl {
		if a.Kind == model.KindSession {
			t.Fatalf("zero session duration must pack zero rounds")
		}
	}
}

func TestBuildNoSessionGap(t *testing.T) {
	cfg := referenceConfig()
	cfg.SessionGap = 0
	tl := Build(cfg, groups3)
	for _, a := range tl {
		if a.Kind == model.KindBreak && a.Description == "Paddock break" {
			t.Fatalf("no paddock breaks expected with zero gap")
		}
	}
}

func TestBuildOrderingAndIDs(t *testing.T) {
	tl := Build(referenceConfig(), groups3)
	seen := map[int]bool{}
	for i, a := range tl {
		if a.End <= a.Start {
			t.Fatalf("activity %d has End <= Start: %+v", i, a)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate activity id %d", a.ID)
		}
		seen[a.ID] = true
		if i > 0 && a.Start < tl[i-1].Start {
			t.Fatalf("timeline not sorted at index %d", i)
		}
	}
}

// Activities scoped to the same group, or to all groups, must never
// overlap mid-activity; boundaries may touch.
func TestBuildNoOverlapPerScope(t *testing.T) {
	tl := Build(referenceConfig(), groups3)
	for i, a := range tl {
		for _, b := range tl[i+1:] {
			sameScope := a.Group == b.Group ||
				a.Group == model.AllGroups || b.Group == model.AllGroups
			if !sameScope {
				continue
			}
			if a.Start < b.End && b.Start < a.End {
				t.Fatalf("overlap between %+v and %+v", a, b)
			}
		}
	}
}

func TestBuildSessionDescriptions(t *testing.T) {
	tl := Build(referenceConfig(), []string{"Novice", "Advanced"})
	want := "Morning session 1: Novice"
	found := false
	for _, a := range tl {
		if a.Description == want {
			found = true
			if a.Group != "Novice" {
				t.Fatalf("session scoped to %q, want Novice", a.Group)
			}
		}
	}
	if !found {
		t.Fatalf("missing session %q", want)
	}
}

func TestBuildPastMidnight(t *testing.T) {
	// A late event may run past 24:00; minute values beyond 1439 are
	// kept as-is for the formatting layer.
	cfg := referenceConfig()
	cfg.StartMinute = 1200 // 20:00
	cfg.TotalDuration = 360
	tl := Build(cfg, groups3)
	last := tl[len(tl)-1]
	if last.End <= 1440 {
		t.Skipf("day did not cross midnight: %d", last.End)
	}
	if got := model.FormatClock(last.End); got[0] != '2' {
		t.Fatalf("expected overflowed clock rendering, got %s", got)
	}
}
