package roster

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wrydhan/trackday/core/model"
)

// Partitioner splits drivers into run groups. Rand is the source used
// for random-mode shuffling; when nil an unseeded source is used, so
// tests inject a seeded one for reproducibility.
type Partitioner struct {
	Rand *rand.Rand
}

// Partition assigns every driver to exactly one group according to
// cfg.Mode. It never fails: empty input yields empty groups and a
// non-positive group count in random mode yields no groups at all.
func (p Partitioner) Partition(participants []model.Participant, cfg model.EventConfig) model.GroupAssignment {
	if cfg.Mode == model.Random {
		return p.random(participants, cfg.GroupCount)
	}
	return byLevel(participants)
}

// Partition is the package-level convenience using an unseeded source.
func Partition(participants []model.Participant, cfg model.EventConfig) model.GroupAssignment {
	return Partitioner{}.Partition(participants, cfg)
}

// byLevel creates one group per skill level actually present, in fixed
// level order, drivers name-sorted within each group. The result is
// fully deterministic regardless of input ordering.
func byLevel(participants []model.Participant) model.GroupAssignment {
	buckets := make(map[model.SkillLevel][]model.Participant)
	for _, pt := range participants {
		buckets[pt.Level] = append(buckets[pt.Level], pt)
	}

	var out model.GroupAssignment
	for _, lvl := range model.Levels {
		members := buckets[lvl]
		if len(members) == 0 {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].Name < members[j].Name
		})
		out.Groups = append(out.Groups, model.Group{Label: lvl.String(), Participants: members})
	}
	return out
}

// random shuffles drivers with a uniform Fisher-Yates permutation and
// deals them round-robin into count groups. Group sizes never differ
// by more than one; empty groups are kept so the caller always sees
// exactly count groups.
func (p Partitioner) random(participants []model.Participant, count int) model.GroupAssignment {
	var out model.GroupAssignment
	if count <= 0 {
		return out
	}

	out.Groups = make([]model.Group, count)
	for i := range out.Groups {
		out.Groups[i].Label = fmt.Sprintf("Group %d", i+1)
	}

	shuffled := make([]model.Participant, len(participants))
	copy(shuffled, participants)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if p.Rand != nil {
		p.Rand.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	for i, pt := range shuffled {
		g := i % count
		out.Groups[g].Participants = append(out.Groups[g].Participants, pt)
	}
	return out
}
