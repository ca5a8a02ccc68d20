package model

import (
	"encoding/json"
	"testing"
)

func TestParseSkillLevel(t *testing.T) {
	cases := map[string]SkillLevel{
		"novice":       Novice,
		"Intermediate": Intermediate,
		" ADVANCED ":   Advanced,
		"low":          Novice,
		"medium":       Intermediate,
		"high":         Advanced,
	}
	for in, want := range cases {
		got, ok := ParseSkillLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseSkillLevel(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := ParseSkillLevel("pro"); ok {
		t.Fatalf("unknown level should not parse")
	}
}

func TestSkillLevelJSON(t *testing.T) {
	b, err := json.Marshal(Participant{ID: "1", Name: "Ada", Level: Advanced})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var p Participant
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Level != Advanced {
		t.Fatalf("level round trip failed: %v", p.Level)
	}
}

func TestParsePartitionMode(t *testing.T) {
	for in, want := range map[string]PartitionMode{"byLevel": ByLevel, "random": Random, "by_level": ByLevel} {
		got, err := ParsePartitionMode(in)
		if err != nil || got != want {
			t.Fatalf("ParsePartitionMode(%q) = %v,%v", in, got, err)
		}
	}
	if _, err := ParsePartitionMode("alphabetical"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
