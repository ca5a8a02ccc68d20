package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wrydhan/trackday/core/model"
)

// RosterEntry is one registered driver as written in the config file.
// The ID is optional; a missing one is generated at conversion time.
type RosterEntry struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
}

// Participants converts the roster into core participants, trimming
// names and generating a UUID for entries without an ID.
func (c Config) Participants() []model.Participant {
	out := make([]model.Participant, 0, len(c.Roster))
	for _, r := range c.Roster {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		lvl, _ := model.ParseSkillLevel(r.Level)
		out = append(out, model.Participant{
			ID:    id,
			Name:  strings.TrimSpace(r.Name),
			Level: lvl,
		})
	}
	return out
}

// DecodeRoster reads roster entries from r in the given format.
func DecodeRoster(r io.Reader, format string) ([]RosterEntry, error) {
	var entries []RosterEntry
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&entries); err != nil {
			return nil, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&entries); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return entries, nil
}
