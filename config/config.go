package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wrydhan/trackday/core/model"
)

// Config is the full track-day configuration: the event timing section,
// the registered drivers and the serving options.
type Config struct {
	Event  EventSection  `json:"event"`
	Roster []RosterEntry `json:"roster"`
	Serve  ServeConfig   `json:"serve"`
}

// EventSection mirrors model.EventConfig in file-friendly form: the
// start time is a wall-clock "HH:MM" string and the partition mode a
// label. All durations are minutes.
type EventSection struct {
	Start              string `json:"start"`
	TotalDuration      int    `json:"total_duration"`
	SessionDuration    int    `json:"session_duration"`
	GroupCount         int    `json:"group_count"`
	Mode               string `json:"mode"`
	LunchDuration      int    `json:"lunch_duration"`
	InspectionDuration int    `json:"inspection_duration"`
	BriefingDuration   int    `json:"briefing_duration"`
	SessionGap         int    `json:"session_gap"`
}

// ServeConfig defines the HTTP API and metrics listeners.
type ServeConfig struct {
	Addr        string `json:"addr"`
	MetricsAddr string `json:"metrics_addr"`
}

// Load reads a YAML or JSON configuration file, applies TRACKDAY_
// environment overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TRACKDAY_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "trackday_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Event.Start == "" {
		c.Event.Start = "08:00"
	}
	if c.Event.Mode == "" {
		c.Event.Mode = "byLevel"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Serve.MetricsAddr == "" {
		c.Serve.MetricsAddr = ":9090"
	}
}

// Validate checks the upstream contract the core relies on: parseable
// start time, a recognised mode, non-negative durations, a group count
// between 2 and 6 for random mode and non-empty trimmed driver names.
func (c Config) Validate() error {
	if _, err := model.ParseClock(c.Event.Start); err != nil {
		return err
	}
	mode, err := model.ParsePartitionMode(c.Event.Mode)
	if err != nil {
		return err
	}
	for name, v := range map[string]int{
		"total_duration":      c.Event.TotalDuration,
		"session_duration":    c.Event.SessionDuration,
		"lunch_duration":      c.Event.LunchDuration,
		"inspection_duration": c.Event.InspectionDuration,
		"briefing_duration":   c.Event.BriefingDuration,
		"session_gap":         c.Event.SessionGap,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if mode == model.Random && (c.Event.GroupCount < 2 || c.Event.GroupCount > 6) {
		return fmt.Errorf("group_count must be between 2 and 6, got %d", c.Event.GroupCount)
	}
	for i, r := range c.Roster {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("roster entry %d has an empty name", i)
		}
		if r.Level != "" {
			if _, ok := model.ParseSkillLevel(r.Level); !ok {
				return fmt.Errorf("roster entry %d has unknown level %q", i, r.Level)
			}
		}
	}
	return nil
}

// EventConfig converts the file section into the core representation.
// Validate must have accepted the config first.
func (c Config) EventConfig() (model.EventConfig, error) {
	start, err := model.ParseClock(c.Event.Start)
	if err != nil {
		return model.EventConfig{}, err
	}
	mode, err := model.ParsePartitionMode(c.Event.Mode)
	if err != nil {
		return model.EventConfig{}, err
	}
	return model.EventConfig{
		StartMinute:        start,
		TotalDuration:      c.Event.TotalDuration,
		SessionDuration:    c.Event.SessionDuration,
		GroupCount:         c.Event.GroupCount,
		Mode:               mode,
		LunchDuration:      c.Event.LunchDuration,
		InspectionDuration: c.Event.InspectionDuration,
		BriefingDuration:   c.Event.BriefingDuration,
		SessionGap:         c.Event.SessionGap,
	}, nil
}
