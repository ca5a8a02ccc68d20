package metrics

import "time"

// ScheduleEvent describes one generated schedule for instrumentation.
type ScheduleEvent struct {
	Mode       string
	Groups     int
	Activities int
	Elapsed    time.Duration
}

// Sink records schedule generation events.
type Sink interface {
	RecordSchedule(ev ScheduleEvent)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordSchedule(ScheduleEvent) {}
