package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	corelogger "github.com/wrydhan/trackday/core/logger"
	"github.com/wrydhan/trackday/core/model"
	"github.com/wrydhan/trackday/core/roster"
	"github.com/wrydhan/trackday/core/timetable"
	"github.com/wrydhan/trackday/metrics"
)

// Request carries the inputs of one schedule generation.
type Request struct {
	Event        model.EventConfig   `json:"event"`
	Participants []model.Participant `json:"participants"`
}

// Response is the generated schedule.
type Response struct {
	Groups   model.GroupAssignment `json:"groups"`
	Timeline model.Timeline        `json:"timeline"`
}

// NewHandler returns an HTTP handler generating schedules via
// POST /api/schedule. The core never fails on typed input, so the only
// error responses are for bad methods and malformed JSON.
func NewHandler(sink metrics.Sink, log corelogger.Logger) http.Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		start := time.Now()
		groups := roster.Partition(req.Participants, req.Event)
		tl := timetable.Build(req.Event, groups.Labels())
		sink.RecordSchedule(metrics.ScheduleEvent{
			Mode:       req.Event.Mode.String(),
			Groups:     len(groups.Groups),
			Activities: len(tl),
			Elapsed:    time.Since(start),
		})
		if log != nil {
			log.Debugw("schedule generated", map[string]any{
				"mode":       req.Event.Mode.String(),
				"groups":     len(groups.Groups),
				"activities": len(tl),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Response{Groups: groups, Timeline: tl}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
