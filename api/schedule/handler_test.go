package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrydhan/trackday/core/model"
	"github.com/wrydhan/trackday/infra/logger"
	"github.com/wrydhan/trackday/metrics"
)

type captureSink struct{ events []metrics.ScheduleEvent }

func (c *captureSink) RecordSchedule(ev metrics.ScheduleEvent) { c.events = append(c.events, ev) }

func TestHandlerGeneratesSchedule(t *testing.T) {
	sink := &captureSink{}
	h := NewHandler(sink, logger.NopLogger{})

	body := `{
		"event": {
			"start_minute": 480, "total_duration": 480, "session_duration": 20,
			"group_count": 3, "mode": "random", "lunch_duration": 60,
			"inspection_duration": 30, "briefing_duration": 15, "session_gap": 15
		},
		"participants": [
			{"id": "1", "name": "Ada", "level": "Novice"},
			{"id": "2", "name": "Bo", "level": "Advanced"}
		]
	}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body))
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var out Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Groups.Groups, 3)
	require.Equal(t, 2, out.Groups.Size())
	require.NotEmpty(t, out.Timeline)
	require.Equal(t, model.KindBriefing, out.Timeline[0].Kind)

	require.Len(t, sink.events, 1)
	require.Equal(t, "random", sink.events[0].Mode)
	require.Equal(t, 3, sink.events[0].Groups)
}

func TestHandlerDegenerateInput(t *testing.T) {
	h := NewHandler(nil, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(`{}`))
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var out Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Empty(t, out.Groups.Groups)
}

func TestHandlerRejects(t *testing.T) {
	h := NewHandler(nil, logger.NopLogger{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader("{not json")))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
