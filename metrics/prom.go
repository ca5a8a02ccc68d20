package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records schedule generation in Prometheus metrics.
type PromSink struct {
	schedules *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewPromSink registers schedule metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	schedules := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trackday_schedules_generated_total",
		Help: "Total number of generated schedules",
	}, []string{"mode", "groups"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trackday_schedule_build_seconds",
		Help:    "Time spent partitioning and building one schedule",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	if err := reg.Register(schedules); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			schedules = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{schedules: schedules, duration: duration}, nil
}

// RecordSchedule increments the schedule counter and observes the
// build duration.
func (s *PromSink) RecordSchedule(ev ScheduleEvent) {
	s.schedules.WithLabelValues(ev.Mode, strconv.Itoa(ev.Groups)).Inc()
	s.duration.WithLabelValues(ev.Mode).Observe(ev.Elapsed.Seconds())
}
