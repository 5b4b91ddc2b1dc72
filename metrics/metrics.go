// Package metrics exposes store activity to Prometheus.
package metrics

import (
	"hotelpro-backend/store"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotelpro"

// Recorder implements store.Observer.
type Recorder struct {
	commands *prometheus.CounterVec
	records  *prometheus.GaugeVec
	active   *prometheus.GaugeVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "commands_total",
			Help:      "Store commands by name and outcome.",
		}, []string{"command", "result"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "records",
			Help:      "Records held per collection.",
		}, []string{"collection"}),
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "active_records",
			Help:      "Active events and additional services.",
		}, []string{"collection"}),
	}
	reg.MustRegister(r.commands, r.records, r.active)
	return r
}

func (r *Recorder) ObserveCommand(command string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.commands.WithLabelValues(command, result).Inc()
}

func (r *Recorder) ObserveState(s store.HotelState) {
	r.records.WithLabelValues("halls").Set(float64(len(s.Halls)))
	r.records.WithLabelValues("events").Set(float64(len(s.Events)))
	r.records.WithLabelValues("additional_services").Set(float64(len(s.AdditionalServices)))
	r.records.WithLabelValues("event_packages").Set(float64(len(s.EventPackages)))

	var events, services int
	for _, e := range s.Events {
		if e.Status.IsActive() {
			events++
		}
	}
	for _, a := range s.AdditionalServices {
		if a.IsActive {
			services++
		}
	}
	r.active.WithLabelValues("events").Set(float64(events))
	r.active.WithLabelValues("additional_services").Set(float64(services))
}
