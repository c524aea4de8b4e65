// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teachteam_applications_submitted_total",
		Help: "Number of tutor applications accepted.",
	})

	CandidatesSelected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teachteam_candidates_selected_total",
		Help: "Number of selection updates applied by lecturers.",
	})
)
