package services

import "github.com/prometheus/client_golang/prometheus"

// submissionOutcomes counts gate results per form (subscribe, review,
// contact) and outcome (accepted, rejected_bot, ...).
var submissionOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "submission_outcomes_total",
		Help: "Public form submissions by form and gate outcome.",
	},
	[]string{"form", "outcome"},
)

func init() {
	prometheus.MustRegister(submissionOutcomes)
}
