package budget

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var computationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expense_tracker",
		Subsystem: "budget",
		Name:      "computations_total",
	},
	[]string{"metric"},
)

func observeComputation(metric string) {
	computationsTotal.WithLabelValues(metric).Inc()
}
