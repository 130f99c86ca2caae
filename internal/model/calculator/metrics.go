package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	queryToday    = "today"
	queryWeek     = "week"
	queryMonth    = "month"
	queryRemained = "remained"
	queryCash     = "cash"
	queryCalories = "calories"
)

var (
	recordsAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "daily",
			Subsystem: "calculator",
			Name:      "records_added_total",
		},
	)
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daily",
			Subsystem: "calculator",
			Name:      "queries_total",
		},
		[]string{"kind"},
	)
)

func observeRecordAdded() {
	recordsAddedTotal.Inc()
}

func observeQuery(kind string) {
	queriesTotal.WithLabelValues(kind).Inc()
}
