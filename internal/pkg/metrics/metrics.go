package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PunchesTotal counts punch attempts by outcome: accepted, too_soon,
// day_full, error.
var PunchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ponto",
	Name:      "punches_total",
	Help:      "Time punch attempts partitioned by outcome.",
}, []string{"outcome"})

// AdjustmentsTotal counts manager record adjustments by outcome: accepted,
// same_day, window_closed, error.
var AdjustmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ponto",
	Name:      "record_adjustments_total",
	Help:      "Manager time record adjustments partitioned by outcome.",
}, []string{"outcome"})

// HourBankRecalcTotal counts hour-bank snapshot recomputations.
var HourBankRecalcTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ponto",
	Name:      "hour_bank_recalculations_total",
	Help:      "Hour bank snapshot recomputations.",
})
