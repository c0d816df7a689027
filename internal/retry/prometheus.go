package retry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var attemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "publisher_retry_attempts_total",
		Help: "Total number of attempts of operations run under retry",
	},
	[]string{"result"},
)
