package repotx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	begunTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "publisher_repotx_begun_total",
			Help: "Total number of repository transactions prepared",
		},
	)
	committedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "publisher_repotx_committed_total",
			Help: "Total number of repository transactions committed",
		},
	)
	abortedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "publisher_repotx_aborted_total",
			Help: "Total number of repository transactions aborted",
		},
	)
	abortFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "publisher_repotx_abort_failed_total",
			Help: "Total number of transaction aborts reported as failed by the repository",
		},
	)
)
