package sheets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsRelayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presensi_submissions_relayed_total",
		Help: "Submissions posted to the web app without a local transport error.",
	})
	submissionsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presensi_submissions_failed_total",
		Help: "Submission posts that failed before leaving the network stack.",
	})
)
