package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var submissionsEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "presensi_submissions_enqueued_total",
	Help: "Submissions accepted by the API and queued for relay.",
})
