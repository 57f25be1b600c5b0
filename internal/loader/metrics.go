package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presensi_refresh_total",
		Help: "Refresh cycles started, manual and scheduled.",
	})
	rosterFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presensi_roster_fallback_total",
		Help: "Refreshes that fell back to the fixed roster.",
	})
	dashboardDegradedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presensi_dashboard_degraded_total",
		Help: "Refreshes that proceeded with an empty dashboard bundle.",
	})
	lastRefreshSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "presensi_last_refresh_timestamp_seconds",
		Help: "Unix time of the last published snapshot.",
	})
)
