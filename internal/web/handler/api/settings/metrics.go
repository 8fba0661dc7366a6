package settings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric outcome labels.
const (
	readOutcomeStored  = "stored"
	readOutcomeDefault = "default"

	writeOutcomeSaved    = "saved"
	writeOutcomeRejected = "rejected"
	writeOutcomeError    = "error"
)

var (
	readsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "socioshare_settings_reads_total",
			Help: "Number of settings reads, differentiated by whether a stored record was found.",
		},
		[]string{"outcome"},
	)

	writesTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "socioshare_settings_writes_total",
			Help: "Number of settings writes, differentiated by outcome.",
		},
		[]string{"outcome"},
	)
)

func observeRead(outcome string) {
	readsTotal.WithLabelValues(outcome).Inc()
}

func observeWrite(outcome string) {
	writesTotal.WithLabelValues(outcome).Inc()
}
