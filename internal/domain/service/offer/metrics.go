package offer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK     = "ok"
	resultFailed = "failed"

	driftKindStale        = "stale_read"
	driftKindRecordCreate = "record_create"
	driftKindRecordUpdate = "record_update"
	driftKindOrphanEscrow = "orphan_escrow"
)

//nolint:gochecknoglobals
var (
	offersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_escrow",
		Name:      "offers_submitted_total",
		Help:      "Offer submissions by outcome code.",
	}, []string{"result"})

	offerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_escrow",
		Name:      "offer_transitions_total",
		Help:      "Accept/cancel attempts by action and outcome code.",
	}, []string{"action", "result"})

	driftDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nft_escrow",
		Name:      "offer_drift_total",
		Help:      "Ledger/record store divergences seen.",
	}, []string{"kind"})

	repairsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nft_escrow",
		Name:      "offer_repairs_applied_total",
		Help:      "Records brought in line with the ledger.",
	})
)
