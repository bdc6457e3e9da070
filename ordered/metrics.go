package ordered

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	strategyDecorated = "decorated"
	strategyNaive     = "naive"

	outcomeOK           = "ok"
	outcomeInvalidKey   = "invalid_key"
	outcomeIncomparable = "incomparable"
	outcomeError        = "error"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keysort_sorts_total",
		Help: "The total number of sorts, by strategy and outcome",
	}, []string{"strategy", "collection", "outcome"})

	keyExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keysort_key_extractions_total",
		Help: "The total number of key extractor calls",
	}, []string{"strategy", "collection"})

	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keysort_comparisons_total",
		Help: "The total number of pairwise comparisons",
	}, []string{"strategy", "collection"})
)

// recorder tallies one sort call locally and publishes it once at the end,
// keeping counter updates out of the comparison loop.
type recorder struct {
	strategy    string
	label       string
	extractions int
	comparisons int
}

func newRecorder(strategy, label string) *recorder {
	return &recorder{strategy: strategy, label: label}
}

func (r *recorder) finish(err error) {
	sortsTotal.WithLabelValues(r.strategy, r.label, outcome(err)).Inc()
	keyExtractionsTotal.WithLabelValues(r.strategy, r.label).Add(float64(r.extractions))
	comparisonsTotal.WithLabelValues(r.strategy, r.label).Add(float64(r.comparisons))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrInvalidKey):
		return outcomeInvalidKey
	case errors.Is(err, ErrIncomparable):
		return outcomeIncomparable
	default:
		return outcomeError
	}
}
