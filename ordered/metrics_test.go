package ordered

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/keysort/compare"
	"github.com/amp-labs/keysort/optional"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	label := t.Name()
	docs := mixedDocs(25)

	_, err := Sort(docs, byP, compare.Natural[int](), byName, WithLabel(label))
	require.NoError(t, err)

	_, err = Naive(docs, byP, compare.Natural[int](), byName, WithLabel(label))
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(sortsTotal.WithLabelValues(strategyDecorated, label, outcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sortsTotal.WithLabelValues(strategyNaive, label, outcomeOK)), 0)
	assert.InDelta(t, 25, testutil.ToFloat64(keyExtractionsTotal.WithLabelValues(strategyDecorated, label)), 0)

	decoratedComparisons := testutil.ToFloat64(comparisonsTotal.WithLabelValues(strategyDecorated, label))
	naiveComparisons := testutil.ToFloat64(comparisonsTotal.WithLabelValues(strategyNaive, label))
	naiveExtractions := testutil.ToFloat64(keyExtractionsTotal.WithLabelValues(strategyNaive, label))

	assert.Positive(t, decoratedComparisons)
	assert.InDelta(t, decoratedComparisons, naiveComparisons, 0)
	assert.InDelta(t, 2*naiveComparisons, naiveExtractions, 0)
}

func TestMetrics_Outcomes(t *testing.T) {
	t.Parallel()

	label := t.Name()

	failing := func(doc) (optional.Value[int], error) {
		return optional.None[int](), errBrokenDoc
	}

	_, err := Sort([]doc{keyed("a", 1)}, failing, compare.Natural[int](), byName, WithLabel(label))
	require.Error(t, err)

	_, err = Sort([]any{1, "x"}, func(v any) (optional.Value[any], error) {
		return optional.Some(v), nil
	}, compare.Dynamic, compare.Dynamic, WithLabel(label))
	require.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(sortsTotal.WithLabelValues(strategyDecorated, label, outcomeInvalidKey)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sortsTotal.WithLabelValues(strategyDecorated, label, outcomeIncomparable)), 0)
	assert.Zero(t, testutil.ToFloat64(sortsTotal.WithLabelValues(strategyDecorated, label, outcomeOK)))
}

func TestWithLabel_IgnoresEmpty(t *testing.T) {
	t.Parallel()

	o := newOptions([]Option{WithLabel("")})
	assert.Equal(t, defaultLabel, o.label)
	assert.False(t, o.descending)
}
