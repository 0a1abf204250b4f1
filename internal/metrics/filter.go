package metrics

import (
	"tagfilter/internal/types"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	FilterTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagfilter",
			Name:      "filter_tokens_total",
			Help:      "Tokens passed into a token filter",
		},
		[]string{"filter"},
	)

	FilterDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagfilter",
			Name:      "filter_dropped_total",
			Help:      "Tokens removed by a token filter",
		},
		[]string{"filter"},
	)

	FilterErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagfilter",
			Name:      "filter_errors_total",
			Help:      "Token filter invocations that returned an error",
		},
		[]string{"filter"},
	)
)

// Register adds the filter collectors to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{FilterTokensTotal, FilterDroppedTotal, FilterErrorsTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// InstrumentedFilter counts tokens flowing through the wrapped filter.
type InstrumentedFilter struct {
	inner types.Filter
}

func Instrument(f types.Filter) *InstrumentedFilter {
	return &InstrumentedFilter{inner: f}
}

func (f *InstrumentedFilter) Name() string {
	return f.inner.Name()
}

func (f *InstrumentedFilter) Apply(tokens []types.Token) ([]types.Token, error) {
	name := f.inner.Name()
	in := len(tokens)
	FilterTokensTotal.WithLabelValues(name).Add(float64(in))

	r, err := f.inner.Apply(tokens)
	if err != nil {
		FilterErrorsTotal.WithLabelValues(name).Inc()
		return r, err
	}
	if in > len(r) {
		FilterDroppedTotal.WithLabelValues(name).Add(float64(in - len(r)))
	}
	return r, nil
}
