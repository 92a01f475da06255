package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors groups the document store counters. Each store instance owns
// its own set so independent stores never share metric state.
type Collectors struct {
	Saves         *prometheus.CounterVec
	Lookups       *prometheus.CounterVec
	Searches      prometheus.Counter
	SearchResults prometheus.Histogram
}

func NewCollectors(namespace string) *Collectors {
	if namespace == "" {
		namespace = "docstore"
	}
	return &Collectors{
		Saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "saves_total", Help: "Number of save calls by result (created, updated, invalid)."},
			[]string{"result"},
		),
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "lookups_total", Help: "Number of lookups by id, by result (hit, miss)."},
			[]string{"result"},
		),
		Searches: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "searches_total", Help: "Number of search calls."},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "search_results", Help: "Number of documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 6)},
		),
	}
}

// Register adds every collector to reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Saves, c.Lookups, c.Searches, c.SearchResults} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}
