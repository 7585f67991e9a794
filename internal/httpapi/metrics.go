package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	queries     *prometheus.CounterVec
	solutions   prometheus.Histogram
	badRequests prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordhelper_queries_total",
			Help: "Number of puzzle queries answered, by HTTP method.",
		}, []string{"method"}),
		solutions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordhelper_solutions",
			Help:    "Number of solutions returned per query.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		}),
		badRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordhelper_bad_requests_total",
			Help: "Number of queries rejected because the body could not be decoded.",
		}),
	}
	reg.MustRegister(m.queries, m.solutions, m.badRequests)
	return m
}
