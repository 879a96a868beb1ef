package ftracker

import "github.com/prometheus/client_golang/prometheus"

var (
	summaries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "summaries_total",
		Help:      "Number of training summaries rendered by workout code.",
	}, []string{"code"})
	summaryFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "summary_failures_total",
		Help:      "Number of packages which could not be summarized by workout code.",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(summaries, summaryFailures)
}
