package estimator

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homeprice",
			Subsystem: "estimator",
			Name:      "predictions_total",
			Help:      "Total estimates by whether region and type were recognized",
		},
		[]string{"region", "type"},
	)

	cacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "homeprice",
			Subsystem: "estimator",
			Name:      "cache_hits_total",
			Help:      "Estimates served from the memo cache",
		},
	)

	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homeprice",
			Subsystem: "estimator",
			Name:      "artifact_loads_total",
			Help:      "Artifact load attempts by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, cacheHitsTotal, loadsTotal)
}

func knownLabel(ok bool) string {
	if ok {
		return "known"
	}
	return "unknown"
}
