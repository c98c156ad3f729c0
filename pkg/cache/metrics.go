package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_core",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by backend and result (hit, miss, error).",
	}, []string{"backend", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_core",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped from the in-process cache, by reason.",
	}, []string{"reason"})
)

func observeLookup(backend string, hit bool) {
	if hit {
		lookups.WithLabelValues(backend, "hit").Inc()
		return
	}
	lookups.WithLabelValues(backend, "miss").Inc()
}
