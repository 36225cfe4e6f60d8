package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_requests_total",
		Help: "The total number of requests sent to the catalog service",
	}, []string{"path"})
	upstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_failures_total",
		Help: "The total number of failed catalog service requests",
	}, []string{"path"})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_feed_cache_hits_total",
		Help: "The total number of feed cache hits",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_feed_cache_misses_total",
		Help: "The total number of feed cache misses",
	})
)
