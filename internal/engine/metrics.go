package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intern_advisor_ai_requests_total",
		Help: "Generation requests sent to the AI model, by operation.",
	}, []string{"operation"})

	aiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intern_advisor_ai_failures_total",
		Help: "AI requests that failed or produced unusable output, by operation and stage.",
	}, []string{"operation", "stage"})

	fallbackUses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intern_advisor_fallback_total",
		Help: "Responses served from the static fallback, by operation.",
	}, []string{"operation"})
)
