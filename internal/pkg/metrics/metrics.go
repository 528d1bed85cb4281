// Package metrics exposes Prometheus counters for the registration workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts registration requests by role and outcome.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "registrations_total",
		Help:      "Registration requests by role and outcome",
	}, []string{"role", "outcome"})

	// DeduplicationHitsTotal counts registrations resolved to an existing user.
	DeduplicationHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "deduplication_hits_total",
		Help:      "Registrations matched to an already enrolled user",
	}, []string{"role"})

	// IDGenerationAttemptsTotal counts identifier candidates checked against
	// the database service, including ones discarded on collision.
	IDGenerationAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "id_generation_attempts_total",
		Help:      "Identifier candidates checked for uniqueness",
	})

	// IDGenerationExhaustionsTotal counts registrations that ran out of
	// identifier attempts.
	IDGenerationExhaustionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "id_generation_exhaustions_total",
		Help:      "Registrations aborted after exhausting the identifier retry budget",
	})

	// UpstreamRequestsTotal counts calls to the database service by outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "upstream_requests_total",
		Help:      "Database service requests by method and outcome",
	}, []string{"method", "outcome"})
)
