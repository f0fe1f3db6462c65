// Package metrics exposes the Prometheus collectors shared by the runtime
// components. Collectors register on the default registry; the HTTP server
// serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DispatchActions counts drained outbound actions by outcome
	// (sent, pending_connection, deferred, failed, skipped).
	DispatchActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scout",
		Subsystem: "dispatch",
		Name:      "actions_total",
		Help:      "Outbound actions processed, by outcome.",
	}, []string{"outcome"})

	// StageDuration observes workflow stage latency.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scout",
		Subsystem: "workflow",
		Name:      "stage_duration_seconds",
		Help:      "Workflow stage latency by step and final status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step", "status"})

	// SignalsIngested counts signal rows written by ingestion sweeps.
	SignalsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scout",
		Subsystem: "signals",
		Name:      "ingested_total",
		Help:      "Signals created during ingestion, by source type.",
	}, []string{"source_type"})

	// FollowupsSent counts pre-resume follow-up messages that went out.
	FollowupsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scout",
		Subsystem: "preresume",
		Name:      "followups_sent_total",
		Help:      "Follow-up messages sent by the scheduler.",
	})

	// LLMRequests counts responder calls by backend and result.
	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scout",
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "LLM responder calls, by backend and status.",
	}, []string{"backend", "status"})

	// ProfileExplanations counts generated profile texts by kind and source.
	ProfileExplanations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scout",
		Subsystem: "profile",
		Name:      "explanations_total",
		Help:      "Profile explanations produced, by kind and source.",
	}, []string{"kind", "source"})
)
