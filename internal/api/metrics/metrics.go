// Package metrics defines and registers all custom Prometheus metrics for the
// planetary API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planetary"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// PlanetMutationsTotal counts successful catalog writes.
// Label:
//   - op: "add", "update" or "delete"
var PlanetMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "planet_mutations_total",
		Help:      "Total number of planet catalog writes, by operation.",
	},
	[]string{"op"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "accepted" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecoveryEmailsTotal counts password recovery outcomes.
// Label:
//   - result: "sent", "throttled" or "failed"
var RecoveryEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recovery_emails_total",
		Help:      "Total number of password recovery requests, by outcome.",
	},
	[]string{"result"},
)
