// Package metrics defines and registers all custom Prometheus metrics for the
// todo API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// through promauto; HTTP request metrics come from the echoprometheus
// middleware installed by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// ── Domain metrics ────────────────────────────────────────────────────────────

// TodosCreatedTotal counts newly created todos.
var TodosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_created_total",
		Help:      "Total number of todos created.",
	},
)

// ManagersAssignedTotal counts successful manager assignments.
var ManagersAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "managers_assigned_total",
		Help:      "Total number of managers assigned to todos.",
	},
)

// CommentsWrittenTotal counts comment writes.
// Label:
//   - op: "create", "update" or "delete"
var CommentsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_written_total",
		Help:      "Total number of comment writes, by operation.",
	},
	[]string{"op"},
)

// AuthorizationDenialsTotal counts mutations refused by the ownership rules.
// Label:
//   - reason: domain error code (e.g. "NOT_OWNER", "SELF_ASSIGNMENT", "NOT_AUTHOR")
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of mutations denied by ownership checks.",
	},
	[]string{"reason"},
)

// ── Admin & collaborators ─────────────────────────────────────────────────────

// AdminAccessTotal counts calls to administrative endpoints.
// Label:
//   - method: HTTP method
var AdminAccessTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_access_total",
		Help:      "Total number of administrative API calls.",
	},
	[]string{"method"},
)

// AccessQueueDepth tracks records waiting in each access-log worker channel.
// Label:
//   - worker_id: numeric worker index
var AccessQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "access_queue_depth",
		Help:      "Current number of admin access records pending per worker.",
	},
	[]string{"worker_id"},
)

// WeatherLookupDuration measures the external weather lookup.
// Label:
//   - result: "ok" or "error"
var WeatherLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "weather_lookup_duration_seconds",
		Help:      "Duration of the weather lookup performed at todo creation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
