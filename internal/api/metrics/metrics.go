// Package metrics defines all custom Prometheus metrics for the blog API. It
// is the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// SignupsTotal counts completed local account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful account registrations.",
	},
)

// SigninsTotal counts successful signins.
// Label:
//   - method: "local" (email+password) or "google" (federated)
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of successful signins, by method.",
	},
	[]string{"method"},
)

// TogglesTotal counts like/bookmark toggle operations.
// Labels:
//   - entity: "like" (on comments) or "bookmark" (on posts)
//   - action: "added" or "removed"
var TogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toggles_total",
		Help:      "Total number of like/bookmark toggles, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ToggleAction converts the toggle outcome into the action label value.
func ToggleAction(added bool) string {
	if added {
		return "added"
	}
	return "removed"
}
