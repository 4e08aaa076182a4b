package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Successful signups by activity.",
	}, []string{"activity"})
	removalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "removals_total",
		Help:      "Successful participant removals by activity.",
	}, []string{"activity"})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_directory",
		Subsystem: "roster",
		Name:      "rejections_total",
		Help:      "Rejected roster mutations by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupsTotal, removalsTotal, rejectionsTotal)
}

// RecordSignup increments the signup counter for the activity.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordRemoval increments the removal counter for the activity.
func RecordRemoval(activity string) {
	removalsTotal.WithLabelValues(activity).Inc()
}

// RecordRejection increments the rejection counter for the reason.
func RecordRejection(reason string) {
	if reason == "" {
		return
	}
	rejectionsTotal.WithLabelValues(reason).Inc()
}
