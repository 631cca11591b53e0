package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EmployeeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "employeedir", Name: "employee_operations_total", Help: "Employee service operations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "employeedir", Name: "store_duration_seconds", Help: "Document store call latency by backend and call.", Buckets: prometheus.DefBuckets},
		[]string{"backend", "call"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "employeedir", Name: "store_errors_total", Help: "Failed document store calls by backend and call."},
		[]string{"backend", "call"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "employeedir", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "employeedir", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(EmployeeOperations)
	reg.MustRegister(StoreDuration)
	reg.MustRegister(StoreErrors)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
