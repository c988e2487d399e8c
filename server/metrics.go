package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var callsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "calls_total",
	Help:      "Total number of accepted calls by action.",
}, []string{"action"})

var rejectedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "calls_rejected_total",
	Help:      "Total number of rejected calls by error code.",
}, []string{"code"})

var errorCounts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "vendor_error_count",
	Help:      "Total number of errors by vendor code.",
}, []string{"code", "charge_point_id"})

func observeCall(action string) {
	callsCounter.With(prometheus.Labels{"action": action}).Inc()
}

func observeRejected(code string) {
	rejectedCounter.With(prometheus.Labels{"code": code}).Inc()
}

func observeError(chargePointId, code string) {
	if len(code) == 0 || len(chargePointId) == 0 {
		return
	}
	errorCounts.With(prometheus.Labels{"code": code, "charge_point_id": chargePointId}).Inc()
}
