package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type PrometheusMetrics struct {
	usersRegistered      prometheus.Counter
	authenticationEvents *prometheus.CounterVec
	accountsOpened       *prometheus.CounterVec
	transactionsTotal    *prometheus.CounterVec
	rejectedOperations   *prometheus.CounterVec
	interestAccrued      prometheus.Histogram
	credentialHashTime   prometheus.Histogram
	registeredUsers      prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry() to keep collectors out of the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		usersRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_users_registered_total",
				Help: "Total number of users registered",
			},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		accountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_accounts_opened_total",
				Help: "Total number of accounts opened by type",
			},
			[]string{"account_type"},
		),
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_transactions_total",
				Help: "Total number of ledger transactions recorded",
			},
			[]string{"transaction_type"},
		),
		rejectedOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operations_rejected_total",
				Help: "Total number of operations declined by the domain",
			},
			[]string{"operation", "reason"},
		),
		interestAccrued: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_interest_accrued_amount",
				Help:    "Interest credited per accrual in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 6),
			},
		),
		credentialHashTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_credential_hash_duration_milliseconds",
				Help:    "Time spent hashing credentials in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		registeredUsers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_registered_users",
				Help: "Current number of users in the directory",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "user_registered":
		m.usersRegistered.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	case "account_opened":
		if accountType := tags["account_type"]; accountType != "" {
			m.accountsOpened.WithLabelValues(accountType).Inc()
		}
	case "transaction_recorded":
		if txType := tags["transaction_type"]; txType != "" {
			m.transactionsTotal.WithLabelValues(txType).Inc()
		}
	case "operation_rejected":
		m.rejectedOperations.WithLabelValues(tags["operation"], tags["reason"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "credential_hash":
		m.credentialHashTime.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "registered_users":
		m.registeredUsers.Set(value)
	}
}

// ObserveAmount records a money amount into the matching histogram
func (m *PrometheusMetrics) ObserveAmount(name string, amount decimal.Decimal, tags map[string]string) {
	switch name {
	case "interest_accrued":
		m.interestAccrued.Observe(amount.InexactFloat64())
	}
}
