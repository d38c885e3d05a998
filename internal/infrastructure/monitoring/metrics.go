package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersCreatedTotal         prometheus.Counter
	LoanApplicationsReceivedTotal prometheus.Counter
	EmploymentRecordsTotal        prometheus.Counter
	PendingLoanApplications       prometheus.Gauge
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loan_processing_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_processing_customers_created_total",
				Help: "Total number of customers registered.",
			},
		),
		LoanApplicationsReceivedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_processing_loan_applications_received_total",
				Help: "Total number of loan applications received.",
			},
		),
		EmploymentRecordsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_processing_employment_records_total",
				Help: "Total number of employment records added.",
			},
		),
		PendingLoanApplications: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "loan_processing_pending_loan_applications",
				Help: "Number of loan applications currently in PENDING status, refreshed by the daily report job.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}
