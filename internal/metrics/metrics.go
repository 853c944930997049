package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registerAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_register_attempts_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_account_verifications_total",
		Help: "Number of account verification attempts grouped by status.",
	}, []string{"status"})

	passwordResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_password_resets_total",
		Help: "Number of password reset attempts grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registerAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncVerify increments the account verification counter.
func IncVerify(status string) {
	verifications.WithLabelValues(status).Inc()
}

// IncPasswordReset increments the password reset counter.
func IncPasswordReset(status string) {
	passwordResets.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
