package cmd

import "time"

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret verifies tokens issued by the external auth service (HS256).
	JWTSecret string

	// ProcessingDelay is how long the consumer worker holds each accepted
	// order before marking it Processed.
	ProcessingDelay time.Duration

	// StuckOrderSweepSchedule is the six-field cron expression of the
	// stuck-order sweep; StuckOrderMaxAge is the Processing age beyond which
	// an order counts as stuck.
	StuckOrderSweepSchedule string
	StuckOrderMaxAge        time.Duration
}
