package cmd

import "time"

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	NatsURL         string
	IdentityDir     string
	TokenSecret     string
	TokenTTL        time.Duration
	OutboxBatchSize int
	RetentionWindow time.Duration
}
