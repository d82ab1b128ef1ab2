package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the reconciliation service. Values come
// from environment variables; defaults point at the public mock collections
// API so the service runs out of the box.
type Config struct {
	Port                 string `mapstructure:"PORT"`
	DebtsEndpoint        string `mapstructure:"DEBTS_ENDPOINT"`
	PaymentPlansEndpoint string `mapstructure:"PAYMENT_PLANS_ENDPOINT"`
	PaymentsEndpoint     string `mapstructure:"PAYMENTS_ENDPOINT"`
	FetchTimeoutSeconds  int    `mapstructure:"FETCH_TIMEOUT_SECONDS"`
	MaxScheduleSteps     int    `mapstructure:"MAX_SCHEDULE_STEPS"`
	ReconcileJobSchedule string `mapstructure:"RECONCILE_JOB_SCHEDULE"`
	ReconciliationsTable string `mapstructure:"RECONCILIATIONS_TABLE"`
	LogLevel             string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBTS_ENDPOINT", "https://my-json-server.typicode.com/druska/trueaccord-mock-payments-api/debts")
	viper.SetDefault("PAYMENT_PLANS_ENDPOINT", "https://my-json-server.typicode.com/druska/trueaccord-mock-payments-api/payment_plans")
	viper.SetDefault("PAYMENTS_ENDPOINT", "https://my-json-server.typicode.com/druska/trueaccord-mock-payments-api/payments")
	viper.SetDefault("FETCH_TIMEOUT_SECONDS", 3)
	viper.SetDefault("MAX_SCHEDULE_STEPS", 10000) // safety ceiling for the next-due-date walk
	viper.SetDefault("RECONCILE_JOB_SCHEDULE", "@hourly")
	viper.SetDefault("RECONCILIATIONS_TABLE", "reconciliations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DEBTS_ENDPOINT")
	_ = viper.BindEnv("PAYMENT_PLANS_ENDPOINT")
	_ = viper.BindEnv("PAYMENTS_ENDPOINT")
	_ = viper.BindEnv("FETCH_TIMEOUT_SECONDS")
	_ = viper.BindEnv("MAX_SCHEDULE_STEPS")
	_ = viper.BindEnv("RECONCILE_JOB_SCHEDULE")
	_ = viper.BindEnv("RECONCILIATIONS_TABLE")
	_ = viper.BindEnv("LOG_LEVEL")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
