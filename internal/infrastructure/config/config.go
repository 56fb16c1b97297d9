// Package config collects the service settings read from the environment.
// A .env file is loaded by the godotenv autoload import in main.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port                   string
	PlatformFeeRate        decimal.Decimal
	DisputeReasonMinLength int
	NotificationsChannel   string

	DynamoDB DynamoDB
	Payments Payments
}

// DynamoDB settings are local-friendly: credentials default to "local" and
// an endpoint may point at dynamodb-local.
type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Payments struct {
	AccessToken string
	Mock        bool
	// MockStatus is the provider status returned in mock mode.
	MockStatus string
}

const (
	defaultPort            = "8080"
	defaultFeeRate         = "0.10"
	defaultReasonMinLength = 10
	defaultChannel         = "job-notifications"
)

func Load() Config {
	return Config{
		Port:                   getenvDefault("PORT", defaultPort),
		PlatformFeeRate:        feeRate(getenvDefault("PLATFORM_FEE_RATE", defaultFeeRate)),
		DisputeReasonMinLength: positiveInt("DISPUTE_REASON_MIN_LENGTH", defaultReasonMinLength),
		NotificationsChannel:   getenvDefault("NOTIFICATIONS_CHANNEL", defaultChannel),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Payments: Payments{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:        PaymentGatewayMockEnabled(),
			MockStatus:  getenvDefault("PAYMENT_GATEWAY_MOCK_STATUS", "approved"),
		},
	}
}

// PaymentGatewayMockEnabled reports whether PAYMENT_GATEWAY_MOCK or
// MERCADOPAGO_MOCK is switched on.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func feeRate(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		log.Printf("[config] invalid PLATFORM_FEE_RATE=%q; using %s", raw, defaultFeeRate)
		return decimal.RequireFromString(defaultFeeRate)
	}
	return d
}

func positiveInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		log.Printf("[config] invalid %s=%q; using %d", key, raw, def)
		return def
	}
	return n
}
