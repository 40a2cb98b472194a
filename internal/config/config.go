// Package config provides configuration management for the Pratik Ödeme
// client, sandbox and transfer journal
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// Config holds all configuration
type Config struct {
	Client  ClientConfig
	Sandbox SandboxConfig
	Journal JournalConfig
	Log     LogConfig
}

// ClientConfig holds the merchant API client configuration
type ClientConfig struct {
	BaseURL            string
	ChannelID          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// SandboxConfig holds the local sandbox server configuration
type SandboxConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	JWTSecret    string
	TokenExpiry  time.Duration
	Merchant     MerchantConfig
}

// MerchantConfig describes the merchant account seeded into the sandbox
type MerchantConfig struct {
	UserName       string
	Password       string
	DealerCode     string
	ChannelID      string
	WalletID       string
	IBAN           string
	OpeningBalance int64 // minor units
}

// JournalConfig holds the transfer journal database configuration
type JournalConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from the environment with defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Client: ClientConfig{
			BaseURL:            getEnv("PRATIKODE_BASE_URL", "http://localhost:8090"),
			ChannelID:          getEnv("PRATIKODE_CHANNEL_ID", "sandbox-channel"),
			Timeout:            getDuration("PRATIKODE_TIMEOUT", pratikode.DefaultTimeout),
			InsecureSkipVerify: getBool("PRATIKODE_INSECURE_SKIP_VERIFY", false),
		},
		Sandbox: SandboxConfig{
			Port:         getEnv("PRATIKODE_SANDBOX_PORT", "8090"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			JWTSecret:    getEnv("PRATIKODE_SANDBOX_JWT_SECRET", "pratikode-sandbox-secret-change-me"),
			TokenExpiry:  getDuration("PRATIKODE_SANDBOX_TOKEN_EXPIRY", time.Hour),
			Merchant: MerchantConfig{
				UserName:       getEnv("PRATIKODE_SANDBOX_USERNAME", "merchant"),
				Password:       getEnv("PRATIKODE_SANDBOX_PASSWORD", "merchant123"),
				DealerCode:     getEnv("PRATIKODE_SANDBOX_DEALER_CODE", "D001"),
				ChannelID:      getEnv("PRATIKODE_SANDBOX_CHANNEL_ID", "sandbox-channel"),
				WalletID:       getEnv("PRATIKODE_SANDBOX_WALLET_ID", "1000000001"),
				IBAN:           getEnv("PRATIKODE_SANDBOX_IBAN", "TR330006100519786457841326"),
				OpeningBalance: getInt64("PRATIKODE_SANDBOX_OPENING_BALANCE", 1000000),
			},
		},
		Journal: JournalConfig{
			Enabled: getBool("PRATIKODE_JOURNAL_ENABLED", false),
			Driver:  getEnv("PRATIKODE_JOURNAL_DRIVER", "postgres"),
			DSN:     getEnv("PRATIKODE_JOURNAL_DSN", "host=localhost dbname=pratikode sslmode=disable"),
		},
		Log: LogConfig{
			Level: getEnv("PRATIKODE_LOG_LEVEL", "info"),
		},
	}
}

// ClientOptions converts the client section into SDK configuration.
func (c *Config) ClientOptions() *pratikode.ClientConfig {
	return &pratikode.ClientConfig{
		BaseURL:            c.Client.BaseURL,
		ChannelID:          c.Client.ChannelID,
		Timeout:            c.Client.Timeout,
		InsecureSkipVerify: c.Client.InsecureSkipVerify,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
