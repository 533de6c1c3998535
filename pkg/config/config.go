package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the API server configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Valuation  ValuationConfig  `mapstructure:"valuation"`
	PayPal     PayPalConfig     `mapstructure:"paypal"`
	Registry   RegistryConfig   `mapstructure:"registry"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Credits    CreditsConfig    `mapstructure:"credits"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// ValuationConfig contains settings for the LLM valuation provider
type ValuationConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	Temperature    float32       `mapstructure:"temperature"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// PayPalConfig contains payment provider settings
type PayPalConfig struct {
	Mode         string `mapstructure:"mode"` // "sandbox" or "live"
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	BrandName    string `mapstructure:"brand_name"`
	ReturnURL    string `mapstructure:"return_url"`
	CancelURL    string `mapstructure:"cancel_url"`
}

// RegistryConfig contains domain registry (GraphQL) API settings
type RegistryConfig struct {
	Endpoint       string        `mapstructure:"endpoint"`
	APIKey         string        `mapstructure:"api_key"`
	ChainID        int64         `mapstructure:"chain_id"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens for admin endpoints
	// (domain-of-the-day CRUD).
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTIssuer string `mapstructure:"jwt_issuer"`
	// VerifyWalletSignature requires an EIP-191 signature on account connect.
	VerifyWalletSignature bool `mapstructure:"verify_wallet_signature"`
}

// CreditsConfig contains credit pricing settings
type CreditsConfig struct {
	// USDPerCredit is the PayPal checkout price per credit.
	USDPerCredit string `mapstructure:"usd_per_credit"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "2m")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.request_timeout", "2m")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.database", "mainalysis")

	// Valuation provider defaults
	viper.SetDefault("valuation.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("valuation.model", "llama-3.3-70b-versatile")
	viper.SetDefault("valuation.temperature", 0.3)
	viper.SetDefault("valuation.request_timeout", "90s")

	// PayPal defaults
	viper.SetDefault("paypal.mode", "sandbox")
	viper.SetDefault("paypal.brand_name", "Mainalysis")

	// Registry defaults
	viper.SetDefault("registry.endpoint", "https://api-testnet.doma.xyz/graphql")
	viper.SetDefault("registry.chain_id", 97476)
	viper.SetDefault("registry.request_timeout", "30s")

	// Credit pricing defaults
	viper.SetDefault("credits.usd_per_credit", "0.50")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_port", 9090)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Valuation.APIKey == "" {
		return fmt.Errorf("valuation.api_key is required")
	}
	if config.PayPal.ClientID == "" || config.PayPal.ClientSecret == "" {
		return fmt.Errorf("paypal.client_id and paypal.client_secret are required")
	}
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	return nil
}
