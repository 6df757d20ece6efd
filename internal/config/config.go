package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:""`
	Namespace      string `env:"SERVICE_NAMESPACE" envDefault:"portal"`
	AuthAddr       string `env:"AUTH_PROVIDER_ADDRESS" envDefault:"http://localhost:9999"`
	AuthServiceKey string `env:"AUTH_SERVICE_KEY" envDefault:""`
	AdminEmails    string `env:"ADMIN_EMAILS" envDefault:"admin@rudracore.com"`
	UPIPayee       string `env:"UPI_PAYEE_ADDRESS" envDefault:"8019533580@superyes"`
	UPIPayeeName   string `env:"UPI_PAYEE_NAME" envDefault:"RudraCore"`
	CommunityURL   string `env:"COMMUNITY_URL" envDefault:"https://discord.gg/hj3nTUS9CE"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
	Namespace   string
	AdminEmails []string
}

// AuthConfig holds settings for the external identity provider
type AuthConfig struct {
	AuthAddr   string
	ServiceKey string
}

// PaymentConfig holds UPI payment handoff settings
type PaymentConfig struct {
	PayeeAddress string
	PayeeName    string
	CommunityURL string
}

// DedupConfig holds settings for the idempotency dedup index
type DedupConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// Config is the full service configuration
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Payment PaymentConfig
	Dedup   DedupConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		namespace = pflag.StringP("namespace", "n", args.Namespace, "Service namespace segment prefixed to all routes.")
		auth      = pflag.StringP("auth", "i", args.AuthAddr, "Identity provider address in a form host:port.")
		authKey   = pflag.StringP("auth_key", "k", args.AuthServiceKey, "Identity provider service role key.")
		admins    = pflag.StringP("admins", "m", args.AdminEmails, "Comma-separated admin email allow-list.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			Namespace:   *namespace,
			AdminEmails: splitEmails(*admins),
		},
		Auth: AuthConfig{
			AuthAddr:   *auth,
			ServiceKey: *authKey,
		},
		Payment: PaymentConfig{
			PayeeAddress: args.UPIPayee,
			PayeeName:    args.UPIPayeeName,
			CommunityURL: args.CommunityURL,
		},
		Dedup: DedupConfig{
			TTL:           30 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			Namespace:   "portal",
			AdminEmails: []string{"admin@rudracore.com"},
		},
		Auth: AuthConfig{
			AuthAddr:   "http://localhost:9999",
			ServiceKey: "",
		},
		Payment: PaymentConfig{
			PayeeAddress: "8019533580@superyes",
			PayeeName:    "RudraCore",
			CommunityURL: "https://discord.gg/hj3nTUS9CE",
		},
		Dedup: DedupConfig{
			TTL:           30 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
	}
}

func splitEmails(list string) []string {
	var emails []string
	for _, e := range strings.Split(list, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}
