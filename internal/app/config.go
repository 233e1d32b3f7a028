package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultAddr = "0.0.0.0:8080"

// Config holds the application configuration, loadable from environment
// variables (SHOP_ prefix), flags, or YAML config files.
type Config struct {
	Addr        string `default:"0.0.0.0:8080" usage:"API server listen address"`
	Storage     string `default:"postgres" usage:"Storage backend: postgres or memory" validate:"oneof=postgres memory"`
	DatabaseURL string `env:"DATABASE_URL" flag:"database-url" usage:"PostgreSQL connection URL (SHOP_DATABASE_URL or DATABASE_URL)" validate:"required_if=Storage postgres"`
	JWTSecret   string `env:"JWT_SECRET" flag:"jwt-secret" usage:"HMAC secret verifying bearer tokens" validate:"required"`
	Txn         TxnConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Graceful    GracefulConfig
}

// TxnConfig controls the unit of work executor.
type TxnConfig struct {
	MaxAttempts    int           `env:"MAX_ATTEMPTS" default:"3" usage:"Attempts per unit of work, including the first" validate:"min=1"`
	Isolation      string        `default:"repeatable_read" usage:"PostgreSQL isolation: repeatable_read or serializable" validate:"omitempty,oneof=repeatable_read serializable"`
	AttemptTimeout time.Duration `default:"5s" usage:"Timeout of a single attempt" validate:"min=0"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from the environment, YAML config files and
// command-line flags.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SHOP",
		Files:     []string{"config.yaml", "/etc/shop/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
		Args: args,
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var configValidator = validator.New()

func (c *Config) validate() error {
	err := configValidator.Struct(c)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	fe := fields[0]
	switch fe.StructNamespace() {
	case "Config.DatabaseURL":
		return errors.New("database URL is required: set SHOP_DATABASE_URL or DATABASE_URL")
	case "Config.JWTSecret":
		return errors.New("JWT secret is required: set SHOP_JWT_SECRET")
	}
	if fe.Param() == "" {
		return errors.Errorf("invalid config %s: %v fails %q", fe.Namespace(), fe.Value(), fe.Tag())
	}
	return errors.Errorf("invalid config %s: %v fails %q (%s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
}

// applyPlatformDefaults maps the DATABASE_URL and PORT variables set by
// hosting platforms onto the SHOP_ configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}
