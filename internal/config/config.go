package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envMongoURI              = "MONGODB_URI"
	envMongoUser             = "MONGODB_USER"
	envMongoPass             = "MONGODB_PASS"
	envMongoHost             = "MONGODB_HOST"
	envMongoDatabase         = "MONGODB_DATABASE"
	envMongoConnectTimeout   = "MONGODB_CONNECT_TIMEOUT"
	envJWTSecret             = "JWT_SECRET"
	envJWTExpiry             = "JWT_EXPIRY"
	envStripeSecretKey       = "STRIPE_SECRET_KEY"
)

const (
	defaultServerPort          = "5000"
	defaultServerReadTimeout   = 10 * time.Second
	defaultServerWriteTimeout  = 10 * time.Second
	defaultServerShutdown      = 10 * time.Second
	defaultMongoDatabase       = "mediZone"
	defaultMongoConnectTimeout = 10 * time.Second
	defaultJWTExpiry           = time.Hour

	errPortRequiredFmt         = "PORT must be set"
	errMongoCredsRequiredFmt   = "MONGODB_URI or MONGODB_USER/MONGODB_PASS/MONGODB_HOST must be set"
	errJWTSecretRequiredFmt    = "JWT_SECRET must be set"
	errStripeKeyRequiredFmt    = "STRIPE_SECRET_KEY must be set"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	Stripe StripeConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI            string
	User           string
	Password       string
	Host           string
	Database       string
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
}

type StripeConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Mongo: MongoConfig{
			URI:            os.Getenv(envMongoURI),
			User:           os.Getenv(envMongoUser),
			Password:       os.Getenv(envMongoPass),
			Host:           os.Getenv(envMongoHost),
			Database:       getEnv(envMongoDatabase, defaultMongoDatabase),
			ConnectTimeout: getDurationEnv(envMongoConnectTimeout, defaultMongoConnectTimeout),
		},
		JWT: JWTConfig{
			Secret:         os.Getenv(envJWTSecret),
			ExpiryDuration: getDurationEnv(envJWTExpiry, defaultJWTExpiry),
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv(envStripeSecretKey),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Mongo.URI == "" && (c.Mongo.User == "" || c.Mongo.Password == "" || c.Mongo.Host == "") {
		return fmt.Errorf(errMongoCredsRequiredFmt)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequiredFmt)
	}

	if c.Stripe.SecretKey == "" {
		return fmt.Errorf(errStripeKeyRequiredFmt)
	}

	return nil
}

// ConnectionURI returns the explicit URI when set, otherwise builds the
// Atlas-style SRV URI from the credential parts.
func (c *MongoConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.User, c.Password, c.Host,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
