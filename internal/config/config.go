package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port            uint16        `env:"PORT" envDefault:"8000"`
	IsTestMode      bool          `env:"TEST_MODE" envDefault:"false"`
	Secret          string        `env:"SECRET,required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required"`

	RabbitmqURL               string        `env:"RABBITMQ_URL"`
	RabbitmqProductSalesQueue string        `env:"RABBITMQ_PRODUCT_SALES_QUEUE" envDefault:"product_sales"`
	RabbitmqReconnectDelay    time.Duration `env:"RABBITMQ_RECONNECT_DELAY" envDefault:"3s"`

	BcryptHasherCost                int  `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDurationHours uint `env:"PASSWORD_RESET_VALID_DURATION_HOURS" envDefault:"24"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL" envDefault:"http://localhost:3000/password-reset"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if config.Secret == "" {
		return nil, fmt.Errorf("SECRET must not be empty")
	}
	if !config.IsTestMode && config.AwsEmailSender == "" {
		return nil, fmt.Errorf("AWS_EMAIL_SENDER must be set")
	}
	return config, nil
}

type MigrateConfig struct {
	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func LoadMigrateConfig() (*MigrateConfig, error) {
	config := &MigrateConfig{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
