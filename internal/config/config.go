package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type DB struct {
	URL             string        `env:"DATABASE_URL,required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"15m"`
}

type JWT struct {
	Secret string        `env:"JWT_SECRET,required"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// Kafka mirroring of audit records is optional; leaving KAFKA_BROKERS
// empty disables the publisher entirely.
type Kafka struct {
	Brokers    string `env:"KAFKA_BROKERS"`
	AuditTopic string `env:"KAFKA_AUDIT_TOPIC" envDefault:"api-audit-log"`
}

type Audit struct {
	ExcludePaths []string `env:"AUDIT_EXCLUDE_PATHS" envSeparator:","`
	MethodsToLog []string `env:"AUDIT_METHODS" envSeparator:","`
}

type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	DB    DB
	JWT   JWT
	Kafka Kafka
	Audit Audit
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
