package config

import "time"

type Ledger struct {
	URL               string        `env:"LEDGER_RPC_URL,notEmpty"`
	AuthToken         string        `env:"LEDGER_RPC_TOKEN" json:"-"`
	RequestsPerSecond float64       `env:"LEDGER_RPS" envDefault:"10"`
	Burst             int           `env:"LEDGER_BURST" envDefault:"5"`
	Timeout           time.Duration `env:"LEDGER_TIMEOUT" envDefault:"15s"`
}

type Signer struct {
	URL       string        `env:"SIGNER_URL,notEmpty"`
	AuthToken string        `env:"SIGNER_TOKEN" json:"-"`
	Timeout   time.Duration `env:"SIGNER_TIMEOUT" envDefault:"60s"`
}

type Metadata struct {
	URL      string        `env:"METADATA_URL"`
	CacheTTL time.Duration `env:"METADATA_CACHE_TTL" envDefault:"10m"`
	Timeout  time.Duration `env:"METADATA_TIMEOUT" envDefault:"5s"`
}

// Kafka без брокеров публикация событий отключена.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_OFFER_TOPIC" envDefault:"offer-events"`
}
