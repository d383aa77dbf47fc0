package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"nft_escrow/internal/domain/service/fee"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Postgres Postgres
	Redis    Redis
	Queue    Queue
	Ledger   Ledger
	Signer   Signer
	Metadata Metadata
	Kafka    Kafka
	Offer    Offer
	Watcher  Watcher
}

type App struct {
	Name           string     `env:"APP_NAME" envDefault:"nft-escrow"`
	Version        string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON        bool       `env:"LOG_JSON" envDefault:"true"`
	LogFieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Offer struct {
	FeePercentage string `env:"OFFER_FEE_PERCENTAGE" envDefault:"0.02"`
	// время жизни блокировки повторной отправки
	InFlightTTL time.Duration `env:"OFFER_INFLIGHT_TTL" envDefault:"2m"`
	ProgramID   string        `env:"OFFER_ESCROW_PROGRAM_ID,notEmpty"`
	// через сколько запись с пропавшим без исхода эскроу закрывается починкой
	MissingEscrowGrace time.Duration `env:"OFFER_MISSING_ESCROW_GRACE" envDefault:"24h"`

	fee decimal.Decimal
}

// Fee доля комиссии, проверенная при загрузке.
func (o Offer) Fee() decimal.Decimal {
	return o.fee
}

type Watcher struct {
	Enabled   bool          `env:"WATCHER_ENABLED" envDefault:"true"`
	Interval  time.Duration `env:"WATCHER_INTERVAL" envDefault:"1m"`
	BatchSize int           `env:"WATCHER_BATCH_SIZE" envDefault:"100"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	percentage, err := fee.ParsePercentage(config.Offer.FeePercentage)
	if err != nil {
		return Config{}, fmt.Errorf("fee.ParsePercentage: %w", err)
	}

	config.Offer.fee = percentage

	return config, nil
}
