package config

import "time"

// Postgres хранилище записей офферов.
type Postgres struct {
	DSN             string        `env:"PG_DSN,notEmpty"      json:"-"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS"    envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// Redis общий для защиты от повторной отправки и очереди задач.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS,notEmpty"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD"       json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB"             envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE"      envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

// Queue задачи восстановления записей.
type Queue struct {
	Name            string        `env:"QUEUE_NAME"             envDefault:"offers"`
	Concurrency     int           `env:"QUEUE_CONCURRENCY"      envDefault:"4"`
	ShutdownTimeout time.Duration `env:"QUEUE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
