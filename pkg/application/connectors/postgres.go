package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"nft_escrow/pkg/logx"
)

// Postgres лениво открывает пул sqlx поверх pgx. Ошибка подключения на
// старте фатальна.
type Postgres struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	once sync.Once
	db   *sqlx.DB
}

func (p *Postgres) Client(ctx context.Context) *sqlx.DB {
	p.once.Do(func() {
		p.db = lo.Must(sqlx.ConnectContext(ctx, "pgx", p.DSN))

		p.db.SetMaxOpenConns(p.MaxOpenConns)
		p.db.SetMaxIdleConns(p.MaxIdleConns)
		p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

		logger(ctx).Info("postgres connected", slog.String("dsn", p.redacted()))
	})

	return p.db
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.Client(ctx).PingContext(ctx); err != nil {
		return fmt.Errorf("postgres.Ping: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.db == nil {
		return
	}

	if err := p.db.Close(); err != nil {
		logger(ctx).Error("postgres.Close", logx.Error(err))

		return
	}

	logger(ctx).Info("postgres disconnected", slog.String("dsn", p.redacted()))
}

func (p *Postgres) redacted() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return "<invalid dsn>"
	}

	return u.Redacted()
}
