package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
)

const (
	pgUniqueViolation = "23505"
	offersPrimaryKey  = "offers_pkey"
)

type OfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository создаёт новый экземпляр репозитория.
func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *OfferRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// NewID ключ записи средствами базы.
func (r *OfferRepository) NewID(ctx context.Context) (string, error) {
	var id string
	if err := r.db.GetContext(ctx, &id, `SELECT gen_random_uuid()::text`); err != nil {
		return "", fmt.Errorf("offerRepository.NewID: %w", err)
	}

	return id, nil
}

// Create сохраняет новое предложение. Второе REQUESTED на ту же пару
// актив+продавец отклоняет уникальный индекс.
func (r *OfferRepository) Create(ctx context.Context, offer entity.Offer) (entity.Offer, error) {
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES (:id, :nft_address, :seller_address, :buyer_address, :escrow_address,
			:offered_amount, :fee, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromOffer(offer)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == offersPrimaryKey {
				return entity.Offer{}, domain.WrapError(err, errcodes.OfferRecorded, "offer already recorded")
			}

			return entity.Offer{}, domain.WrapError(err, errcodes.OfferAlreadyActive,
				"an offer for this asset is already active")
		}

		return entity.Offer{}, domain.WrapError(err, errcodes.InternalServerError, "failed to create offer")
	}

	return offer, nil
}

// GetByID возвращает предложение по идентификатору.
func (r *OfferRepository) GetByID(ctx context.Context, id string) (entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var schema offerSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Offer{}, domain.NewError(errcodes.OfferNotFound, "offer not found")
		}
		return entity.Offer{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get offer")
	}

	return r.convert(schema)
}

func (r *OfferRepository) QueryByAsset(ctx context.Context, nft value.Address) ([]entity.Offer, error) {
	return r.list(ctx, `SELECT `+offerColumns+` FROM offers WHERE nft_address = $1`, nft.String())
}

func (r *OfferRepository) ListBySeller(ctx context.Context, seller value.Address) ([]entity.Offer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+` FROM offers
		WHERE seller_address = $1
		ORDER BY COALESCE(updated_at, created_at) DESC, id DESC`, seller.String())
}

func (r *OfferRepository) ListByBuyer(ctx context.Context, buyer value.Address) ([]entity.Offer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+` FROM offers
		WHERE buyer_address = $1
		ORDER BY COALESCE(updated_at, created_at) DESC, id DESC`, buyer.String())
}

// ListRequested страница активных предложений по возрастанию id.
func (r *OfferRepository) ListRequested(ctx context.Context, afterID string, limit int) ([]entity.Offer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+` FROM offers
		WHERE status = $1 AND id > $2
		ORDER BY id
		LIMIT $3`, value.OfferStatusRequested.String(), afterID, limit)
}

// Update меняет статус только если он всё ещё равен ожидаемому.
func (r *OfferRepository) Update(
	ctx context.Context,
	id string,
	update entity.OfferUpdate,
) (entity.Offer, error) {
	var updated entity.Offer

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		// Блокируем строку и проверяем статус
		var current offerSchema
		if err := tx.GetContext(ctx, &current,
			`SELECT `+offerColumns+` FROM offers WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.OfferNotFound, "offer not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock offer")
		}

		if current.Status != update.ExpectedStatus.String() {
			return domain.NewError(errcodes.IllegalTransition,
				"offer is "+current.Status+", expected "+update.ExpectedStatus.String())
		}

		var schema offerSchema
		if err := tx.GetContext(ctx, &schema, `
			UPDATE offers
			SET status = $1, updated_at = $2
			WHERE id = $3 AND status = $4
			RETURNING `+offerColumns,
			update.Status.String(), update.UpdatedAt, id, update.ExpectedStatus.String(),
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update offer")
		}

		o, err := r.convert(schema)
		if err != nil {
			return err
		}

		updated = o

		return nil
	})
	if err != nil {
		return entity.Offer{}, err
	}

	return updated, nil
}

func (r *OfferRepository) list(ctx context.Context, query string, args ...any) ([]entity.Offer, error) {
	var schemas []offerSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list offers")
	}

	offers, err := toOffers(schemas)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert offers")
	}

	return offers, nil
}

func (r *OfferRepository) convert(schema offerSchema) (entity.Offer, error) {
	o, err := schema.toDomain()
	if err != nil {
		return entity.Offer{}, domain.WrapError(err, errcodes.InternalServerError, "failed to convert offer")
	}

	return o, nil
}
