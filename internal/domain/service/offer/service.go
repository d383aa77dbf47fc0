package offer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/idgen"
	"nft_escrow/pkg/logx"
)

type SubmitResult struct {
	Offer   entity.Offer
	Fee     value.Amount
	Total   value.Amount
	Receipt entity.Receipt
}

type TransitionResult struct {
	Offer   entity.Offer
	Receipt entity.Receipt
}

// DetailView карточка актива для конкретного продавца.
type DetailView struct {
	Canonical   *entity.Offer
	IsRequested   bool
	Stale         bool
	Verified      bool
	EscrowMissing bool
	ViewerRole    value.Role
	Actions       []Action
	Asset         entity.AssetMetadata
}

type TableRow struct {
	Offer   entity.Offer
	Actions []Action
}

type RepairOutcome string

const (
	RepairNoop    RepairOutcome = "noop"
	RepairApplied RepairOutcome = "applied"
)

// DefaultMissingEscrowGrace после этого срока запись с пропавшим эскроу закрывается как CANCELED.
const DefaultMissingEscrowGrace = 24 * time.Hour

type Service struct {
	repo      Repository
	builder   EscrowBuilder
	sync      *Synchronizer
	fees      fee.Calculator
	ids       idgen.Generator
	metadata  MetadataSource
	guard     SubmissionGuard
	queue     RepairQueue
	publisher EventPublisher
	now       func() time.Time
	grace     time.Duration
}

func NewService(
	repo Repository,
	builder EscrowBuilder,
	fees fee.Calculator,
	ids idgen.Generator,
) *Service {
	s := &Service{
		repo:      repo,
		builder:   builder,
		fees:      fees,
		ids:       ids,
		guard:     nopGuard{},
		queue:     nopQueue{},
		publisher: nopPublisher{},
		now:       time.Now,
		grace:     DefaultMissingEscrowGrace,
	}
	s.sync = NewSynchronizer(repo, builder, s.queue)

	return s
}

func (s *Service) WithMetadata(source MetadataSource) *Service {
	s.metadata = source
	return s
}

func (s *Service) WithGuard(guard SubmissionGuard) *Service {
	s.guard = guard
	return s
}

func (s *Service) WithRepairQueue(queue RepairQueue) *Service {
	s.queue = queue
	s.sync = NewSynchronizer(s.repo, s.builder, queue)

	return s
}

func (s *Service) WithPublisher(publisher EventPublisher) *Service {
	s.publisher = publisher
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithMissingEscrowGrace(grace time.Duration) *Service {
	if grace > 0 {
		s.grace = grace
	}

	return s
}

// Submit создаёт эскроу на леджере и затем запись REQUESTED.
func (s *Service) Submit(ctx context.Context, signer escrow.Signer, in SubmitInput) (result SubmitResult, err error) {
	defer func() { offersSubmitted.WithLabelValues(outcome(err)).Inc() }()

	input, err := ValidateInput(ctx, signer, in)
	if err != nil {
		return SubmitResult{}, err
	}

	release, err := s.guard.Acquire(ctx, "submit:"+input.NFT.String()+":"+input.Seller.String())
	if err != nil {
		return SubmitResult{}, fmt.Errorf("guard.Acquire: %w", err)
	}
	defer release()

	records, err := s.repo.QueryByAsset(ctx, input.NFT)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("repo.QueryByAsset: %w", err)
	}

	if err := CheckNoActiveOffer(records, input.NFT, input.Seller); err != nil {
		return SubmitResult{}, err
	}

	offerFee := s.fees.Fee(input.Amount)

	// id выдаётся до вызова леджера, чтобы починка могла повторить запись с тем же ключом.
	id, err := s.ids.NewID(ctx)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("ids.NewID: %w", err)
	}

	created, err := s.builder.SubmitOfferCreation(ctx, signer, escrow.OfferCreation{
		Seller: input.Seller,
		Buyer:  input.Buyer,
		Asset:  input.NFT,
		Amount: input.Amount,
		Fee:    offerFee,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("builder.SubmitOfferCreation: %w", err)
	}

	offer := entity.Offer{
		ID:            id,
		NFTAddress:    input.NFT,
		SellerAddress: input.Seller,
		BuyerAddress:  input.Buyer,
		EscrowAddress: created.EscrowAddress,
		OfferedAmount: input.Amount,
		Fee:           offerFee,
		Status:        value.OfferStatusRequested,
		CreatedAt:     s.now().UTC(),
	}

	stored, err := s.repo.Create(ctx, offer)
	if domain.HasCode(err, errcodes.OfferAlreadyActive) {
		return SubmitResult{}, s.returnOrphan(ctx, signer, offer, err)
	}

	if err != nil {
		driftDetected.WithLabelValues(driftKindRecordCreate).Inc()

		logger(ctx).Error("escrow created but offer record was not written",
			slog.Bool(logx.FieldDrift, true),
			slog.String(logx.FieldOfferID, offer.ID),
			logx.Stringer(logx.FieldEscrowAddress, offer.EscrowAddress),
			logx.Stringer(logx.FieldNFTAddress, offer.NFTAddress),
			logx.Error(err),
		)

		if qErr := s.queue.EnqueueRecord(ctx, offer); qErr != nil {
			logger(ctx).Error("enqueue record repair", slog.String(logx.FieldOfferID, offer.ID), logx.Error(qErr))
		}

		return SubmitResult{}, domain.WrapError(err, errcodes.RecordStoreError,
			"escrow "+offer.EscrowAddress.String()+" was created but the offer record was not saved")
	}

	s.publish(ctx, entity.OfferEventRequested, stored)

	return SubmitResult{
		Offer:   stored,
		Fee:     stored.Fee,
		Total:   stored.Total(),
		Receipt: created.Receipt,
	}, nil
}

// returnOrphan: эскроу создан, но пару уже занял параллельный запрос.
// Возвращаем актив продавцу, запись не пишем.
func (s *Service) returnOrphan(ctx context.Context, signer escrow.Signer, offer entity.Offer, createErr error) error {
	driftDetected.WithLabelValues(driftKindOrphanEscrow).Inc()

	attrs := []any{
		slog.String(logx.FieldOfferID, offer.ID),
		logx.Stringer(logx.FieldEscrowAddress, offer.EscrowAddress),
		logx.Stringer(logx.FieldNFTAddress, offer.NFTAddress),
	}

	receipt, err := s.builder.SubmitCancel(ctx, signer, offer.EscrowAddress)
	if err != nil {
		logger(ctx).Error("orphan escrow was not returned to seller",
			append(attrs, slog.Bool(logx.FieldDrift, true), logx.Error(err))...)

		return domain.WrapError(err, errcodes.RecordStoreError,
			"another offer for this asset was recorded first and escrow "+
				offer.EscrowAddress.String()+" was not returned")
	}

	logger(ctx).Warn("orphan escrow returned to seller",
		append(attrs, slog.String("signature", receipt.Signature))...)

	return createErr
}

func (s *Service) Accept(ctx context.Context, signer escrow.Signer, offerID string) (TransitionResult, error) {
	return s.transition(ctx, signer, offerID, ActionAccept)
}

func (s *Service) Cancel(ctx context.Context, signer escrow.Signer, offerID string) (TransitionResult, error) {
	return s.transition(ctx, signer, offerID, ActionCancel)
}

// transition: фаза 1 на леджере, фаза 2 в хранилище. Если фаза 1 упала,
// запись не трогаем.
func (s *Service) transition(
	ctx context.Context,
	signer escrow.Signer,
	offerID string,
	action Action,
) (result TransitionResult, err error) {
	defer func() { offerTransitions.WithLabelValues(string(action), outcome(err)).Inc() }()

	if signer == nil {
		return TransitionResult{}, domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly")
	}

	actor, ok := signer.PublicKey(ctx)
	if !ok || actor.IsZero() {
		return TransitionResult{}, domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly")
	}

	if offerID == "" {
		return TransitionResult{}, domain.NewError(errcodes.InvalidOfferID, "offer id is empty")
	}

	release, err := s.guard.Acquire(ctx, "offer:"+offerID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("guard.Acquire: %w", err)
	}
	defer release()

	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	next, err := NextStatus(offer, offer.RoleOf(actor), action)
	if err != nil {
		return TransitionResult{}, err
	}

	var receipt entity.Receipt

	switch action {
	case ActionAccept:
		receipt, err = s.builder.SubmitAccept(ctx, signer, offer.EscrowAddress)
	case ActionCancel:
		receipt, err = s.builder.SubmitCancel(ctx, signer, offer.EscrowAddress)
	}

	if err != nil && action == ActionCancel &&
		!domain.HasCode(err, errcodes.UserCancelled) && s.escrowMissing(ctx, offer) {
		// на леджере отменять нечего, закрываем только запись
		logger(ctx).Warn("escrow account is gone, cancelling record only",
			slog.String(logx.FieldOfferID, offer.ID),
			logx.Stringer(logx.FieldEscrowAddress, offer.EscrowAddress),
			logx.Error(err),
		)

		receipt, err = entity.Receipt{}, nil
	}

	if err != nil {
		logger(ctx).Warn("ledger rejected transition",
			slog.String(logx.FieldOfferID, offer.ID),
			slog.String("action", string(action)),
			logx.Error(err),
		)

		return TransitionResult{}, fmt.Errorf("builder.Submit %s: %w", action, err)
	}

	updated, err := s.repo.Update(ctx, offer.ID, entity.OfferUpdate{
		ExpectedStatus: value.OfferStatusRequested,
		Status:         next,
		UpdatedAt:      s.now().UTC(),
	})
	if err != nil {
		return s.recoverUpdate(ctx, offer, next, receipt, err)
	}

	s.publish(ctx, entity.EventTypeForStatus(next), updated)

	return TransitionResult{Offer: updated, Receipt: receipt}, nil
}

func (s *Service) escrowMissing(ctx context.Context, offer entity.Offer) bool {
	account, err := s.builder.EscrowState(ctx, offer.EscrowAddress)
	if err != nil {
		return false
	}

	return account.IsMissing()
}

// recoverUpdate: леджер уже подтвердил переход, а запись не обновилась.
func (s *Service) recoverUpdate(
	ctx context.Context,
	offer entity.Offer,
	next value.OfferStatus,
	receipt entity.Receipt,
	updateErr error,
) (TransitionResult, error) {
	if domain.HasCode(updateErr, errcodes.IllegalTransition) {
		current, err := s.repo.GetByID(ctx, offer.ID)
		if err == nil && current.Status == next {
			return TransitionResult{Offer: current, Receipt: receipt}, nil
		}
	}

	driftDetected.WithLabelValues(driftKindRecordUpdate).Inc()

	logger(ctx).Error("ledger resolved escrow but offer record was not updated",
		slog.Bool(logx.FieldDrift, true),
		slog.String(logx.FieldOfferID, offer.ID),
		logx.Stringer(logx.FieldOfferStatus, next),
		logx.Stringer(logx.FieldEscrowAddress, offer.EscrowAddress),
		logx.Error(updateErr),
	)

	if err := s.queue.EnqueueRepair(ctx, offer.ID); err != nil {
		logger(ctx).Error("enqueue repair", slog.String(logx.FieldOfferID, offer.ID), logx.Error(err))
	}

	return TransitionResult{}, domain.WrapError(updateErr, errcodes.RecordStoreError,
		"ledger confirmed the "+next.String()+" transition but the offer record was not updated")
}

func (s *Service) Detail(ctx context.Context, nftRaw, sellerRaw string, viewer value.Address) (DetailView, error) {
	nft, err := value.ParseAddress(nftRaw)
	if err != nil {
		return DetailView{}, domain.WrapError(err, errcodes.InvalidAddress, "invalid nft address")
	}

	seller, err := value.ParseAddress(sellerRaw)
	if err != nil {
		return DetailView{}, domain.WrapError(err, errcodes.InvalidAddress, "invalid seller address")
	}

	reconciled, err := s.sync.Reconcile(ctx, nft, seller)
	if err != nil {
		return DetailView{}, fmt.Errorf("sync.Reconcile: %w", err)
	}

	view := DetailView{
		Canonical:   reconciled.Canonical,
		IsRequested:   reconciled.IsActive,
		Stale:         reconciled.Stale,
		Verified:      reconciled.Verified,
		EscrowMissing: reconciled.EscrowMissing,
		ViewerRole:    value.RoleObserver,
		Asset:         s.assetMetadata(ctx, nft),
	}

	switch {
	case reconciled.Canonical != nil:
		view.ViewerRole = reconciled.Canonical.RoleOf(viewer)
	case !viewer.IsZero() && viewer == seller:
		view.ViewerRole = value.RoleSeller
	}

	switch {
	case view.Canonical != nil && view.IsRequested:
		view.Actions = AvailableActions(view.Canonical.Status, view.ViewerRole)
	case view.EscrowMissing && view.ViewerRole == value.RoleSeller:
		// запись не закроется сама до истечения grace, продавец может закрыть её раньше
		view.Actions = []Action{ActionCancel}
	}

	return view, nil
}

func (s *Service) SellerTable(ctx context.Context, sellerRaw string) ([]TableRow, error) {
	seller, err := value.ParseAddress(sellerRaw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidAddress, "invalid seller address")
	}

	records, err := s.repo.ListBySeller(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("repo.ListBySeller: %w", err)
	}

	return tableRows(records, value.RoleSeller), nil
}

func (s *Service) BuyerTable(ctx context.Context, buyerRaw string) ([]TableRow, error) {
	buyer, err := value.ParseAddress(buyerRaw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidAddress, "invalid buyer address")
	}

	records, err := s.repo.ListByBuyer(ctx, buyer)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByBuyer: %w", err)
	}

	return tableRows(records, value.RoleBuyer), nil
}

func (s *Service) Quote(amountRaw string) (fee.Quote, error) {
	amount, err := value.ParseAmount(amountRaw)
	if err != nil {
		return fee.Quote{}, domain.WrapError(err, errcodes.InvalidAmount, "amount is not a number")
	}

	return s.fees.Quote(amount), nil
}

// Repair приводит запись REQUESTED к состоянию, которое показывает леджер.
// Открытый эскроу не трогаем. Пропавший без исхода закрываем как CANCELED,
// но только после grace с последней активности.
func (s *Service) Repair(ctx context.Context, offerID string) (RepairOutcome, error) {
	offer, err := s.repo.GetByID(ctx, offerID)
	if err != nil {
		return RepairNoop, fmt.Errorf("repo.GetByID: %w", err)
	}

	if !offer.IsRequested() {
		return RepairNoop, nil
	}

	account, err := s.builder.EscrowState(ctx, offer.EscrowAddress)
	if err != nil {
		return RepairNoop, fmt.Errorf("builder.EscrowState: %w", err)
	}

	implied, ok := account.Resolution.ImpliedStatus()
	if !ok {
		if !account.IsMissing() {
			return RepairNoop, nil
		}

		age := s.now().Sub(offer.LastActivity())
		if age < s.grace {
			logger(ctx).Warn("escrow account is gone but its outcome is unknown",
				slog.String(logx.FieldOfferID, offer.ID),
				logx.Stringer(logx.FieldEscrowAddress, offer.EscrowAddress),
				slog.Duration("age", age),
			)

			return RepairNoop, nil
		}

		implied = value.OfferStatusCanceled
	}

	updated, err := s.repo.Update(ctx, offer.ID, entity.OfferUpdate{
		ExpectedStatus: value.OfferStatusRequested,
		Status:         implied,
		UpdatedAt:      s.now().UTC(),
	})
	if err != nil {
		if domain.HasCode(err, errcodes.IllegalTransition) {
			return RepairNoop, nil
		}

		return RepairNoop, fmt.Errorf("repo.Update: %w", err)
	}

	repairsApplied.Inc()

	logger(ctx).Info("offer record repaired from ledger state",
		slog.String(logx.FieldOfferID, offer.ID),
		logx.Stringer(logx.FieldOfferStatus, implied),
	)

	s.publish(ctx, entity.EventTypeForStatus(implied), updated)

	return RepairApplied, nil
}

// RecordOffer повторяет запись, которая не удалась после создания эскроу.
func (s *Service) RecordOffer(ctx context.Context, offer entity.Offer) error {
	stored, err := s.repo.Create(ctx, offer)
	if err != nil {
		if domain.HasCode(err, errcodes.OfferRecorded) {
			return nil
		}

		return fmt.Errorf("repo.Create: %w", err)
	}

	logger(ctx).Info("offer record restored", slog.String(logx.FieldOfferID, stored.ID))

	s.publish(ctx, entity.OfferEventRequested, stored)

	return nil
}

// DriftedOffers страница записей REQUESTED, эскроу которых уже не открыт.
// Возвращает id последней просмотренной записи для следующей страницы.
func (s *Service) DriftedOffers(
	ctx context.Context,
	afterID string,
	limit int,
	wait func(context.Context) error,
) (drifted []entity.Offer, lastID string, err error) {
	records, err := s.repo.ListRequested(ctx, afterID, limit)
	if err != nil {
		return nil, afterID, fmt.Errorf("repo.ListRequested: %w", err)
	}

	lastID = afterID

	for _, r := range records {
		if wait != nil {
			if err := wait(ctx); err != nil {
				return drifted, lastID, fmt.Errorf("wait: %w", err)
			}
		}

		lastID = r.ID

		account, err := s.builder.EscrowState(ctx, r.EscrowAddress)
		if err != nil {
			logger(ctx).Warn("escrow state unavailable", slog.String(logx.FieldOfferID, r.ID), logx.Error(err))

			continue
		}

		if !account.IsOpen() {
			drifted = append(drifted, r)
		}
	}

	return drifted, lastID, nil
}

func (s *Service) assetMetadata(ctx context.Context, nft value.Address) entity.AssetMetadata {
	fallback := entity.AssetMetadata{Address: nft}

	if s.metadata == nil {
		return fallback
	}

	meta, err := s.metadata.Fetch(ctx, nft)
	if err != nil {
		logger(ctx).Warn("asset metadata unavailable", logx.Stringer(logx.FieldNFTAddress, nft), logx.Error(err))

		return fallback
	}

	return meta
}

func (s *Service) publish(ctx context.Context, eventType entity.OfferEventType, offer entity.Offer) {
	s.publisher.Publish(ctx, entity.OfferEvent{
		Type:       eventType,
		Offer:      offer,
		OccurredAt: s.now().UTC(),
	})
}

func tableRows(records []entity.Offer, role value.Role) []TableRow {
	SortNewestFirst(records)

	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			Offer:   r,
			Actions: AvailableActions(r.Status, role),
		})
	}

	return rows
}

func outcome(err error) string {
	if err == nil {
		return resultOK
	}

	if code, ok := domain.GetCode(err); ok {
		return code.String()
	}

	return resultFailed
}
