package escrow

import (
	"context"
	"errors"
	"fmt"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/logx"
)

//go:generate moq -rm -out signer_mock.gen.go . Signer:SignerMock
//go:generate moq -rm -out ledger_client_mock.gen.go . LedgerClient:LedgerClientMock

// Signer кошелёк пользователя. PublicKey возвращает false, если кошелёк не подключён.
type Signer interface {
	PublicKey(ctx context.Context) (value.Address, bool)
	SignTransaction(ctx context.Context, tx entity.Transaction) (entity.SignedTransaction, error)
}

type LedgerClient interface {
	SendTransaction(ctx context.Context, tx entity.SignedTransaction) (entity.Receipt, error)
	GetEscrowAccount(ctx context.Context, address value.Address) (entity.EscrowAccount, error)
}

type OfferCreation struct {
	Seller value.Address
	Buyer  value.Address
	Asset  value.Address
	Amount value.Amount
	Fee    value.Amount
}

type CreationReceipt struct {
	EscrowAddress value.Address
	Receipt       entity.Receipt
}

// Builder собирает инструкции программы эскроу и отправляет их через кошелёк.
type Builder struct {
	ledger    LedgerClient
	programID string
	nonce     func() (uint64, error)
}

func NewBuilder(ledger LedgerClient, programID string) *Builder {
	return &Builder{
		ledger:    ledger,
		programID: programID,
		nonce:     RandomNonce,
	}
}

func (b *Builder) WithNonceSource(nonce func() (uint64, error)) *Builder {
	b.nonce = nonce
	return b
}

func (b *Builder) SubmitOfferCreation(
	ctx context.Context,
	signer Signer,
	req OfferCreation,
) (CreationReceipt, error) {
	payer, err := b.payer(ctx, signer)
	if err != nil {
		return CreationReceipt{}, err
	}

	if payer != req.Seller {
		return CreationReceipt{}, domain.NewError(errcodes.Forbidden, "only the seller may create an offer")
	}

	nonce, err := b.nonce()
	if err != nil {
		return CreationReceipt{}, fmt.Errorf("builder.SubmitOfferCreation: %w", err)
	}

	escrowAddress, err := DeriveAddress(req.Seller, req.Buyer, req.Asset, nonce)
	if err != nil {
		return CreationReceipt{}, domain.WrapError(err, errcodes.InvalidAddress, "cannot derive escrow address")
	}

	tx := entity.Transaction{
		FeePayer: payer,
		Nonce:    nonce,
		Instructions: []entity.Instruction{
			{
				Kind:    entity.InstructionCreateEscrowAccount,
				Program: b.programID,
				Escrow:  escrowAddress,
				Seller:  req.Seller,
				Buyer:   req.Buyer,
				Asset:   req.Asset,
			},
			{
				Kind:    entity.InstructionFundEscrow,
				Program: b.programID,
				Escrow:  escrowAddress,
				Amount:  req.Amount,
				Fee:     req.Fee,
			},
			{
				Kind:      entity.InstructionTransferRights,
				Program:   b.programID,
				Escrow:    escrowAddress,
				Asset:     req.Asset,
				Seller:    req.Seller,
				Recipient: escrowAddress,
			},
		},
	}

	receipt, err := b.signAndSend(ctx, signer, tx)
	if err != nil {
		return CreationReceipt{}, err
	}

	logger(ctx).Info("escrow created",
		logx.Stringer(logx.FieldEscrowAddress, escrowAddress),
		logx.Stringer(logx.FieldNFTAddress, req.Asset),
		"signature", receipt.Signature,
	)

	return CreationReceipt{EscrowAddress: escrowAddress, Receipt: receipt}, nil
}

// SubmitAccept отдаёт актив покупателю.
func (b *Builder) SubmitAccept(
	ctx context.Context,
	signer Signer,
	escrowAddress value.Address,
) (entity.Receipt, error) {
	return b.resolve(ctx, signer, escrowAddress, entity.InstructionReleaseEscrow)
}

// SubmitCancel возвращает актив продавцу.
func (b *Builder) SubmitCancel(
	ctx context.Context,
	signer Signer,
	escrowAddress value.Address,
) (entity.Receipt, error) {
	return b.resolve(ctx, signer, escrowAddress, entity.InstructionReturnEscrow)
}

func (b *Builder) EscrowState(ctx context.Context, escrowAddress value.Address) (entity.EscrowAccount, error) {
	account, err := b.ledger.GetEscrowAccount(ctx, escrowAddress)
	if err != nil {
		return entity.EscrowAccount{}, asLedgerError(err, "cannot read escrow account")
	}

	return account, nil
}

func (b *Builder) resolve(
	ctx context.Context,
	signer Signer,
	escrowAddress value.Address,
	kind entity.InstructionKind,
) (entity.Receipt, error) {
	payer, err := b.payer(ctx, signer)
	if err != nil {
		return entity.Receipt{}, err
	}

	tx := entity.Transaction{
		FeePayer: payer,
		Instructions: []entity.Instruction{
			{
				Kind:      kind,
				Program:   b.programID,
				Escrow:    escrowAddress,
				Recipient: payer,
			},
		},
	}

	receipt, err := b.signAndSend(ctx, signer, tx)
	if err != nil {
		return entity.Receipt{}, err
	}

	logger(ctx).Info("escrow resolved",
		logx.Stringer(logx.FieldEscrowAddress, escrowAddress),
		"instruction", string(kind),
		"signature", receipt.Signature,
	)

	return receipt, nil
}

func (b *Builder) payer(ctx context.Context, signer Signer) (value.Address, error) {
	if signer == nil {
		return "", domain.NewError(errcodes.NotAuthenticated, "wallet is not connected")
	}

	payer, ok := signer.PublicKey(ctx)
	if !ok || payer.IsZero() {
		return "", domain.NewError(errcodes.NotAuthenticated, "wallet is not connected")
	}

	return payer, nil
}

func (b *Builder) signAndSend(ctx context.Context, signer Signer, tx entity.Transaction) (entity.Receipt, error) {
	signed, err := signer.SignTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, domain.ErrSignatureRejected) {
			return entity.Receipt{}, domain.WrapError(err, errcodes.UserCancelled, "transaction was not signed")
		}

		if domain.IsAppError(err) {
			return entity.Receipt{}, fmt.Errorf("signer.SignTransaction: %w", err)
		}

		return entity.Receipt{}, domain.WrapError(err, errcodes.NotAuthenticated, "signing authority unavailable")
	}

	receipt, err := b.ledger.SendTransaction(ctx, signed)
	if err != nil {
		return entity.Receipt{}, asLedgerError(err, "ledger rejected transaction")
	}

	return receipt, nil
}

// asLedgerError сохраняет текст ошибки леджера как есть.
func asLedgerError(err error, message string) error {
	if domain.HasCode(err, errcodes.LedgerError) {
		return err
	}

	return domain.WrapError(err, errcodes.LedgerError, message)
}
