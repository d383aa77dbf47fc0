package ledger

import (
	jsoniter "github.com/json-iterator/go"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      int64               `json:"id"`
	Result  jsoniter.RawMessage `json:"result"`
	Error   *RPCError           `json:"error"`
}

// RPCError объект ошибки JSON-RPC; Message показывается пользователю как есть.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// WireInstruction пустые адреса и нулевые суммы не сериализуются.
type WireInstruction struct {
	Kind      string `json:"kind"`
	Program   string `json:"program,omitempty"`
	Escrow    string `json:"escrow,omitempty"`
	Seller    string `json:"seller,omitempty"`
	Buyer     string `json:"buyer,omitempty"`
	Asset     string `json:"asset,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Fee       string `json:"fee,omitempty"`
	Recipient string `json:"recipient,omitempty"`
}

type WireTransaction struct {
	FeePayer     string           `json:"feePayer"`
	Nonce        uint64           `json:"nonce"`
	Instructions []WireInstruction `json:"instructions"`
}

type sendTransactionParams struct {
	Transaction WireTransaction `json:"transaction"`
	Signer      string         `json:"signer"`
	Signature   string         `json:"signature"`
}

type receiptDTO struct {
	Signature string `json:"signature"`
	Slot      uint64 `json:"slot"`
}

type escrowAccountDTO struct {
	Address    string `json:"address"`
	Exists     bool   `json:"exists"`
	Resolution string `json:"resolution"`
}

// EncodeTransaction проводной вид транзакции, общий для леджера и кошелька.
func EncodeTransaction(tx entity.Transaction) WireTransaction {
	dto := WireTransaction{
		FeePayer:     tx.FeePayer.String(),
		Nonce:        tx.Nonce,
		Instructions: make([]WireInstruction, 0, len(tx.Instructions)),
	}

	for _, in := range tx.Instructions {
		i := WireInstruction{
			Kind:      string(in.Kind),
			Program:   in.Program,
			Escrow:    in.Escrow.String(),
			Seller:    in.Seller.String(),
			Buyer:     in.Buyer.String(),
			Asset:     in.Asset.String(),
			Recipient: in.Recipient.String(),
		}

		if in.Amount.IsPositive() {
			i.Amount = in.Amount.String()
		}

		if in.Fee.IsPositive() {
			i.Fee = in.Fee.String()
		}

		dto.Instructions = append(dto.Instructions, i)
	}

	return dto
}

func (d escrowAccountDTO) toDomain() entity.EscrowAccount {
	return entity.EscrowAccount{
		Address:    value.Address(d.Address),
		Exists:     d.Exists,
		Resolution: value.EscrowResolution(d.Resolution),
	}
}
