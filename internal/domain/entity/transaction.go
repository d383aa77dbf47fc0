package entity

import "nft_escrow/internal/domain/value"

type InstructionKind string

const (
	InstructionCreateEscrowAccount InstructionKind = "create_escrow_account"
	InstructionFundEscrow          InstructionKind = "fund_escrow"
	InstructionTransferRights      InstructionKind = "transfer_rights"
	InstructionReleaseEscrow       InstructionKind = "release_escrow"
	InstructionReturnEscrow        InstructionKind = "return_escrow"
)

// Instruction один шаг программы эскроу. Поля, не нужные конкретному шагу, пустые.
type Instruction struct {
	Kind      InstructionKind
	Program   string
	Escrow    value.Address
	Seller    value.Address
	Buyer     value.Address
	Asset     value.Address
	Amount    value.Amount
	Fee       value.Amount
	Recipient value.Address
}

// Transaction неподписанная транзакция, которую подписывает кошелёк.
type Transaction struct {
	FeePayer     value.Address
	Nonce        uint64
	Instructions []Instruction
}

type SignedTransaction struct {
	Transaction Transaction
	Signer      value.Address
	Signature   string
}

// Receipt подтверждение от леджера.
type Receipt struct {
	Signature string
	Slot      uint64
}
