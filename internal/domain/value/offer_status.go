package value

import "fmt"

type OfferStatus string

const (
	OfferStatusRequested OfferStatus = "REQUESTED"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusCanceled  OfferStatus = "CANCELED"
)

func ParseOfferStatus(s string) (OfferStatus, error) {
	switch status := OfferStatus(s); status {
	case OfferStatusRequested, OfferStatusAccepted, OfferStatusCanceled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown offer status %q", s)
	}
}

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusCanceled
}

// Role is the part a wallet plays in an offer.
type Role string

const (
	RoleSeller   Role = "seller"
	RoleBuyer    Role = "buyer"
	RoleObserver Role = "observer"
)

func (r Role) String() string {
	return string(r)
}

// EscrowResolution tells how the ledger settled a holding account.
type EscrowResolution string

const (
	EscrowUnresolved EscrowResolution = ""
	// EscrowReleased: the asset went to the buyer.
	EscrowReleased EscrowResolution = "released"
	// EscrowReturned: the asset went back to the seller.
	EscrowReturned EscrowResolution = "returned"
)

// ImpliedStatus maps a settled holding account onto the offer status the
// record store should carry.
func (r EscrowResolution) ImpliedStatus() (OfferStatus, bool) {
	switch r {
	case EscrowReleased:
		return OfferStatusAccepted, true
	case EscrowReturned:
		return OfferStatusCanceled, true
	default:
		return "", false
	}
}
