package offer

import (
	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
)

type Action string

const (
	ActionAccept Action = "accept"
	ActionCancel Action = "cancel"
)

type transition struct {
	actor value.Role
	to    value.OfferStatus
}

// Из терминальных статусов переходов нет.
var transitions = map[value.OfferStatus]map[Action]transition{ //nolint:gochecknoglobals
	value.OfferStatusRequested: {
		ActionAccept: {actor: value.RoleBuyer, to: value.OfferStatusAccepted},
		ActionCancel: {actor: value.RoleSeller, to: value.OfferStatusCanceled},
	},
}

// NextStatus проверяет, может ли роль выполнить действие над предложением.
func NextStatus(offer entity.Offer, role value.Role, action Action) (value.OfferStatus, error) {
	allowed, ok := transitions[offer.Status]
	if !ok {
		return "", domain.NewError(errcodes.IllegalTransition,
			"offer is "+offer.Status.String()+", no further transitions are allowed")
	}

	t, ok := allowed[action]
	if !ok {
		return "", domain.NewError(errcodes.IllegalTransition, "unknown action "+string(action))
	}

	if t.actor != role {
		return "", domain.NewError(errcodes.Forbidden, "only the "+t.actor.String()+" may "+string(action)+" this offer")
	}

	return t.to, nil
}

// AvailableActions то, что можно показать роли в таблице или карточке.
func AvailableActions(status value.OfferStatus, role value.Role) []Action {
	var actions []Action

	for _, action := range []Action{ActionAccept, ActionCancel} {
		if t, ok := transitions[status][action]; ok && t.actor == role {
			actions = append(actions, action)
		}
	}

	return actions
}
