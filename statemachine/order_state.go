package statemachine

import (
	"github.com/Karthikeyagundu12/Nutrikart/apperr"
	"github.com/Karthikeyagundu12/Nutrikart/models"
)

// Actors allowed to drive order status changes. Customers never update
// status directly.
const (
	ActorVendor = "vendor"
	ActorAdmin  = "admin"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative order lifecycle definition: forward
// progression only, cancellation allowed until preparation completes.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorVendor},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: ActorVendor},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: ActorVendor},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: ActorVendor},

	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorVendor},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: ActorVendor},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
		// Admins may perform every vendor transition
		m[transitionKey{t.From, t.To, ActorAdmin}] = true
	}
	return m
}()

// ValidStatuses lists every recognized order status
var ValidStatuses = map[models.OrderStatus]bool{
	models.StatusPending:        true,
	models.StatusConfirmed:      true,
	models.StatusPreparing:      true,
	models.StatusOutForDelivery: true,
	models.StatusDelivered:      true,
	models.StatusCancelled:      true,
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move an order from one state to
// another. Unknown actors (customers included) are always rejected.
func CanTransition(from, to models.OrderStatus, actor string) error {
	if actor != ActorVendor && actor != ActorAdmin {
		return apperr.New(apperr.Forbidden, "Only vendors or admins may update order status")
	}
	if !ValidStatuses[to] {
		return apperr.Newf(apperr.Validation, "Unknown order status '%s'", to)
	}
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return apperr.Newf(apperr.Validation,
		"invalid transition: %s → %s is not allowed for actor '%s'. Valid transitions from %s are: %s",
		from, to, actor, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
