package statemachine

import (
	"testing"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardProgression(t *testing.T) {
	chain := []models.OrderStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		assert.NoError(t, CanTransition(chain[i], chain[i+1], ActorVendor),
			"%s → %s", chain[i], chain[i+1])
	}
}

func TestNoSkippingStates(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPending, models.StatusPreparing, ActorVendor))
	assert.Error(t, CanTransition(models.StatusPending, models.StatusDelivered, ActorVendor))
	assert.Error(t, CanTransition(models.StatusConfirmed, models.StatusOutForDelivery, ActorVendor))
}

func TestNoBackwardTransitions(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusConfirmed, ActorVendor))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusPending, ActorAdmin))
}

func TestCancellationWindow(t *testing.T) {
	cancellable := []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
	}
	for _, from := range cancellable {
		assert.NoError(t, CanTransition(from, models.StatusCancelled, ActorVendor), "from %s", from)
	}

	assert.Error(t, CanTransition(models.StatusOutForDelivery, models.StatusCancelled, ActorVendor))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusCancelled, ActorVendor))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusCancelled, ActorAdmin))
}

func TestCustomerMayNeverTransition(t *testing.T) {
	err := CanTransition(models.StatusPending, models.StatusConfirmed, "customer")
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}

func TestAdminHasVendorTransitions(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusConfirmed, ActorAdmin))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusCancelled, ActorAdmin))
}

func TestUnknownStatusRejected(t *testing.T) {
	err := CanTransition(models.StatusPending, models.OrderStatus("shipped"), ActorVendor)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusConfirmed, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestIllegalTransitionErrorDescribesOptions(t *testing.T) {
	err := CanTransition(models.StatusDelivered, models.StatusConfirmed, ActorVendor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none (terminal state)")
}
