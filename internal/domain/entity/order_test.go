package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_ForwardPath(t *testing.T) {
	path := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransitionTo(path[i+1]),
			"%s should advance to %s", path[i], path[i+1])
	}
}

func TestOrderStatus_CancellableFromNonTerminalStates(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
	} {
		assert.True(t, status.CanTransitionTo(OrderStatusCancelled), "%s should be cancellable", status)
	}
}

func TestOrderStatus_TerminalStatesRejectEverything(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}

	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, target := range all {
			assert.False(t, terminal.CanTransitionTo(target),
				"%s must not transition to %s", terminal, target)
		}
	}
}

func TestOrderStatus_NoSkippingForward(t *testing.T) {
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusConfirmed))
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("completed").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
