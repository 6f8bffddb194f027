package future

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLifetime(t *testing.T) {
	t.Run("Alive until invalidated", func(t *testing.T) {
		lifetime := NewLifetime()

		require.True(t, lifetime.Alive())

		lifetime.Invalidate()

		require.False(t, lifetime.Alive())
	})

	t.Run("Nil lifetime counts as dead", func(t *testing.T) {
		var lifetime *Lifetime

		require.False(t, lifetime.Alive())
	})
}

func TestContextOwner(t *testing.T) {
	t.Run("Alive until the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		owner := ContextOwner(ctx)

		require.True(t, owner.Alive())

		cancel()

		require.False(t, owner.Alive())
	})

	t.Run("Canceling the context gates pending weak reactions", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		promise := NewPromise[int]()

		callbackExecuted := false
		promise.Future().WeakThen(ContextOwner(ctx), func(int) {
			callbackExecuted = true
		})

		cancel()
		promise.Fulfill(1)

		require.False(t, callbackExecuted)
	})
}
