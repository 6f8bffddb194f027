package future

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakePromiseOf(t *testing.T) {
	t.Run("Every kind creates a pending promise of its payload type", func(t *testing.T) {
		kinds := []Kind{
			KindVoid, KindBool, KindInt, KindFloat, KindVec3, KindString, KindObject,
			KindBools, KindInts, KindFloats, KindVec3s, KindStrings, KindObjects,
		}

		for _, kind := range kinds {
			promise := MakePromiseOf(kind)

			require.True(t, promise.Valid(), "kind %q", kind)
			require.True(t, promise.Future().IsPending(), "kind %q", kind)
		}
	})

	t.Run("Unknown kind is reported and yields an invalid handle", func(t *testing.T) {
		recorder := recordViolations(t)

		promise := MakePromiseOf(Kind("matrix"))

		require.False(t, promise.Valid())
		recorder.assertReported(t, ErrTypeMismatch)
	})
}

func TestFulfillWith(t *testing.T) {
	t.Run("Typed fulfillment round-trips through narrowing", func(t *testing.T) {
		promise := MakePromiseOf(KindInt)

		FulfillWith(promise, 7)

		value, ok := As[int](promise.Future()).TryGet()
		require.True(t, ok)
		require.Equal(t, 7, value)
	})

	t.Run("Vector payloads round-trip", func(t *testing.T) {
		promise := MakePromiseOf(KindVec3)

		FulfillWith(promise, Vec3{X: 1, Y: 2, Z: 3})

		value, ok := As[Vec3](promise.Future()).TryGet()
		require.True(t, ok)
		require.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, value)
	})

	t.Run("Array payloads round-trip", func(t *testing.T) {
		promise := MakePromiseOf(KindStrings)

		FulfillWith(promise, []string{"a", "b"})

		value, ok := As[[]string](promise.Future()).TryGet()
		require.True(t, ok)
		require.Equal(t, []string{"a", "b"}, value)
	})

	t.Run("Object payloads carry their own liveness", func(t *testing.T) {
		promise := MakePromiseOf(KindObject)
		payload := NewLifetime()

		FulfillWith[Object](promise, payload)

		value, ok := As[Object](promise.Future()).TryGet()
		require.True(t, ok)
		require.True(t, value.Alive())

		payload.Invalidate()
		require.False(t, value.Alive())
	})

	t.Run("Wrong payload type is a reported no-op", func(t *testing.T) {
		recorder := recordViolations(t)
		promise := MakePromiseOf(KindInt)

		FulfillWith(promise, "not an int")

		require.True(t, promise.Future().IsPending())
		recorder.assertReported(t, ErrTypeMismatch)
	})

	t.Run("Empty handle is a reported no-op", func(t *testing.T) {
		recorder := recordViolations(t)

		FulfillWith(AnyPromise{}, 1)

		recorder.assertReported(t, ErrEmptyHandle)
	})
}

func TestFulfillVoid(t *testing.T) {
	t.Run("Settles a payload-less promise", func(t *testing.T) {
		promise := MakePromiseOf(KindVoid)

		callbackExecuted := false
		promise.Future().ThenDo(func() {
			callbackExecuted = true
		})

		FulfillVoid(promise)

		require.True(t, callbackExecuted)
		require.True(t, promise.Future().IsFulfilled())
	})

	t.Run("On a typed promise it is a reported no-op", func(t *testing.T) {
		recorder := recordViolations(t)
		promise := MakePromiseOf(KindInt)

		FulfillVoid(promise)

		require.True(t, promise.Future().IsPending())
		recorder.assertReported(t, ErrTypeMismatch)
	})
}
