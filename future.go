package future

// Future is the shared-read handle on an eventual outcome. Futures are
// cheap to copy; any number of them may reference one underlying state.
//
// Subscribing returns a new Future for the continuation — the state that
// settles after this future's reactions have run — so subscriptions
// compose into pipelines rather than fanning out:
//
//	f.Then(a).Then(b) // b observes "after a ran", not the original value
//
// The zero value is an empty handle: subscribing to it is reported as a
// contract violation and yields the shared, permanently-rejected
// terminal-error future so downstream chains stay deterministic.
type Future[T any] struct {
	state *futureState[T]
}

// Valid reports whether the handle references a state.
func (f Future[T]) Valid() bool {
	return nil != f.state
}

// State returns the current lifecycle state. An empty handle reads as
// Rejected, matching the terminal-error fallback.
func (f Future[T]) State() State {
	if nil == f.state {
		return StateRejected
	}
	return f.state.state
}

func (f Future[T]) IsPending() bool   { return StatePending == f.State() }
func (f Future[T]) IsFulfilled() bool { return StateFulfilled == f.State() }
func (f Future[T]) IsRejected() bool  { return StateRejected == f.State() }

// Reason returns the rejection reason, or nil while not rejected.
func (f Future[T]) Reason() error {
	if nil == f.state {
		return ErrInvalidAccess
	}
	return f.state.reason
}

// TryGet returns the fulfillment value and true once the future has been
// fulfilled.
func (f Future[T]) TryGet() (T, bool) {
	if nil == f.state || StateFulfilled != f.state.state {
		var zero T
		return zero, false
	}
	return f.state.result, true
}

// MustGet returns the fulfillment value, or the zero value (with a
// violation report) if the future is not fulfilled. Intended for call
// sites that have already observed settlement.
func (f Future[T]) MustGet() T {
	value, ok := f.TryGet()
	if !ok {
		reportViolation("Future.MustGet", ErrInvalidAccess)
	}
	return value
}

// Any erases the payload type. The erased handle can be narrowed back
// with As.
func (f Future[T]) Any() AnyFuture {
	if nil == f.state {
		return AnyFuture{}
	}
	return AnyFuture{state: f.state}
}

// Then registers a reaction to fulfillment. While pending it queues; on
// an already-fulfilled future it fires synchronously before Then returns;
// on a rejected future it is skipped. The returned Future is the
// continuation.
func (f Future[T]) Then(callback ThenHandler[T]) Future[T] {
	if nil == f.state {
		reportViolation("Future.Then", ErrEmptyHandle)
		return errorFuture[T]()
	}
	return Future[T]{state: f.state.addThen(callback)}
}

// ThenDo is Then for reactions that ignore the value.
func (f Future[T]) ThenDo(callback VoidThenHandler) Future[T] {
	if nil == f.state {
		reportViolation("Future.ThenDo", ErrEmptyHandle)
		return errorFuture[T]()
	}
	return Future[T]{state: f.state.addVoidThen(callback)}
}

// Catch registers a reaction to rejection, symmetric to Then: queued
// while pending, fired synchronously on an already-rejected future,
// skipped on a fulfilled one.
func (f Future[T]) Catch(callback CatchHandler) Future[T] {
	if nil == f.state {
		reportViolation("Future.Catch", ErrEmptyHandle)
		return errorFuture[T]()
	}
	return Future[T]{state: f.state.addCatch(callback)}
}

// WeakThen is Then with the callback bound to owner's lifetime: at firing
// time, if the owner is no longer alive, the callback body is skipped and
// the chain continues as if it had run.
func (f Future[T]) WeakThen(owner Owner, callback ThenHandler[T]) Future[T] {
	return f.Then(func(value T) {
		if !alive(owner) {
			return
		}
		callback(value)
	})
}

// WeakThenDo is ThenDo bound to owner's lifetime.
func (f Future[T]) WeakThenDo(owner Owner, callback VoidThenHandler) Future[T] {
	return f.ThenDo(func() {
		if !alive(owner) {
			return
		}
		callback()
	})
}

// WeakCatch is Catch bound to owner's lifetime.
func (f Future[T]) WeakCatch(owner Owner, callback CatchHandler) Future[T] {
	return f.Catch(func(reason error) {
		if !alive(owner) {
			return
		}
		callback(reason)
	})
}

// WeakThenCatch binds a then and a catch reaction in a single call and
// returns the shared continuation.
func (f Future[T]) WeakThenCatch(owner Owner, onValue ThenHandler[T], onReason CatchHandler) Future[T] {
	f.WeakCatch(owner, onReason)
	return f.WeakThen(owner, onValue)
}

// WeakChain registers an asynchronous follow-up step: once this future
// fulfills, step is invoked to obtain an inner future, and the returned
// future settles only when that inner future does. Rejection of either
// stage is forwarded to the returned future.
func (f Future[T]) WeakChain(owner Owner, step func() AnyFuture) Future[Void] {
	next := newState[Void]()

	f.WeakThenDo(owner, func() {
		inner := step()
		inner.WeakThenDo(owner, func() { next.fulfill(Void{}) })
		inner.WeakCatch(owner, func(reason error) { next.throw(reason) })
	})
	f.WeakCatch(owner, func(reason error) { next.throw(reason) })

	return Future[Void]{state: next}
}
