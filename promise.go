package future

// Promise is the exclusive-write handle on an eventual outcome. Whoever
// holds it must call Fulfill or Throw exactly once; every Future derived
// from it observes the result.
//
// A Promise must have a single writer. Go cannot forbid copying a struct,
// so the single-writer contract is by convention: hand the write side to
// another owner with Transfer, which clears the source handle, and share
// the read side freely through Future. A Promise that may never be
// settled must be Closed so its futures still reach a terminal state.
type Promise[T any] struct {
	state *futureState[T]
}

// NewPromise creates a Promise with a fresh pending state.
func NewPromise[T any]() Promise[T] {
	return Promise[T]{state: newState[T]()}
}

// NewVoidPromise creates a promise whose fulfillment carries no payload.
func NewVoidPromise() Promise[Void] {
	return NewPromise[Void]()
}

// Void is the payload of futures that signal completion only.
type Void struct{}

// Valid reports whether the handle references a state. The zero value and
// a transferred-from handle are invalid; operations on them are reported
// and ignored.
func (p *Promise[T]) Valid() bool {
	return nil != p.state
}

// Fulfill settles the promise with value, running all registered then
// reactions synchronously before it returns. A second settlement is a
// reported no-op.
func (p *Promise[T]) Fulfill(value T) {
	if nil == p.state {
		reportViolation("Promise.Fulfill", ErrEmptyHandle)
		return
	}

	p.state.fulfill(value)
}

// Throw settles the promise with a failure reason, running all registered
// catch reactions synchronously before it returns.
func (p *Promise[T]) Throw(reason error) {
	if nil == p.state {
		reportViolation("Promise.Throw", ErrEmptyHandle)
		return
	}

	p.state.throw(reason)
}

// Future returns the shared-read view of the same state.
func (p *Promise[T]) Future() Future[T] {
	return Future[T]{state: p.state}
}

// Any returns the type-erased read view of the same state.
func (p *Promise[T]) Any() AnyFuture {
	if nil == p.state {
		return AnyFuture{}
	}
	return AnyFuture{state: p.state}
}

// Transfer moves write responsibility to the returned handle and clears
// the receiver, so exactly one live handle can settle the state.
func (p *Promise[T]) Transfer() Promise[T] {
	moved := Promise[T]{state: p.state}
	p.state = nil
	return moved
}

// Close force-rejects a still-pending promise with ErrPromiseDestroyed,
// guaranteeing every derived Future reaches a terminal state. Closing an
// already-settled or empty promise does nothing. It always returns nil;
// the error result only satisfies io.Closer.
func (p *Promise[T]) Close() error {
	if nil != p.state && StatePending == p.state.state {
		p.state.throw(ErrPromiseDestroyed)
	}
	p.state = nil
	return nil
}

// IsPending reports whether the outcome is still unknown.
func (p *Promise[T]) IsPending() bool { return p.Future().IsPending() }

// IsFulfilled reports whether the promise settled successfully.
func (p *Promise[T]) IsFulfilled() bool { return p.Future().IsFulfilled() }

// IsRejected reports whether the promise settled with a failure.
func (p *Promise[T]) IsRejected() bool { return p.Future().IsRejected() }

// TryGet returns the fulfillment value, if there is one yet.
func (p *Promise[T]) TryGet() (T, bool) { return p.Future().TryGet() }
