package future

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// anyState is the payload-independent slice of the state machine. Every
// futureState implements it, which is what lets erased handles, the
// combinators and the host glue operate without knowing the payload type.
type anyState interface {
	currentState() State
	rejectionReason() error
	addVoidThenErased(callback VoidThenHandler) anyState
	addCatchErased(callback CatchHandler) anyState
	throwErased(reason error)
	payloadName() string
}

func (s *futureState[T]) currentState() State {
	return s.state
}

func (s *futureState[T]) rejectionReason() error {
	return s.reason
}

func (s *futureState[T]) addVoidThenErased(callback VoidThenHandler) anyState {
	return s.addVoidThen(callback)
}

func (s *futureState[T]) addCatchErased(callback CatchHandler) anyState {
	return s.addCatch(callback)
}

func (s *futureState[T]) throwErased(reason error) {
	s.throw(reason)
}

func (s *futureState[T]) payloadName() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// AnyFuture is the type-erased read handle. It supports everything that
// does not need the payload type: state queries, void subscriptions and
// catch subscriptions. Narrow it back to a typed Future with As.
type AnyFuture struct {
	state anyState
}

// Valid reports whether the handle references a state.
func (f AnyFuture) Valid() bool {
	return nil != f.state
}

// State returns the current lifecycle state; empty handles read as
// Rejected.
func (f AnyFuture) State() State {
	if nil == f.state {
		return StateRejected
	}
	return f.state.currentState()
}

func (f AnyFuture) IsPending() bool   { return StatePending == f.State() }
func (f AnyFuture) IsFulfilled() bool { return StateFulfilled == f.State() }
func (f AnyFuture) IsRejected() bool  { return StateRejected == f.State() }

// Reason returns the rejection reason, or nil while not rejected.
func (f AnyFuture) Reason() error {
	if nil == f.state {
		return ErrInvalidAccess
	}
	return f.state.rejectionReason()
}

// ThenDo registers a void reaction to fulfillment and returns the erased
// continuation.
func (f AnyFuture) ThenDo(callback VoidThenHandler) AnyFuture {
	if nil == f.state {
		reportViolation("AnyFuture.ThenDo", ErrEmptyHandle)
		return errorFuture[Void]().Any()
	}
	return AnyFuture{state: f.state.addVoidThenErased(callback)}
}

// Catch registers a reaction to rejection and returns the erased
// continuation.
func (f AnyFuture) Catch(callback CatchHandler) AnyFuture {
	if nil == f.state {
		reportViolation("AnyFuture.Catch", ErrEmptyHandle)
		return errorFuture[Void]().Any()
	}
	return AnyFuture{state: f.state.addCatchErased(callback)}
}

// WeakThenDo is ThenDo bound to owner's lifetime.
func (f AnyFuture) WeakThenDo(owner Owner, callback VoidThenHandler) AnyFuture {
	return f.ThenDo(func() {
		if !alive(owner) {
			return
		}
		callback()
	})
}

// WeakCatch is Catch bound to owner's lifetime.
func (f AnyFuture) WeakCatch(owner Owner, callback CatchHandler) AnyFuture {
	return f.Catch(func(reason error) {
		if !alive(owner) {
			return
		}
		callback(reason)
	})
}

// As narrows an erased future to the payload type it was created with.
// Narrowing to any other type is a reported violation and yields the
// shared, permanently-rejected terminal-error future for U, so downstream
// chains behave deterministically instead of reading garbage.
func As[U any](f AnyFuture) Future[U] {
	if nil == f.state {
		reportViolation("As", ErrEmptyHandle)
		return errorFuture[U]()
	}

	typed, ok := f.state.(*futureState[U])
	if !ok {
		requested := reflect.TypeOf((*U)(nil)).Elem().String()
		reportViolation("As", errors.Wrapf(ErrTypeMismatch,
			"requested %s, holding %s", requested, f.state.payloadName()))
		return errorFuture[U]()
	}

	return Future[U]{state: typed}
}

// AnyPromise is the type-erased write handle, used by hosts that create
// and settle promises through the kind-tagged surface in wrap.go.
type AnyPromise struct {
	state anyState
}

// Valid reports whether the handle references a state.
func (p AnyPromise) Valid() bool {
	return nil != p.state
}

// Future returns the erased read view of the same state.
func (p AnyPromise) Future() AnyFuture {
	return AnyFuture{state: p.state}
}

// Throw settles the promise with a failure reason; rejection needs no
// payload type.
func (p AnyPromise) Throw(reason error) {
	if nil == p.state {
		reportViolation("AnyPromise.Throw", ErrEmptyHandle)
		return
	}
	p.state.throwErased(reason)
}

// errorStates holds one permanently-rejected state per payload type,
// created on first use and never mutated afterwards.
var errorStates sync.Map // reflect.Type -> anyState

// errorFuture returns the process-wide terminal-error future for T. It is
// always rejected with ErrInvalidAccess; subscribing a Catch to it fires
// immediately, keeping misuse observable without allocation churn.
func errorFuture[T any]() Future[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	if existing, ok := errorStates.Load(key); ok {
		return Future[T]{state: existing.(*futureState[T])}
	}

	created := newState[T]()
	created.state = StateRejected
	created.reason = ErrInvalidAccess

	actual, _ := errorStates.LoadOrStore(key, created)
	return Future[T]{state: actual.(*futureState[T])}
}
