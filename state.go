package future

// futureState is the mutable state machine behind every Promise/Future
// pair: the outcome, the registered reactions, and the lazily-created
// continuation state that subscriptions hand back.
//
// It is mutated only from the goroutine driving the promise; there is no
// locking. Settlement runs every registered callback synchronously on the
// caller's stack, then propagates into the continuation, then clears the
// callback queues. Callbacks registered on an already-settled state fire
// immediately instead of queuing, so re-entrant registration during
// settlement is never lost.
type futureState[T any] struct {
	state  State
	result T
	reason error

	thenCallbacks     []ThenHandler[T]
	voidThenCallbacks []VoidThenHandler
	catchCallbacks    []CatchHandler

	// Shared by every subscription on this state; created on first use.
	continuation *futureState[T]
}

func newState[T any]() *futureState[T] {
	return &futureState[T]{state: StatePending}
}

// fulfill transitions Pending -> Fulfilled and drives the reactions.
// Calling it on a settled state is a contract violation: reported, then
// ignored, so the first outcome always wins.
func (s *futureState[T]) fulfill(value T) {
	if StatePending != s.state {
		reportViolation("fulfill", ErrAlreadySettled)
		return
	}

	s.result = value
	s.state = StateFulfilled
	s.executeThenCallbacks()
}

// throw transitions Pending -> Rejected and drives the catch reactions.
func (s *futureState[T]) throw(reason error) {
	if StatePending != s.state {
		reportViolation("throw", ErrAlreadySettled)
		return
	}

	s.reason = reason
	s.state = StateRejected
	s.executeCatchCallbacks()
}

func (s *futureState[T]) executeThenCallbacks() {
	value := s.result

	// Snapshot: a continuation created by a callback running below is
	// settled on creation (see lazyContinuation) and must not be settled
	// a second time here.
	continuation := s.continuation

	for _, callback := range s.thenCallbacks {
		callback(value)
	}
	for _, callback := range s.voidThenCallbacks {
		callback()
	}

	if nil != continuation {
		continuation.fulfill(value)
	}

	s.clearCallbacks()
}

func (s *futureState[T]) executeCatchCallbacks() {
	reason := s.reason

	continuation := s.continuation

	for _, callback := range s.catchCallbacks {
		callback(reason)
	}

	if nil != continuation {
		continuation.throw(reason)
	}

	s.clearCallbacks()
}

// Callbacks are one-shot; once a settlement has delivered them they are
// dropped so captured values can be collected.
func (s *futureState[T]) clearCallbacks() {
	s.thenCallbacks = nil
	s.voidThenCallbacks = nil
	s.catchCallbacks = nil
}

// addThen queues the callback while Pending, fires it immediately if the
// state is already Fulfilled, and skips it if Rejected. It always returns
// the continuation state, which is what makes subscriptions chain
// left-to-right instead of fanning out from the original state.
func (s *futureState[T]) addThen(callback ThenHandler[T]) *futureState[T] {
	switch s.state {
	case StatePending:
		s.thenCallbacks = append(s.thenCallbacks, callback)
	case StateFulfilled:
		callback(s.result)
	default:
		// rejected: nothing to deliver
	}

	return s.lazyContinuation()
}

func (s *futureState[T]) addVoidThen(callback VoidThenHandler) *futureState[T] {
	switch s.state {
	case StatePending:
		s.voidThenCallbacks = append(s.voidThenCallbacks, callback)
	case StateFulfilled:
		callback()
	default:
		// rejected: nothing to deliver
	}

	return s.lazyContinuation()
}

func (s *futureState[T]) addCatch(callback CatchHandler) *futureState[T] {
	switch s.state {
	case StatePending:
		s.catchCallbacks = append(s.catchCallbacks, callback)
	case StateRejected:
		callback(s.reason)
	default:
		// fulfilled: nothing to deliver
	}

	return s.lazyContinuation()
}

// lazyContinuation returns the shared continuation state, creating it on
// first use. A continuation created after its parent already settled is
// settled immediately with the parent's outcome, so late subscriptions
// chain exactly like early ones.
func (s *futureState[T]) lazyContinuation() *futureState[T] {
	if nil == s.continuation {
		s.continuation = newState[T]()

		switch s.state {
		case StateFulfilled:
			s.continuation.fulfill(s.result)
		case StateRejected:
			s.continuation.throw(s.reason)
		}
	}

	return s.continuation
}
