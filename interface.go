package future

// State describes where a future is in its lifecycle. A future starts
// Pending and makes at most one transition, to Fulfilled or Rejected;
// both are terminal.
type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// ThenHandler receives the fulfillment value.
type ThenHandler[T any] func(value T)

// VoidThenHandler reacts to fulfillment without looking at the value.
type VoidThenHandler func()

// CatchHandler receives the rejection reason.
type CatchHandler func(reason error)

// Resume is supplied by a host for latent call sites; the library invokes
// it once the awaited future has been fulfilled and the out-parameter has
// been populated. The library has no knowledge of what resuming means.
type Resume func()

// Thenable is the read-only state surface shared by AnyFuture and every
// typed Future.
type Thenable interface {
	State() State
	IsPending() bool
	IsFulfilled() bool
	IsRejected() bool
	Reason() error
}
