package future

import "errors"

var (
	// ErrAlreadySettled reports a second Fulfill or Throw on a state that
	// has already left Pending. The call is a no-op beyond the report.
	ErrAlreadySettled = errors.New("future: already settled")

	// ErrEmptyHandle reports an operation on a zero-value Promise,
	// Future, AnyPromise or AnyFuture.
	ErrEmptyHandle = errors.New("future: empty handle")

	// ErrTypeMismatch reports narrowing an erased handle to a payload
	// type other than the one it was created with.
	ErrTypeMismatch = errors.New("future: wrong payload type")

	// ErrInvalidAccess is the reason carried by the shared terminal-error
	// future handed out after an empty-handle or wrong-type access.
	ErrInvalidAccess = errors.New("future: access error, data is either invalid or the wrong type")

	// ErrPromiseDestroyed is the reason injected when a still-pending
	// promise is closed before being fulfilled or failed.
	ErrPromiseDestroyed = errors.New("future: promise destroyed before it was fulfilled or failed")

	// ErrAllRejected is the reason Any settles with once every member
	// future has been rejected.
	ErrAllRejected = errors.New("future: all futures were rejected, can no longer complete")
)
