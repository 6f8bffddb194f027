package future

// Transform maps the eventual value of f through transform, producing a
// future of the new payload type. The transform runs synchronously when f
// fulfills (or immediately, if it already has); a rejection of f is
// forwarded to the returned future with the same reason. The callback is
// bound to owner's lifetime like any weak subscription.
func Transform[T, U any](f Future[T], owner Owner, transform func(T) U) Future[U] {
	next := newState[U]()

	f.WeakThen(owner, func(value T) {
		next.fulfill(transform(value))
	})
	f.WeakCatch(owner, func(reason error) {
		next.throw(reason)
	})

	return Future[U]{state: next}
}

// Chain sequences an asynchronous step after f: when f fulfills, step is
// invoked with the value to obtain an inner future, and the returned
// future settles with that inner future's outcome. Rejections from either
// stage are forwarded identically, so multi-step pipelines need no nested
// subscriptions at the call site.
func Chain[T, U any](f Future[T], owner Owner, step func(T) Future[U]) Future[U] {
	next := newState[U]()

	f.WeakThen(owner, func(value T) {
		inner := step(value)
		inner.WeakThen(owner, func(result U) { next.fulfill(result) })
		inner.WeakCatch(owner, func(reason error) { next.throw(reason) })
	})
	f.WeakCatch(owner, func(reason error) {
		next.throw(reason)
	})

	return Future[U]{state: next}
}
