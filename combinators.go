package future

// All aggregates futures into one future that fulfills once every member
// has fulfilled, and rejects as soon as the first member rejects, with
// that member's reason. Later rejections are ignored (first-error-wins),
// and stragglers are left to settle on their own. An empty input fulfills
// immediately.
func All(futures ...AnyFuture) Future[Void] {
	result := newState[Void]()

	remaining := len(futures)
	if 0 == remaining {
		result.fulfill(Void{})
		return Future[Void]{state: result}
	}

	failed := false

	onFulfilled := func() {
		remaining--
		if 0 == remaining {
			result.fulfill(Void{})
		}
	}
	onRejected := func(reason error) {
		if failed {
			return
		}
		failed = true
		result.throw(reason)
	}

	for _, member := range futures {
		member.ThenDo(onFulfilled)
		member.Catch(onRejected)
	}

	return Future[Void]{state: result}
}

// Any aggregates futures into one future that fulfills as soon as the
// first member fulfills (later fulfillments are ignored), and rejects
// with ErrAllRejected only once every member has rejected. An empty input
// fulfills immediately — vacuous success, there being no competitor left
// to fail.
func Any(futures ...AnyFuture) Future[Void] {
	result := newState[Void]()

	remainingFailures := len(futures)
	if 0 == remainingFailures {
		result.fulfill(Void{})
		return Future[Void]{state: result}
	}

	completed := false

	onFulfilled := func() {
		if completed {
			return
		}
		completed = true
		result.fulfill(Void{})
	}
	onRejected := func(error) {
		remainingFailures--
		if 0 == remainingFailures {
			result.throw(ErrAllRejected)
		}
	}

	for _, member := range futures {
		member.ThenDo(onFulfilled)
		member.Catch(onRejected)
	}

	return Future[Void]{state: result}
}
