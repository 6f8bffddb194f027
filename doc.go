// Package future provides a single-threaded promise/future coordination
// primitive.
//
// A Promise is the exclusive-write side of an eventual outcome: whoever
// holds it is responsible for calling Fulfill or Throw exactly once. A
// Future is the shared-read side: any number of holders may subscribe
// reactions with Then and Catch, which either queue (while the outcome is
// still pending) or fire immediately (if it has already settled).
//
// Every subscription returns a new Future representing "after this
// reaction ran", so calls compose into left-to-right pipelines:
//
//	p := future.NewPromise[int]()
//	p.Future().
//		Then(func(v int) { fmt.Println("got", v) }).
//		ThenDo(func() { fmt.Println("and then") }).
//		Catch(func(err error) { fmt.Println("failed:", err) })
//	p.Fulfill(42)
//
// Settlement is strictly synchronous: Fulfill and Throw run all registered
// callbacks on the calling goroutine before returning, including recursive
// propagation into continuation futures. There is no executor, no
// background goroutine, and no locking; the package is meant to be driven
// from a single goroutine, the way a game loop or event loop drives its
// subsystems.
//
// Reactions can be bound to an owner's lifetime with the Weak variants: a
// callback whose owner is no longer alive is silently skipped, and the
// chain continues as if it had run. See Owner, Lifetime and ContextOwner.
//
// All and Any aggregate several futures into one. Transform and Chain
// build typed pipelines across payload types.
package future
