package future

import "context"

// Owner is the liveness capability consumed by every weak subscription.
// The library stores the handle opaquely and consults it only at firing
// time; a callback whose owner is no longer alive is skipped silently.
type Owner interface {
	Alive() bool
}

// A nil owner counts as always alive, so weak subscriptions degrade to
// strong ones when no lifetime is supplied.
func alive(owner Owner) bool {
	return nil == owner || owner.Alive()
}

// Lifetime is a host-side Owner that stays alive until Invalidate is
// called. Embed one in an object whose teardown should cancel its
// pending reactions.
type Lifetime struct {
	invalidated bool
}

func NewLifetime() *Lifetime {
	return &Lifetime{}
}

func (l *Lifetime) Alive() bool {
	return nil != l && !l.invalidated
}

// Invalidate permanently marks the lifetime dead. Reactions bound to it
// that have not fired yet never will; their continuations still settle.
func (l *Lifetime) Invalidate() {
	l.invalidated = true
}

type contextOwner struct {
	ctx context.Context
}

// ContextOwner adapts a context.Context into an Owner: alive until the
// context is done.
func ContextOwner(ctx context.Context) Owner {
	return contextOwner{ctx: ctx}
}

func (o contextOwner) Alive() bool {
	return nil == o.ctx.Err()
}
