package future

// Latent bindings connect a future to a host's paused call site: when the
// future fulfills, the value is written to the out-parameter and the
// host-supplied resume callback is invoked. A rejected future never
// resumes; hosts that need to observe failure subscribe a Catch on the
// same future.

// BindLatent resumes the call site with the fulfillment value. The
// subscription is bound to owner's lifetime; narrowing failures follow
// the usual terminal-error path, on which resume is never invoked.
func BindLatent[T any](f AnyFuture, owner Owner, out *T, resume Resume) {
	typed := As[T](f)

	typed.WeakThen(owner, func(value T) {
		*out = value
		resume()
	})
}

// BindLatentVoid resumes the call site on fulfillment of a payload-less
// future.
func BindLatentVoid(f AnyFuture, owner Owner, resume Resume) {
	typed := As[Void](f)

	typed.WeakThenDo(owner, func() {
		resume()
	})
}
