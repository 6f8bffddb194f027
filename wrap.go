package future

import "github.com/pkg/errors"

// Kind tags the payload families a host exposes through the erased
// handle surface. Each tag maps to one concrete payload type; narrowing
// an erased handle validates the match before any unchecked access.
type Kind string

const (
	KindVoid    = Kind("void")
	KindBool    = Kind("bool")
	KindInt     = Kind("int")
	KindFloat   = Kind("float")
	KindVec3    = Kind("vec3")
	KindString  = Kind("string")
	KindObject  = Kind("object")
	KindBools   = Kind("bools")
	KindInts    = Kind("ints")
	KindFloats  = Kind("floats")
	KindVec3s   = Kind("vec3s")
	KindStrings = Kind("strings")
	KindObjects = Kind("objects")
)

// Vec3 is the host's vector payload.
type Vec3 struct {
	X, Y, Z float64
}

// Object is the host's opaque object-handle payload. Objects carry their
// own liveness, so a fulfilled object payload can also serve as the owner
// of further weak subscriptions.
type Object interface {
	Owner
}

// MakePromiseOf creates an erased promise whose underlying state is typed
// by kind. An unknown kind is a reported violation yielding an invalid
// handle.
func MakePromiseOf(kind Kind) AnyPromise {
	switch kind {
	case KindVoid:
		return anyPromiseOf[Void]()
	case KindBool:
		return anyPromiseOf[bool]()
	case KindInt:
		return anyPromiseOf[int]()
	case KindFloat:
		return anyPromiseOf[float64]()
	case KindVec3:
		return anyPromiseOf[Vec3]()
	case KindString:
		return anyPromiseOf[string]()
	case KindObject:
		return anyPromiseOf[Object]()
	case KindBools:
		return anyPromiseOf[[]bool]()
	case KindInts:
		return anyPromiseOf[[]int]()
	case KindFloats:
		return anyPromiseOf[[]float64]()
	case KindVec3s:
		return anyPromiseOf[[]Vec3]()
	case KindStrings:
		return anyPromiseOf[[]string]()
	case KindObjects:
		return anyPromiseOf[[]Object]()
	default:
		reportViolation("MakePromiseOf", errors.Wrapf(ErrTypeMismatch, "unknown kind %q", kind))
		return AnyPromise{}
	}
}

func anyPromiseOf[T any]() AnyPromise {
	return AnyPromise{state: newState[T]()}
}

// FulfillWith settles an erased promise with a typed value after
// validating that the underlying state was created with that type. A
// mismatch or empty handle is a reported violation and a no-op.
func FulfillWith[T any](p AnyPromise, value T) {
	if nil == p.state {
		reportViolation("FulfillWith", ErrEmptyHandle)
		return
	}

	typed, ok := p.state.(*futureState[T])
	if !ok {
		reportViolation("FulfillWith", errors.Wrapf(ErrTypeMismatch,
			"holding %s", p.state.payloadName()))
		return
	}

	typed.fulfill(value)
}

// FulfillVoid settles an erased payload-less promise.
func FulfillVoid(p AnyPromise) {
	FulfillWith(p, Void{})
}
