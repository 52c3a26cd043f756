// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// ContF is the brand for continuations with a fixed answer type R.
type ContF[R any] struct{}

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
// Cont[R, A] is Kind[ContF[R], A].
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

func (Cont[R, A]) Kind(ContF[R], A) {}

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Bind sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// ToCont projects a Kind[ContF[R], A] back to its concrete continuation.
func ToCont[R, A any](k Kind[ContF[R], A]) Cont[R, A] {
	return Apply[Cont[R, A]](k)
}

// ContFunctor maps the value a continuation produces.
// Mapping is lazy: f runs each time the resulting computation passes a
// value to its continuation, never at Map time.
type ContFunctor[R, A, B any] struct{}

func (ContFunctor[R, A, B]) Map(fa Kind[ContF[R], A], f func(A) B) Kind[ContF[R], B] {
	m := ToCont(fa)
	return Cont[R, B](func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	})
}
