// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Functor is the capability of mapping over the elements of a container
// of shape F without changing the shape.
//
// Go methods cannot declare their own type parameters, so the element
// types A and B are parameters of the descriptor. Each shape provides one
// zero-size generic descriptor type (e.g. [SeqFunctor]) that satisfies
// Functor[F, A, B] for every A and B.
//
// Implementations must:
//   - preserve the shape (length and order for sequences, presence for options)
//   - apply f exactly once per element
//   - leave fa unmodified and return a new value
type Functor[F, A, B any] interface {
	Map(fa Kind[F, A], f func(A) B) Kind[F, B]
}

// FunctorFunc adapts a plain map function into a [Functor].
//
// Example:
//
//	first := kind.FunctorFunc[kind.SeqF, int, int](
//		func(fa kind.Kind[kind.SeqF, int], f func(int) int) kind.Kind[kind.SeqF, int] {
//			s := kind.ToSeq(fa)
//			if len(s) == 0 {
//				return kind.Seq[int]{}
//			}
//			return kind.Seq[int]{f(s[0])}
//		})
type FunctorFunc[F, A, B any] func(fa Kind[F, A], f func(A) B) Kind[F, B]

// Map calls fn(fa, f).
func (fn FunctorFunc[F, A, B]) Map(fa Kind[F, A], f func(A) B) Kind[F, B] {
	return fn(fa, f)
}

// Lift turns f into a function over containers of shape F using fn.
func Lift[F, A, B any](fn Functor[F, A, B], f func(A) B) func(Kind[F, A]) Kind[F, B] {
	return func(fa Kind[F, A]) Kind[F, B] {
		return fn.Map(fa, f)
	}
}
