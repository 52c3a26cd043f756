// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Kind is the encoding of a type constructor applied to an element type.
// Kind[F, A] stands for "F of A", where F is a brand type naming the
// container shape (for example [SeqF]) and A is the element type.
//
// Go generics only quantify over fully-applied types, so a function cannot
// be generic over an unapplied constructor such as []_ directly. Instead,
// each concrete container type implements Kind for its own brand:
//
//	type SeqF struct{}
//	type Seq[A any] []A
//	func (Seq[A]) Kind(SeqF, A) {}
//
// Code that is generic over the shape is then written against Kind[F, A]
// with F as an ordinary type parameter. The Kind method is a phantom: it
// exists for type checking only and is never called.
type Kind[F, A any] interface {
	Kind(F, A)
}

// Apply is kind application: it recovers the concrete type T that the
// brand F assigns to the element type A.
//
//	s := kind.Apply[kind.Seq[int]](k) // k is Kind[SeqF, int]
//
// The pairing of F and A is checked at compile time through the constraint
// on T. Apply panics if k does not hold a T, which can only happen when
// some other type also claims the brand F.
func Apply[T Kind[F, A], F, A any](k Kind[F, A]) T {
	t, ok := k.(T)
	if !ok {
		mismatchedKind()
	}
	return t
}

func mismatchedKind() {
	panic("kind: value does not hold the concrete type for its brand")
}
