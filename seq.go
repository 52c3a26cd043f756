// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// SeqF is the brand for the ordered sequence shape.
type SeqF struct{}

// Seq is a growable ordered sequence. Seq[A] is Kind[SeqF, A].
type Seq[A any] []A

func (Seq[A]) Kind(SeqF, A) {}

// ToSeq projects a Kind[SeqF, A] back to its concrete sequence.
func ToSeq[A any](k Kind[SeqF, A]) Seq[A] {
	return Apply[Seq[A]](k)
}

// SeqFunctor maps over sequences element by element.
// The i-th output element is f applied to the i-th input element.
// The result is a freshly allocated sequence of the same length;
// a nil sequence maps to nil.
type SeqFunctor[A, B any] struct{}

func (SeqFunctor[A, B]) Map(fa Kind[SeqF, A], f func(A) B) Kind[SeqF, B] {
	s := ToSeq(fa)
	if s == nil {
		return Seq[B](nil)
	}
	out := make(Seq[B], len(s))
	for i, a := range s {
		out[i] = f(a)
	}
	return out
}
