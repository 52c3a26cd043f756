// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// PairF is the brand for pairs with a fixed first component type L.
type PairF[L any] struct{}

// Pair holds two values. Pair[L, A] is Kind[PairF[L], A]: mapping
// transforms Snd and keeps Fst.
type Pair[L, A any] struct {
	Fst L
	Snd A
}

func (Pair[L, A]) Kind(PairF[L], A) {}

// ToPair projects a Kind[PairF[L], A] back to its concrete Pair.
func ToPair[L, A any](k Kind[PairF[L], A]) Pair[L, A] {
	return Apply[Pair[L, A]](k)
}

// PairFunctor maps the second component.
type PairFunctor[L, A, B any] struct{}

func (PairFunctor[L, A, B]) Map(fa Kind[PairF[L], A], f func(A) B) Kind[PairF[L], B] {
	p := ToPair(fa)
	return Pair[L, B]{Fst: p.Fst, Snd: f(p.Snd)}
}
