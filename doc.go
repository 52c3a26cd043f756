// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kind simulates higher-kinded polymorphism with Go generics.
//
// Go type parameters range over fully-applied types only: a function can be
// generic over []int or []string, but not over "slice of _" itself. This
// package encodes an unapplied type constructor as an ordinary brand type,
// so utilities can be written once for every container shape.
//
// # Encoding
//
//   - [Kind]: Kind[F, A] is "shape F applied to A", implemented by concrete
//     containers through a phantom Kind(F, A) method
//   - [Apply]: kind application, recovers the concrete type for Kind[F, A]
//
// A brand is a zero-size type. Brands with parameters fix the parts of a
// constructor that do not vary under mapping (e.g. the Left type of
// [EitherF]).
//
// # Capability
//
//   - [Functor]: Functor[F, A, B] maps Kind[F, A] to Kind[F, B] with f func(A) B
//   - [FunctorFunc]: Create a descriptor from a map function
//   - [Lift]: Curried mapping through a descriptor
//
// Go methods cannot have their own type parameters, so element types are
// parameters of the descriptor. Every shape ships one zero-size generic
// descriptor type that covers all instantiations.
//
// # Shapes
//
//   - [Seq] / [SeqF] / [SeqFunctor]: ordered sequence, element-wise in order
//   - [Option] / [OptionF] / [OptionFunctor]: maps only when a value is present
//   - [Either] / [EitherF] / [EitherFunctor]: maps Right, Left passes through
//   - [Pair] / [PairF] / [PairFunctor]: maps Snd, keeps Fst
//   - [Cont] / [ContF] / [ContFunctor]: maps the produced value lazily
//
// Projections: [ToSeq], [ToOption], [ToEither], [ToPair], [ToCont].
//
// # Stringify
//
// [Stringify] is written once against [Functor] and works for any shape:
//
//	toText := kind.Stringify[kind.SeqF, int](kind.SeqFunctor[int, string]{})
//	out := kind.ToSeq(toText(kind.Seq[int]{1, 2, 3}))
//	// out == kind.Seq[string]{"1", "2", "3"}
//
// [StringifySeq] is that instance for sequences of int. Numbers are
// rendered by [FormatNumber].
//
// # Misuse
//
// Passing a container of the wrong element type, or a descriptor for a
// different shape, is a compile error. [Apply] panics only if a foreign type
// claims a brand that belongs to another concrete container.
package kind
