// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// OptionF is the brand for the optional value shape.
type OptionF struct{}

// Option holds either one value (Some) or nothing (None).
// The zero value is None. Option[A] is Kind[OptionF, A].
type Option[A any] struct {
	ok    bool
	value A
}

func (Option[A]) Kind(OptionF, A) {}

// Some creates an Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or def if the Option is empty.
func (o Option[A]) GetOrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

// ToOption projects a Kind[OptionF, A] back to its concrete Option.
func ToOption[A any](k Kind[OptionF, A]) Option[A] {
	return Apply[Option[A]](k)
}

// OptionFunctor applies f to the held value, if any.
// None maps to None without calling f.
type OptionFunctor[A, B any] struct{}

func (OptionFunctor[A, B]) Map(fa Kind[OptionF, A], f func(A) B) Kind[OptionF, B] {
	o := ToOption(fa)
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}
