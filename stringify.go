// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type, including named types
// whose underlying type is one.
type Number interface {
	constraints.Integer | constraints.Float
}

// FormatNumber renders n in plain decimal notation.
// Integers are rendered in base 10. Floats use the shortest decimal that
// reads back to the same value, without an exponent.
func FormatNumber[N Number](n N) string {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
}

// Stringify returns a function that renders every number held by a
// container of shape F as text, keeping the shape. It knows nothing about
// F: all structural work is delegated to fn.
//
//	toText := kind.Stringify[kind.OptionF, int](kind.OptionFunctor[int, string]{})
//	kind.ToOption(toText(kind.Some(7))) // Some("7")
func Stringify[F any, N Number](fn Functor[F, N, string]) func(Kind[F, N]) Kind[F, string] {
	return func(fa Kind[F, N]) Kind[F, string] {
		return fn.Map(fa, FormatNumber[N])
	}
}

// StringifySeq renders a sequence of ints as a sequence of decimal strings.
var StringifySeq = Stringify[SeqF, int](SeqFunctor[int, string]{})
