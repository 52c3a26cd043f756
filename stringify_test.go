// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"math"
	"slices"
	"testing"

	"code.hybscloud.com/kind"
)

type celsius int8

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int", kind.FormatNumber(42), "42"},
		{"negative", kind.FormatNumber(-5), "-5"},
		{"zero", kind.FormatNumber(0), "0"},
		{"int64 min", kind.FormatNumber(int64(math.MinInt64)), "-9223372036854775808"},
		{"uint64 max", kind.FormatNumber(uint64(math.MaxUint64)), "18446744073709551615"},
		{"named int8", kind.FormatNumber(celsius(-40)), "-40"},
		{"byte", kind.FormatNumber(byte(255)), "255"},
		{"float64 fraction", kind.FormatNumber(1.5), "1.5"},
		{"float64 integral", kind.FormatNumber(3.0), "3"},
		{"float64 no exponent", kind.FormatNumber(1e21), "1000000000000000000000"},
		{"float64 small", kind.FormatNumber(0.000001), "0.000001"},
		{"float32 shortest", kind.FormatNumber(float32(0.1)), "0.1"},
		{"float64 shortest", kind.FormatNumber(0.1), "0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestStringifySeq(t *testing.T) {
	tests := []struct {
		name string
		in   kind.Seq[int]
		want kind.Seq[string]
	}{
		{"demo", kind.Seq[int]{1, 2, 3}, kind.Seq[string]{"1", "2", "3"}},
		{"empty", kind.Seq[int]{}, kind.Seq[string]{}},
		{"signs", kind.Seq[int]{-5, 0, 42}, kind.Seq[string]{"-5", "0", "42"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.in)
			got := kind.ToSeq(kind.StringifySeq(tt.in))
			if len(got) != len(tt.in) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.in))
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if !slices.Equal(tt.in, before) {
				t.Fatalf("input modified: %v, was %v", tt.in, before)
			}
		})
	}
}

func TestStringifyFloatSeq(t *testing.T) {
	toText := kind.Stringify[kind.SeqF, float64](kind.SeqFunctor[float64, string]{})
	got := kind.ToSeq(toText(kind.Seq[float64]{0.5, -2, 100.25}))
	if !slices.Equal(got, kind.Seq[string]{"0.5", "-2", "100.25"}) {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyOption(t *testing.T) {
	toText := kind.Stringify[kind.OptionF, int](kind.OptionFunctor[int, string]{})

	if v, ok := kind.ToOption(toText(kind.Some(7))).Get(); !ok || v != "7" {
		t.Fatalf("Some: got (%q, %v), want (\"7\", true)", v, ok)
	}
	if kind.ToOption(toText(kind.None[int]())).IsSome() {
		t.Fatal("None: expected None")
	}
}

func TestStringifyEither(t *testing.T) {
	toText := kind.Stringify[kind.EitherF[string], float64](kind.EitherFunctor[string, float64, string]{})

	right := kind.ToEither(toText(kind.Right[string](2.5)))
	if v, ok := right.GetRight(); !ok || v != "2.5" {
		t.Fatalf("Right: got (%q, %v), want (\"2.5\", true)", v, ok)
	}

	left := kind.ToEither(toText(kind.Left[string, float64]("bad input")))
	if e, ok := left.GetLeft(); !ok || e != "bad input" {
		t.Fatalf("Left: got (%q, %v), want (\"bad input\", true)", e, ok)
	}
}

func TestStringifyPair(t *testing.T) {
	toText := kind.Stringify[kind.PairF[string], uint](kind.PairFunctor[string, uint, string]{})
	got := kind.ToPair(toText(kind.Pair[string, uint]{Fst: "port", Snd: 8080}))
	if got.Fst != "port" || got.Snd != "8080" {
		t.Fatalf("got %+v, want {Fst:port Snd:8080}", got)
	}
}

func TestStringifyCont(t *testing.T) {
	toText := kind.Stringify[kind.ContF[string], int](kind.ContFunctor[string, int, string]{})
	got := kind.Run(kind.ToCont(toText(kind.Return[string](-12))))
	if got != "-12" {
		t.Fatalf("got %q, want %q", got, "-12")
	}
}

func TestStringifyCustomFunctor(t *testing.T) {
	// A reversing descriptor: Stringify follows whatever shape semantics it is given.
	reverse := kind.FunctorFunc[kind.SeqF, int, string](
		func(fa kind.Kind[kind.SeqF, int], f func(int) string) kind.Kind[kind.SeqF, string] {
			s := kind.ToSeq(fa)
			out := make(kind.Seq[string], 0, len(s))
			for i := len(s) - 1; i >= 0; i-- {
				out = append(out, f(s[i]))
			}
			return out
		})

	got := kind.ToSeq(kind.Stringify[kind.SeqF, int](reverse)(kind.Seq[int]{1, 2, 3}))
	if !slices.Equal(got, kind.Seq[string]{"3", "2", "1"}) {
		t.Fatalf("got %q, want [3 2 1]", got)
	}
}
