// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is either an exact big integer or a high-precision float.
// Exactly one of the two fields is set.
type Number struct {
	i *big.Int
	f *big.Float
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(options.precision)
}

func newInt() *big.Int {
	return new(big.Int)
}

// parseNumber parses input as an exact integer unless forceFloat is set or
// the text carries a '.' or exponent marker. An integer parse that fails
// falls back to the float parser before reporting an error.
func parseNumber(input string, forceFloat bool) (Number, error) {
	looksFloat := strings.ContainsAny(input, ".eE")
	if !forceFloat && !looksFloat {
		if i, ok := newInt().SetString(input, 10); ok {
			return Number{i: i}, nil
		}
	}
	if f, ok := newFloat().SetString(input); ok {
		return Number{f: f}, nil
	}
	return Number{}, evalErrorf(ErrNumberParse, "Cannot parse number '%s'", input)
}

func (n Number) isInt() bool {
	return n.i != nil
}

func (n Number) isZero() bool {
	if n.i != nil {
		return n.i.Sign() == 0
	}
	return n.f.Sign() == 0
}

func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	if n.f != nil {
		return n.f.String()
	}
	return ""
}

// promote returns a fresh float copy at the configured precision; callers
// may mutate the result freely.
func (n Number) promote() *big.Float {
	if n.i != nil {
		return newFloat().SetInt(n.i)
	}
	return newFloat().Set(n.f)
}

// floatOp performs op with both operands promoted to floats. Division by
// zero must be excluded by the caller.
func (n Number) floatOp(other Number, op string) Number {
	left := n.promote()
	right := other.promote()

	switch op {
	case "+":
		left.Add(left, right)
	case "-":
		left.Sub(left, right)
	case "*":
		left.Mul(left, right)
	case "/":
		left.Quo(left, right)
	}

	return Number{f: left}
}

// mulInt multiplies two exact integers, preserving exactness.
func (n Number) mulInt(other Number) Number {
	return Number{i: newInt().Mul(n.i, other.i)}
}

// leadDigits is how many leading decimal digits feed the magnitude
// estimators; enough for float64 and cheap for million-digit integers.
const leadDigits = 18

// digitCount returns the number of decimal digits, sign excluded.
func (n Number) digitCount() int {
	s := n.i.String()
	return len(strings.TrimPrefix(s, "-"))
}

// estimateLog10 approximates log10 of the absolute value. It stays finite
// for any representable integer, however large; zero yields -Inf.
func (n Number) estimateLog10() float64 {
	if n.i != nil {
		if n.i.Sign() == 0 {
			return math.Inf(-1)
		}
		s := strings.TrimPrefix(n.i.String(), "-")
		take := min(leadDigits, len(s))
		lead, _ := strconv.ParseFloat(s[:take], 64)
		return float64(len(s)-1) + math.Log10(lead) - float64(take-1)
	}

	if n.f.Sign() == 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	exp := n.f.MantExp(mant)
	m, _ := mant.Float64()
	// |value| = |m| * 2^exp with |m| in [0.5, 1)
	return math.Log10(math.Abs(m)) + float64(exp)*math.Log10(2)
}

// estimateMagnitude approximates the value at native precision. Huge
// integers are synthesized from their leading digits and digit count so
// the conversion itself cannot overflow intermediate arithmetic.
func (n Number) estimateMagnitude() float64 {
	if n.i != nil {
		if n.i.Sign() == 0 {
			return 0
		}
		s := n.i.String()
		digits := strings.TrimPrefix(s, "-")
		take := min(leadDigits, len(digits))
		lead, _ := strconv.ParseFloat(digits[:take], 64)
		approx := lead * math.Pow(10, float64(len(digits)-take))
		if n.i.Sign() < 0 {
			approx = -approx
		}
		return approx
	}

	f, _ := n.f.Float64()
	return f
}
