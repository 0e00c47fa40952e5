// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"

	"superqalc/enumerable"
)

// Result of a successful evaluation. approx marks results that degraded
// to a scientific-notation approximation via the overflow escape.
type Result struct {
	text   string
	approx bool
}

// maxExactExponent caps the exact integer-power path; anything above it
// would be caught by the digit estimate anyway except for bases 0 and 1.
const maxExactExponent = 1000000

// relTolerance is the relative factor tolerance when recovering the
// target unit of a 'to' conversion.
const relTolerance = 1e-12

type Stack struct {
	values []Value
}

func newStack() *Stack {
	return &Stack{values: []Value{}}
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) size() int {
	return len(s.values)
}

// pop2 removes the two topmost values, right first.
func (s *Stack) pop2(op string) (left, right Value, err error) {
	if len(s.values) < 2 {
		return Value{}, Value{}, evalErrorf(ErrStackUnbalanced, "Stack underflow for '%s'", op)
	}
	right = s.values[len(s.values)-1]
	left = s.values[len(s.values)-2]
	s.values = s.values[:len(s.values)-2]
	return left, right, nil
}

// numberToken splits a NUM token on the '#' separator into its literal
// and optional glued unit suffix and builds the Value.
func numberToken(tk Token) (Value, error) {
	numstr, unitname, _ := strings.Cut(tk.text, "#")
	return newValueFrom(numstr, unitname)
}

// approxFromLog10 renders 10^log10v as "<mantissa>E<exponent>" with the
// mantissa in 9-significant-digit scientific notation.
func approxFromLog10(log10v float64) string {
	if math.IsNaN(log10v) || math.IsInf(log10v, 0) {
		return "0"
	}
	ip, frac := math.Modf(log10v)
	mant := math.Pow(10, frac)
	return fmt.Sprintf("%.9eE%d", mant, int64(ip))
}

// evalPostfix runs the stack machine over the postfix token stream and
// formats the final value. Evaluation failures come back as typed errors;
// they are outcomes, not crashes.
func evalPostfix(rpn []Token) (Result, error) {
	s := newStack()

	for _, tk := range rpn {
		switch tk.typ {
		case NUM:
			v, err := numberToken(tk)
			if err != nil {
				return Result{}, err
			}
			s.push(v)

		case IDENT:
			// a bare unit evaluates as 1 of that unit
			v, err := newValueFrom("1", tk.text)
			if err != nil {
				return Result{}, err
			}
			s.push(v)

		case TO:
			res, err := applyTo(s)
			if err != nil {
				return Result{}, err
			}
			return res, nil

		case OP:
			done, res, err := applyOp(s, tk.text)
			if err != nil {
				return Result{}, err
			}
			if done {
				return res, nil
			}

		default:
			return Result{}, evalErrorf(ErrStackUnbalanced, "Unexpected token in postfix stream")
		}

		sugar.Debugf("eval %q: stack depth %d", tk.text, s.size())
	}

	if s.size() != 1 {
		return Result{}, evalErrorf(ErrStackUnbalanced, "Invalid expression (stack size %d)", s.size())
	}

	return Result{text: toHuman(s.values[0], options.preferSI)}, nil
}

// applyTo converts the value below the top of stack into the unit that the
// top of stack was built from. The right operand is the Value 1*unit an
// identifier pushed; the original unit is recovered from the registry by
// matching dimension and factor.
func applyTo(s *Stack) (Result, error) {
	val, unitv, err := s.pop2("to")
	if err != nil {
		return Result{}, err
	}

	unitFactor := unitv.number.estimateMagnitude()
	target, ok := enumerable.Find(units().withDim(unitv.dim), func(u *Unit) bool {
		f, _ := u.factor.Float64()
		return math.Abs(f-unitFactor)/math.Max(1, math.Abs(unitFactor)) < relTolerance
	})
	if !ok {
		return Result{}, evalErrorf(ErrUnknownTargetUnit, "Unknown target unit for 'to'")
	}

	if val.dim != target.dim {
		return Result{}, evalErrorf(ErrUnitMismatch, "Unit mismatch for 'to'")
	}

	targetFactor, _ := target.factor.Float64()
	converted := val.number.estimateMagnitude() / targetFactor
	return Result{text: fmt.Sprintf("%.12f %s", converted, target.name)}, nil
}

// applyOp executes one arithmetic operator. done is set when the operator
// short-circuits the whole evaluation with a finished (approximate) result.
func applyOp(s *Stack, op string) (done bool, res Result, err error) {
	switch op {
	case "+", "-":
		left, right, err := s.pop2(op)
		if err != nil {
			return false, Result{}, err
		}
		if left.dim != right.dim {
			return false, Result{}, evalErrorf(ErrUnitMismatch, "Unit mismatch for %s", op)
		}
		s.push(Value{number: left.number.floatOp(right.number, op), dim: left.dim})

	case "*":
		left, right, err := s.pop2(op)
		if err != nil {
			return false, Result{}, err
		}
		d := left.dim.Add(right.dim)
		if left.number.isInt() && right.number.isInt() && d.IsZero() {
			s.push(Value{number: left.number.mulInt(right.number), dim: d})
		} else {
			s.push(Value{number: left.number.floatOp(right.number, op), dim: d})
		}

	case "/":
		left, right, err := s.pop2(op)
		if err != nil {
			return false, Result{}, err
		}
		if right.number.isZero() {
			return false, Result{}, evalErrorf(ErrDivByZero, "Division by zero")
		}
		s.push(Value{number: left.number.floatOp(right.number, op), dim: left.dim.Sub(right.dim)})

	case "^":
		return applyPower(s)

	default:
		return false, Result{}, evalErrorf(ErrUnknownOperator, "Unknown operator '%s'", op)
	}

	return false, Result{}, nil
}

// applyPower implements the exponentiation discipline: estimate the
// base-10 size of the result first and escape to an approximation when it
// would blow past the digit budget; only then compute exactly.
func applyPower(s *Stack) (done bool, res Result, err error) {
	basev, expv, err := s.pop2("^")
	if err != nil {
		return false, Result{}, err
	}

	if !expv.dim.IsZero() {
		return false, Result{}, evalErrorf(ErrNonUnitlessExponent, "Exponent must be unitless")
	}

	expInt := expv.number.isInt()
	var e int64
	if expInt {
		if digits := expv.number.digitCount(); digits > 18 {
			text := fmt.Sprintf("%s^(1E%d)", toHuman(basev, options.preferSI), digits-1)
			return true, Result{text: text, approx: true}, nil
		}
		e = expv.number.i.Int64()
	}

	var expEstimate float64
	if expInt {
		expEstimate = float64(e)
	} else {
		expEstimate, _ = expv.number.f.Float64()
	}

	est := expEstimate * basev.number.estimateLog10()
	if math.IsNaN(est) || math.IsInf(est, 0) || est > options.maxDigits {
		sugar.Debugf("overflow escape: estimated %.3g digits", est)
		return true, Result{text: approxFromLog10(est), approx: true}, nil
	}

	if basev.number.isInt() && expInt && e >= 0 && e <= maxExactExponent {
		n := Number{i: newInt().Exp(basev.number.i, big.NewInt(e), nil)}
		s.push(Value{number: n, dim: basev.dim.MulScalar(int(e))})
		return false, Result{}, nil
	}

	base := basev.number.promote()
	if base.Sign() <= 0 {
		return false, Result{}, evalErrorf(ErrInvalidPower, "Invalid power of non-positive base")
	}

	// exp(exponent * log(base)) at the configured precision
	l := bigfloat.Log(base)
	l.Mul(l, expv.number.promote())
	n := Number{f: bigfloat.Exp(l)}

	// integer exponents scale the dimension; fractional ones copy it
	d := basev.dim
	if expInt {
		d = basev.dim.MulScalar(int(e))
	}
	s.push(Value{number: n, dim: d})
	return false, Result{}, nil
}
