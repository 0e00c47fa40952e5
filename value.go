// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

// Value is a Number in SI-coherent canonical form together with its
// physical dimension: "5 km" is stored as numeric 5000 with the length
// dimension. Arithmetic always updates numeric and dimension together.
type Value struct {
	number Number
	dim    Dimension
}

func (v Value) String() string {
	return v.number.String()
}

// newValueFrom builds a Value from a number literal and an optional unit
// name. The literal stays an exact integer only when it has no '.' or
// exponent marker and no unit is attached; attaching a unit promotes to
// float and multiplies in the unit's SI factor.
func newValueFrom(numstr, unitname string) (Value, error) {
	hasUnit := unitname != ""

	number, err := parseNumber(numstr, hasUnit)
	if err != nil {
		return Value{}, err
	}

	if !hasUnit {
		return Value{number: number}, nil
	}

	u := units().lookup(unitname)
	if u == nil {
		return Value{}, evalErrorf(ErrUnknownUnit, "Unknown unit: %s", unitname)
	}

	f := number.promote()
	f.Mul(f, u.factor)
	return Value{number: Number{f: f}, dim: u.dim}, nil
}
