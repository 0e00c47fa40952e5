// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"
)

// Dimension is the exponent vector over the seven SI base dimensions,
// in canonical order: length, mass, time, current, temperature,
// amount of substance, luminous intensity.
type Dimension [7]int

// baseNames maps each dimension index to its SI base unit symbol.
var baseNames = [7]string{"m", "kg", "s", "A", "K", "mol", "cd"}

func (d Dimension) Add(other Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + other[i]
	}
	return r
}

func (d Dimension) Sub(other Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] - other[i]
	}
	return r
}

// MulScalar scales every exponent; used for integer powers.
func (d Dimension) MulScalar(k int) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] * k
	}
	return r
}

func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// String renders the compound form, numerator terms joined with '*' and
// negated exponents collected after a '/': (2,1,-2,...) -> "m^2*kg/s^2".
// An empty numerator renders as "1".
func (d Dimension) String() string {
	var num, den []string
	for i, p := range d {
		switch {
		case p == 1:
			num = append(num, baseNames[i])
		case p > 1:
			num = append(num, fmt.Sprintf("%s^%d", baseNames[i], p))
		case p == -1:
			den = append(den, baseNames[i])
		case p < -1:
			den = append(den, fmt.Sprintf("%s^%d", baseNames[i], -p))
		}
	}

	result := "1"
	if len(num) > 0 {
		result = strings.Join(num, "*")
	}
	if len(den) > 0 {
		result += "/" + strings.Join(den, "*")
	}
	return result
}
