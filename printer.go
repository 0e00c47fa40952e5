// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math"
	"strconv"
)

// nearIntTolerance snaps a scaled magnitude to integer display form.
const nearIntTolerance = 1e-12

// toHuman renders a final value. Dimensionless values print their numeric
// directly. Dimensioned values try the first registry unit of the same
// dimension whose scaled magnitude lands in [0.1, 1000); otherwise the
// SI numeric is printed with the compound dimension string.
func toHuman(v Value, preferSI bool) string {
	if v.dim.IsZero() {
		if v.number.isInt() {
			return v.number.i.String()
		}
		return v.number.f.Text('g', 12)
	}

	mag := v.number.estimateMagnitude()

	if !preferSI {
		for _, u := range units().withDim(v.dim) {
			factor, _ := u.factor.Float64()
			if factor == 0 {
				continue
			}
			scaled := mag / factor
			if abs := math.Abs(scaled); abs < 0.1 || abs >= 1000 {
				continue
			}
			if rounded := math.Round(scaled); math.Abs(scaled-rounded) < nearIntTolerance {
				return fmt.Sprintf("%d %s", int64(rounded), u.name)
			}
			return strconv.FormatFloat(scaled, 'g', 12, 64) + " " + u.name
		}
	}

	var numeric string
	if v.number.isInt() {
		numeric = strconv.FormatFloat(mag, 'g', 12, 64)
	} else {
		numeric = v.number.f.Text('g', 12)
	}
	return numeric + " " + v.dim.String()
}
