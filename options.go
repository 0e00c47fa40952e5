// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

// Options holds the process-wide configuration. It is written once during
// flag parsing, before any evaluation starts.
type Options struct {
	preferSI  bool    // print SI numeric with compound dimension
	maxDigits float64 // log10 threshold before results degrade to approximations
	precision uint    // big.Float mantissa width in bits
	verbose   bool
}

var options = Options{
	maxDigits: 1e6,
	precision: 256,
}
