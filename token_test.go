// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{"5m", []Token{{NUM, "5#m"}}},
		{"5 m", []Token{{NUM, "5"}, {IDENT, "m"}}},
		{"12cm", []Token{{NUM, "12#cm"}}},
		{"100km to m", []Token{{NUM, "100#km"}, {TO, "to"}, {IDENT, "m"}}},
		{"2^10", []Token{{NUM, "2"}, {OP, "^"}, {NUM, "10"}}},
		{".5 + 2e-3", []Token{{NUM, ".5"}, {OP, "+"}, {NUM, "2e-3"}}},
		{"1.5E+7", []Token{{NUM, "1.5E+7"}}},
		{"10/2", []Token{{NUM, "10"}, {OP, "/"}, {NUM, "2"}}},
		{"m/s", []Token{{IDENT, "m/s"}}},
		{"(1+2)*3", []Token{{LP, "("}, {NUM, "1"}, {OP, "+"}, {NUM, "2"}, {RP, ")"}, {OP, "*"}, {NUM, "3"}}},
		{"a @ b", []Token{{IDENT, "a"}, {OP, "@"}, {IDENT, "b"}}},
		{"  ", nil},
		{"3 m + 4 s", []Token{{NUM, "3"}, {IDENT, "m"}, {OP, "+"}, {NUM, "4"}, {IDENT, "s"}}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := tokenize(test.input)
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("tokenize(%q) = %v, want %v", test.input, got, test.expected)
			}
		})
	}
}

func TestAttachUnits(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{"5 m", []Token{{NUM, "5#m"}}},
		{"5m", []Token{{NUM, "5#m"}}},
		{"100 km to m", []Token{{NUM, "100#km"}, {TO, "to"}, {IDENT, "m"}}},
		{"3 m + 4 s", []Token{{NUM, "3#m"}, {OP, "+"}, {NUM, "4#s"}}},
		{"m to km", []Token{{IDENT, "m"}, {TO, "to"}, {IDENT, "km"}}},
		{"2 + 3", []Token{{NUM, "2"}, {OP, "+"}, {NUM, "3"}}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := attachUnits(tokenize(test.input))
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("attachUnits(%q) = %v, want %v", test.input, got, test.expected)
			}
		})
	}
}
