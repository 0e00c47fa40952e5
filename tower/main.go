// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// tower rewrites a right-associative exponent tower of "nice" numbers
// into compact scientific form: a power of ten or an all-nines run
// becomes 1E<k>, everything else echoes unchanged.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func isAllNines(num string) bool {
	for i := 0; i < len(num); i++ {
		if num[i] != '9' {
			return false
		}
	}
	return len(num) > 0
}

// isPowerOfTen reports whether num is "1" followed only by zeros.
func isPowerOfTen(num string) bool {
	if len(num) == 0 || num[0] != '1' {
		return false
	}
	for i := 1; i < len(num); i++ {
		if num[i] != '0' {
			return false
		}
	}
	return true
}

// convertIfSpecial rewrites a single tower term. Leading zeros are
// ignored for the check but preserved when the term is echoed.
func convertIfSpecial(num string) string {
	trimmed := strings.TrimLeft(num, "0")
	if trimmed == "" {
		return "0"
	}

	if isPowerOfTen(trimmed) {
		return fmt.Sprintf("1E%d", len(trimmed)-1)
	}
	if isAllNines(trimmed) {
		return fmt.Sprintf("1E%d", len(trimmed))
	}

	return num
}

// formatTower re-nests the rewritten terms right-associatively:
// a^b^c becomes A^(B^(C)).
func formatTower(terms []string) string {
	if len(terms) == 1 {
		return convertIfSpecial(terms[0])
	}
	return convertIfSpecial(terms[0]) + "^(" + formatTower(terms[1:]) + ")"
}

// parseTower splits on '^'. Parentheses from a previous formatting pass
// are stripped from each term, so the formatter is idempotent.
func parseTower(expr string) []string {
	parts := strings.Split(expr, "^")
	for i, part := range parts {
		parts[i] = strings.Trim(part, "()")
	}
	return parts
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	expr := strings.TrimSpace(scanner.Text())
	fmt.Println(formatTower(parseTower(expr)))
}
