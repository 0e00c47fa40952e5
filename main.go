// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "superqalc \"<expression>\"",
	Short: "Arbitrary-precision calculator with physical units",
	Long: `superqalc evaluates arithmetic expressions with physical units,
carrying an arbitrary-precision numeric and an SI dimension vector
through every operation. Results too large for the digit budget degrade
to a scientific-notation approximation instead of exhausting memory.

Examples:
  superqalc "5 m + 12 cm"
  superqalc "100 km to m"
  superqalc "9^9^9"
  superqalc --si "1 N * 2 m"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&options.preferSI, "si", false, "print the SI numeric with compound dimension")
	rootCmd.Flags().Float64Var(&options.maxDigits, "max-digits", options.maxDigits, "log10 threshold before results become approximate")
	rootCmd.Flags().UintVar(&options.precision, "precision", options.precision, "float mantissa width in bits")
	rootCmd.Flags().BoolVarP(&options.verbose, "verbose", "v", false, "trace tokens, postfix and evaluation to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	initLogging(options.verbose)
	defer logger.Sync()

	expr := args[0]

	tokens := tokenize(expr)
	sugar.Debugf("tokenized %d tokens", len(tokens))

	rpn, err := shuntingYard(tokens)
	if err != nil {
		return err
	}
	sugar.Debugf("postfix: %v", rpn)

	// Evaluation-time failures are results, not process failures: they
	// print on stdout and the process still exits 0.
	result, err := evalPostfix(rpn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	if result.approx {
		fmt.Println("warning: Floating point overflow")
		fmt.Printf("%s ≈ %s\n", expr, result.text)
	} else {
		fmt.Println(result.text)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
