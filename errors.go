// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"errors"
	"fmt"
)

// ErrKind categorizes evaluation failures so callers and tests can
// distinguish them without parsing messages.
type ErrKind string

const (
	ErrParenMismatch       ErrKind = "ParenMismatch"
	ErrUnknownUnit         ErrKind = "UnknownUnit"
	ErrUnitMismatch        ErrKind = "UnitMismatch"
	ErrNonUnitlessExponent ErrKind = "NonUnitlessExponent"
	ErrDivByZero           ErrKind = "DivByZero"
	ErrUnknownTargetUnit   ErrKind = "UnknownTargetUnit"
	ErrStackUnbalanced     ErrKind = "StackUnbalanced"
	ErrNumberParse         ErrKind = "NumberParseError"
	ErrInvalidPower        ErrKind = "InvalidPower"
	ErrUnknownOperator     ErrKind = "UnknownOperator"
)

// EvalError is an evaluation-time failure. Its message is the user-facing
// diagnostic, printed after an "Error: " prefix on stdout.
type EvalError struct {
	Kind    ErrKind
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

func evalErrorf(kind ErrKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// kindOf extracts the ErrKind from an error chain, or "" for non-eval errors.
func kindOf(err error) ErrKind {
	var e *EvalError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
