// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

import (
	"errors"
	"fmt"
)

// Codec errors
var (
	ErrMessageTooLong   = errors.New("message exceeds maximum line length")
	ErrGrammarMismatch  = errors.New("line does not match message grammar")
	ErrInvalidCharacter = errors.New("message contains CR, LF or NUL")
	ErrCommandMissing   = errors.New("message has no valid command")
	ErrInvalidCommand   = errors.New("command must be uppercase letters")
	ErrInvalidParam     = errors.New("only the final param may start with ':'")
)

// Grammar rules named by ParseError.
const (
	RuleLength     = "length"
	RuleTerminator = "terminator"
	RuleOrigin     = "origin"
	RuleCommand    = "command"
	RuleParams     = "params"
)

// ParseError reports which grammar rule a line failed.
type ParseError struct {
	Rule string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", err.Rule, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func mismatch(rule string) error {
	return &ParseError{Rule: rule, Err: ErrGrammarMismatch}
}
