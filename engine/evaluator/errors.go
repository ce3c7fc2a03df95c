package evaluator

import (
	"errors"
	"fmt"
)

// Failures of a single evaluation. None of them affect the Evaluator itself.
var (
	ErrMissingOperand         = errors.New("invalid postfix expression (missing operand)")
	ErrDivisionByZero         = errors.New("division by zero")
	ErrInvalidToken           = errors.New("invalid token")
	ErrExtraOrMissingOperands = errors.New("invalid postfix expression (extra operands)")
)

// InvalidTokenError reports a token that is neither an integer nor an operator.
// It matches ErrInvalidToken with errors.Is.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token '%s'", e.Token)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}
