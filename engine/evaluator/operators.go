package evaluator

import (
	"math"
	"strconv"

	"github.com/robbyt/go-postfix/engine/options"
)

// binaryOp applies an operator to two operands. All arithmetic is on 32-bit
// integers and wraps on overflow.
type binaryOp func(lhs, rhs int32) (int32, error)

func operatorTable(mode options.PowMode) map[string]binaryOp {
	pow := powFloat
	if mode == options.PowExact {
		pow = powExact
	}

	return map[string]binaryOp{
		"+": func(lhs, rhs int32) (int32, error) { return lhs + rhs, nil },
		"-": func(lhs, rhs int32) (int32, error) { return lhs - rhs, nil },
		"*": func(lhs, rhs int32) (int32, error) { return lhs * rhs, nil },
		"/": func(lhs, rhs int32) (int32, error) {
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			return lhs / rhs, nil
		},
		"%": func(lhs, rhs int32) (int32, error) {
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			return lhs % rhs, nil
		},
		"^": pow,
	}
}

// parseOperand reports whether token is an optionally signed base-10 integer
// that fits in 32 bits.
func parseOperand(token string) (int32, bool) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// powFloat raises through float64 and truncates toward zero.
func powFloat(lhs, rhs int32) (int32, error) {
	return narrow(math.Pow(float64(lhs), float64(rhs))), nil
}

// narrow converts f to int32: NaN becomes 0 and out-of-range values clamp to
// the nearest bound.
func narrow(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// powExact is exponentiation by squaring. A negative exponent truncates to 0
// unless the base is 1 or -1, and zero raised to a negative power is a
// division by zero.
func powExact(lhs, rhs int32) (int32, error) {
	if rhs < 0 {
		switch lhs {
		case 0:
			return 0, ErrDivisionByZero
		case 1:
			return 1, nil
		case -1:
			if rhs%2 == 0 {
				return 1, nil
			}
			return -1, nil
		default:
			return 0, nil
		}
	}

	result, base := int32(1), lhs
	for e := rhs; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result, nil
}
