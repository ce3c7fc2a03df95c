package options

import "errors"

var (
	ErrInvalidOption  = errors.New("invalid option")
	ErrNoLogHandler   = errors.New("no log handler specified")
	ErrUnknownPowMode = errors.New("unknown exponentiation mode")
)
