package batch

import "errors"

var (
	ErrNilEvaluator = errors.New("evaluator is nil")
	ErrNilLoader    = errors.New("loader is nil")
	ErrSourceRead   = errors.New("unable to read expression source")
)
