package evaluator

import (
	"fmt"
	"strconv"
	"time"
)

// Response is the outcome of a successful evaluation.
type Response struct {
	value      int32
	expression string
	execID     string
	execTime   time.Duration
}

func newResponse(value int32, expression, execID string, execTime time.Duration) *Response {
	return &Response{
		value:      value,
		expression: expression,
		execID:     execID,
		execTime:   execTime,
	}
}

func (r *Response) String() string {
	return fmt.Sprintf(
		"Response{Value: %d, Expression: %q, ExecTime: %s, ExecID: %s}",
		r.value, r.expression, r.GetExecTime(), r.execID)
}

func (r *Response) Value() int32 {
	return r.value
}

func (r *Response) Inspect() string {
	return strconv.FormatInt(int64(r.value), 10)
}

func (r *Response) Interface() any {
	return r.value
}

func (r *Response) GetExpression() string {
	return r.expression
}

func (r *Response) GetExecID() string {
	return r.execID
}

func (r *Response) GetExecTime() string {
	return r.execTime.String()
}
