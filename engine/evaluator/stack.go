package evaluator

import "github.com/edwingeng/deque"

// operandStack holds the pending operands of one evaluation.
type operandStack struct {
	values deque.Deque
}

func newOperandStack() *operandStack {
	return &operandStack{values: deque.NewDeque()}
}

func (s *operandStack) push(v int32) {
	s.values.PushBack(v)
}

// popTwo removes the two topmost values. The value pushed last is rhs.
func (s *operandStack) popTwo() (lhs, rhs int32, ok bool) {
	if s.values.Len() < 2 {
		return 0, 0, false
	}
	rhs = s.values.PopBack().(int32)
	lhs = s.values.PopBack().(int32)
	return lhs, rhs, true
}

// popOne removes the topmost value.
func (s *operandStack) popOne() (int32, bool) {
	if s.values.Len() == 0 {
		return 0, false
	}
	return s.values.PopBack().(int32), true
}

func (s *operandStack) len() int {
	return s.values.Len()
}
