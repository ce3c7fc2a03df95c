package history

import (
	"fmt"
	"sync"
)

// Record is one successful evaluation: the expression text exactly as it was
// submitted, and the value it produced.
type Record struct {
	Expression string
	Result     int32
}

func (r Record) String() string {
	return fmt.Sprintf("%s = %d", r.Expression, r.Result)
}

// Log is an append-only, unbounded list of Records kept in evaluation order.
// It is safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	records []Record
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Append adds a record to the end of the log.
func (l *Log) Append(r Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

// Records returns a copy of every record in insertion order.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
