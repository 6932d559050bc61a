package former

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *RangeError.
var ErrIndexOutOfRange = errors.New("former: index out of range")

// RangeError reports an index or half-open range outside [0, Count).
type RangeError struct {
	Op    string
	Start int
	End   int // -1 for single index access
	Count int
}

func indexError(op string, index, count int) error {
	return &RangeError{Op: op, Start: index, End: -1, Count: count}
}

func rangeError(op string, start, end, count int) error {
	return &RangeError{Op: op, Start: start, End: end, Count: count}
}

func (e *RangeError) Error() string {
	if e.End < 0 {
		return fmt.Sprintf("former: %s: index %d out of range [0, %d)", e.Op, e.Start, e.Count)
	}
	return fmt.Sprintf("former: %s: range [%d, %d) out of bounds [0, %d)", e.Op, e.Start, e.End, e.Count)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *RangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkIndex(op string, index, count int) error {
	if index < 0 || index >= count {
		return indexError(op, index, count)
	}
	return nil
}

func checkRange(op string, start, end, count int) error {
	if start < 0 || end > count || start > end {
		return rangeError(op, start, end, count)
	}
	return nil
}
