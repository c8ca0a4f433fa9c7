package arrays

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// clone returns a new slice holding the elements of s, with room for extra
// more elements. A nil s yields a non-nil slice.
func clone[T any](s []T, extra int) []T {
	ns := make([]T, len(s), len(s)+extra)
	copy(ns, s)
	return ns
}

// Add returns a new slice with item appended to the elements of s.
//
// If s is nil, the result holds item alone.
func Add[T any](s []T, item T) []T {
	if s == nil {
		return []T{item}
	}
	ns := clone(s, 1)
	return append(ns, item)
}

// AddRange returns a new slice holding the elements of s followed by items.
//
// If s is nil the result is a copy of items, or an empty slice when items is
// nil too. If items is empty the result is a copy of s.
func AddRange[T any](s []T, items ...T) []T {
	if s == nil {
		if items == nil {
			return []T{}
		}
		return clone(items, 0)
	}
	if len(items) == 0 {
		return clone(s, 0)
	}
	ns := clone(s, len(items))
	return append(ns, items...)
}

// InsertAt returns a new slice with item placed at index and the later
// elements shifted one position to the right. An index equal to len(s)
// appends.
//
// Parameters:
//   - s: The source slice. It may be nil only when index is 0.
//   - index: Target position, in [0, len(s)].
//   - item: The element to insert.
//
// Returns:
//   - The new slice, or ErrOutOfRange if index is outside [0, len(s)].
func InsertAt[T any](s []T, index int, item T) ([]T, error) {
	if s == nil {
		if index != 0 {
			return nil, fmt.Errorf("insert into nil slice at index %d: %w", index, ErrOutOfRange)
		}
		return []T{item}, nil
	}
	if index < 0 || index > len(s) {
		return nil, fmt.Errorf("index %d not in [0, %d]: %w", index, len(s), ErrOutOfRange)
	}
	ns := make([]T, len(s)+1)
	copy(ns, s[:index])
	ns[index] = item
	copy(ns[index+1:], s[index:])
	return ns, nil
}

// RemoveAt returns a new slice without the element at index. Removing the
// only element yields an empty, non-nil slice.
//
// Parameters:
//   - s: The source slice. Must not be nil.
//   - index: Position to drop, in [0, len(s)).
//
// Returns:
//   - The new slice, ErrNullArgument if s is nil, or ErrOutOfRange if index
//     is outside [0, len(s)).
func RemoveAt[T any](s []T, index int) ([]T, error) {
	if s == nil {
		return nil, fmt.Errorf("remove from slice: %w", ErrNullArgument)
	}
	if index < 0 || index >= len(s) {
		return nil, fmt.Errorf("index %d not in [0, %d): %w", index, len(s), ErrOutOfRange)
	}
	ns := make([]T, len(s)-1)
	copy(ns, s[:index])
	copy(ns[index:], s[index+1:])
	return ns, nil
}

// Remove returns a new slice without the first element equal to value. When
// value does not occur, the result is still a fresh copy of s.
func Remove[T comparable](s []T, value T) ([]T, error) {
	if s == nil {
		return nil, fmt.Errorf("remove value from slice: %w", ErrNullArgument)
	}
	if i := slices.Index(s, value); i >= 0 {
		return RemoveAt(s, i)
	}
	return clone(s, 0), nil
}

// RemoveAll returns a new slice holding only the elements for which match
// reports false, in their original order.
//
// If nothing matches the result is a fresh copy of s; if everything matches
// the result is an empty, non-nil slice. Both s and match must be non-nil.
func RemoveAll[T any](s []T, match func(T) bool) ([]T, error) {
	if s == nil {
		return nil, fmt.Errorf("remove matches from slice: %w", ErrNullArgument)
	}
	if match == nil {
		return nil, fmt.Errorf("remove matches with predicate: %w", ErrNullArgument)
	}
	// match runs twice per element: count survivors, then fill.
	keep := 0
	for _, v := range s {
		if !match(v) {
			keep++
		}
	}
	ns := make([]T, 0, keep)
	for _, v := range s {
		if !match(v) {
			ns = append(ns, v)
		}
	}
	return ns, nil
}

// SubArray returns a new slice of exactly length elements starting at start.
//
// Parameters:
//   - s: The source slice. Must not be nil.
//   - start: Index of the first element to take.
//   - length: Number of elements to take.
//
// Returns:
//   - The new slice, ErrNullArgument if s is nil, or ErrOutOfRange if start
//     or length is negative or start+length exceeds len(s).
func SubArray[T any](s []T, start, length int) ([]T, error) {
	if s == nil {
		return nil, fmt.Errorf("sub-slice of slice: %w", ErrNullArgument)
	}
	if start < 0 || length < 0 || start > len(s)-length {
		return nil, fmt.Errorf("range [%d, %d+%d) not within length %d: %w", start, start, length, len(s), ErrOutOfRange)
	}
	ns := make([]T, length)
	copy(ns, s[start:start+length])
	return ns, nil
}

// Copy returns a new slice with the elements of s. A nil s yields nil.
func Copy[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return clone(s, 0)
}

// Concat returns a new slice holding the elements of first followed by the
// elements of second. If either is nil the result is a Copy of the other, so
// two nil slices yield nil.
func Concat[T any](first, second []T) []T {
	if first == nil {
		return Copy(second)
	}
	if second == nil {
		return Copy(first)
	}
	ns := clone(first, len(second))
	return append(ns, second...)
}
