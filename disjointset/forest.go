package disjointset

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Forest is a disjoint-set forest over arbitrary comparable elements.
//
// The element set is fixed at construction time; Forest maps each element to a
// dense Core handle and back, so callers never see raw integers.
type Forest[T comparable] struct {
	core     *Core
	ids      map[T]int // element → handle
	elements []T       // handle → element
}

// NewForest builds a Forest with one singleton set per element.
//
// Steps:
//  1. For every element, in order, allocate a fresh handle via Core.MakeSet.
//  2. Record element→handle and handle→element.
//  3. Any element seen before is reported; all repeats are collected into one
//     error and no Forest is returned.
//
// Errors:
//   - ErrDuplicateElement (possibly several, aggregated with go-multierror).
//
// Complexity: O(n) time and memory.
func NewForest[T comparable](elements []T) (*Forest[T], error) {
	f := &Forest[T]{
		core:     NewCore(len(elements)),
		ids:      make(map[T]int, len(elements)),
		elements: make([]T, 0, len(elements)),
	}

	var errs *multierror.Error
	for i, e := range elements {
		if _, dup := f.ids[e]; dup {
			errs = multierror.Append(errs, fmt.Errorf("%w: %v at position %d", ErrDuplicateElement, e, i))
			continue
		}
		id := f.core.MakeSet()
		f.ids[e] = id
		f.elements = append(f.elements, e)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return f, nil
}

// FindSet returns the representative element of the set containing e.
// Initially every element is its own representative.
func (f *Forest[T]) FindSet(e T) (T, error) {
	var zero T
	id, err := f.lookup(e)
	if err != nil {
		return zero, err
	}
	root, err := f.core.FindSet(id)
	if err != nil {
		return zero, err
	}

	return f.elements[root], nil
}

// Union merges the sets containing x and y and reports whether they were disjoint.
func (f *Forest[T]) Union(x, y T) (bool, error) {
	xid, err := f.lookup(x)
	if err != nil {
		return false, err
	}
	yid, err := f.lookup(y)
	if err != nil {
		return false, err
	}

	return f.core.Union(xid, yid)
}

// InSameSet reports whether x and y share a representative.
func (f *Forest[T]) InSameSet(x, y T) (bool, error) {
	rx, err := f.FindSet(x)
	if err != nil {
		return false, err
	}
	ry, err := f.FindSet(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SizeOf returns the number of elements in the set containing e.
func (f *Forest[T]) SizeOf(e T) (int, error) {
	id, err := f.lookup(e)
	if err != nil {
		return 0, err
	}

	return f.core.SizeOf(id)
}

// Contains reports whether e was part of the construction set.
func (f *Forest[T]) Contains(e T) bool {
	_, ok := f.ids[e]
	return ok
}

// ID returns the dense handle assigned to e, in construction order starting at 0.
func (f *Forest[T]) ID(e T) (int, bool) {
	id, ok := f.ids[e]
	return id, ok
}

// Element returns the element behind handle id.
func (f *Forest[T]) Element(id int) (T, error) {
	var zero T
	if id < 0 || id >= len(f.elements) {
		return zero, fmt.Errorf("%w: %d (allocated %d)", ErrOutOfRange, id, len(f.elements))
	}

	return f.elements[id], nil
}

// Len returns the number of elements in the forest.
func (f *Forest[T]) Len() int { return len(f.elements) }

// Count returns the number of disjoint sets currently alive.
func (f *Forest[T]) Count() int { return f.core.Count() }

// Sets returns the current partition.
//
// Groups are ordered by the construction position of their first member, and
// members inside a group keep construction order, so the result is fully
// determined by the input order and the sequence of unions.
//
// Complexity: O(n·α(n)).
func (f *Forest[T]) Sets() [][]T {
	slot := make(map[int]int, f.core.Count()) // root handle → index in out
	out := make([][]T, 0, f.core.Count())
	for id, e := range f.elements {
		root := f.core.find(id)
		i, ok := slot[root]
		if !ok {
			i = len(out)
			slot[root] = i
			out = append(out, make([]T, 0, f.core.nodes[root].size))
		}
		out[i] = append(out[i], e)
	}

	return out
}

func (f *Forest[T]) lookup(e T) (int, error) {
	id, ok := f.ids[e]
	if !ok {
		return noParent, fmt.Errorf("%w: %v", ErrUnknownElement, e)
	}

	return id, nil
}
