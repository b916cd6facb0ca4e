//go:build property
// +build property

package list

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestListProperties tests structural properties of the engine
func TestListProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: length equals the number of tail inserts performed
	properties.Property("length counts tail inserts", prop.ForAll(
		func(values []int) bool {
			l := &List{}
			for _, v := range values {
				l.InsertAtTail(v)
			}

			return l.Len() == len(values)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	// Property: sorted insertion in any order yields a non-decreasing list
	properties.Property("sorted insertion keeps order", prop.ForAll(
		func(values []int) bool {
			l := &List{}
			for _, v := range values {
				l.InsertSorted(v)
			}

			prev := 0
			first := true
			for v := range l.All() {
				if !first && v < prev {
					return false
				}
				prev = v
				first = false
			}

			return l.Len() == len(values)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	// Property: appending a value not already present and removing it
	// again restores the original list
	properties.Property("insert/remove round trip", prop.ForAll(
		func(values []int, extra int) bool {
			l := New(values...)
			before := l.Values()

			l.InsertAtTail(extra)
			if !l.RemoveValue(extra) {
				return false
			}

			after := l.Values()
			if len(after) != len(before) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(200, 300), // Guaranteed absent from the list
	))

	properties.TestingRun(t)
}

// TestFirstCommonProperties tests the cross-list search
func TestFirstCommonProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: a common value exists in one direction iff it exists in
	// the other, and iff the value sets actually intersect
	properties.Property("existence is symmetric", prop.ForAll(
		func(a []int, b []int) bool {
			la := New(a...)
			lb := New(b...)

			intersects := false
			seen := make(map[int]bool, len(b))
			for _, v := range b {
				seen[v] = true
			}
			for _, v := range a {
				if seen[v] {
					intersects = true
					break
				}
			}

			forward := la.FirstCommon(lb) != nil
			backward := lb.FirstCommon(la) != nil

			return forward == intersects && backward == intersects
		},
		gen.SliceOf(gen.IntRange(0, 20)),
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.TestingRun(t)
}

// TestRemoveProperties tests node removal effects on length and order
func TestRemoveProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: removing the tail drops the length by one and the new
	// tail's successor is nil
	properties.Property("tail removal", prop.ForAll(
		func(n int) bool {
			l := &List{}
			for i := 0; i < n; i++ {
				l.InsertAtTail(i)
			}

			var tail *Node
			for cur := l.Head(); cur != nil; cur = cur.Next() {
				tail = cur
			}

			l.Remove(tail)

			if l.Len() != n-1 {
				return false
			}

			var newTail *Node
			for cur := l.Head(); cur != nil; cur = cur.Next() {
				newTail = cur
			}

			return newTail == nil || newTail.Next() == nil
		},
		gen.IntRange(1, 50),
	))

	// Property: removing a non-tail node drops the length by one and
	// preserves every surviving payload in its original order
	properties.Property("non-tail removal preserves order", prop.ForAll(
		func(n int, k int) bool {
			if k >= n-1 {
				return true // Only non-tail positions
			}

			l := &List{}
			for i := 0; i < n; i++ {
				l.InsertAtTail(i)
			}

			target := l.Head()
			for i := 0; i < k; i++ {
				target = target.Next()
			}

			l.Remove(target)

			if l.Len() != n-1 {
				return false
			}

			expected := 0
			for v := range l.All() {
				if expected == k {
					expected++
				}
				if v != expected {
					return false
				}
				expected++
			}

			return true
		},
		gen.IntRange(2, 50),
		gen.IntRange(0, 48),
	))

	properties.TestingRun(t)
}
