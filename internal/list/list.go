// Package list implements a singly linked list with an int payload,
// the core engine behind the slink CLI.
//
// A List is an explicit handle the caller owns and threads through
// every call; there is no package-level state. Each node is owned by
// its predecessor (or by the list head when first), links run one way
// only, and every mutating operation leaves the chain structurally
// valid even on error paths. The engine is not safe for concurrent
// mutation; callers must serialize access themselves.
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/conneroisu/slink/internal/errs"
)

// Node is one element of a List: a payload value and a link to its
// successor. Nodes are created by the insert operations and detached by
// the delete operations; a detached node leaves with its link cleared.
type Node struct {
	value int
	next  *Node
}

// Value returns the node's payload.
func (n *Node) Value() int {
	return n.value
}

// Next returns the node's successor, or nil at the tail.
func (n *Node) Next() *Node {
	return n.next
}

// List owns a chain of nodes. The zero value is an empty, usable list.
//
// Invariant: following next links from the head reaches nil in a
// finite number of steps. The engine never creates a cycle; feeding it
// one (by aliasing nodes across lists) is a caller bug it does not
// detect.
type List struct {
	head *Node
}

// New builds a list from a literal sequence of values, appending each
// in order.
func New(values ...int) *List {
	l := &List{}
	for _, v := range values {
		l.InsertAtTail(v)
	}

	return l
}

// Head returns the first node of the list, or nil when empty.
func (l *List) Head() *Node {
	return l.head
}

// IsEmpty reports whether the list has no nodes.
func (l *List) IsEmpty() bool {
	return l.head == nil
}

// InsertAtHead prepends a value. The new node becomes the head and the
// old head becomes its successor. O(1).
func (l *List) InsertAtHead(v int) {
	l.head = &Node{value: v, next: l.head}
}

// InsertAtTail appends a value by walking to the last node. When the
// list is empty the new node becomes the head. O(n).
func (l *List) InsertAtTail(v int) {
	n := &Node{value: v}

	if l.head == nil {
		l.head = n
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// InsertAfter splices a new value between prev and its old successor.
// Returns errs.ErrNilNode when prev is nil. O(1).
func (l *List) InsertAfter(prev *Node, v int) error {
	if prev == nil {
		return errs.ErrNilNode.WithOp("InsertAfter")
	}

	prev.next = &Node{value: v, next: prev.next}

	return nil
}

// InsertAt inserts a value at a zero-based position. Position 0
// delegates to InsertAtHead; otherwise the walk advances position-1
// nodes and splices after the stop. When the position exceeds the list
// length the list is left unchanged and an out-of-bounds error is
// returned. O(position).
func (l *List) InsertAt(position, v int) error {
	if position < 0 {
		return errs.OutOfBounds(position).WithOp("InsertAt")
	}

	if position == 0 {
		l.InsertAtHead(v)
		return nil
	}

	cur := l.head
	for i := 0; i < position-1 && cur != nil; i++ {
		cur = cur.next
	}
	if cur == nil {
		return errs.OutOfBounds(position).WithOp("InsertAt")
	}

	return l.InsertAfter(cur, v)
}

// InsertSorted inserts a value before the first node whose payload is
// greater than or equal to it, keeping an ascending list ascending.
// When the list is empty or the value is not greater than the head's,
// the new node becomes the head. O(n).
func (l *List) InsertSorted(v int) {
	if l.head == nil || l.head.value >= v {
		l.head = &Node{value: v, next: l.head}
		return
	}

	cur := l.head
	for cur.next != nil && cur.next.value < v {
		cur = cur.next
	}
	cur.next = &Node{value: v, next: cur.next}
}

// Remove deletes target from the list. Nil head or nil target is a
// safe no-op.
//
// When target has a successor, the successor's payload is copied into
// target and the successor is spliced out, O(1) without a predecessor
// pointer. This removes the logical last occupant of the chain slot,
// not the target node object: a caller holding a second reference to
// target observes it surviving with its old successor's payload.
// Relying on node identity across Remove is not supported.
//
// When target is the tail, the list is scanned for its predecessor,
// which is unlinked; a target unreachable from the head is a safe
// no-op. O(n) in the tail and unreachable cases.
func (l *List) Remove(target *Node) {
	if l.head == nil || target == nil {
		return
	}

	if target.next != nil {
		victim := target.next
		target.value = victim.value
		target.next = victim.next
		victim.next = nil
		return
	}

	// Target is the tail. A tail that is also the head is the only
	// node, so the list becomes empty.
	if target == l.head {
		l.head = nil
		return
	}

	prev := l.head
	for prev != nil && prev.next != target {
		prev = prev.next
	}
	if prev == nil {
		return
	}
	prev.next = nil
}

// RemoveValue deletes the first node whose payload equals v and
// reports whether a node was removed. A head match advances the head;
// otherwise the predecessor is spliced around the match. The list is
// unchanged when the value is absent. O(n).
func (l *List) RemoveValue(v int) bool {
	if l.head == nil {
		return false
	}

	if l.head.value == v {
		old := l.head
		l.head = old.next
		old.next = nil
		return true
	}

	prev := l.head
	for prev.next != nil && prev.next.value != v {
		prev = prev.next
	}
	if prev.next == nil {
		return false
	}

	victim := prev.next
	prev.next = victim.next
	victim.next = nil

	return true
}

// Len counts the nodes by traversal. O(n).
func (l *List) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// Find returns the first node whose payload equals v, or nil.
func (l *List) Find(v int) *Node {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return cur
		}
	}

	return nil
}

// FirstCommon returns the first node in the receiver whose payload
// occurs anywhere in other, scanning the receiver outer and restarting
// other for each step. Returns nil when there is no common value,
// including when either list is empty. O(n*m).
func (l *List) FirstCommon(other *List) *Node {
	if other == nil {
		return nil
	}

	for a := l.head; a != nil; a = a.next {
		for b := other.head; b != nil; b = b.next {
			if a.value == b.value {
				return a
			}
		}
	}

	return nil
}

// All returns a lazy, restartable sequence of the payload values in
// list order.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values collects the payloads into a slice in list order.
func (l *List) Values() []int {
	out := make([]int, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list head to tail with an explicit end marker,
// e.g. "5 -> 10 -> 20 -> nil". An empty list renders as "nil".
func (l *List) String() string {
	var b strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&b, "%d -> ", cur.value)
	}
	b.WriteString("nil")

	return b.String()
}
