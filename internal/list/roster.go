package list

import (
	"fmt"
	"iter"
	"strings"
)

// Person is the record payload of the roster variant.
type Person struct {
	Name string
	Age  int
}

type personNode struct {
	person Person
	next   *personNode
}

// Roster is a singly linked list of Person records keyed by name. The
// zero value is an empty, usable roster.
type Roster struct {
	head *personNode
}

// NewRoster builds a roster from a literal sequence of people,
// appending each in order.
func NewRoster(people ...Person) *Roster {
	r := &Roster{}
	for _, p := range people {
		r.Add(p.Name, p.Age)
	}

	return r
}

// Add appends a person at the tail.
func (r *Roster) Add(name string, age int) {
	n := &personNode{person: Person{Name: name, Age: age}}

	if r.head == nil {
		r.head = n
		return
	}

	cur := r.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// RemoveName deletes the first person whose name equals name and
// reports whether one was removed. The head is checked before the
// predecessor scan, so a match on the first record of a multi-element
// roster is handled by advancing the head rather than entering the
// generic loop with no predecessor. An empty roster or an absent name
// leaves the roster unchanged.
func (r *Roster) RemoveName(name string) bool {
	if r.head == nil {
		return false
	}

	if r.head.person.Name == name {
		old := r.head
		r.head = old.next
		old.next = nil
		return true
	}

	prev := r.head
	for prev.next != nil && prev.next.person.Name != name {
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

// Find returns the first person whose name equals name.
func (r *Roster) Find(name string) (Person, bool) {
	for cur := r.head; cur != nil; cur = cur.next {
		if cur.person.Name == name {
			return cur.person, true
		}
	}

	return Person{}, false
}

// Len counts the records by traversal.
func (r *Roster) Len() int {
	n := 0
	for cur := r.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// All returns a lazy, restartable sequence of the people in roster
// order.
func (r *Roster) All() iter.Seq[Person] {
	return func(yield func(Person) bool) {
		for cur := r.head; cur != nil; cur = cur.next {
			if !yield(cur.person) {
				return
			}
		}
	}
}

// String renders the roster head to tail with an explicit end marker,
// e.g. "AungBu(20) -> Sar Oo(30) -> nil".
func (r *Roster) String() string {
	var b strings.Builder
	for cur := r.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&b, "%s(%d) -> ", cur.person.Name, cur.person.Age)
	}
	b.WriteString("nil")

	return b.String()
}
