package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/listdemo/list"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertLinked asserts that list l holds exactly the records want, in order,
// and that walking it forward and backward visits the same links.
func AssertLinked[T any](t testing.TB, l *list.List[T], want ...*T) {
	t.Helper()

	forward := make([]*T, 0, len(want))
	for e := l.Begin(); e != l.End(); e = e.Next() {
		if e.Next().Prev() != e {
			t.Fatalf("broken back link after element %d", len(forward))
		}
		forward = append(forward, e.Entry())
	}

	backward := make([]*T, 0, len(want))
	for e := l.RBegin(); e != l.REnd(); e = e.Prev() {
		backward = append(backward, e.Entry())
	}

	if len(forward) != len(want) || len(backward) != len(want) {
		t.Fatalf("expected %d elements, walked %d forward and %d backward", len(want), len(forward), len(backward))
	}

	for i, v := range want {
		if forward[i] != v {
			t.Fatalf("element %d: expected '%v', got '%v'", i, v, forward[i])
		}
		if backward[len(want)-1-i] != v {
			t.Fatalf("element %d from back: expected '%v', got '%v'", i, v, backward[len(want)-1-i])
		}
	}

	AssertEqual(t, l.Len(), len(want))
	AssertEqual(t, l.Empty(), len(want) == 0)
}
