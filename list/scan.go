package list

// Min returns the link of the smallest record. Of equal minima the first one wins.
// It returns End() if the list is empty.
func (l *List[T]) Min(less Less[T]) *Link[T] {
	least := l.head.next
	if least == &l.tail {
		return least
	}
	for e := least.next; e != &l.tail; e = e.next {
		if less(e.owner, least.owner) {
			least = e
		}
	}
	return least
}

// Max returns the link of the largest record. Of equal maxima the last one wins.
// It returns End() if the list is empty.
func (l *List[T]) Max(less Less[T]) *Link[T] {
	greatest := l.head.next
	if greatest == &l.tail {
		return greatest
	}
	for e := greatest.next; e != &l.tail; e = e.next {
		if !less(e.owner, greatest.owner) {
			greatest = e
		}
	}
	return greatest
}

// Find returns the link of the first record for which pred returns true or End().
func (l *List[T]) Find(pred func(v *T) bool) *Link[T] {
	e := l.head.next
	for ; e != &l.tail; e = e.next {
		if pred(e.owner) {
			break
		}
	}
	return e
}
