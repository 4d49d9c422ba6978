package domain

// List is an ordered collection with a pointer to its current element.
// The pointer is only moved through List methods, so whenever the list is
// non-empty it refers to a valid element.
type List[T any] struct {
	items   []T
	current int
	newItem func() T
}

// NewList creates an empty list whose PushDefault appends newItem().
func NewList[T any](newItem func() T) *List[T] {
	return &List[T]{newItem: newItem}
}

// RestoreList rebuilds a list from persisted items and pointer.
// An out-of-range pointer is reset to 0.
func RestoreList[T any](newItem func() T, items []T, current int) *List[T] {
	l := &List[T]{newItem: newItem, items: append([]T(nil), items...)}
	if current >= 0 && current < len(l.items) {
		l.current = current
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the element slice.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// At returns the element at i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, indexError(i, len(l.items))
	}
	return l.items[i], nil
}

// PushDefault appends a default element and returns it.
// The current pointer is unchanged.
func (l *List[T]) PushDefault() T {
	var item T
	if l.newItem != nil {
		item = l.newItem()
	}
	l.items = append(l.items, item)
	return item
}

// Push appends item. The current pointer is unchanged.
func (l *List[T]) Push(item T) {
	l.items = append(l.items, item)
}

// Remove deletes the element at i.
//
// Elements after i shift down, and a pointer past i follows its element.
// Removing the current element keeps the pointer on the same slot, which
// now holds the next element; if the removed element was the last one the
// pointer moves to the new last element. An emptied list resets it to 0.
func (l *List[T]) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return indexError(i, len(l.items))
	}

	l.items = append(l.items[:i], l.items[i+1:]...)

	switch {
	case len(l.items) == 0:
		l.current = 0
	case l.current > i:
		l.current--
	case l.current >= len(l.items):
		l.current = len(l.items) - 1
	}
	return nil
}

// Current returns the element under the pointer.
func (l *List[T]) Current() (T, error) {
	if l.current < 0 || l.current >= len(l.items) {
		var zero T
		return zero, ErrNoCurrentItem
	}
	return l.items[l.current], nil
}

// CurrentIndex returns the pointer, or -1 when the list is empty.
func (l *List[T]) CurrentIndex() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.current
}

// SetCurrent moves the pointer to i.
func (l *List[T]) SetCurrent(i int) error {
	if i < 0 || i >= len(l.items) {
		return indexError(i, len(l.items))
	}
	l.current = i
	return nil
}

// Update applies fn to the element at i, independent of the pointer.
func (l *List[T]) Update(i int, fn func(T)) error {
	item, err := l.At(i)
	if err != nil {
		return err
	}
	fn(item)
	return nil
}

// Find returns the index of the first element matching match, or -1.
func (l *List[T]) Find(match func(T) bool) int {
	for i, item := range l.items {
		if match(item) {
			return i
		}
	}
	return -1
}

// ChooseRandomDistinct moves the pointer to a random other element.
// On error the pointer is left unchanged.
func (l *List[T]) ChooseRandomDistinct(r Rand) (int, error) {
	idx, err := RandomDistinctIndex(len(l.items), l.CurrentIndex(), r)
	if err != nil {
		return l.CurrentIndex(), err
	}
	l.current = idx
	return idx, nil
}
