package Queues

// minCap is the smallest backing slice a growing circArrQ allocates.
const minCap = 4

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

// MakeArrayQueueOf returns an ArrayQueue already holding items, in order.
func MakeArrayQueueOf[T any](items ...T) ArrayQueue[T] {
	q := MakeArrayQueue[T](uint(len(items)))
	for _, it := range items {
		q.Push(it)
	}
	return q
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the live items to the front of a new slice of newLen.
// newLen must be at least sz.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head = 0
	if newLen == 0 {
		this.tail = 0
	} else {
		this.tail = this.sz % newLen
	}
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+1, minCap))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T, ok bool) {
	if this.Empty() {
		return *new(T), false
	} else {
		return this.content[this.head], true
	}
}
