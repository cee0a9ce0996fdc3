// Package Queues holds the FIFO containers used by the breadth-first
// traversals in Trees.
package Queues

// Queue is a first in, first out container.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the item at the front of the queue. Returns EmptyQueueError
	//when there is nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. The second return
	//value is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
