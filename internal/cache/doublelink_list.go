package cache

type LinkedListNode[V any] struct {
	Prev  *LinkedListNode[V]
	Next  *LinkedListNode[V]
	Key   string
	Value V
}

// DoubleLinkedList keeps two sentinel nodes so inserts and unlinks never
// branch on an empty list.
type DoubleLinkedList[V any] struct {
	len  int
	Head *LinkedListNode[V]
	Tail *LinkedListNode[V]
}

func NewList[V any]() *DoubleLinkedList[V] {
	list := &DoubleLinkedList[V]{
		Head: &LinkedListNode[V]{},
		Tail: &LinkedListNode[V]{},
	}
	list.Head.Next = list.Tail
	list.Tail.Prev = list.Head
	return list
}

func (d *DoubleLinkedList[V]) Len() int {
	return d.len
}

func (d *DoubleLinkedList[V]) PushFront(key string, value V) *LinkedListNode[V] {
	d.len++
	node := &LinkedListNode[V]{Key: key, Value: value}
	node.Prev = d.Head
	node.Next = d.Head.Next
	d.Head.Next = node
	node.Next.Prev = node
	return node
}

// Back returns the least recently pushed node, or nil when empty.
func (d *DoubleLinkedList[V]) Back() *LinkedListNode[V] {
	if d.len == 0 {
		return nil
	}
	return d.Tail.Prev
}

func (d *DoubleLinkedList[V]) Remove(node *LinkedListNode[V]) {
	node.Prev.Next = node.Next
	node.Next.Prev = node.Prev
	node.Next = nil
	node.Prev = nil
	d.len--
}

func (d *DoubleLinkedList[V]) toHead(node *LinkedListNode[V]) {
	if node == d.Head.Next {
		return
	}
	node.Prev.Next = node.Next
	node.Next.Prev = node.Prev

	node.Next = d.Head.Next
	node.Prev = d.Head
	d.Head.Next.Prev = node
	d.Head.Next = node
}
