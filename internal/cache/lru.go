package cache

import "sync"

// lru cache
// a hashtable indexes keys to list nodes, the list keeps recency:
// the head is the hottest key and the tail is evicted first.

type EvictedCallback[V any] func(string, V)

type LruCache[V any] struct {
	mu       sync.Mutex
	capacity int
	onEvited EvictedCallback[V]
	maps     map[string]*LinkedListNode[V]
	dList    *DoubleLinkedList[V]
}

func Default[V any](cap int) *LruCache[V] {
	return NewLruCache[V](cap, nil)
}

func NewLruCache[V any](cap int, callback EvictedCallback[V]) *LruCache[V] {
	if cap <= 0 {
		cap = 1
	}
	return &LruCache[V]{
		capacity: cap,
		maps:     make(map[string]*LinkedListNode[V], cap),
		dList:    NewList[V](),
		onEvited: callback,
	}
}

func (l *LruCache[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.maps)
}

func (l *LruCache[V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.onEvited != nil {
		for k, v := range l.maps {
			l.onEvited(k, v.Value)
		}
	}
	l.dList = NewList[V]()
	l.maps = make(map[string]*LinkedListNode[V], l.capacity)
}

// Get moves a hit to the head, so it needs the write lock.
func (l *LruCache[V]) Get(key string) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pv, ok := l.maps[key]
	if !ok {
		var zero V
		return zero, false
	}
	l.dList.toHead(pv)
	return pv.Value, true
}

func (l *LruCache[V]) Put(key string, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n, ok := l.maps[key]; ok {
		n.Value = value
		l.dList.toHead(n)
		return
	}
	if l.dList.Len() == l.capacity {
		l.evict()
	}
	l.maps[key] = l.dList.PushFront(key, value)
}

func (l *LruCache[V]) evict() {
	tail := l.dList.Back()
	if tail == nil {
		return
	}
	l.dList.Remove(tail)
	delete(l.maps, tail.Key)
	if l.onEvited != nil {
		l.onEvited(tail.Key, tail.Value)
	}
}
