// Package omap is a string-keyed map that remembers first-insertion order.
// It backs enumeration and indexing, where keys are canonical value
// encodings and iteration order must be reproducible.
package omap

import (
	"github.com/denismitr/dll"
)

type entry[V any] struct {
	key   string
	value V
}

type OMap[V any] struct {
	m    map[string]*dll.Element[entry[V]]
	list *dll.DoublyLinkedList[entry[V]]
}

func New[V any]() *OMap[V] {
	return &OMap[V]{
		m:    make(map[string]*dll.Element[entry[V]]),
		list: dll.New[entry[V]](),
	}
}

// Set inserts or replaces; a replaced key keeps its original position.
func (om *OMap[V]) Set(key string, value V) {
	if el, found := om.m[key]; found {
		el.ReplaceValue(entry[V]{key: key, value: value})
		return
	}
	el := dll.NewElement(entry[V]{key: key, value: value})
	om.m[key] = el
	om.list.PushTail(el)
}

// SetNX inserts only when the key is absent.
func (om *OMap[V]) SetNX(key string, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}
	el := dll.NewElement(entry[V]{key: key, value: value})
	om.m[key] = el
	om.list.PushTail(el)
	return true
}

func (om *OMap[V]) Get(key string) (V, bool) {
	el, found := om.m[key]
	if !found {
		var zero V
		return zero, false
	}
	return el.Value().value, true
}

func (om *OMap[V]) Has(key string) bool {
	_, found := om.m[key]
	return found
}

func (om *OMap[V]) Len() int {
	return len(om.m)
}

// ForEach visits entries in first-insertion order.
func (om *OMap[V]) ForEach(fn func(key string, value V)) {
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		e := curr.Value()
		fn(e.key, e.value)
	}
}
