package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap maps metric names to stable pointers of type T
// Owners fetch the pointer once and write to it without touching the map again
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	n     atomic.Int64
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.n.Add(1)
	}
	return v.(*T)
}

// Keys returns registered keys in sorted order
func (m *MetricMap[T]) Keys() []string {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}

// Each calls fn for every metric in sorted key order
func (m *MetricMap[T]) Each(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		fn(k, m.Get(k))
	}
}

func (m *MetricMap[T]) Count() int {
	return int(m.n.Load())
}
