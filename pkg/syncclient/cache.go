package syncclient

import "sync"

// Cache adalah cache lokal per tipe konten: map id → record.
// Semua operasinya idempotent terhadap redelivery event:
//   - Add: insert kalau belum ada, replace kalau sudah ada
//   - Update: replace kalau ada; id tak dikenal di-drop (defensif)
//   - Remove: no-op kalau sudah tidak ada
type Cache[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string // urutan insert, untuk rendering
	idOf  func(T) string
}

func NewCache[T any](idOf func(T) string) *Cache[T] {
	return &Cache[T]{
		items: make(map[string]T),
		idOf:  idOf,
	}
}

func (c *Cache[T]) Add(item T) {
	id := c.idOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *Cache[T]) Update(item T) {
	id := c.idOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return
	}
	c.items[id] = item
}

func (c *Cache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Replace mengganti seluruh isi cache dengan snapshot baru.
func (c *Cache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T, len(items))
	c.order = c.order[:0]
	for _, item := range items {
		id := c.idOf(item)
		if _, exists := c.items[id]; !exists {
			c.order = append(c.order, id)
		}
		c.items[id] = item
	}
}

func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Items mengembalikan record sesuai urutan insert.
func (c *Cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
