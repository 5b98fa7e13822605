package repositories

// table is an insertion-ordered in-memory index used by the file-backed repositories
type table[K comparable, V any] struct {
	order []K
	rows  map[K]*V
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{rows: make(map[K]*V)}
}

func (t *table[K, V]) get(key K) (*V, bool) {
	v, ok := t.rows[key]
	return v, ok
}

// put inserts or replaces a row; new keys go to the end
func (t *table[K, V]) put(key K, v *V) {
	if _, exists := t.rows[key]; !exists {
		t.order = append(t.order, key)
	}
	t.rows[key] = v
}

// remove deletes a row and keeps the order of the remaining ones
func (t *table[K, V]) remove(key K) bool {
	if _, exists := t.rows[key]; !exists {
		return false
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[K, V]) values() []*V {
	out := make([]*V, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rows[k])
	}
	return out
}

func (t *table[K, V]) len() int {
	return len(t.order)
}

func (t *table[K, V]) reset() {
	t.order = nil
	t.rows = make(map[K]*V)
}
