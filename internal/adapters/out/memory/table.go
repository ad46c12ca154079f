package memory

// table keeps rows in insertion order.
type table[T any] struct {
	ids  []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) clone() *table[T] {
	rows := make(map[string]T, len(t.rows))
	for id, row := range t.rows {
		rows[id] = row
	}
	return &table[T]{
		ids:  append([]string(nil), t.ids...),
		rows: rows,
	}
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// insert reports false if id is taken.
func (t *table[T]) insert(id string, row T) bool {
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.ids = append(t.ids, id)
	t.rows[id] = row
	return true
}

// replace reports false if id is absent.
func (t *table[T]) replace(id string, row T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

// remove reports false if id is absent.
func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i:i], t.ids[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) all() []T {
	rows := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		rows = append(rows, t.rows[id])
	}
	return rows
}
