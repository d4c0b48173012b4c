package gallery

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository used in tests and local
// development. Records are value-copied on the way in and out.
type MemoryRepository[T any] struct {
	mu     sync.Mutex
	items  map[uint]T
	nextID uint

	id    func(T) uint
	setID func(T, uint) T
}

// NewMemoryRepository builds a memory-backed repository. id and setID give
// the repository access to the record's primary key.
func NewMemoryRepository[T any](id func(T) uint, setID func(T, uint) T) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		items:  make(map[uint]T),
		nextID: 1,
		id:     id,
		setID:  setID,
	}
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]T, 0, len(r.items))
	for _, v := range r.items {
		records = append(records, v)
	}
	sort.Slice(records, func(i, j int) bool {
		return r.id(records[i]) < r.id(records[j])
	})
	return records, nil
}

func (r *MemoryRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *MemoryRepository[T]) Upsert(ctx context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id(*record) == 0 {
		*record = r.setID(*record, r.nextID)
		r.nextID++
	}
	r.items[r.id(*record)] = *record
	return nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
