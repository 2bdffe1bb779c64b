package book

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo is an insertion-ordered in-process catalog.
// The mutex serializes every operation so none of them interleave.
type MemoryRepo struct {
	mu    sync.Mutex
	books []Book
	index map[string]int
}

// NewMemoryRepo returns an empty catalog.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{index: make(map[string]int)}
}

// Add appends b. A duplicate id is rejected.
func (r *MemoryRepo) Add(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[b.ID]; ok {
		return fmt.Errorf("add book %s: duplicate id", b.ID)
	}
	r.index[b.ID] = len(r.books)
	r.books = append(r.books, b)
	return nil
}

// Exists reports whether id is in the catalog.
func (r *MemoryRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.index[id]
	return ok, nil
}

// List returns a copy of the catalog in insertion order.
func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

// GetByID returns the book with the given id or ErrNotFound.
func (r *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

// Update replaces the stored book with the same id in place.
func (r *MemoryRepo) Update(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[b.ID]
	if !ok {
		return ErrNotFound
	}
	r.books[i] = b
	return nil
}

// Delete removes the book with the given id, keeping the order of the rest.
func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	delete(r.index, id)
	// shift indexes of everything after the removed slot
	for j := i; j < len(r.books); j++ {
		r.index[r.books[j].ID] = j
	}
	return nil
}
