package book

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const maxIDAttempts = 3

// Service provides the book catalog business logic.
// Writes are serialized by mu so a create or update runs from its first read to
// its final write without another write in between.
type Service struct {
	mu    sync.Mutex
	repo  Repository
	newID func() (string, error)
	now   func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithIDGenerator overrides the id source.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock overrides the time source used for insertedAt/updatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		newID: NewID,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := validateInput(in); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID(ctx)
	if err != nil {
		return "", err
	}

	now := s.now()
	b := Book{ID: id, InsertedAt: now, UpdatedAt: now}
	in.apply(&b)

	if err := s.repo.Add(ctx, b); err != nil {
		return "", fmt.Errorf("create book: %w", err)
	}

	stored, err := s.repo.Exists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("create book: %w", err)
	}
	if !stored {
		return "", ErrInternal
	}
	return id, nil
}

func (s *Service) uniqueID(ctx context.Context) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		taken, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate id: %w", ErrInternal)
}

// List returns the summaries of all books matching q, in insertion order.
func (s *Service) List(ctx context.Context, q Query) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]Summary, 0, len(books))
	for _, b := range books {
		if q.match(b) {
			out = append(out, b.ToSummary())
		}
	}
	return out, nil
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the mutable fields of the book with the given id.
// Validation runs before the existence check.
func (s *Service) Update(ctx context.Context, id string, in Input) (Book, error) {
	if err := validateInput(in); err != nil {
		return Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	in.apply(&b)
	b.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Delete(ctx, id)
}
