package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for the book catalog.
type Repository interface {
	Add(ctx context.Context, b Book) error
	Exists(ctx context.Context, id string) (bool, error)
	// List returns every book in insertion order.
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, b Book) error
	Delete(ctx context.Context, id string) error
}
