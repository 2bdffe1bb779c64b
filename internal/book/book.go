package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a book id is not in the catalog.
	ErrNotFound = errors.New("book not found")
	// ErrInternal is returned when a freshly created book cannot be found in the catalog.
	ErrInternal = errors.New("book could not be stored")
)

// Reasons carried by ValidationError.
const (
	ReasonNameRequired    = "name required"
	ReasonReadPageExceeds = "readPage exceeds pageCount"
)

// ValidationError reports the first invalid field of an Input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid book: " + e.Reason
}

// Book represents a book entity.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the listing projection of a Book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// ToSummary projects b onto its listing fields.
func (b Book) ToSummary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Input holds the client-supplied fields for create and update.
// Field order matters: validation reports the first failing field.
type Input struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// apply copies the mutable fields of in onto b and recomputes Finished.
func (in Input) apply(b *Book) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
}

// Query defines the optional filters for listing books. Nil flags mean no filter.
type Query struct {
	Name     string
	Reading  *bool
	Finished *bool
}

func (q Query) match(b Book) bool {
	if q.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(q.Name)) {
		return false
	}
	if q.Reading != nil && b.Reading != *q.Reading {
		return false
	}
	if q.Finished != nil && b.Finished != *q.Finished {
		return false
	}
	return true
}
