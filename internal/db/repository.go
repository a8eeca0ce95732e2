package db

import (
	"context"
	"time"
)

// Document is one indexed document.
type Document struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
}

// Posting is one index term derived from a document by an analysis chain.
// Kind names the chain that produced the term: "exact", "jamo", "chosung",
// or "eng".
type Posting struct {
	ID         int64
	DocumentID int64
	Field      string
	Kind       string
	Term       string
}

type CreateDocumentParams struct {
	Title string
	Body  string
}

type ListDocumentsParams struct {
	Limit  int32
	Offset int32
}

type PostingParams struct {
	Field string
	Kind  string
	Term  string
}

// SearchParams matches documents whose postings of the given kind hit any of
// the terms. With Prefix set, a posting matches when it starts with a term,
// which is what chosung abbreviation search needs. Results are ordered by
// number of distinct matching terms, then recency.
type SearchParams struct {
	Kind   string
	Terms  []string
	Prefix bool
	Limit  int32
	Offset int32
}

// Repository defines the interface for database operations
type Repository interface {
	// Documents
	CreateDocument(ctx context.Context, arg CreateDocumentParams) (Document, error)
	GetDocument(ctx context.Context, id int64) (Document, error)
	ListDocuments(ctx context.Context, arg ListDocumentsParams) ([]Document, error)
	CountDocuments(ctx context.Context) (int64, error)
	DeleteDocument(ctx context.Context, id int64) (int64, error)

	// Postings
	ReplacePostings(ctx context.Context, documentID int64, postings []PostingParams) error
	ListPostings(ctx context.Context, documentID int64) ([]Posting, error)
	SearchDocuments(ctx context.Context, arg SearchParams) ([]Document, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}
