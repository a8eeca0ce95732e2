package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hangulsearch/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx so repository methods
// work inside and outside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	dbx  dbtx
}

// New creates a new PostgreSQL repository
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, dbx: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pool statistics for the metrics exporter.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// If fn() panics, the err-check rollback below won't run. recover()
	// rolls back the tx (releasing the connection) before re-panicking.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	txRepo := &Repository{pool: r.pool, dbx: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Document methods

func (r *Repository) CreateDocument(ctx context.Context, arg db.CreateDocumentParams) (db.Document, error) {
	row := r.dbx.QueryRow(ctx, `
		INSERT INTO documents (title, body)
		VALUES ($1, $2)
		RETURNING id, title, body, created_at
	`, arg.Title, arg.Body)
	return scanDocument(row)
}

func (r *Repository) GetDocument(ctx context.Context, id int64) (db.Document, error) {
	row := r.dbx.QueryRow(ctx, `
		SELECT id, title, body, created_at
		FROM documents
		WHERE id = $1
	`, id)
	return scanDocument(row)
}

func (r *Repository) ListDocuments(ctx context.Context, arg db.ListDocumentsParams) ([]db.Document, error) {
	rows, err := r.dbx.Query(ctx, `
		SELECT id, title, body, created_at
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *Repository) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := r.dbx.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteDocument(ctx context.Context, id int64) (int64, error) {
	tag, err := r.dbx.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Posting methods

func (r *Repository) ReplacePostings(ctx context.Context, documentID int64, postings []db.PostingParams) error {
	if _, err := r.dbx.Exec(ctx, `DELETE FROM postings WHERE document_id = $1`, documentID); err != nil {
		return err
	}
	for _, p := range postings {
		if _, err := r.dbx.Exec(ctx, `
			INSERT INTO postings (document_id, field, kind, term)
			VALUES ($1, $2, $3, $4)
		`, documentID, p.Field, p.Kind, p.Term); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ListPostings(ctx context.Context, documentID int64) ([]db.Posting, error) {
	rows, err := r.dbx.Query(ctx, `
		SELECT id, document_id, field, kind, term
		FROM postings
		WHERE document_id = $1
		ORDER BY id
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []db.Posting
	for rows.Next() {
		var p db.Posting
		if err := rows.Scan(&p.ID, &p.DocumentID, &p.Field, &p.Kind, &p.Term); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func (r *Repository) SearchDocuments(ctx context.Context, arg db.SearchParams) ([]db.Document, error) {
	if len(arg.Terms) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(arg.Terms))
	args := []any{arg.Kind}
	for _, term := range arg.Terms {
		n := len(args) + 1
		if arg.Prefix {
			conds = append(conds, fmt.Sprintf("p.term LIKE $%d || '%%'", n))
		} else {
			conds = append(conds, fmt.Sprintf("p.term = $%d", n))
		}
		args = append(args, term)
	}
	args = append(args, arg.Limit, arg.Offset)

	query := fmt.Sprintf(`
		SELECT d.id, d.title, d.body, d.created_at
		FROM documents d
		JOIN postings p ON p.document_id = d.id
		WHERE p.kind = $1 AND (%s)
		GROUP BY d.id
		ORDER BY COUNT(DISTINCT p.term) DESC, d.created_at DESC, d.id DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(conds, " OR "), len(args)-1, len(args))

	rows, err := r.dbx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// Helper functions

func scanDocument(row pgx.Row) (db.Document, error) {
	var d db.Document
	err := row.Scan(&d.ID, &d.Title, &d.Body, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Document{}, db.ErrNoRows
	}
	if err != nil {
		return db.Document{}, err
	}
	return d, nil
}

func scanDocuments(rows pgx.Rows) ([]db.Document, error) {
	var docs []db.Document
	for rows.Next() {
		var d db.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
