package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jusunglee/hangulsearch/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *sql.DB and *sql.Tx so repository methods work
// inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db  *sql.DB
	dbx dbtx
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// An in-memory database exists per connection; keep a single one so
	// every query sees the same data.
	if dbPath == ":memory:" {
		sqliteDB.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("opened SQLite database", "path", dbPath)

	return &Repository{db: sqliteDB, dbx: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// If fn() panics, the err-check rollback below won't run. recover() rolls
	// back the tx before re-panicking.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	txRepo := &Repository{db: r.db, dbx: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Document methods

func (r *Repository) CreateDocument(ctx context.Context, arg db.CreateDocumentParams) (db.Document, error) {
	result, err := r.dbx.ExecContext(ctx, `
		INSERT INTO documents (title, body)
		VALUES (?, ?)
	`, arg.Title, arg.Body)
	if err != nil {
		return db.Document{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Document{}, err
	}

	return r.GetDocument(ctx, id)
}

func (r *Repository) GetDocument(ctx context.Context, id int64) (db.Document, error) {
	row := r.dbx.QueryRowContext(ctx, `
		SELECT id, title, body, created_at
		FROM documents
		WHERE id = ?
	`, id)
	return scanDocument(row)
}

func (r *Repository) ListDocuments(ctx context.Context, arg db.ListDocumentsParams) ([]db.Document, error) {
	rows, err := r.dbx.QueryContext(ctx, `
		SELECT id, title, body, created_at
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *Repository) CountDocuments(ctx context.Context) (int64, error) {
	var count int64
	err := r.dbx.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteDocument(ctx context.Context, id int64) (int64, error) {
	result, err := r.dbx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Posting methods

func (r *Repository) ReplacePostings(ctx context.Context, documentID int64, postings []db.PostingParams) error {
	if _, err := r.dbx.ExecContext(ctx, `DELETE FROM postings WHERE document_id = ?`, documentID); err != nil {
		return err
	}
	for _, p := range postings {
		if _, err := r.dbx.ExecContext(ctx, `
			INSERT INTO postings (document_id, field, kind, term)
			VALUES (?, ?, ?, ?)
		`, documentID, p.Field, p.Kind, p.Term); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ListPostings(ctx context.Context, documentID int64) ([]db.Posting, error) {
	rows, err := r.dbx.QueryContext(ctx, `
		SELECT id, document_id, field, kind, term
		FROM postings
		WHERE document_id = ?
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
		if arg.Prefix {
			conds = append(conds, "p.term LIKE ? || '%'")
		} else {
			conds = append(conds, "p.term = ?")
		}
		args = append(args, term)
	}
	args = append(args, arg.Limit, arg.Offset)

	query := fmt.Sprintf(`
		SELECT d.id, d.title, d.body, d.created_at
		FROM documents d
		JOIN postings p ON p.document_id = d.id
		WHERE p.kind = ? AND (%s)
		GROUP BY d.id, d.title, d.body, d.created_at
		ORDER BY COUNT(DISTINCT p.term) DESC, d.created_at DESC, d.id DESC
		LIMIT ? OFFSET ?
	`, strings.Join(conds, " OR "))

	rows, err := r.dbx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// Helper functions

func scanDocument(row *sql.Row) (db.Document, error) {
	var d db.Document
	var createdAtStr string
	err := row.Scan(&d.ID, &d.Title, &d.Body, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Document{}, db.ErrNoRows
	}
	if err != nil {
		return db.Document{}, err
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return d, nil
}

func scanDocuments(rows *sql.Rows) ([]db.Document, error) {
	var docs []db.Document
	for rows.Next() {
		var d db.Document
		var createdAtStr string
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &createdAtStr); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
