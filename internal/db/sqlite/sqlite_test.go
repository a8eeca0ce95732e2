package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestDocumentCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc, err := repo.CreateDocument(ctx, db.CreateDocumentParams{
		Title: "오픈서치 플러그인",
		Body:  "한국어 검색 필터",
	})
	require.NoError(t, err)
	assert.Equal(t, "오픈서치 플러그인", doc.Title)
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := repo.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Body, got.Body)

	docs, err := repo.ListDocuments(ctx, db.ListDocumentsParams{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := repo.DeleteDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetDocument(ctx, doc.ID)
	assert.True(t, db.IsNoRows(err))
}

func TestReplacePostings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc, err := repo.CreateDocument(ctx, db.CreateDocumentParams{Title: "한국"})
	require.NoError(t, err)

	err = repo.ReplacePostings(ctx, doc.ID, []db.PostingParams{
		{Field: "title", Kind: "chosung", Term: "ㅎㄱ"},
		{Field: "title", Kind: "jamo", Term: "ㅎㅏㄴㄱㅜㄱ"},
	})
	require.NoError(t, err)

	postings, err := repo.ListPostings(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, "ㅎㄱ", postings[0].Term)

	// Replace wipes the old postings.
	err = repo.ReplacePostings(ctx, doc.ID, []db.PostingParams{
		{Field: "title", Kind: "chosung", Term: "ㅎㄱ"},
	})
	require.NoError(t, err)

	postings, err = repo.ListPostings(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, postings, 1)

	// Deleting the document cascades to its postings.
	_, err = repo.DeleteDocument(ctx, doc.ID)
	require.NoError(t, err)
	postings, err = repo.ListPostings(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, postings)
}

func TestSearchDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateDocument(ctx, db.CreateDocumentParams{Title: "한국 여행"})
	require.NoError(t, err)
	second, err := repo.CreateDocument(ctx, db.CreateDocumentParams{Title: "한강 공원"})
	require.NoError(t, err)

	require.NoError(t, repo.ReplacePostings(ctx, first.ID, []db.PostingParams{
		{Field: "title", Kind: "chosung", Term: "ㅎㄱ"},
		{Field: "title", Kind: "chosung", Term: "ㅇㅎ"},
	}))
	require.NoError(t, repo.ReplacePostings(ctx, second.ID, []db.PostingParams{
		{Field: "title", Kind: "chosung", Term: "ㅎㄱ"},
		{Field: "title", Kind: "chosung", Term: "ㄱㅇ"},
	}))

	docs, err := repo.SearchDocuments(ctx, db.SearchParams{
		Kind: "chosung", Terms: []string{"ㅎㄱ"}, Limit: 10,
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	// Matching more distinct terms ranks higher.
	docs, err = repo.SearchDocuments(ctx, db.SearchParams{
		Kind: "chosung", Terms: []string{"ㅎㄱ", "ㅇㅎ"}, Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first.ID, docs[0].ID)

	// Prefix matching for abbreviation-style queries.
	docs, err = repo.SearchDocuments(ctx, db.SearchParams{
		Kind: "chosung", Terms: []string{"ㅎ"}, Prefix: true, Limit: 10,
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	// Kind mismatch finds nothing.
	docs, err = repo.SearchDocuments(ctx, db.SearchParams{
		Kind: "jamo", Terms: []string{"ㅎㄱ"}, Limit: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, docs)

	// No terms, no results.
	docs, err = repo.SearchDocuments(ctx, db.SearchParams{Kind: "chosung", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestWithTxCommit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(txRepo db.Repository) error {
		doc, err := txRepo.CreateDocument(ctx, db.CreateDocumentParams{Title: "커밋"})
		if err != nil {
			return err
		}
		return txRepo.ReplacePostings(ctx, doc.ID, []db.PostingParams{
			{Field: "title", Kind: "chosung", Term: "ㅋㅁ"},
		})
	})
	require.NoError(t, err)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWithTxRollback(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.WithTx(ctx, func(txRepo db.Repository) error {
		if _, err := txRepo.CreateDocument(ctx, db.CreateDocumentParams{Title: "롤백"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
