// Package index turns documents into search postings using the analysis
// filter chains and answers queries against them.
package index

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jusunglee/hangulsearch/internal/analysis"
	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/jusunglee/hangulsearch/internal/hangul"
	"github.com/jusunglee/hangulsearch/internal/metrics"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Posting kinds. Each kind is produced by one analysis chain and queried by
// the matching search mode.
const (
	KindExact   = "exact"
	KindJamo    = "jamo"
	KindChosung = "chosung"
	KindEng     = "eng"
)

// Search modes accepted by Search.
const (
	ModeExact     = "exact"
	ModeJamo      = "jamo"
	ModeChosung   = "chosung"
	ModeKeystroke = "keystroke"
)

// ErrUnknownMode is returned by Search for a mode outside the set above.
var ErrUnknownMode = errors.New("unknown search mode")

var indexedFields = []string{"title", "body"}

type Indexer struct {
	repo      db.Repository
	log       *slog.Logger
	analyzers map[string]*analysis.Analyzer
}

func New(repo db.Repository, log *slog.Logger) *Indexer {
	mustAnalyzer := func(names ...string) *analysis.Analyzer {
		a, err := analysis.NewAnalyzer(names...)
		if err != nil {
			// Filter names here are compile-time constants; a miss is a
			// programming error.
			panic(err)
		}
		return a
	}
	return &Indexer{
		repo: repo,
		log:  log,
		analyzers: map[string]*analysis.Analyzer{
			KindExact:   mustAnalyzer(),
			KindJamo:    mustAnalyzer("jamo"),
			KindChosung: mustAnalyzer("chosung"),
			KindEng:     mustAnalyzer("hantoeng"),
		},
	}
}

// Index derives postings for every field and kind of doc and replaces the
// document's postings transactionally.
func (ix *Indexer) Index(ctx context.Context, doc db.Document) error {
	start := time.Now()

	var postings []db.PostingParams
	for _, field := range indexedFields {
		text := doc.Title
		if field == "body" {
			text = doc.Body
		}
		for kind, analyzer := range ix.analyzers {
			terms := lo.Uniq(analyzer.Analyze(text))
			postings = append(postings, lo.Map(terms, func(term string, _ int) db.PostingParams {
				return db.PostingParams{Field: field, Kind: kind, Term: term}
			})...)
		}
	}

	err := ix.repo.WithTx(ctx, func(txRepo db.Repository) error {
		return txRepo.ReplacePostings(ctx, doc.ID, postings)
	})
	if err != nil {
		return fmt.Errorf("replacing postings for document %d: %w", doc.ID, err)
	}

	metrics.DocumentsIndexed.Inc()
	metrics.IndexDuration.Observe(time.Since(start).Seconds())
	ix.log.DebugContext(ctx, "indexed document",
		"id", doc.ID,
		"postings", len(postings),
		"duration", time.Since(start),
	)
	return nil
}

// Reindex rebuilds postings for every stored document. Used after the
// analysis chains change, e.g. on upgrades that alter decomposition rules.
func (ix *Indexer) Reindex(ctx context.Context) (int, error) {
	const pageSize = 100

	var total int
	for offset := int32(0); ; offset += pageSize {
		docs, err := ix.repo.ListDocuments(ctx, db.ListDocumentsParams{Limit: pageSize, Offset: offset})
		if err != nil {
			return total, fmt.Errorf("listing documents at offset %d: %w", offset, err)
		}
		if len(docs) == 0 {
			return total, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for _, doc := range docs {
			g.Go(func() error {
				return ix.Index(gctx, doc)
			})
		}
		if err := g.Wait(); err != nil {
			return total, err
		}
		total += len(docs)
	}
}

// Search normalizes query with the analysis chain matching mode and returns
// matching documents, best hits first.
func (ix *Indexer) Search(ctx context.Context, query, mode string, limit, offset int32) ([]db.Document, error) {
	var arg db.SearchParams
	switch mode {
	case ModeExact:
		arg = db.SearchParams{Kind: KindExact, Terms: analysis.Tokenize(query)}
	case ModeJamo:
		arg = db.SearchParams{Kind: KindJamo, Terms: ix.analyzers[KindJamo].Analyze(query)}
	case ModeChosung:
		// Chosung queries match as prefixes so a short abbreviation still
		// finds longer words.
		arg = db.SearchParams{Kind: KindChosung, Terms: ix.analyzers[KindChosung].Analyze(query), Prefix: true}
	case ModeKeystroke:
		// The query was typed with the IME off: decode keystrokes to
		// Hangul first, then match against the jamo index.
		decoded := hangul.KeystrokesToHangul(query)
		arg = db.SearchParams{Kind: KindJamo, Terms: ix.analyzers[KindJamo].Analyze(decoded)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	arg.Limit = limit
	arg.Offset = offset

	docs, err := ix.repo.SearchDocuments(ctx, arg)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(mode, "error").Inc()
		return nil, err
	}

	result := "hit"
	if len(docs) == 0 {
		result = "miss"
	}
	metrics.SearchesTotal.WithLabelValues(mode, result).Inc()
	return docs, nil
}
