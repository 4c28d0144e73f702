package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-linkmap/internal/identity"
	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Store persists runs and their link structure.
type Store struct {
	db       *bun.DB
	runs     repository.Repository[*Run]
	articles repository.Repository[*Article]
	edges    repository.Repository[*EdgeRecord]
	logger   interfaces.Logger
}

// Open connects to a sqlite archive at dsn and returns a store over it.
func Open(dsn string, logger interfaces.Logger) (*Store, error) {
	return OpenWithCache(dsn, logger, nil, nil)
}

// OpenWithCache connects to a sqlite archive at dsn, wrapping the store
// repositories with the supplied cache when both collaborators are set.
func OpenWithCache(dsn string, logger interfaces.Logger, cacheService cache.CacheService, keySerializer cache.KeySerializer) (*Store, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", dsn, err)
	}
	return NewStoreWithCache(bun.NewDB(sqlDB, sqlitedialect.New()), logger, cacheService, keySerializer), nil
}

// NewStore wraps an existing bun handle without caching.
func NewStore(db *bun.DB, logger interfaces.Logger) *Store {
	return NewStoreWithCache(db, logger, nil, nil)
}

// NewStoreWithCache wraps an existing bun handle, optionally caching reads.
func NewStoreWithCache(db *bun.DB, logger interfaces.Logger, cacheService cache.CacheService, keySerializer cache.KeySerializer) *Store {
	return &Store{
		db:       db,
		runs:     wrapWithCache(NewRunRepository(db), cacheService, keySerializer),
		articles: wrapWithCache(NewArticleRepository(db), cacheService, keySerializer),
		edges:    wrapWithCache(NewEdgeRepository(db), cacheService, keySerializer),
		logger:   logger,
	}
}

// Init creates the archive tables when missing.
func (s *Store) Init(ctx context.Context) error {
	models := []any{(*Run)(nil), (*Article)(nil), (*EdgeRecord)(nil)}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("archive: create table for %T: %w", model, err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun archives an index snapshot and returns the stored run. Article and
// edge ids derive deterministically from the run id, so re-saving the same
// run id is idempotent at the row level.
func (s *Store) SaveRun(ctx context.Context, domain, exportPath string, idx *index.ArticleIndex) (*Run, error) {
	run := &Run{
		ID:         uuid.New(),
		Domain:     domain,
		ExportPath: exportPath,
		Articles:   idx.Len(),
		Edges:      idx.TotalLinks(),
	}
	created, err := s.runs.Create(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("archive: save run: %w", err)
	}
	run = created

	for position, title := range idx.Titles() {
		link, _ := idx.CanonicalLink(title)
		article := &Article{
			ID:       identity.ArticleUUID(run.ID, title),
			RunID:    run.ID,
			Title:    title,
			Link:     link,
			Position: position,
		}
		if _, err := s.articles.Create(ctx, article); err != nil {
			return nil, fmt.Errorf("archive: save article %q: %w", title, err)
		}
		for offset, target := range idx.Links(title) {
			edge := &EdgeRecord{
				ID:       identity.EdgeUUID(run.ID, title, fmt.Sprintf("%d:%s", offset, target)),
				RunID:    run.ID,
				Source:   title,
				Target:   target,
				Position: offset,
			}
			if _, err := s.edges.Create(ctx, edge); err != nil {
				return nil, fmt.Errorf("archive: save edge %q -> %q: %w", title, target, err)
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("archive.run.saved", "run_id", run.ID.String(), "articles", run.Articles, "edges", run.Edges)
	}
	return run, nil
}

// GetRun loads a run and rebuilds its article index from the archived rows.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, *index.ArticleIndex, error) {
	run, err := s.runs.GetByID(ctx, runID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("archive: load run %s: %w", runID, err)
	}

	var articles []*Article
	if err := s.db.NewSelect().Model(&articles).
		Where("run_id = ?", runID).
		Order("position ASC").
		Scan(ctx); err != nil {
		return nil, nil, fmt.Errorf("archive: load articles for %s: %w", runID, err)
	}

	var edges []*EdgeRecord
	if err := s.db.NewSelect().Model(&edges).
		Where("run_id = ?", runID).
		Order("source ASC", "position ASC").
		Scan(ctx); err != nil {
		return nil, nil, fmt.Errorf("archive: load edges for %s: %w", runID, err)
	}

	targets := map[string][]string{}
	for _, edge := range edges {
		targets[edge.Source] = append(targets[edge.Source], edge.Target)
	}

	idx := index.New()
	for _, article := range articles {
		idx.Add(article.Title, article.Link, targets[article.Title])
	}
	return run, idx, nil
}

// ListRuns returns archived run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]*Run, error) {
	var runs []*Run
	if err := s.db.NewSelect().Model(&runs).
		Order("created_at DESC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}
	return runs, nil
}
