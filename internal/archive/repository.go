package archive

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewRunRepository(db *bun.DB) repository.Repository[*Run] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Run]{
		NewRecord: func() *Run { return &Run{} },
		GetID: func(r *Run) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Run, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Run) string {
			if r == nil {
				return ""
			}
			return r.ID.String()
		},
	})
}

func NewArticleRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(a *Article) string {
			if a == nil {
				return ""
			}
			return a.ID.String()
		},
	})
}

func NewEdgeRepository(db *bun.DB) repository.Repository[*EdgeRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*EdgeRecord]{
		NewRecord: func() *EdgeRecord { return &EdgeRecord{} },
		GetID: func(e *EdgeRecord) uuid.UUID {
			return e.ID
		},
		SetID: func(e *EdgeRecord, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(e *EdgeRecord) string {
			if e == nil {
				return ""
			}
			return e.ID.String()
		},
	})
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
