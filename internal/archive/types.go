// Package archive persists extraction runs to sqlite so past link maps can be
// inspected and compared. Archiving is opt-in; the default pipeline stays
// one-shot in-memory.
package archive

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Run is one archived extraction pass over an export.
type Run struct {
	bun.BaseModel `bun:"table:link_runs,alias:r"`

	ID         uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Domain     string    `bun:"domain,notnull" json:"domain"`
	ExportPath string    `bun:"export_path,notnull" json:"export_path"`
	Articles   int       `bun:"articles,notnull,default:0" json:"articles"`
	Edges      int       `bun:"edges,notnull,default:0" json:"edges"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Article is one indexed article inside a run.
type Article struct {
	bun.BaseModel `bun:"table:link_articles,alias:a"`

	ID       uuid.UUID `bun:",pk,type:uuid" json:"id"`
	RunID    uuid.UUID `bun:"run_id,notnull,type:uuid" json:"run_id"`
	Title    string    `bun:"title,notnull" json:"title"`
	Link     string    `bun:"link,notnull" json:"link"`
	Position int       `bun:"position,notnull" json:"position"`
}

// EdgeRecord is one extracted article to target link inside a run. Position
// preserves scan order within the source article.
type EdgeRecord struct {
	bun.BaseModel `bun:"table:link_edges,alias:e"`

	ID       uuid.UUID `bun:",pk,type:uuid" json:"id"`
	RunID    uuid.UUID `bun:"run_id,notnull,type:uuid" json:"run_id"`
	Source   string    `bun:"source,notnull" json:"source"`
	Target   string    `bun:"target,notnull" json:"target"`
	Position int       `bun:"position,notnull" json:"position"`
}
