// Package linkmap mines a WordPress export for same-domain article links and
// materializes the result as a typed graph, a Mermaid diagram, and optional
// archive, vault, and viewer surfaces.
package linkmap

import (
	"context"
	"fmt"
	nethttp "net/http"
	"sync"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-linkmap/internal/archive"
	extractcmd "github.com/goliatone/go-linkmap/internal/commands/extract"
	"github.com/goliatone/go-linkmap/internal/diagram"
	"github.com/goliatone/go-linkmap/internal/graph"
	linkhttp "github.com/goliatone/go-linkmap/internal/http"
	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/internal/links"
	"github.com/goliatone/go-linkmap/internal/logging"
	"github.com/goliatone/go-linkmap/internal/logging/console"
	"github.com/goliatone/go-linkmap/internal/logging/gologger"
	"github.com/goliatone/go-linkmap/internal/report"
	"github.com/goliatone/go-linkmap/internal/vault"
	"github.com/goliatone/go-linkmap/internal/wxr"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Result is the outcome of one extraction run.
type Result struct {
	Items     []interfaces.Item
	Index     *index.ArticleIndex
	Graph     graph.Document
	Diagram   string
	DebugDump string
}

// Module is the top level linkmap runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	store    *archive.Store

	mu   sync.Mutex
	last *Result
}

var _ extractcmd.Service = (*Module)(nil)

// New constructs a linkmap module from the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := buildLoggerProvider(cfg)
	if err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg, provider: provider}

	if cfg.Features.Archive {
		cacheService, keySerializer, err := buildArchiveCache(cfg.Archive)
		if err != nil {
			return nil, err
		}
		store, err := archive.OpenWithCache(cfg.Archive.DSN, logging.ArchiveLogger(provider), cacheService, keySerializer)
		if err != nil {
			return nil, err
		}
		m.store = store
	}
	return m, nil
}

// buildArchiveCache constructs the read-through cache collaborators for the
// archive repositories when the archive cache feature is turned on.
func buildArchiveCache(cfg ArchiveConfig) (repocache.CacheService, repocache.KeySerializer, error) {
	if !cfg.Cache {
		return nil, nil, nil
	}
	cacheCfg := repocache.DefaultConfig()
	if cfg.CacheTTL > 0 {
		cacheCfg.TTL = cfg.CacheTTL
	}
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("linkmap: archive cache: %w", err)
	}
	return service, repocache.NewDefaultKeySerializer(), nil
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch cfg.Logging.Provider {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return console.NewProvider(console.Options{}), nil
	}
}

// Close releases resources held by optional features.
func (m *Module) Close() error {
	if m.store != nil {
		return m.store.Close()
	}
	return nil
}

// Run executes the full pipeline with the configured parameters: read the
// export, extract internal links, build the index, graph, diagram, and debug
// dump. When archiving is enabled the run is persisted before returning.
func (m *Module) Run(ctx context.Context) (*Result, error) {
	return m.run(ctx, extractcmd.ExtractOptions{
		ExportPath:      m.cfg.ExportPath,
		Domain:          m.cfg.Domain,
		MediaExtensions: m.cfg.Extraction.MediaExtensions,
		AffiliateMarker: m.cfg.Extraction.AffiliateMarker,
		Dedupe:          m.cfg.Extraction.Dedupe,
	})
}

func (m *Module) run(ctx context.Context, opts extractcmd.ExtractOptions) (*Result, error) {
	reader := wxr.NewReader(opts.ExportPath, logging.ReaderLogger(m.provider))
	items, err := reader.ReadItems(ctx)
	if err != nil {
		return nil, err
	}

	extractor := links.NewExtractor(links.Options{
		Domain:          opts.Domain,
		MediaExtensions: opts.MediaExtensions,
		AffiliateMarker: opts.AffiliateMarker,
	}, logging.LinksLogger(m.provider))

	idx := index.NewBuilder(extractor, logging.IndexLogger(m.provider)).Build(items)
	debugDump := idx.DebugDump()
	if opts.Dedupe {
		idx = idx.Dedupe()
	}

	doc := graph.NewBuilder(logging.GraphLogger(m.provider)).Build(idx).Document()
	mermaid := diagram.NewMermaid(idx, logging.DiagramLogger(m.provider)).Generate()

	result := &Result{
		Items:     items,
		Index:     idx,
		Graph:     doc,
		Diagram:   mermaid,
		DebugDump: debugDump,
	}

	if m.store != nil {
		if err := m.store.Init(ctx); err != nil {
			return nil, err
		}
		if _, err := m.store.SaveRun(ctx, opts.Domain, opts.ExportPath, idx); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.last = result
	m.mu.Unlock()
	return result, nil
}

// Extract satisfies the extraction command service contract. Zero-valued
// options fall back to the module configuration.
func (m *Module) Extract(ctx context.Context, opts extractcmd.ExtractOptions) (*extractcmd.Summary, error) {
	if opts.ExportPath == "" {
		opts.ExportPath = m.cfg.ExportPath
	}
	if opts.Domain == "" {
		opts.Domain = m.cfg.Domain
	}
	if opts.MediaExtensions == nil {
		opts.MediaExtensions = m.cfg.Extraction.MediaExtensions
	}
	if opts.AffiliateMarker == "" {
		opts.AffiliateMarker = m.cfg.Extraction.AffiliateMarker
	}

	result, err := m.run(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &extractcmd.Summary{
		Articles: result.Index.Len(),
		Links:    result.Index.TotalLinks(),
		Nodes:    result.Graph.Stats.Nodes,
		Edges:    result.Graph.Stats.Edges,
	}, nil
}

// ExportVault writes the last extraction result as a Markdown note vault and
// reports the number of notes written.
func (m *Module) ExportVault(ctx context.Context, directory string) (int, error) {
	result, err := m.lastOrRun(ctx)
	if err != nil {
		return 0, err
	}
	writer := vault.NewWriter(directory, logging.VaultLogger(m.provider))
	if err := writer.Write(result.Index); err != nil {
		return 0, err
	}
	return result.Index.Len(), nil
}

// RegisterCommands wires the extraction command handlers against this module.
func (m *Module) RegisterCommands(reg extractcmd.CommandRegistry, opts ...extractcmd.Option) (*extractcmd.HandlerSet, error) {
	gates := extractcmd.FeatureGates{
		VaultEnabled: func() bool { return m.cfg.Features.Vault },
	}
	return extractcmd.RegisterExtractCommands(reg, m, m.provider, gates, opts...)
}

// Report renders the Markdown report for the last extraction result.
func (m *Module) Report(ctx context.Context) (string, error) {
	result, err := m.lastOrRun(ctx)
	if err != nil {
		return "", err
	}
	return report.Markdown(report.Input{
		Domain:     m.cfg.Domain,
		ExportPath: m.cfg.ExportPath,
		Index:      result.Index,
		Stats:      result.Graph.Stats,
		Diagram:    result.Diagram,
	}), nil
}

// Handler returns the viewer HTTP handler serving the last extraction result.
func (m *Module) Handler(ctx context.Context) (nethttp.Handler, error) {
	result, err := m.lastOrRun(ctx)
	if err != nil {
		return nil, err
	}

	api := linkhttp.NewViewerAPI(
		linkhttp.WithDomain(m.cfg.Domain),
		linkhttp.WithExportPath(m.cfg.ExportPath),
		linkhttp.WithIndex(result.Index),
		linkhttp.WithGraphDocument(result.Graph),
		linkhttp.WithDiagram(result.Diagram),
		linkhttp.WithLogger(logging.HTTPLogger(m.provider)),
	)
	mux := nethttp.NewServeMux()
	api.Register(mux)
	return mux, nil
}

// Archive exposes the optional run archive, or nil when disabled.
func (m *Module) Archive() *archive.Store {
	return m.store
}

// Logger returns a module scoped logger for host integrations.
func (m *Module) Logger() interfaces.Logger {
	return logging.ModuleLogger(m.provider, "")
}

func (m *Module) lastOrRun(ctx context.Context) (*Result, error) {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()
	if last != nil {
		return last, nil
	}

	result, err := m.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("linkmap: no extraction result available: %w", err)
	}
	return result, nil
}
