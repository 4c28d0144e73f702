// Package http serves the extracted link map to the interactive viewer.
package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-linkmap/internal/graph"
	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/internal/report"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// ViewerAPI registers the viewer endpoints over one extraction result.
type ViewerAPI struct {
	domain     string
	exportPath string
	index      *index.ArticleIndex
	document   graph.Document
	diagram    string
	logger     interfaces.Logger
}

// ViewerOption mutates the ViewerAPI configuration.
type ViewerOption func(*ViewerAPI)

// NewViewerAPI constructs a viewer over an extraction result.
func NewViewerAPI(opts ...ViewerOption) *ViewerAPI {
	api := &ViewerAPI{}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithDomain records the domain shown in the report header.
func WithDomain(domain string) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.domain = strings.TrimSpace(domain)
		}
	}
}

// WithExportPath records the export path shown in the report header.
func WithExportPath(path string) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.exportPath = strings.TrimSpace(path)
		}
	}
}

// WithIndex wires the article index backing the report inventory.
func WithIndex(idx *index.ArticleIndex) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.index = idx
		}
	}
}

// WithGraphDocument wires the viewer graph export.
func WithGraphDocument(doc graph.Document) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.document = doc
		}
	}
}

// WithDiagram wires the Mermaid diagram text.
func WithDiagram(diagram string) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.diagram = diagram
		}
	}
}

// WithLogger wires request logging.
func WithLogger(logger interfaces.Logger) ViewerOption {
	return func(api *ViewerAPI) {
		if api != nil {
			api.logger = logger
		}
	}
}

// Register mounts the viewer handlers on mux.
func (api *ViewerAPI) Register(mux *http.ServeMux) {
	mux.HandleFunc("/graph.json", api.handleGraph)
	mux.HandleFunc("/diagram", api.handleDiagram)
	mux.HandleFunc("/", api.handleReport)
}

func (api *ViewerAPI) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	encoded, err := graph.MarshalExport(api.document)
	if err != nil {
		api.logError("viewer.graph.failed", err)
		http.Error(w, "graph export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(encoded)
}

func (api *ViewerAPI) handleDiagram(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(api.diagram))
}

func (api *ViewerAPI) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rendered, err := report.HTML(report.Input{
		Domain:     api.domain,
		ExportPath: api.exportPath,
		Index:      api.index,
		Stats:      api.document.Stats,
		Diagram:    api.diagram,
	})
	if err != nil {
		api.logError("viewer.report.failed", err)
		http.Error(w, "report render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(rendered)
}

func (api *ViewerAPI) logError(msg string, err error) {
	if api.logger != nil {
		api.logger.Error(msg, "error", err)
	}
}
