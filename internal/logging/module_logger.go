package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

const (
	rootModule    = "linkmap"
	readerModule  = "linkmap.wxr"
	linksModule   = "linkmap.links"
	indexModule   = "linkmap.index"
	graphModule   = "linkmap.graph"
	diagramModule = "linkmap.diagram"
	archiveModule = "linkmap.archive"
	vaultModule   = "linkmap.vault"
	httpModule    = "linkmap.http"
)

const (
	fieldExportPath = "export_path"
	fieldDomain     = "domain"
	fieldArticle    = "article"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ReaderLogger returns the logger namespace reserved for export readers.
func ReaderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, readerModule)
}

// LinksLogger returns the logger namespace reserved for link extraction.
func LinksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, linksModule)
}

// IndexLogger returns the logger namespace reserved for the article index.
func IndexLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexModule)
}

// GraphLogger returns the logger namespace reserved for graph construction.
func GraphLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, graphModule)
}

// DiagramLogger returns the logger namespace reserved for diagram generation.
func DiagramLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, diagramModule)
}

// ArchiveLogger returns the logger namespace reserved for the run archive.
func ArchiveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, archiveModule)
}

// VaultLogger returns the logger namespace reserved for vault import/export.
func VaultLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, vaultModule)
}

// HTTPLogger returns the logger namespace reserved for the viewer handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithExtractionContext enriches the provided logger with common extraction
// fields such as export path, domain, and article title. Empty values are
// ignored.
func WithExtractionContext(logger interfaces.Logger, exportPath, domain, article string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(exportPath); trimmed != "" {
		fields[fieldExportPath] = trimmed
	}
	if trimmed := strings.TrimSpace(domain); trimmed != "" {
		fields[fieldDomain] = trimmed
	}
	if trimmed := strings.TrimSpace(article); trimmed != "" {
		fields[fieldArticle] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
