package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		fields = map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "linkmap.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure WithContext and the fields helper do not panic on the no-op.
	ctx := context.Background()
	logger = logger.WithContext(ctx)
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, graphModule)

	if len(provider.requested) != 1 || provider.requested[0] != graphModule {
		t.Fatalf("expected module %s, got %v", graphModule, provider.requested)
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}

	if got, ok := rec.fields[0]["module"]; !ok || got != graphModule {
		t.Fatalf("expected module field %s, got %v", graphModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestWithExtractionContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithExtractionContext(rec, "export.xml", "", "  ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one fields application, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldExportPath] != "export.xml" {
		t.Fatalf("expected export path field, got %v", fields)
	}
	if _, ok := fields[fieldDomain]; ok {
		t.Fatalf("empty domain should be skipped: %v", fields)
	}
	if _, ok := fields[fieldArticle]; ok {
		t.Fatalf("blank article should be skipped: %v", fields)
	}
}

func TestContextFieldsMergePreservesExisting(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"run": "r1"})
	ctx = ContextWithFields(ctx, map[string]any{"domain": "helpedbyanerd.com"})

	fields := ContextFields(ctx)
	if fields["run"] != "r1" || fields["domain"] != "helpedbyanerd.com" {
		t.Fatalf("unexpected merged fields: %v", fields)
	}

	// Mutating the returned copy must not leak back into the context.
	fields["run"] = "changed"
	if got := ContextFields(ctx)["run"]; got != "r1" {
		t.Fatalf("context fields mutated externally: %v", got)
	}
}
