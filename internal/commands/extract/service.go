package extractcmd

import "context"

// ExtractOptions carries the per-run extraction parameters.
type ExtractOptions struct {
	ExportPath      string
	Domain          string
	MediaExtensions []string
	AffiliateMarker string
	Dedupe          bool
}

// Summary reports what one extraction pass produced.
type Summary struct {
	Articles int
	Links    int
	Nodes    int
	Edges    int
}

// Service is the extraction surface the command handlers drive.
type Service interface {
	Extract(ctx context.Context, opts ExtractOptions) (*Summary, error)
	ExportVault(ctx context.Context, directory string) (int, error)
}
