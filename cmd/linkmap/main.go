package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	linkmap "github.com/goliatone/go-linkmap"
	"github.com/goliatone/go-linkmap/internal/graph"
)

var moduleBuilder = linkmap.New

const divider = "---------------"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("linkmap: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("linkmap", flag.ExitOnError)
	exportPath := fs.String("export", "", "Path to the WordPress export document")
	domain := fs.String("domain", "helpedbyanerd.com", "Domain classifying links as internal")
	marker := fs.String("affiliate-marker", "empfiehlt", "Substring excluding affiliate links")
	extensions := fs.String("media-extensions", "", "Comma separated media suffixes to exclude (defaults to images and video)")
	noDedupe := fs.Bool("no-dedupe", false, "Keep duplicate link targets per article")
	format := fs.String("format", "mermaid", "Output format: mermaid, json, or debug")
	serve := fs.String("serve", "", "Serve the viewer on this address instead of printing")
	archiveDSN := fs.String("archive-dsn", "", "Archive runs to this sqlite DSN")
	archiveCache := fs.Bool("archive-cache", false, "Cache archive reads in memory")
	vaultDir := fs.String("vault-dir", "", "Write a Markdown note vault to this directory")
	logLevel := fs.String("log-level", "info", "Log level when logging is enabled")
	verbose := fs.Bool("verbose", false, "Enable console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := linkmap.DefaultConfig()
	cfg.ExportPath = *exportPath
	cfg.Domain = *domain
	cfg.Extraction.AffiliateMarker = *marker
	cfg.Extraction.Dedupe = !*noDedupe
	if exts := splitExtensions(*extensions); len(exts) > 0 {
		cfg.Extraction.MediaExtensions = exts
	}
	if *verbose {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "console"
		cfg.Logging.Level = *logLevel
	}
	if *archiveDSN != "" {
		cfg.Features.Archive = true
		cfg.Archive.DSN = *archiveDSN
		cfg.Archive.Cache = *archiveCache
	}
	if *vaultDir != "" {
		cfg.Features.Vault = true
		cfg.Vault.Directory = *vaultDir
	}
	if *serve != "" {
		cfg.Features.Server = true
		cfg.Server.Addr = *serve
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		return err
	}
	defer module.Close()

	ctx := context.Background()
	result, err := module.Run(ctx)
	if err != nil {
		return err
	}

	if *vaultDir != "" {
		if _, err := module.ExportVault(ctx, *vaultDir); err != nil {
			return err
		}
	}

	if *serve != "" {
		handler, err := module.Handler(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "serving link map on %s\n", *serve)
		return http.ListenAndServe(*serve, handler)
	}

	switch *format {
	case "mermaid":
		fmt.Fprintln(out, divider)
		fmt.Fprint(out, result.DebugDump)
		fmt.Fprintln(out, divider)
		fmt.Fprint(out, result.Diagram)
	case "json":
		encoded, err := graph.MarshalExport(result.Graph)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
	case "debug":
		fmt.Fprint(out, result.DebugDump)
	default:
		return fmt.Errorf("unknown format %q (want mermaid, json, or debug)", *format)
	}
	return nil
}

func splitExtensions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
