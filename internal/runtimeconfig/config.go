// Package runtimeconfig holds the linkmap runtime configuration and its
// consistency checks.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrExportPathRequired indicates the export document path is missing.
var ErrExportPathRequired = errors.New("linkmap config: export path is required")

// ErrDomainRequired indicates the internal-link domain is missing.
var ErrDomainRequired = errors.New("linkmap config: domain is required")

// ErrMediaExtensionInvalid flags a media extension entry without a leading dot.
var ErrMediaExtensionInvalid = errors.New("linkmap config: media extensions must start with a dot")

var ErrArchiveDSNRequired = errors.New("linkmap config: archive dsn is required when archive is enabled")
var ErrVaultDirRequired = errors.New("linkmap config: vault directory is required when vault is enabled")
var ErrServerAddrRequired = errors.New("linkmap config: server address is required when server is enabled")
var ErrLoggingProviderRequired = errors.New("linkmap config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("linkmap config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("linkmap config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("linkmap config: logging format is invalid")

// Config aggregates extraction parameters, feature flags, and adapter
// bindings for the linkmap module. Fields intentionally use simple types so
// host applications can extend them later.
type Config struct {
	ExportPath string
	Domain     string
	Extraction ExtractionConfig
	Features   Features
	Archive    ArchiveConfig
	Vault      VaultConfig
	Server     ServerConfig
	Logging    LoggingConfig
}

// ExtractionConfig captures the link filter knobs.
type ExtractionConfig struct {
	MediaExtensions []string
	AffiliateMarker string
	Dedupe          bool
}

// Features toggles module functionality.
type Features struct {
	Archive bool
	Vault   bool
	Server  bool
	Logger  bool
}

// ArchiveConfig captures the optional sqlite run archive. Cache toggles
// read-through caching of the archive repositories; CacheTTL overrides the
// cache default when positive.
type ArchiveConfig struct {
	DSN      string
	Cache    bool
	CacheTTL time.Duration
}

// VaultConfig captures the optional Markdown note export.
type VaultConfig struct {
	Directory string
}

// ServerConfig captures the optional viewer HTTP server.
type ServerConfig struct {
	Addr string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns defaults mirroring the original extraction constants.
func DefaultConfig() Config {
	return Config{
		Domain: "helpedbyanerd.com",
		Extraction: ExtractionConfig{
			MediaExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4"},
			AffiliateMarker: "empfiehlt",
			Dedupe:          true,
		},
		Features: Features{},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ExportPath) == "" {
		return ErrExportPathRequired
	}
	if strings.TrimSpace(cfg.Domain) == "" {
		return ErrDomainRequired
	}
	for _, ext := range cfg.Extraction.MediaExtensions {
		if !strings.HasPrefix(strings.TrimSpace(ext), ".") {
			return fmt.Errorf("%w: %q", ErrMediaExtensionInvalid, ext)
		}
	}
	if cfg.Features.Archive && strings.TrimSpace(cfg.Archive.DSN) == "" {
		return ErrArchiveDSNRequired
	}
	if cfg.Features.Vault && strings.TrimSpace(cfg.Vault.Directory) == "" {
		return ErrVaultDirRequired
	}
	if cfg.Features.Server && strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
