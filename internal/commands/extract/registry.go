package extractcmd

import (
	"errors"

	"github.com/goliatone/go-linkmap/internal/commands"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the extraction command handlers produced by RegisterExtractCommands.
type HandlerSet struct {
	Extract *ExtractHandler
	Vault   *VaultExportHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	extractHandlerOpts []commands.HandlerOption[ExtractCommand]
	vaultHandlerOpts   []commands.HandlerOption[VaultExportCommand]
}

// WithExtractHandlerOptions forwards options to the ExtractHandler constructor.
func WithExtractHandlerOptions(opts ...commands.HandlerOption[ExtractCommand]) Option {
	return func(cfg *options) {
		cfg.extractHandlerOpts = append(cfg.extractHandlerOpts, opts...)
	}
}

// WithVaultHandlerOptions forwards options to the VaultExportHandler constructor.
func WithVaultHandlerOptions(opts ...commands.HandlerOption[VaultExportCommand]) Option {
	return func(cfg *options) {
		cfg.vaultHandlerOpts = append(cfg.vaultHandlerOpts, opts...)
	}
}

// RegisterExtractCommands builds extraction command handlers and registers
// them with the provided registry. The HandlerSet is returned so callers can
// wire additional integrations as needed.
func RegisterExtractCommands(reg CommandRegistry, service Service, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("extract command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "extract")

	extractHandler := NewExtractHandler(service, logger, cfg.extractHandlerOpts...)
	vaultHandler := NewVaultExportHandler(service, logger, gates, cfg.vaultHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(extractHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(vaultHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Extract: extractHandler,
		Vault:   vaultHandler,
	}, nil
}
