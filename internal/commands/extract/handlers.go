package extractcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-linkmap/internal/commands"
	"github.com/goliatone/go-linkmap/internal/logging"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

const (
	extractOperation     = "extract.run"
	vaultExportOperation = "extract.export_vault"
)

var (
	// ErrVaultFeatureDisabled is returned when the vault feature flag is disabled at runtime.
	ErrVaultFeatureDisabled = errors.New("extract command: vault feature disabled")
)

var (
	_ command.Commander[ExtractCommand]     = (*ExtractHandler)(nil)
	_ command.Commander[VaultExportCommand] = (*VaultExportHandler)(nil)
)

// ExtractHandler orchestrates extraction runs via the shared command handler foundation.
type ExtractHandler struct {
	inner *commands.Handler[ExtractCommand]
}

// NewExtractHandler creates a handler bound to the supplied extraction service.
func NewExtractHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExtractCommand]) *ExtractHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExtractCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		summary, err := service.Extract(ctx, ExtractOptions{
			ExportPath:      msg.ExportPath,
			Domain:          msg.Domain,
			MediaExtensions: msg.MediaExtensions,
			AffiliateMarker: msg.AffiliateMarker,
			Dedupe:          msg.Dedupe,
		})
		if err != nil {
			return err
		}
		if summary != nil {
			logging.WithFields(baseLogger, map[string]any{
				"articles": summary.Articles,
				"links":    summary.Links,
				"nodes":    summary.Nodes,
				"edges":    summary.Edges,
				"dedupe":   msg.Dedupe,
			}).Info("linkmap.command.extract.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExtractCommand]{
		commands.WithLogger[ExtractCommand](baseLogger),
		commands.WithOperation[ExtractCommand](extractOperation),
		commands.WithMessageFields(func(msg ExtractCommand) map[string]any {
			fields := map[string]any{
				"export_path": msg.ExportPath,
				"domain":      msg.Domain,
			}
			if len(msg.MediaExtensions) > 0 {
				fields["media_extensions"] = msg.MediaExtensions
			}
			if msg.AffiliateMarker != "" {
				fields["affiliate_marker"] = msg.AffiliateMarker
			}
			if msg.Dedupe {
				fields["dedupe"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExtractCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExtractHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExtractCommand].
func (h *ExtractHandler) Execute(ctx context.Context, msg ExtractCommand) error {
	return h.inner.Execute(ctx, msg)
}

// VaultExportHandler writes the current extraction result as a note vault.
type VaultExportHandler struct {
	inner *commands.Handler[VaultExportCommand]
}

// NewVaultExportHandler creates a handler bound to the supplied extraction service.
func NewVaultExportHandler(service Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[VaultExportCommand]) *VaultExportHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg VaultExportCommand) error {
		if !gates.vaultEnabled() {
			return ErrVaultFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		written, err := service.ExportVault(ctx, msg.Directory)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"notes": written,
		}).Info("linkmap.command.export_vault.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[VaultExportCommand]{
		commands.WithLogger[VaultExportCommand](baseLogger),
		commands.WithOperation[VaultExportCommand](vaultExportOperation),
		commands.WithMessageFields(func(msg VaultExportCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[VaultExportCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &VaultExportHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[VaultExportCommand].
func (h *VaultExportHandler) Execute(ctx context.Context, msg VaultExportCommand) error {
	return h.inner.Execute(ctx, msg)
}
