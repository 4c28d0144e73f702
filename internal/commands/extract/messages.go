package extractcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	extractMessageType     = "linkmap.extract.run"
	vaultExportMessageType = "linkmap.extract.export_vault"
)

// ExtractCommand triggers a full extraction pass over the configured export:
// read items, extract internal links, build the index, graph, and diagram.
type ExtractCommand struct {
	// ExportPath selects the WXR export document to mine.
	ExportPath string `json:"export_path"`
	// Domain classifies links as internal via substring containment.
	Domain string `json:"domain"`
	// MediaExtensions overrides the media suffix exclusion list when set.
	MediaExtensions []string `json:"media_extensions,omitempty"`
	// AffiliateMarker overrides the affiliate exclusion substring when set.
	AffiliateMarker string `json:"affiliate_marker,omitempty"`
	// Dedupe collapses duplicate targets per article before graph and diagram
	// generation.
	Dedupe bool `json:"dedupe,omitempty"`
}

// Type implements command.Message.
func (ExtractCommand) Type() string { return extractMessageType }

// Validate ensures the export path and domain are present before handlers execute.
func (cmd ExtractCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ExportPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("linkmap.extract.run.export_path_required", "export path is required")
			}
			return nil
		})),
		validation.Field(&cmd.Domain, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("linkmap.extract.run.domain_required", "domain is required")
			}
			return nil
		})),
	)
}

// VaultExportCommand writes the most recent extraction result as a Markdown
// note vault under Directory.
type VaultExportCommand struct {
	// Directory selects the filesystem path the notes are written to.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (VaultExportCommand) Type() string { return vaultExportMessageType }

// Validate ensures the directory is present before handlers execute.
func (cmd VaultExportCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("linkmap.extract.export_vault.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
