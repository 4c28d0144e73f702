package linkmap

import "github.com/goliatone/go-linkmap/internal/runtimeconfig"

var (
	ErrExportPathRequired      = runtimeconfig.ErrExportPathRequired
	ErrDomainRequired          = runtimeconfig.ErrDomainRequired
	ErrMediaExtensionInvalid   = runtimeconfig.ErrMediaExtensionInvalid
	ErrArchiveDSNRequired      = runtimeconfig.ErrArchiveDSNRequired
	ErrVaultDirRequired        = runtimeconfig.ErrVaultDirRequired
	ErrServerAddrRequired      = runtimeconfig.ErrServerAddrRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	ExtractionConfig = runtimeconfig.ExtractionConfig
	Features         = runtimeconfig.Features
	ArchiveConfig    = runtimeconfig.ArchiveConfig
	VaultConfig      = runtimeconfig.VaultConfig
	ServerConfig     = runtimeconfig.ServerConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
