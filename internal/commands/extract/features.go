package extractcmd

// FeatureGates exposes runtime feature toggles required by extraction command
// handlers. Callers supply closures reading linkmap.Config so handlers stay
// decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	VaultEnabled func() bool
}

func (g FeatureGates) vaultEnabled() bool {
	if g.VaultEnabled == nil {
		return true
	}
	return g.VaultEnabled()
}
