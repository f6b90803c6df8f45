package filter

import "strings"

// SchemaVersion is the current shape of the persisted configuration.
// Version 1 was a flat keyword list without groups.
const SchemaVersion = 2

// Config is the persisted filter configuration. Group slice order defines
// execution order.
type Config struct {
	MasterEnabled   bool    `json:"master_enabled"`
	SimplifyEnabled bool    `json:"simplify_enabled"`
	Groups          []Group `json:"groups"`
	SchemaVersion   int     `json:"schema_version"`
}

// DefaultConfig is the first-run configuration: filtering off, no groups.
func DefaultConfig() Config {
	return Config{SchemaVersion: SchemaVersion}
}

// MigrateLegacyKeywords lifts the version 1 flat keyword list into a single
// synthesized group. Pure transform; keyword order is preserved.
func MigrateLegacyKeywords(keywords []string) Group {
	kept := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			kept = append(kept, kw)
		}
	}
	return NewGroup("Imported keywords", kept...)
}
