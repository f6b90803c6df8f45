package filter

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Document is the JSON exchange shape for filter configurations.
type Document struct {
	SchemaVersion   int       `json:"schema_version"`
	ExportedAt      time.Time `json:"exported_at"`
	MasterEnabled   bool      `json:"master_enabled"`
	SimplifyEnabled bool      `json:"simplify_enabled"`
	Groups          []Group   `json:"groups"`
}

// ImportMode controls how an imported document merges with the current
// configuration.
type ImportMode int

const (
	// ImportReplace discards the current groups and settings and adopts
	// the imported document wholesale.
	ImportReplace ImportMode = iota

	// ImportAppend keeps the current settings and appends the imported
	// groups under freshly generated ids to avoid collisions.
	ImportAppend
)

// ImportResult is the structured outcome of an import. Failures are values,
// not errors: on Success=false the caller keeps its current configuration,
// which is echoed back in Config.
type ImportResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Config  Config `json:"-"`
	Added   int    `json:"added"`
}

// Export serializes the configuration together with an export timestamp.
func Export(cfg Config, exportedAt time.Time) ([]byte, error) {
	doc := Document{
		SchemaVersion:   cfg.SchemaVersion,
		ExportedAt:      exportedAt.UTC(),
		MasterEnabled:   cfg.MasterEnabled,
		SimplifyEnabled: cfg.SimplifyEnabled,
		Groups:          cfg.Groups,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// rawDocument mirrors Document with pointer fields so missing keys can be
// told apart from zero values during validation.
type rawDocument struct {
	SchemaVersion   *int        `json:"schema_version"`
	MasterEnabled   *bool       `json:"master_enabled"`
	SimplifyEnabled *bool       `json:"simplify_enabled"`
	Groups          *[]rawGroup `json:"groups"`
}

type rawGroup struct {
	ID          *string   `json:"id"`
	Name        *string   `json:"name"`
	Enabled     *bool     `json:"enabled"`
	Keywords    *[]string `json:"keywords"`
	Replacement *string   `json:"replacement"`
}

// Import validates a JSON document and merges it into the current
// configuration according to mode. Documents missing master_enabled or
// groups, or containing a group without id, name or keywords, are rejected.
// Valid-but-partial groups are completed with defaults.
func Import(current Config, data []byte, mode ImportMode) ImportResult {
	fail := func(format string, args ...any) ImportResult {
		return ImportResult{Error: fmt.Sprintf(format, args...), Config: current}
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fail("invalid document: %v", err)
	}
	if doc.MasterEnabled == nil {
		return fail("document is missing 'master_enabled'")
	}
	if doc.Groups == nil {
		return fail("document is missing 'groups'")
	}

	seen := make(map[string]struct{}, len(*doc.Groups))
	groups := make([]Group, 0, len(*doc.Groups))
	for i, rg := range *doc.Groups {
		if rg.ID == nil || *rg.ID == "" {
			return fail("group %d is missing 'id'", i)
		}
		if rg.Name == nil {
			return fail("group %d is missing 'name'", i)
		}
		if rg.Keywords == nil {
			return fail("group %d is missing 'keywords'", i)
		}
		if _, dup := seen[*rg.ID]; dup {
			return fail("duplicate group id %q", *rg.ID)
		}
		seen[*rg.ID] = struct{}{}

		g := Group{
			ID:       *rg.ID,
			Name:     groupName(*rg.Name, *rg.ID),
			Enabled:  true,
			Keywords: *rg.Keywords,
		}
		if rg.Enabled != nil {
			g.Enabled = *rg.Enabled
		}
		if rg.Replacement != nil {
			g.Replacement = *rg.Replacement
		}
		groups = append(groups, g)
	}

	switch mode {
	case ImportAppend:
		next := current
		next.Groups = slices.Clone(current.Groups)
		for _, g := range groups {
			g.ID = uuid.NewString()
			next.Groups = append(next.Groups, g)
		}
		return ImportResult{Success: true, Config: next, Added: len(groups)}

	default:
		next := DefaultConfig()
		next.MasterEnabled = *doc.MasterEnabled
		if doc.SimplifyEnabled != nil {
			next.SimplifyEnabled = *doc.SimplifyEnabled
		}
		next.Groups = groups
		return ImportResult{Success: true, Config: next, Added: len(groups)}
	}
}
