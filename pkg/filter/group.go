package filter

import (
	"strings"

	"github.com/google/uuid"
)

// Group is one ordered rule set of the filter engine. Tags matching any of
// its keywords are removed; a valid replacement splices its tokens in where
// the first removed tag stood.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Enabled     bool     `json:"enabled"`
	Keywords    []string `json:"keywords"`
	Replacement string   `json:"replacement"`

	// MatchCount is recomputed on every filter run and never persisted.
	MatchCount int `json:"-"`
}

// NewGroup creates an enabled group with a fresh id. An empty name gets a
// placeholder derived from the id.
func NewGroup(name string, keywords ...string) Group {
	id := uuid.NewString()
	return Group{
		ID:       id,
		Name:     groupName(name, id),
		Enabled:  true,
		Keywords: keywords,
	}
}

func groupName(name, id string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return "Group " + id
}
