package pipeline

import (
	"fmt"

	"github.com/mwantia/tagsift/pkg/filter"
	"github.com/mwantia/tagsift/pkg/log"
)

// Status is the read-only snapshot a conversion leaves behind. It is the
// only channel a presentation layer reads from the converter.
type Status struct {
	Format          string              `json:"format"`
	TagCount        int                 `json:"tag_count"`
	MasterEnabled   bool                `json:"master_enabled"`
	SimplifyEnabled bool                `json:"simplify_enabled"`
	GroupMatches    []filter.GroupMatch `json:"group_matches,omitempty"`
	TotalFiltered   int                 `json:"total_filtered"`
	TotalSimplified int                 `json:"total_simplified"`
	Error           string              `json:"error,omitempty"`
}

// Converter sequences the pipeline stages: detect, extract, clean, filter.
// It holds no mutable state beyond the status of the last run, so a new
// call simply supersedes the previous result.
type Converter struct {
	log    log.LoggerService
	engine *filter.Engine
	status Status
}

func NewConverter(logger log.LoggerService, engine *filter.Engine) *Converter {
	return &Converter{
		log:    logger,
		engine: engine,
	}
}

// Convert runs the full pipeline on raw input and returns the final tag
// list. Empty input yields an empty list with no side effects. Failures do
// not propagate: the converter logs them, records an error status and
// returns an empty list so the caller never crashes on malformed input.
func (c *Converter) Convert(raw string) []string {
	return c.ConvertAs(raw, DetectFormat(raw))
}

// ConvertAs runs the pipeline with a forced format, skipping detection.
func (c *Converter) ConvertAs(raw string, format Format) (tags []string) {
	if raw == "" {
		return []string{}
	}

	defer func() {
		if r := recover(); r != nil {
			if c.log != nil {
				c.log.Error("conversion failed: %v", r)
			}
			c.status = Status{Error: fmt.Sprintf("%v", r)}
			tags = []string{}
		}
	}()

	content := ExtractContent(raw, format)
	cleaned := CleanContent(content)

	cfg := c.engine.Config()
	result := c.engine.Apply(cleaned)

	c.status = Status{
		Format:          format.String(),
		TagCount:        len(result.Tags),
		MasterEnabled:   cfg.MasterEnabled,
		SimplifyEnabled: cfg.SimplifyEnabled,
		GroupMatches:    result.GroupMatches,
		TotalFiltered:   result.TotalFiltered,
		TotalSimplified: result.TotalSimplified,
	}

	return result.Tags
}

// Status returns the snapshot recorded by the last conversion.
func (c *Converter) Status() Status {
	return c.status
}
