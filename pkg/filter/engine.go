package filter

import "slices"

// GroupMatch is the per-group hit count of one filter run.
type GroupMatch struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Result carries the filtered tags and the transient statistics of one run.
type Result struct {
	Tags            []string
	Applied         bool
	GroupMatches    []GroupMatch
	TotalFiltered   int
	TotalSimplified int
}

// Engine applies an ordered sequence of filter groups to a tag list.
// The configuration is read, never mutated, during a run.
type Engine struct {
	cfg  Config
	mode SimplifyMode
}

type Option func(*Engine)

// WithSimplifyMode overrides the containment strictness of the simplify
// pass. The default is SimplifyModeStrict.
func WithSimplifyMode(mode SimplifyMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:  cfg,
		mode: SimplifyModeStrict,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Apply folds the groups over the tag list in insertion order. With the
// master toggle off the input passes through unchanged and no statistics
// are recorded. Group order matters: each group sees the edits of the
// groups before it.
func (e *Engine) Apply(tags []string) Result {
	if !e.cfg.MasterEnabled {
		return Result{Tags: slices.Clone(tags)}
	}

	working := slices.Clone(tags)
	res := Result{Applied: true}

	for _, group := range e.cfg.Groups {
		if !group.Enabled || len(group.Keywords) == 0 {
			res.GroupMatches = append(res.GroupMatches, GroupMatch{ID: group.ID, Name: group.Name})
			continue
		}
		working = applyGroup(group, working, &res)
	}

	for _, gm := range res.GroupMatches {
		res.TotalFiltered += gm.Count
	}

	if e.cfg.SimplifyEnabled {
		before := len(working)
		working = Simplify(working, e.mode)
		res.TotalSimplified = before - len(working)
	}

	res.Tags = working
	return res
}

func applyGroup(group Group, tags []string, res *Result) []string {
	patterns := make([]Pattern, 0, len(group.Keywords))
	for _, kw := range group.Keywords {
		patterns = append(patterns, CompilePattern(kw))
	}

	matched := make(map[int]bool, len(tags))
	first := -1
	for i, tag := range tags {
		for _, p := range patterns {
			if p.Matches(tag) {
				matched[i] = true
				if first < 0 {
					first = i
				}
				break
			}
		}
	}

	res.GroupMatches = append(res.GroupMatches, GroupMatch{
		ID:    group.ID,
		Name:  group.Name,
		Count: len(matched),
	})

	if len(matched) == 0 {
		return dedupeExact(tags)
	}

	tokens, valid := ValidateReplacement(group.Replacement)

	out := make([]string, 0, len(tags)+len(tokens))
	for i, tag := range tags {
		if i == first && valid && len(tokens) > 0 {
			out = append(out, tokens...)
		}
		if !matched[i] {
			out = append(out, tag)
		}
	}

	return dedupeExact(out)
}

// dedupeExact removes exact-string duplicates keeping the first occurrence.
// Runs across the whole list after each group's edits.
func dedupeExact(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
