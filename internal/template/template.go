// Package template loads and selects the block-review prompt template shown
// to the agent when a gate or stop hook requires review.
package template

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bivory/roz/internal/config"
)

// DefaultBlockTemplate is used whenever a named template file is missing or
// unreadable. It must keep instructing the agent to dispatch the reviewer
// subagent via the Task tool, and must keep the {{session_id}} placeholder.
const DefaultBlockTemplate = `Review required before exit.

Use the **Task** tool with these parameters:

- ` + "`subagent_type`" + `: ` + "`\"roz:roz\"`" + `
- ` + "`model`" + `: ` + "`\"opus\"`" + `

Prompt template:

` + "```" + `
SESSION_ID={{session_id}}

## Summary
[What you did and why]

## Files Changed
[List of modified files]
` + "```" + `
`

// Load reads a template by id from <baseDir>/templates/block-<id>.md,
// falling back to DefaultBlockTemplate on any read error.
func Load(id, baseDir string) string {
	path := filepath.Join(baseDir, "templates", "block-"+id+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBlockTemplate
	}
	return string(data)
}

// Select resolves the configured template id: "random" triggers weighted
// selection over cfg.Weights, anything else is returned as-is.
func Select(cfg config.TemplateConfig) string {
	if cfg.Active == "random" {
		return WeightedRandom(cfg.Weights)
	}
	return cfg.Active
}

// WeightedRandom picks a template id with probability proportional to its
// weight. An empty weight map, or one whose weights sum to zero, returns the
// stable fallback "default" — both cases collapse to the same deterministic
// fallback since nothing about a zero-sum distribution can meaningfully
// favor one key over another.
//
// The draw itself is a time-derived, non-cryptographic modulo pick rather
// than a seeded PRNG — acceptable here since template choice only affects
// which wording the agent sees, not anything security-sensitive.
func WeightedRandom(weights map[string]int) string {
	if len(weights) == 0 {
		return "default"
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return "default"
	}

	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	roll := int(time.Now().UnixNano() % int64(total))
	cumulative := 0
	for _, id := range ids {
		cumulative += weights[id]
		if roll < cumulative {
			return id
		}
	}
	return ids[0]
}
