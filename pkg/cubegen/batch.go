package cubegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

// Batch grouping modes.
const (
	GroupingIndividual = "individual"
	GroupingRelated    = "related"
	GroupingThemed     = "themed"
)

// BatchRequest describes a list of prompts generated in one pass.
type BatchRequest struct {
	Prompts        []string      `json:"prompts"`
	Style          string        `json:"style,omitempty"`    // prefixed to every prompt
	Grouping       string        `json:"grouping,omitempty"` // individual (default), related, themed
	Theme          string        `json:"theme,omitempty"`    // used by themed
	ContextObjects []cube.Object `json:"contextObjects,omitempty"`
}

// Batch returns one result per prompt, in input order. Related and themed
// batches re-extract the style from the context objects and everything
// generated so far before each prompt, so later items follow earlier ones.
func (e *Engine) Batch(ctx context.Context, req BatchRequest) []cube.Result {
	grouping := strings.ToLower(strings.TrimSpace(req.Grouping))
	if grouping == "" {
		grouping = GroupingIndividual
	}

	var unknown string
	switch grouping {
	case GroupingIndividual, GroupingRelated, GroupingThemed:
	default:
		unknown = fmt.Sprintf("unknown grouping %q; treated as %s", req.Grouping, GroupingIndividual)
		e.log.Warn().Str("grouping", req.Grouping).Msg("unknown batch grouping")
		grouping = GroupingIndividual
	}

	results := make([]cube.Result, 0, len(req.Prompts))
	pool := append([]cube.Object{}, req.ContextObjects...)

	for _, p := range req.Prompts {
		prompt := strings.TrimSpace(req.Style + " " + p)

		var res cube.Result
		if grouping == GroupingIndividual {
			res = e.generate(prompt)
		} else {
			c := Context{}
			if len(pool) > 0 {
				st := style.Extract(pool)
				c.Style = &st
			}
			if grouping == GroupingThemed {
				c.Theme = req.Theme
			}
			res = e.contextual(prompt, c)
		}

		if unknown != "" {
			res.Warn(unknown)
		}
		if res.Success && res.Object != nil {
			pool = append(pool, *res.Object)
		}
		results = append(results, res)
	}

	e.log.Debug().Str("grouping", grouping).Int("prompts", len(req.Prompts)).Msg("batch generated")
	return results
}
