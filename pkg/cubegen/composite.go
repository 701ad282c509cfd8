package cubegen

import (
	"context"
	"fmt"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

// Neighbor describes an object placed next to the primary.
type Neighbor struct {
	Direction   string `json:"direction"` // x, -x, y, -y, z, -z
	Relation    string `json:"relation"`  // similar, contrast, gradient, complement
	Description string `json:"description"`
}

// CompositeRequest describes a primary object with related neighbors.
type CompositeRequest struct {
	Primary    string     `json:"primary"`
	Neighbors  []Neighbor `json:"neighbors,omitempty"`
	Theme      string     `json:"theme,omitempty"`
	Context    *Context   `json:"-"`
	Variations int        `json:"variations,omitempty"`
}

// CompositeResult holds the primary and its neighbors, index-aligned with
// their positions; the primary is first at the origin.
type CompositeResult struct {
	Success    bool          `json:"success"`
	Objects    []cube.Object `json:"objects"`
	Positions  [][3]int      `json:"positions"`
	Variations []cube.Object `json:"variations,omitempty"`
	Method     cube.Method   `json:"method"`
	Confidence float64       `json:"confidence"`
	Warnings   []string      `json:"warnings,omitempty"`
}

func (r *CompositeResult) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Composite generates the primary object, then each neighbor recolored by its
// relation to the primary, then any extra variations of the primary.
func (e *Engine) Composite(ctx context.Context, req CompositeRequest) CompositeResult {
	var primary cube.Result
	if req.Theme != "" || req.Context != nil {
		c := Context{}
		if req.Context != nil {
			c = *req.Context
		}
		if req.Theme != "" {
			c.Theme = req.Theme
		}
		primary = e.contextual(req.Primary, c)
	} else {
		primary = e.generate(req.Primary)
	}

	out := CompositeResult{Method: primary.Method, Warnings: primary.Warnings}
	if !primary.Success || primary.Object == nil {
		out.warn("primary object could not be generated")
		return out
	}

	out.Success = true
	out.Objects = append(out.Objects, *primary.Object)
	out.Positions = append(out.Positions, [3]int{})
	confidence := primary.Confidence
	base := primary.Object.Base.Color

	for i, n := range req.Neighbors {
		cand := e.contextual(n.Description, Context{
			Neighbors: []cube.Object{*primary.Object},
			Theme:     req.Theme,
		})
		for _, w := range cand.Warnings {
			out.warn(fmt.Sprintf("neighbor %d: %s", i, w))
		}
		if !cand.Success || cand.Object == nil {
			out.warn(fmt.Sprintf("neighbor %d: generation failed", i))
			continue
		}

		obj := cand.Object.Clone()
		if r, ok := catalog.ParseRelation(n.Relation); ok {
			obj.Base.Color = relate(r, base, obj.Base.Color)
		} else {
			out.warn(fmt.Sprintf("neighbor %d: unknown relation %q; keeping its own color", i, n.Relation))
		}
		obj.ClampBase()

		var pos [3]int
		if d, ok := catalog.ParseDirection(n.Direction); ok {
			pos = d.Offset()
		} else {
			out.warn(fmt.Sprintf("neighbor %d: unknown direction %q; placed at the origin", i, n.Direction))
			e.log.Warn().Str("direction", n.Direction).Msg("unknown neighbor direction")
		}

		out.Objects = append(out.Objects, obj)
		out.Positions = append(out.Positions, pos)
		confidence += cand.Confidence
	}

	for i := 0; i < req.Variations-1; i++ {
		word := catalog.VariationWords[i%len(catalog.VariationWords)]
		produced := append(append([]cube.Object{}, out.Objects...), out.Variations...)
		st := style.Extract(produced)
		v := e.contextual(word+" "+req.Primary, Context{Style: &st})
		if !v.Success || v.Object == nil {
			out.warn(fmt.Sprintf("variation %d: generation failed", i))
			continue
		}
		out.Variations = append(out.Variations, *v.Object)
	}

	if len(out.Objects) > 1 || len(out.Variations) > 0 {
		out.Method = cube.MethodHybrid
	}
	out.Confidence = confidence / float64(len(out.Objects))
	return out
}

// relate recolors a neighbor candidate against the primary color.
func relate(r catalog.Relation, primary, cand cube.Color) cube.Color {
	switch r {
	case catalog.RelationSimilar:
		return cand.Scale(0.3).Add(primary.Scale(0.7))
	case catalog.RelationContrast:
		return primary.Invert().Scale(0.5).Add(cand.Scale(0.5))
	}
	shift, _ := r.Shift()
	return primary.Add(shift)
}
