package cubegen

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

// MaxGroupExtent bounds each axis of a group grid.
const MaxGroupExtent = 32

const (
	groupCellConfidence = 0.8
	groupConfidenceCap  = 0.95
)

// GroupResult holds the cells of a group, index-aligned with their grid
// positions.
type GroupResult struct {
	Success    bool          `json:"success"`
	Type       string        `json:"type"`
	Dimensions [3]int        `json:"dimensions"`
	Objects    []cube.Object `json:"objects"`
	Positions  [][3]int      `json:"positions"`
	Method     cube.Method   `json:"method"`
	Confidence float64       `json:"confidence"`
	Warnings   []string      `json:"warnings,omitempty"`
}

func (r *GroupResult) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Group fills a grid with style-consistent objects whose color drifts along
// the group type's gradient axis. A zero or negative entry in dims keeps the
// default extent for that axis; entries above MaxGroupExtent are capped with a
// warning.
func (e *Engine) Group(ctx context.Context, groupType, description string, dims [3]int) GroupResult {
	g, ok := catalog.ParseGroupType(groupType)
	if !ok {
		out := GroupResult{Type: groupType, Method: cube.MethodHybrid}
		out.warn(fmt.Sprintf("unknown group type %q; available group types: %s",
			groupType, strings.Join(catalog.GroupTypeNames(), ", ")))
		e.log.Warn().Str("group", groupType).Msg("unknown group type")
		return out
	}
	spec := g.Spec()

	var capped []string
	extent := spec.Extent
	for i, d := range dims {
		switch {
		case d > MaxGroupExtent:
			extent[i] = MaxGroupExtent
			capped = append(capped, fmt.Sprintf("%c=%d", "xyz"[i], d))
		case d > 0:
			extent[i] = d
		}
	}

	out := GroupResult{Type: spec.Name, Dimensions: extent, Method: cube.MethodHybrid}
	if len(capped) > 0 {
		out.warn(fmt.Sprintf("dimensions %s capped to %d", strings.Join(capped, ", "), MaxGroupExtent))
		e.log.Warn().Strs("capped", capped).Msg("group dimensions capped")
	}

	base := e.generate(description)
	out.Warnings = append(out.Warnings, base.Warnings...)
	if !base.Success || base.Object == nil {
		out.warn("base object could not be generated")
		return out
	}
	st := style.Extract([]cube.Object{*base.Object})

	first := -1.0
	for x := 0; x < extent[0]; x++ {
		for y := 0; y < extent[1]; y++ {
			for z := 0; z < extent[2]; z++ {
				pos := [3]int{x, y, z}
				cell := e.contextual(description, Context{Style: &st})
				if !cell.Success || cell.Object == nil {
					out.warn(fmt.Sprintf("cell %v: generation failed", pos))
					continue
				}

				f := e.ease(positionFactor(spec.Axis, pos, extent))
				obj := cell.Object.Clone()
				obj.Base.Color = obj.Base.Color.Add(catalog.GroupShift.Scale(f))
				obj.ClampBase()
				obj.AddTags(spec.Name)
				obj.Meta.Name = fmt.Sprintf("%s %d-%d-%d", obj.Meta.Name, x, y, z)

				if first < 0 {
					first = cell.Confidence
				}
				out.Objects = append(out.Objects, obj)
				out.Positions = append(out.Positions, pos)
			}
		}
	}

	if n := len(out.Objects); n > 0 {
		out.Success = true
		avg := (first + groupCellConfidence*float64(n-1)) / float64(n)
		out.Confidence = math.Min(avg, groupConfidenceCap)
	}

	e.log.Debug().
		Str("group", spec.Name).
		Ints("extent", extent[:]).
		Int("cells", len(out.Objects)).
		Msg("group generated")
	return out
}

// positionFactor maps a cell to [0,1]: linear along x, y or z, or the
// distance from the grid center over the center-to-corner distance.
func positionFactor(axis cube.Axis, pos, extent [3]int) float64 {
	linear := func(i int) float64 {
		if extent[i] <= 1 {
			return 0
		}
		return float64(pos[i]) / float64(extent[i]-1)
	}

	switch axis {
	case cube.AxisX:
		return linear(0)
	case cube.AxisY:
		return linear(1)
	case cube.AxisZ:
		return linear(2)
	}

	var dist, maxDist float64
	for i := 0; i < 3; i++ {
		c := float64(extent[i]-1) / 2
		d := float64(pos[i]) - c
		dist += d * d
		maxDist += c * c
	}
	if maxDist == 0 {
		return 0
	}
	return math.Sqrt(dist) / math.Sqrt(maxDist)
}

func (e *Engine) ease(f float64) float64 {
	return float64(e.easing(float32(f), 0, 1, 1))
}
