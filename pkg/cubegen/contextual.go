package cubegen

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

const (
	styleWeight          = 0.4
	contextBonus         = 0.1
	contextConfidenceCap = 0.98
)

// Context supplies the surroundings of a contextual generation. The style
// comes from the first non-empty source among Style, Existing and Neighbors.
type Context struct {
	Style     *style.Style
	Existing  map[string]cube.Object // visited in key order
	Neighbors []cube.Object
	Theme     string
}

// resolveStyle picks the style source. ok is false when no source is set.
func (c Context) resolveStyle() (style.Style, bool) {
	switch {
	case c.Style != nil:
		return *c.Style, true
	case len(c.Existing) > 0:
		objects := make([]cube.Object, 0, len(c.Existing))
		for _, k := range slices.Sorted(maps.Keys(c.Existing)) {
			objects = append(objects, c.Existing[k])
		}
		return style.Extract(objects), true
	case len(c.Neighbors) > 0:
		return style.Extract(c.Neighbors), true
	}
	return style.Style{}, false
}

// Contextual generates from prompt and pulls the result towards the
// surrounding style, then applies the theme. The method is always hybrid.
func (e *Engine) Contextual(ctx context.Context, prompt string, c Context) cube.Result {
	return e.contextual(prompt, c)
}

func (e *Engine) contextual(prompt string, c Context) cube.Result {
	base := e.generate(prompt)
	if !base.Success || base.Object == nil {
		return base
	}

	obj := base.Object.Clone()
	res := cube.Result{
		Success:    true,
		Method:     cube.MethodHybrid,
		Confidence: math.Min(base.Confidence+contextBonus, contextConfidenceCap),
		Warnings:   base.Warnings,
	}

	if st, ok := c.resolveStyle(); ok {
		obj.Base.Color = obj.Base.Color.Blend(st.AverageColor, styleWeight)
		obj.Base.Roughness = (1-styleWeight)*obj.Base.Roughness + styleWeight*st.AverageRoughness
	}

	if c.Theme != "" {
		if t, ok := catalog.ParseTheme(c.Theme); ok {
			applyTheme(&obj, t.Spec())
		} else {
			res.Warn(fmt.Sprintf("unknown theme %q; available themes: %s",
				c.Theme, strings.Join(catalog.ThemeNames(), ", ")))
			e.log.Warn().Str("theme", c.Theme).Msg("unknown theme")
		}
	}

	obj.ClampBase()
	res.Object = &obj
	return res
}

func applyTheme(obj *cube.Object, spec catalog.ThemeSpec) {
	obj.Base.Color = obj.Base.Color.Add(spec.ColorShift)
	if spec.HasOverride {
		obj.Physics.Material = spec.Override.String()
	}
	obj.AddTags(spec.Tags...)
}
