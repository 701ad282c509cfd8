package cubegen

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/match"
)

const (
	randomConfidence     = 0.2
	standaloneConfidence = 0.5
	validationPenalty    = 0.8
	suggestThreshold     = 0.5
)

// FromPrompt runs the base pipeline: keyword match, modifier and gradient
// collection, then parameter synthesis. It always returns a successful
// result, falling back from keyword to hybrid to random.
func (e *Engine) FromPrompt(ctx context.Context, prompt string) cube.Result {
	return e.generate(prompt)
}

func (e *Engine) generate(prompt string) cube.Result {
	a := match.Analyze(e.pipeline.Process(prompt))
	res := e.synthesize(prompt, a)
	e.log.Debug().
		Str("prompt", prompt).
		Str("method", string(res.Method)).
		Float64("confidence", res.Confidence).
		Int("modifiers", a.Modifiers.Count).
		Stringers("fired", modifierStringers(a.Modifiers.Fired)).
		Int("gradients", len(a.Gradients)).
		Msg("generated from prompt")
	return res
}

func modifierStringers(mods []catalog.Modifier) []fmt.Stringer {
	out := make([]fmt.Stringer, len(mods))
	for i, m := range mods {
		out[i] = m
	}
	return out
}

func (e *Engine) synthesize(prompt string, a match.Analysis) cube.Result {
	res := cube.Result{Success: true}
	var obj cube.Object

	switch {
	case a.Keyword.Matched():
		spec := a.Keyword.Material.Spec()
		obj = fromSpec(spec)
		res.Method = cube.MethodKeyword
		res.Confidence = math.Min(0.5+float64(a.Keyword.Score)*0.1+float64(a.Modifiers.Count)*0.05, 0.95)
		if a.Modifiers.Count > 0 || len(a.Gradients) > 0 {
			res.Method = cube.MethodHybrid
		}
		obj.Meta.Name = title(prompt, spec.Name)
	case a.Modifiers.Count > 0:
		obj = e.randomObject()
		res.Method = cube.MethodHybrid
		res.Confidence = cube.Clamp01(0.3 + float64(a.Modifiers.Count)*0.1)
		res.Warn("no material recognized; modifiers applied to random base parameters")
		obj.Meta.Name = title(prompt, obj.Physics.Material)
	default:
		obj = e.randomObject()
		res.Method = cube.MethodRandom
		res.Confidence = randomConfidence
		res.Warn("no keywords recognized; generated random parameters")
		obj.Meta.Name = title(prompt, obj.Physics.Material)
	}

	obj.Base.Color = obj.Base.Color.Add(a.Modifiers.ColorShift)
	obj.Base.Roughness += a.Modifiers.RoughnessShift
	obj.Gradients = a.Gradients
	e.stamp(&obj, prompt)

	res.Object = &obj
	e.validate(&res)
	return res
}

// FromTemplate returns the parameters of a named material exactly, with no
// modifiers or gradients. Unknown names fail with the list of valid ones.
func (e *Engine) FromTemplate(ctx context.Context, name string) cube.Result {
	m, ok := catalog.ParseMaterial(name)
	if !ok {
		res := cube.Result{Method: cube.MethodTemplate}
		res.Warn(fmt.Sprintf("unknown template %q; available templates: %s",
			name, strings.Join(catalog.MaterialNames(), ", ")))
		if s, ok := suggest(name, catalog.MaterialNames()); ok {
			res.Warn(fmt.Sprintf("did you mean %q?", s))
		}
		e.log.Warn().Str("template", name).Msg("unknown template")
		return res
	}

	spec := m.Spec()
	obj := fromSpec(spec)
	obj.Meta.Name = title("", spec.Name)
	obj.AddTags("template")
	e.stamp(&obj, spec.Name)

	res := cube.Result{Success: true, Object: &obj, Method: cube.MethodTemplate, Confidence: 1}
	e.validate(&res)
	return res
}

// Random generates an object from random parameters only.
func (e *Engine) Random(ctx context.Context) cube.Result {
	obj := e.randomObject()
	obj.Meta.Name = "Random " + title("", obj.Physics.Material)
	e.stamp(&obj, "random "+obj.Physics.Material)

	res := cube.Result{Success: true, Object: &obj, Method: cube.MethodRandom, Confidence: standaloneConfidence}
	e.validate(&res)
	return res
}

// randomObject draws every parameter from the fixed random ranges.
func (e *Engine) randomObject() cube.Object {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	r := e.rng
	u := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }

	transparency := 1.0
	if r.Float64() >= 0.7 {
		transparency = u(0.3, 0.8)
	}
	noises := catalog.NoiseTypes()
	physics := catalog.PhysicsMaterials()
	breaks := catalog.BreakPatterns()

	material := physics[r.Intn(len(physics))].String()
	return cube.Object{
		Base: cube.Base{
			Color:        cube.Color{u(0.1, 0.9), u(0.1, 0.9), u(0.1, 0.9)},
			Roughness:    u(0.1, 0.9),
			Transparency: transparency,
		},
		Noise: cube.Noise{
			Type:        noises[r.Intn(len(noises))].String(),
			Scale:       u(2, 17),
			Octaves:     2 + r.Intn(4),
			Persistence: u(0.3, 0.7),
		},
		Physics: cube.Physics{
			Material:     material,
			Density:      u(0.5, 8.5),
			BreakPattern: breaks[r.Intn(len(breaks))].String(),
		},
		Meta: cube.Meta{Tags: []string{"random", material}},
	}
}

func fromSpec(spec catalog.MaterialSpec) cube.Object {
	obj := cube.Object{
		Base: cube.Base{
			Color:        spec.Color,
			Roughness:    spec.Roughness,
			Transparency: spec.Transparency,
		},
		Noise: cube.Noise{
			Type:        spec.Noise.Type.String(),
			Scale:       spec.Noise.Scale,
			Octaves:     spec.Noise.Octaves,
			Persistence: spec.Noise.Persistence,
		},
		Physics: cube.Physics{
			Material:     spec.Physics.Material.String(),
			Density:      spec.Physics.Density,
			BreakPattern: spec.Physics.BreakPattern.String(),
		},
	}
	obj.AddTags(spec.Tags...)
	return obj
}

// stamp finishes an object: identity, authorship, time, the generated tag
// and clamped base parameters.
func (e *Engine) stamp(obj *cube.Object, prompt string) {
	now := e.now()
	obj.ID = e.ids.New(now)
	obj.PromptText = prompt
	obj.Meta.Author = e.author
	obj.Meta.CreatedAt = now.UTC().Truncate(time.Millisecond)
	tags := obj.Meta.Tags
	obj.Meta.Tags = []string{"generated"}
	obj.AddTags(tags...)
	obj.ClampBase()
}

// validate runs the schema validator. A failed report never aborts the
// result: each error becomes a warning and confidence drops by 20%.
func (e *Engine) validate(res *cube.Result) {
	if e.validator == nil || res.Object == nil {
		return
	}
	report := e.validator.Validate(*res.Object)
	if report.Valid {
		return
	}
	if len(report.Errors) == 0 {
		res.Warn("schema validation failed")
	}
	for _, fe := range report.Errors {
		res.Warn("schema: " + fe.String())
	}
	res.Confidence *= validationPenalty
	e.log.Warn().
		Str("id", res.Object.ID).
		Int("errors", len(report.Errors)).
		Msg("generated object failed schema validation")
}

// suggest returns the candidate closest to name by Levenshtein similarity.
func suggest(name string, candidates []string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	metric := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for _, c := range candidates {
		if s := strutil.Similarity(name, c, metric); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore >= suggestThreshold
}

// title names an object after its prompt, or after fallback when the prompt
// is blank.
func title(prompt, fallback string) string {
	s := strings.Join(strings.Fields(prompt), " ")
	if s == "" {
		s = fallback
	}
	return cases.Title(language.Und).String(s)
}
