// Package cube defines the parametric object descriptor produced by the
// generator and the result envelope every generation path returns.
package cube

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Author is stamped into Meta.Author for generated content unless the engine
// is configured otherwise.
const Author = "cubegen-generator"

// Method records which generation path produced an object.
type Method string

const (
	MethodKeyword  Method = "keyword"
	MethodTemplate Method = "template"
	MethodRandom   Method = "random"
	MethodHybrid   Method = "hybrid"
)

// Axis names a gradient direction.
type Axis string

const (
	AxisX      Axis = "x"
	AxisY      Axis = "y"
	AxisZ      Axis = "z"
	AxisRadial Axis = "radial"
)

// Color is an RGB triple with channels in [0,1].
type Color [3]float64

// Object is the generated "cube" descriptor.
type Object struct {
	ID         string     `json:"id"`
	PromptText string     `json:"promptText"`
	Base       Base       `json:"base"`
	Gradients  []Gradient `json:"gradients,omitempty"`
	Noise      Noise      `json:"noise"`
	Physics    Physics    `json:"physics"`
	Meta       Meta       `json:"meta"`
}

// Base holds the surface parameters.
type Base struct {
	Color        Color   `json:"color"`
	Roughness    float64 `json:"roughness"`
	Transparency float64 `json:"transparency"`
}

// Gradient is a per-axis color variation rule.
type Gradient struct {
	Axis       Axis    `json:"axis"`
	Factor     float64 `json:"factor"`
	ColorShift Color   `json:"colorShift"`
}

// Noise describes the procedural noise layer.
type Noise struct {
	Type        string  `json:"type"`
	Scale       float64 `json:"scale"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
}

// Physics describes the simulated material.
type Physics struct {
	Material     string  `json:"material"`
	Density      float64 `json:"density"`
	BreakPattern string  `json:"breakPattern"`
}

// Meta carries descriptive metadata. Tags behave as a set.
type Meta struct {
	Name      string    `json:"name"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Result is returned by every generation path. Generation never fails with a
// Go error; Success is false only for the documented unrecoverable inputs.
type Result struct {
	Success    bool     `json:"success"`
	Object     *Object  `json:"object"`
	Method     Method   `json:"method"`
	Confidence float64  `json:"confidence"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Warn appends a warning to the result.
func (r *Result) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Add returns c shifted by d, without clamping.
func (c Color) Add(d Color) Color {
	return Color{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float64) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f}
}

// Clamped limits every channel to [0,1].
func (c Color) Clamped() Color {
	return fromColorful(c.colorful().Clamped())
}

// Blend moves c towards to by t: c + t*(to-c).
func (c Color) Blend(to Color, t float64) Color {
	return fromColorful(c.colorful().BlendRgb(to.colorful(), t))
}

// Invert returns 1-c per channel.
func (c Color) Invert() Color {
	return Color{1 - c[0], 1 - c[1], 1 - c[2]}
}

// Hex renders the clamped color as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

func fromColorful(c colorful.Color) Color {
	return Color{c.R, c.G, c.B}
}

// HasTag reports whether the object carries tag.
func (o *Object) HasTag(tag string) bool {
	for _, t := range o.Meta.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTags appends tags that are not yet present, preserving order.
func (o *Object) AddTags(tags ...string) {
	for _, t := range tags {
		if t == "" || o.HasTag(t) {
			continue
		}
		o.Meta.Tags = append(o.Meta.Tags, t)
	}
}

// Clone returns a deep copy of o. Blending operations work on clones so inputs
// are never mutated.
func (o Object) Clone() Object {
	out := o
	if o.Gradients != nil {
		out.Gradients = make([]Gradient, len(o.Gradients))
		copy(out.Gradients, o.Gradients)
	}
	if o.Meta.Tags != nil {
		out.Meta.Tags = make([]string, len(o.Meta.Tags))
		copy(out.Meta.Tags, o.Meta.Tags)
	}
	return out
}

// ClampBase forces color, roughness and transparency into range.
func (o *Object) ClampBase() {
	o.Base.Color = o.Base.Color.Clamped()
	o.Base.Roughness = Clamp01(o.Base.Roughness)
	o.Base.Transparency = Clamp01(o.Base.Transparency)
}
