package catalog

import "github.com/cognicore/cubegen/pkg/cubegen/cube"

// GradientPattern is a keyword that requests one or more gradients.
type GradientPattern uint8

const (
	GradVertical GradientPattern = iota
	GradHorizontal
	GradDepth
	GradRadial
	GradTop
	GradBottom
	GradLeft
	GradRight
	GradFront
	GradBack
	GradCenter
	GradEdges
	GradDiagonal
	gradientPatternCount
)

var gradientPatternNames = map[GradientPattern]string{
	GradVertical:   "vertical",
	GradHorizontal: "horizontal",
	GradDepth:      "depth",
	GradRadial:     "radial",
	GradTop:        "top",
	GradBottom:     "bottom",
	GradLeft:       "left",
	GradRight:      "right",
	GradFront:      "front",
	GradBack:       "back",
	GradCenter:     "center",
	GradEdges:      "edges",
	GradDiagonal:   "diagonal",
}

// Diagonal spans two axes, so a single keyword can collide with an axis
// claimed earlier in the same prompt.
var gradientPatterns = map[GradientPattern][]cube.Gradient{
	GradVertical:   {{Axis: cube.AxisY, Factor: 0.3, ColorShift: cube.Color{-0.1, -0.1, -0.1}}},
	GradHorizontal: {{Axis: cube.AxisX, Factor: 0.3, ColorShift: cube.Color{-0.1, -0.1, -0.1}}},
	GradDepth:      {{Axis: cube.AxisZ, Factor: 0.3, ColorShift: cube.Color{-0.08, -0.08, -0.08}}},
	GradRadial:     {{Axis: cube.AxisRadial, Factor: 0.4, ColorShift: cube.Color{-0.15, -0.15, -0.15}}},
	GradTop:        {{Axis: cube.AxisY, Factor: 0.4, ColorShift: cube.Color{0.15, 0.15, 0.15}}},
	GradBottom:     {{Axis: cube.AxisY, Factor: 0.4, ColorShift: cube.Color{-0.15, -0.15, -0.15}}},
	GradLeft:       {{Axis: cube.AxisX, Factor: 0.4, ColorShift: cube.Color{-0.12, -0.12, -0.12}}},
	GradRight:      {{Axis: cube.AxisX, Factor: 0.4, ColorShift: cube.Color{0.12, 0.12, 0.12}}},
	GradFront:      {{Axis: cube.AxisZ, Factor: 0.35, ColorShift: cube.Color{0.1, 0.1, 0.1}}},
	GradBack:       {{Axis: cube.AxisZ, Factor: 0.35, ColorShift: cube.Color{-0.1, -0.1, -0.1}}},
	GradCenter:     {{Axis: cube.AxisRadial, Factor: 0.3, ColorShift: cube.Color{0.1, 0.1, 0.1}}},
	GradEdges:      {{Axis: cube.AxisRadial, Factor: 0.3, ColorShift: cube.Color{-0.1, -0.1, -0.1}}},
	GradDiagonal: {
		{Axis: cube.AxisX, Factor: 0.2, ColorShift: cube.Color{-0.08, -0.08, -0.08}},
		{Axis: cube.AxisY, Factor: 0.2, ColorShift: cube.Color{-0.08, -0.08, -0.08}},
	},
}

var gradientPatternIndex = index(gradientPatternNames)

func (g GradientPattern) String() string { return gradientPatternNames[g] }

// Gradients returns a copy of the entries requested by g.
func (g GradientPattern) Gradients() []cube.Gradient {
	src := gradientPatterns[g]
	out := make([]cube.Gradient, len(src))
	copy(out, src)
	return out
}

// LookupGradientPattern resolves a canonical English keyword.
func LookupGradientPattern(keyword string) (GradientPattern, bool) {
	g, ok := gradientPatternIndex[keyword]
	return g, ok
}

// GradientPatterns lists every pattern in declaration order.
func GradientPatterns() []GradientPattern {
	out := make([]GradientPattern, 0, gradientPatternCount)
	for g := GradientPattern(0); g < gradientPatternCount; g++ {
		out = append(out, g)
	}
	return out
}
