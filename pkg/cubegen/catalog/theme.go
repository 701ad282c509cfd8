package catalog

import (
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// Theme is a named look applied on top of contextual generation.
type Theme uint8

const (
	ThemeMedieval Theme = iota
	ThemeFuturistic
	ThemeNatural
	ThemeDesert
	ThemeArctic
	ThemeVolcanic
	ThemeUnderwater
	ThemeIndustrial
	themeCount
)

// ThemeSpec describes what a theme does to an object. Override is applied
// only when HasOverride is set.
type ThemeSpec struct {
	Name        string
	ColorShift  cube.Color
	HasOverride bool
	Override    PhysicsMaterial
	Tags        []string
}

var themes = map[Theme]ThemeSpec{
	ThemeMedieval: {
		Name: "medieval", ColorShift: cube.Color{-0.05, -0.05, -0.08},
		HasOverride: true, Override: PhysicsStone,
		Tags: []string{"medieval", "rustic"},
	},
	ThemeFuturistic: {
		Name: "futuristic", ColorShift: cube.Color{0.05, 0.08, 0.15},
		HasOverride: true, Override: PhysicsMetal,
		Tags: []string{"futuristic", "scifi"},
	},
	ThemeNatural: {
		Name: "natural", ColorShift: cube.Color{-0.05, 0.08, -0.05},
		Tags: []string{"natural", "organic"},
	},
	ThemeDesert: {
		Name: "desert", ColorShift: cube.Color{0.1, 0.05, -0.08},
		HasOverride: true, Override: PhysicsStone,
		Tags: []string{"desert", "arid"},
	},
	ThemeArctic: {
		Name: "arctic", ColorShift: cube.Color{0.05, 0.08, 0.15},
		HasOverride: true, Override: PhysicsCrystal,
		Tags: []string{"arctic", "frozen"},
	},
	ThemeVolcanic: {
		Name: "volcanic", ColorShift: cube.Color{0.15, -0.05, -0.1},
		HasOverride: true, Override: PhysicsStone,
		Tags: []string{"volcanic", "hot"},
	},
	ThemeUnderwater: {
		Name: "underwater", ColorShift: cube.Color{-0.1, 0.05, 0.15},
		Tags: []string{"underwater", "aquatic"},
	},
	ThemeIndustrial: {
		Name: "industrial", ColorShift: cube.Color{-0.05, -0.05, -0.03},
		HasOverride: true, Override: PhysicsMetal,
		Tags: []string{"industrial"},
	},
}

var themeIndex = func() map[string]Theme {
	out := make(map[string]Theme, len(themes))
	for t, spec := range themes {
		out[spec.Name] = t
	}
	return out
}()

func (t Theme) String() string { return themes[t].Name }

// Spec returns the parameters of t.
func (t Theme) Spec() ThemeSpec { return themes[t] }

// ParseTheme resolves a theme name, trimmed and case-insensitive.
func ParseTheme(name string) (Theme, bool) {
	t, ok := themeIndex[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Themes lists every theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, 0, themeCount)
	for t := Theme(0); t < themeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ThemeNames lists every theme name in declaration order.
func ThemeNames() []string {
	out := make([]string, 0, themeCount)
	for _, t := range Themes() {
		out = append(out, t.String())
	}
	return out
}
