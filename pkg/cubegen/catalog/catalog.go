// Package catalog holds the rule tables that drive generation. Each kind of
// rule is a small enum with an associated-data table keyed by the enum value,
// plus a reverse index from the canonical English keyword.
package catalog

import "github.com/cognicore/cubegen/pkg/cubegen/cube"

// NoiseType is a procedural noise family.
type NoiseType uint8

const (
	NoisePerlin NoiseType = iota
	NoiseSimplex
	NoiseWorley
	noiseTypeCount
)

var noiseTypeNames = map[NoiseType]string{
	NoisePerlin:  "perlin",
	NoiseSimplex: "simplex",
	NoiseWorley:  "worley",
}

func (n NoiseType) String() string { return noiseTypeNames[n] }

// NoiseTypes lists every noise type in declaration order.
func NoiseTypes() []NoiseType {
	out := make([]NoiseType, 0, noiseTypeCount)
	for n := NoiseType(0); n < noiseTypeCount; n++ {
		out = append(out, n)
	}
	return out
}

// PhysicsMaterial is the simulated material class.
type PhysicsMaterial uint8

const (
	PhysicsStone PhysicsMaterial = iota
	PhysicsWood
	PhysicsMetal
	PhysicsGlass
	PhysicsOrganic
	PhysicsCrystal
	PhysicsLiquid
	physicsMaterialCount
)

var physicsMaterialNames = map[PhysicsMaterial]string{
	PhysicsStone:   "stone",
	PhysicsWood:    "wood",
	PhysicsMetal:   "metal",
	PhysicsGlass:   "glass",
	PhysicsOrganic: "organic",
	PhysicsCrystal: "crystal",
	PhysicsLiquid:  "liquid",
}

func (p PhysicsMaterial) String() string { return physicsMaterialNames[p] }

// PhysicsMaterials lists every physics material in declaration order.
func PhysicsMaterials() []PhysicsMaterial {
	out := make([]PhysicsMaterial, 0, physicsMaterialCount)
	for p := PhysicsMaterial(0); p < physicsMaterialCount; p++ {
		out = append(out, p)
	}
	return out
}

// BreakPattern describes how an object fractures.
type BreakPattern uint8

const (
	BreakCrumble BreakPattern = iota
	BreakShatter
	BreakSplinter
	BreakBend
	BreakDissolve
	breakPatternCount
)

var breakPatternNames = map[BreakPattern]string{
	BreakCrumble:  "crumble",
	BreakShatter:  "shatter",
	BreakSplinter: "splinter",
	BreakBend:     "bend",
	BreakDissolve: "dissolve",
}

func (b BreakPattern) String() string { return breakPatternNames[b] }

// BreakPatterns lists every break pattern in declaration order.
func BreakPatterns() []BreakPattern {
	out := make([]BreakPattern, 0, breakPatternCount)
	for b := BreakPattern(0); b < breakPatternCount; b++ {
		out = append(out, b)
	}
	return out
}

// Shift is an additive color and roughness adjustment.
type Shift struct {
	Color     cube.Color
	Roughness float64
}

func names[K comparable](order []K, table map[K]string) []string {
	out := make([]string, 0, len(order))
	for _, k := range order {
		out = append(out, table[k])
	}
	return out
}

func index[K comparable](table map[K]string) map[string]K {
	out := make(map[string]K, len(table))
	for k, name := range table {
		out[name] = k
	}
	return out
}
