package catalog

import (
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// Material is a recognised material keyword.
type Material uint8

const (
	MaterialStone Material = iota
	MaterialGranite
	MaterialMarble
	MaterialSandstone
	MaterialBrick
	MaterialConcrete
	MaterialObsidian
	MaterialWood
	MaterialOak
	MaterialPine
	MaterialBirch
	MaterialMahogany
	MaterialMetal
	MaterialIron
	MaterialSteel
	MaterialCopper
	MaterialGold
	MaterialRust
	MaterialGlass
	MaterialIce
	MaterialCrystal
	MaterialWater
	MaterialLava
	MaterialGrass
	MaterialMoss
	MaterialDirt
	MaterialSand
	MaterialClay
	MaterialSnow
	MaterialLeather
	MaterialFabric
	MaterialIvory
	materialCount
)

// MaterialSpec is the default parameter set for a material keyword.
type MaterialSpec struct {
	Name         string
	Color        cube.Color
	Roughness    float64
	Transparency float64
	Noise        NoiseSpec
	Physics      PhysicsSpec
	Tags         []string
}

// NoiseSpec parameterises the noise layer of a material.
type NoiseSpec struct {
	Type        NoiseType
	Scale       float64
	Octaves     int
	Persistence float64
}

// PhysicsSpec parameterises the physics of a material.
type PhysicsSpec struct {
	Material     PhysicsMaterial
	Density      float64
	BreakPattern BreakPattern
}

var materials = map[Material]MaterialSpec{
	MaterialStone: {
		Name: "stone", Color: cube.Color{0.5, 0.5, 0.5}, Roughness: 0.8, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 8, 4, 0.5},
		Physics: PhysicsSpec{PhysicsStone, 2.5, BreakCrumble},
		Tags:    []string{"stone", "natural"},
	},
	MaterialGranite: {
		Name: "granite", Color: cube.Color{0.6, 0.55, 0.55}, Roughness: 0.75, Transparency: 1,
		Noise:   NoiseSpec{NoiseWorley, 12, 5, 0.55},
		Physics: PhysicsSpec{PhysicsStone, 2.7, BreakCrumble},
		Tags:    []string{"stone", "natural", "igneous"},
	},
	MaterialMarble: {
		Name: "marble", Color: cube.Color{0.92, 0.9, 0.88}, Roughness: 0.2, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 4, 6, 0.6},
		Physics: PhysicsSpec{PhysicsStone, 2.6, BreakShatter},
		Tags:    []string{"stone", "polished", "luxury"},
	},
	MaterialSandstone: {
		Name: "sandstone", Color: cube.Color{0.82, 0.7, 0.5}, Roughness: 0.85, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 10, 4, 0.45},
		Physics: PhysicsSpec{PhysicsStone, 2.3, BreakCrumble},
		Tags:    []string{"stone", "desert"},
	},
	MaterialBrick: {
		Name: "brick", Color: cube.Color{0.7, 0.3, 0.2}, Roughness: 0.85, Transparency: 1,
		Noise:   NoiseSpec{NoiseWorley, 6, 3, 0.5},
		Physics: PhysicsSpec{PhysicsStone, 1.9, BreakCrumble},
		Tags:    []string{"building", "masonry"},
	},
	MaterialConcrete: {
		Name: "concrete", Color: cube.Color{0.62, 0.62, 0.6}, Roughness: 0.9, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 14, 3, 0.4},
		Physics: PhysicsSpec{PhysicsStone, 2.4, BreakCrumble},
		Tags:    []string{"building", "industrial"},
	},
	MaterialObsidian: {
		Name: "obsidian", Color: cube.Color{0.08, 0.06, 0.1}, Roughness: 0.1, Transparency: 0.95,
		Noise:   NoiseSpec{NoiseSimplex, 5, 4, 0.6},
		Physics: PhysicsSpec{PhysicsCrystal, 2.4, BreakShatter},
		Tags:    []string{"stone", "volcanic", "glassy"},
	},
	MaterialWood: {
		Name: "wood", Color: cube.Color{0.55, 0.35, 0.2}, Roughness: 0.6, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 6, 5, 0.55},
		Physics: PhysicsSpec{PhysicsWood, 0.7, BreakSplinter},
		Tags:    []string{"wood", "natural"},
	},
	MaterialOak: {
		Name: "oak", Color: cube.Color{0.6, 0.42, 0.25}, Roughness: 0.6, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 5, 5, 0.6},
		Physics: PhysicsSpec{PhysicsWood, 0.75, BreakSplinter},
		Tags:    []string{"wood", "natural", "hardwood"},
	},
	MaterialPine: {
		Name: "pine", Color: cube.Color{0.78, 0.62, 0.4}, Roughness: 0.55, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 7, 4, 0.5},
		Physics: PhysicsSpec{PhysicsWood, 0.5, BreakSplinter},
		Tags:    []string{"wood", "natural", "softwood"},
	},
	MaterialBirch: {
		Name: "birch", Color: cube.Color{0.88, 0.84, 0.75}, Roughness: 0.5, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 9, 4, 0.5},
		Physics: PhysicsSpec{PhysicsWood, 0.65, BreakSplinter},
		Tags:    []string{"wood", "natural", "hardwood"},
	},
	MaterialMahogany: {
		Name: "mahogany", Color: cube.Color{0.45, 0.18, 0.12}, Roughness: 0.45, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 5, 5, 0.6},
		Physics: PhysicsSpec{PhysicsWood, 0.85, BreakSplinter},
		Tags:    []string{"wood", "luxury", "hardwood"},
	},
	MaterialMetal: {
		Name: "metal", Color: cube.Color{0.7, 0.7, 0.72}, Roughness: 0.3, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 20, 2, 0.3},
		Physics: PhysicsSpec{PhysicsMetal, 7.8, BreakBend},
		Tags:    []string{"metal"},
	},
	MaterialIron: {
		Name: "iron", Color: cube.Color{0.45, 0.45, 0.47}, Roughness: 0.5, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 16, 3, 0.4},
		Physics: PhysicsSpec{PhysicsMetal, 7.9, BreakBend},
		Tags:    []string{"metal", "industrial"},
	},
	MaterialSteel: {
		Name: "steel", Color: cube.Color{0.75, 0.76, 0.78}, Roughness: 0.25, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 22, 2, 0.3},
		Physics: PhysicsSpec{PhysicsMetal, 7.85, BreakBend},
		Tags:    []string{"metal", "industrial"},
	},
	MaterialCopper: {
		Name: "copper", Color: cube.Color{0.72, 0.45, 0.2}, Roughness: 0.35, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 18, 3, 0.35},
		Physics: PhysicsSpec{PhysicsMetal, 8.9, BreakBend},
		Tags:    []string{"metal"},
	},
	MaterialGold: {
		Name: "gold", Color: cube.Color{1, 0.84, 0}, Roughness: 0.2, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 24, 2, 0.25},
		Physics: PhysicsSpec{PhysicsMetal, 19.3, BreakBend},
		Tags:    []string{"metal", "precious"},
	},
	MaterialRust: {
		Name: "rust", Color: cube.Color{0.55, 0.25, 0.1}, Roughness: 0.9, Transparency: 1,
		Noise:   NoiseSpec{NoiseWorley, 10, 5, 0.6},
		Physics: PhysicsSpec{PhysicsMetal, 5.2, BreakCrumble},
		Tags:    []string{"metal", "corroded"},
	},
	MaterialGlass: {
		Name: "glass", Color: cube.Color{0.85, 0.92, 0.95}, Roughness: 0.05, Transparency: 0.3,
		Noise:   NoiseSpec{NoiseSimplex, 3, 1, 0.2},
		Physics: PhysicsSpec{PhysicsGlass, 2.5, BreakShatter},
		Tags:    []string{"glass", "transparent"},
	},
	MaterialIce: {
		Name: "ice", Color: cube.Color{0.8, 0.92, 1}, Roughness: 0.1, Transparency: 0.6,
		Noise:   NoiseSpec{NoiseWorley, 8, 3, 0.4},
		Physics: PhysicsSpec{PhysicsCrystal, 0.92, BreakShatter},
		Tags:    []string{"frozen", "transparent"},
	},
	MaterialCrystal: {
		Name: "crystal", Color: cube.Color{0.75, 0.7, 0.95}, Roughness: 0.05, Transparency: 0.5,
		Noise:   NoiseSpec{NoiseWorley, 6, 4, 0.5},
		Physics: PhysicsSpec{PhysicsCrystal, 2.6, BreakShatter},
		Tags:    []string{"crystal", "magical"},
	},
	MaterialWater: {
		Name: "water", Color: cube.Color{0.2, 0.45, 0.75}, Roughness: 0.02, Transparency: 0.4,
		Noise:   NoiseSpec{NoiseSimplex, 2, 3, 0.6},
		Physics: PhysicsSpec{PhysicsLiquid, 1, BreakDissolve},
		Tags:    []string{"liquid"},
	},
	MaterialLava: {
		Name: "lava", Color: cube.Color{1, 0.35, 0.05}, Roughness: 0.7, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 9, 6, 0.65},
		Physics: PhysicsSpec{PhysicsLiquid, 3.1, BreakDissolve},
		Tags:    []string{"volcanic", "hot"},
	},
	MaterialGrass: {
		Name: "grass", Color: cube.Color{0.3, 0.6, 0.2}, Roughness: 0.9, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 16, 4, 0.5},
		Physics: PhysicsSpec{PhysicsOrganic, 0.3, BreakDissolve},
		Tags:    []string{"organic", "natural"},
	},
	MaterialMoss: {
		Name: "moss", Color: cube.Color{0.25, 0.45, 0.15}, Roughness: 0.95, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 14, 5, 0.55},
		Physics: PhysicsSpec{PhysicsOrganic, 0.2, BreakDissolve},
		Tags:    []string{"organic", "natural"},
	},
	MaterialDirt: {
		Name: "dirt", Color: cube.Color{0.4, 0.28, 0.18}, Roughness: 0.95, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 12, 4, 0.5},
		Physics: PhysicsSpec{PhysicsOrganic, 1.3, BreakCrumble},
		Tags:    []string{"organic", "ground"},
	},
	MaterialSand: {
		Name: "sand", Color: cube.Color{0.9, 0.8, 0.55}, Roughness: 0.9, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 18, 3, 0.45},
		Physics: PhysicsSpec{PhysicsOrganic, 1.6, BreakCrumble},
		Tags:    []string{"ground", "desert"},
	},
	MaterialClay: {
		Name: "clay", Color: cube.Color{0.7, 0.45, 0.32}, Roughness: 0.7, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 7, 3, 0.45},
		Physics: PhysicsSpec{PhysicsOrganic, 1.8, BreakCrumble},
		Tags:    []string{"ground", "pottery"},
	},
	MaterialSnow: {
		Name: "snow", Color: cube.Color{0.96, 0.97, 1}, Roughness: 0.6, Transparency: 1,
		Noise:   NoiseSpec{NoiseSimplex, 10, 3, 0.4},
		Physics: PhysicsSpec{PhysicsCrystal, 0.3, BreakCrumble},
		Tags:    []string{"frozen", "natural"},
	},
	MaterialLeather: {
		Name: "leather", Color: cube.Color{0.45, 0.28, 0.16}, Roughness: 0.55, Transparency: 1,
		Noise:   NoiseSpec{NoiseWorley, 20, 3, 0.4},
		Physics: PhysicsSpec{PhysicsOrganic, 0.9, BreakBend},
		Tags:    []string{"organic", "crafted"},
	},
	MaterialFabric: {
		Name: "fabric", Color: cube.Color{0.6, 0.55, 0.5}, Roughness: 0.85, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 30, 2, 0.3},
		Physics: PhysicsSpec{PhysicsOrganic, 0.4, BreakBend},
		Tags:    []string{"organic", "crafted"},
	},
	MaterialIvory: {
		Name: "ivory", Color: cube.Color{0.95, 0.92, 0.82}, Roughness: 0.3, Transparency: 1,
		Noise:   NoiseSpec{NoisePerlin, 6, 3, 0.4},
		Physics: PhysicsSpec{PhysicsOrganic, 1.9, BreakShatter},
		Tags:    []string{"organic", "luxury"},
	},
}

var materialIndex = func() map[string]Material {
	out := make(map[string]Material, len(materials))
	for m, spec := range materials {
		out[spec.Name] = m
	}
	return out
}()

// Spec returns the parameter set of m.
func (m Material) Spec() MaterialSpec { return materials[m] }

func (m Material) String() string { return materials[m].Name }

// LookupMaterial resolves a canonical English keyword.
func LookupMaterial(keyword string) (Material, bool) {
	m, ok := materialIndex[keyword]
	return m, ok
}

// ParseMaterial resolves a template name: trimmed and case-insensitive.
func ParseMaterial(name string) (Material, bool) {
	return LookupMaterial(strings.ToLower(strings.TrimSpace(name)))
}

// Materials lists every material in declaration order.
func Materials() []Material {
	out := make([]Material, 0, materialCount)
	for m := Material(0); m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

// MaterialNames lists every material keyword in declaration order.
func MaterialNames() []string {
	out := make([]string, 0, materialCount)
	for _, m := range Materials() {
		out = append(out, m.String())
	}
	return out
}
