package catalog

import (
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// GroupType is a spatial arrangement of objects.
type GroupType uint8

const (
	GroupWall GroupType = iota
	GroupFloor
	GroupColumn
	GroupStructure
	GroupTerrain
	groupTypeCount
)

// GroupSpec is the default extent and gradient axis of a group type.
// Axis is one of x, y, z or radial.
type GroupSpec struct {
	Name   string
	Extent [3]int
	Axis   cube.Axis
}

var groupTypes = map[GroupType]GroupSpec{
	GroupWall:      {Name: "wall", Extent: [3]int{4, 3, 1}, Axis: cube.AxisY},
	GroupFloor:     {Name: "floor", Extent: [3]int{4, 1, 4}, Axis: cube.AxisRadial},
	GroupColumn:    {Name: "column", Extent: [3]int{1, 5, 1}, Axis: cube.AxisY},
	GroupStructure: {Name: "structure", Extent: [3]int{3, 3, 3}, Axis: cube.AxisRadial},
	GroupTerrain:   {Name: "terrain", Extent: [3]int{6, 1, 6}, Axis: cube.AxisX},
}

var groupTypeIndex = func() map[string]GroupType {
	out := make(map[string]GroupType, len(groupTypes))
	for g, spec := range groupTypes {
		out[spec.Name] = g
	}
	return out
}()

// GroupShift is the color shift applied at position factor 1.
var GroupShift = cube.Color{0.15, 0.10, 0.05}

func (g GroupType) String() string { return groupTypes[g].Name }

// Spec returns the defaults of g.
func (g GroupType) Spec() GroupSpec { return groupTypes[g] }

// ParseGroupType resolves a group type name, trimmed and case-insensitive.
func ParseGroupType(name string) (GroupType, bool) {
	g, ok := groupTypeIndex[strings.ToLower(strings.TrimSpace(name))]
	return g, ok
}

// GroupTypes lists every group type in declaration order.
func GroupTypes() []GroupType {
	out := make([]GroupType, 0, groupTypeCount)
	for g := GroupType(0); g < groupTypeCount; g++ {
		out = append(out, g)
	}
	return out
}

// GroupTypeNames lists every group type name in declaration order.
func GroupTypeNames() []string {
	out := make([]string, 0, groupTypeCount)
	for _, g := range GroupTypes() {
		out = append(out, g.String())
	}
	return out
}

// VariationWords prefix the primary prompt when a composite asks for extra
// variations; they are used in order and cycled.
var VariationWords = []string{"weathered", "mossy", "cracked", "polished", "ancient"}
