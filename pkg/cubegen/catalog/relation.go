package catalog

import (
	"strings"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// Relation says how a composite neighbor is colored relative to the primary.
type Relation uint8

const (
	RelationSimilar Relation = iota
	RelationContrast
	RelationGradient
	RelationComplement
	relationCount
)

var relationNames = map[Relation]string{
	RelationSimilar:    "similar",
	RelationContrast:   "contrast",
	RelationGradient:   "gradient",
	RelationComplement: "complement",
}

// Only gradient and complement carry a fixed shift; similar and contrast mix
// the candidate with the primary.
var relationShifts = map[Relation]cube.Color{
	RelationGradient:   {0.1, 0.05, 0},
	RelationComplement: {-0.2, 0.1, 0.2},
}

var relationIndex = index(relationNames)

func (r Relation) String() string { return relationNames[r] }

// Shift returns the fixed color shift of r, if any.
func (r Relation) Shift() (cube.Color, bool) {
	s, ok := relationShifts[r]
	return s, ok
}

// ParseRelation resolves a relation name, trimmed and case-insensitive.
func ParseRelation(name string) (Relation, bool) {
	r, ok := relationIndex[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// RelationNames lists every relation in declaration order.
func RelationNames() []string {
	order := make([]Relation, 0, relationCount)
	for r := Relation(0); r < relationCount; r++ {
		order = append(order, r)
	}
	return names(order, relationNames)
}

// Direction is a unit offset from the primary object in a composite.
type Direction uint8

const (
	DirPosX Direction = iota
	DirNegX
	DirPosY
	DirNegY
	DirPosZ
	DirNegZ
	directionCount
)

var directionNames = map[Direction]string{
	DirPosX: "x",
	DirNegX: "-x",
	DirPosY: "y",
	DirNegY: "-y",
	DirPosZ: "z",
	DirNegZ: "-z",
}

var directionOffsets = map[Direction][3]int{
	DirPosX: {1, 0, 0},
	DirNegX: {-1, 0, 0},
	DirPosY: {0, 1, 0},
	DirNegY: {0, -1, 0},
	DirPosZ: {0, 0, 1},
	DirNegZ: {0, 0, -1},
}

var directionIndex = index(directionNames)

func (d Direction) String() string { return directionNames[d] }

// Offset returns the unit position offset of d.
func (d Direction) Offset() [3]int { return directionOffsets[d] }

// ParseDirection resolves a direction name, trimmed and case-insensitive.
func ParseDirection(name string) (Direction, bool) {
	d, ok := directionIndex[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	out := make([]Direction, 0, directionCount)
	for d := Direction(0); d < directionCount; d++ {
		out = append(out, d)
	}
	return out
}
