package catalog

import "github.com/cognicore/cubegen/pkg/cubegen/cube"

// Modifier is a color or texture adjective that shifts parameters without
// selecting a material.
type Modifier uint8

const (
	ModDark Modifier = iota
	ModLight
	ModBright
	ModPale
	ModRed
	ModGreen
	ModBlue
	ModYellow
	ModOrange
	ModPurple
	ModBrown
	ModGray
	ModGrey
	ModBlack
	ModWhite
	ModWeathered
	ModOld
	ModAncient
	ModPolished
	ModSmooth
	ModRough
	ModMossy
	ModWet
	ModDry
	ModRusty
	ModBurnt
	ModShiny
	ModMatte
	ModDirty
	ModClean
	ModCracked
	ModFrozen
	modifierCount
)

var modifierNames = map[Modifier]string{
	ModDark:      "dark",
	ModLight:     "light",
	ModBright:    "bright",
	ModPale:      "pale",
	ModRed:       "red",
	ModGreen:     "green",
	ModBlue:      "blue",
	ModYellow:    "yellow",
	ModOrange:    "orange",
	ModPurple:    "purple",
	ModBrown:     "brown",
	ModGray:      "gray",
	ModGrey:      "grey",
	ModBlack:     "black",
	ModWhite:     "white",
	ModWeathered: "weathered",
	ModOld:       "old",
	ModAncient:   "ancient",
	ModPolished:  "polished",
	ModSmooth:    "smooth",
	ModRough:     "rough",
	ModMossy:     "mossy",
	ModWet:       "wet",
	ModDry:       "dry",
	ModRusty:     "rusty",
	ModBurnt:     "burnt",
	ModShiny:     "shiny",
	ModMatte:     "matte",
	ModDirty:     "dirty",
	ModClean:     "clean",
	ModCracked:   "cracked",
	ModFrozen:    "frozen",
}

var modifiers = map[Modifier]Shift{
	ModDark:      {cube.Color{-0.2, -0.2, -0.2}, 0},
	ModLight:     {cube.Color{0.15, 0.15, 0.15}, 0},
	ModBright:    {cube.Color{0.2, 0.2, 0.2}, -0.05},
	ModPale:      {cube.Color{0.1, 0.1, 0.1}, 0},
	ModRed:       {cube.Color{0.25, -0.05, -0.05}, 0},
	ModGreen:     {cube.Color{-0.05, 0.25, -0.05}, 0},
	ModBlue:      {cube.Color{-0.05, -0.05, 0.25}, 0},
	ModYellow:    {cube.Color{0.2, 0.2, -0.1}, 0},
	ModOrange:    {cube.Color{0.25, 0.1, -0.1}, 0},
	ModPurple:    {cube.Color{0.15, -0.05, 0.2}, 0},
	ModBrown:     {cube.Color{0.05, -0.05, -0.1}, 0.05},
	ModGray:      {cube.Color{0, 0, 0}, 0},
	ModGrey:      {cube.Color{0, 0, 0}, 0},
	ModBlack:     {cube.Color{-0.4, -0.4, -0.4}, 0},
	ModWhite:     {cube.Color{0.4, 0.4, 0.4}, 0},
	ModWeathered: {cube.Color{-0.05, -0.05, -0.08}, 0.15},
	ModOld:       {cube.Color{-0.05, -0.06, -0.08}, 0.1},
	ModAncient:   {cube.Color{-0.08, -0.08, -0.1}, 0.2},
	ModPolished:  {cube.Color{0.05, 0.05, 0.05}, -0.3},
	ModSmooth:    {cube.Color{0, 0, 0}, -0.2},
	ModRough:     {cube.Color{0, 0, 0}, 0.2},
	ModMossy:     {cube.Color{-0.1, 0.1, -0.1}, 0.1},
	ModWet:       {cube.Color{-0.1, -0.1, -0.05}, -0.25},
	ModDry:       {cube.Color{0.05, 0.03, 0}, 0.1},
	ModRusty:     {cube.Color{0.1, -0.05, -0.1}, 0.2},
	ModBurnt:     {cube.Color{-0.25, -0.25, -0.25}, 0.1},
	ModShiny:     {cube.Color{0.08, 0.08, 0.08}, -0.35},
	ModMatte:     {cube.Color{0, 0, 0}, 0.15},
	ModDirty:     {cube.Color{-0.1, -0.1, -0.12}, 0.1},
	ModClean:     {cube.Color{0.05, 0.05, 0.05}, -0.1},
	ModCracked:   {cube.Color{-0.03, -0.03, -0.03}, 0.15},
	ModFrozen:    {cube.Color{0.05, 0.08, 0.15}, -0.1},
}

var modifierIndex = index(modifierNames)

func (m Modifier) String() string { return modifierNames[m] }

// Shift returns the additive adjustment of m.
func (m Modifier) Shift() Shift { return modifiers[m] }

// LookupModifier resolves a canonical English keyword.
func LookupModifier(keyword string) (Modifier, bool) {
	m, ok := modifierIndex[keyword]
	return m, ok
}

// Modifiers lists every modifier in declaration order.
func Modifiers() []Modifier {
	out := make([]Modifier, 0, modifierCount)
	for m := Modifier(0); m < modifierCount; m++ {
		out = append(out, m)
	}
	return out
}
