// Package match runs the rule tables over a canonical token stream: the
// keyword matcher picks a material, the collectors accumulate modifier
// shifts and gradient requests.
package match

import (
	"unicode/utf8"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

// Keyword is the outcome of material matching.
type Keyword struct {
	Material catalog.Material
	Token    string
	Score    int // rune length of the winning token, 0 when nothing matched
}

// Matched reports whether a material was found.
func (k Keyword) Matched() bool { return k.Score > 0 }

// MatchKeyword selects the material whose token is longest. Longer tokens are
// taken as more specific; on equal length the first token wins.
func MatchKeyword(tokens []string) Keyword {
	var best Keyword
	for _, tok := range tokens {
		m, ok := catalog.LookupMaterial(tok)
		if !ok {
			continue
		}
		if n := utf8.RuneCountInString(tok); n > best.Score {
			best = Keyword{Material: m, Token: tok, Score: n}
		}
	}
	return best
}

// Modifiers is the accumulated effect of modifier tokens.
type Modifiers struct {
	ColorShift     cube.Color
	RoughnessShift float64
	Count          int
	Fired          []catalog.Modifier
}

// CollectModifiers sums the shifts of every modifier token. Repeated tokens
// stack.
func CollectModifiers(tokens []string) Modifiers {
	var out Modifiers
	for _, tok := range tokens {
		m, ok := catalog.LookupModifier(tok)
		if !ok {
			continue
		}
		s := m.Shift()
		out.ColorShift = out.ColorShift.Add(s.Color)
		out.RoughnessShift += s.Roughness
		out.Count++
		out.Fired = append(out.Fired, m)
	}
	return out
}

// CollectGradients gathers gradient entries in token order. The first entry
// to claim an axis keeps it; later entries on the same axis are dropped, so
// the result never holds two gradients on one axis.
func CollectGradients(tokens []string) []cube.Gradient {
	var out []cube.Gradient
	claimed := make(map[cube.Axis]bool)
	for _, tok := range tokens {
		p, ok := catalog.LookupGradientPattern(tok)
		if !ok {
			continue
		}
		for _, g := range p.Gradients() {
			if claimed[g.Axis] {
				continue
			}
			claimed[g.Axis] = true
			out = append(out, g)
		}
	}
	return out
}

// Analysis bundles the three passes over one token stream.
type Analysis struct {
	Tokens    []string
	Keyword   Keyword
	Modifiers Modifiers
	Gradients []cube.Gradient
}

// Analyze runs the matcher and both collectors.
func Analyze(tokens []string) Analysis {
	return Analysis{
		Tokens:    tokens,
		Keyword:   MatchKeyword(tokens),
		Modifiers: CollectModifiers(tokens),
		Gradients: CollectGradients(tokens),
	}
}
