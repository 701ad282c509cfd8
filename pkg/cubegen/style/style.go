// Package style aggregates a shared look over a set of objects so that new
// objects can be kept visually consistent with existing ones.
package style

import "github.com/cognicore/cubegen/pkg/cubegen/cube"

// Style is the aggregate of a set of objects.
type Style struct {
	AverageColor      cube.Color `json:"averageColor"`
	AverageRoughness  float64    `json:"averageRoughness"`
	DominantMaterial  string     `json:"dominantMaterial"`
	DominantNoiseType string     `json:"dominantNoiseType"`
	CommonTags        []string   `json:"commonTags"`
}

// Default is returned for an empty input.
func Default() Style {
	return Style{
		AverageColor:      cube.Color{0.5, 0.5, 0.5},
		AverageRoughness:  0.5,
		DominantMaterial:  "stone",
		DominantNoiseType: "perlin",
		CommonTags:        []string{},
	}
}

// Extract computes the style of objects. Dominant material and noise type
// are the most frequent values; on a tie the value seen first wins, which
// makes the outcome depend on input order. Common tags are those carried by
// at least ceil(n/2) objects, in first-seen order.
func Extract(objects []cube.Object) Style {
	n := len(objects)
	if n == 0 {
		return Default()
	}

	var sum cube.Color
	var roughness float64
	materials := newCounter()
	noises := newCounter()
	tags := newCounter()

	for _, o := range objects {
		sum = sum.Add(o.Base.Color)
		roughness += o.Base.Roughness
		materials.add(o.Physics.Material)
		noises.add(o.Noise.Type)
		seen := make(map[string]bool, len(o.Meta.Tags))
		for _, t := range o.Meta.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			tags.add(t)
		}
	}

	threshold := (n + 1) / 2
	common := []string{}
	for _, t := range tags.order {
		if tags.counts[t] >= threshold {
			common = append(common, t)
		}
	}

	return Style{
		AverageColor:      sum.Scale(1 / float64(n)),
		AverageRoughness:  roughness / float64(n),
		DominantMaterial:  materials.top(),
		DominantNoiseType: noises.top(),
		CommonTags:        common,
	}
}

// counter keeps counts alongside first-seen order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns the most frequent key; strict comparison keeps the earliest
// key among equals.
func (c *counter) top() string {
	best, bestCount := "", 0
	for _, k := range c.order {
		if c.counts[k] > bestCount {
			best, bestCount = k, c.counts[k]
		}
	}
	return best
}
