package cubegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cubegen/pkg/cubegen/catalog"
	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/style"
)

func TestContextualBlendsTowardsStyle(t *testing.T) {
	e := newTestEngine(t)
	st := style.Style{AverageColor: cube.Color{1, 1, 1}, AverageRoughness: 1}

	res := e.Contextual(context.Background(), "stone", Context{Style: &st})
	require.True(t, res.Success)
	assert.Equal(t, cube.MethodHybrid, res.Method)
	assert.Equal(t, 0.98, res.Confidence)
	for i := range res.Object.Base.Color {
		assert.InDelta(t, 0.7, res.Object.Base.Color[i], 1e-9)
	}
	assert.InDelta(t, 0.88, res.Object.Base.Roughness, 1e-9)
}

func TestContextualWithoutStyleSource(t *testing.T) {
	e := newTestEngine(t)
	res := e.Contextual(context.Background(), "stone", Context{})

	assert.Equal(t, cube.MethodHybrid, res.Method)
	assert.Equal(t, catalog.MaterialStone.Spec().Color, res.Object.Base.Color)
}

func TestContextualStyleSourcePriority(t *testing.T) {
	e := newTestEngine(t)
	white := cube.Object{Base: cube.Base{Color: cube.Color{1, 1, 1}, Roughness: 1}}
	black := cube.Object{Base: cube.Base{Color: cube.Color{0, 0, 0}}}

	fromExisting := e.Contextual(context.Background(), "stone", Context{
		Existing:  map[string]cube.Object{"a": white},
		Neighbors: []cube.Object{black},
	})
	assert.InDelta(t, 0.7, fromExisting.Object.Base.Color[0], 1e-9)

	fromNeighbors := e.Contextual(context.Background(), "stone", Context{Neighbors: []cube.Object{black}})
	assert.InDelta(t, 0.3, fromNeighbors.Object.Base.Color[0], 1e-9)
}

func TestContextualTheme(t *testing.T) {
	e := newTestEngine(t)

	res := e.Contextual(context.Background(), "oak", Context{Theme: "Arctic"})
	assert.Equal(t, "crystal", res.Object.Physics.Material)
	assert.True(t, res.Object.HasTag("frozen"))
	assert.Empty(t, res.Warnings)

	res = e.Contextual(context.Background(), "oak", Context{Theme: "jungle"})
	assert.Equal(t, "wood", res.Object.Physics.Material)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "jungle")
}

func TestCompositeStoneWall(t *testing.T) {
	e := newTestEngine(t)
	res := e.Composite(context.Background(), CompositeRequest{
		Primary:   "stone wall",
		Neighbors: []Neighbor{{Direction: "y", Relation: "gradient", Description: "moss"}},
	})

	require.True(t, res.Success)
	require.Len(t, res.Objects, 2)
	require.Len(t, res.Positions, 2)
	assert.Equal(t, [3]int{0, 0, 0}, res.Positions[0])
	assert.Equal(t, [3]int{0, 1, 0}, res.Positions[1])

	primary := res.Objects[0].Base.Color
	shift, _ := catalog.RelationGradient.Shift()
	want := primary.Add(shift).Clamped()
	for i := range want {
		assert.InDelta(t, want[i], res.Objects[1].Base.Color[i], 1e-9)
	}
}

func TestCompositeRelations(t *testing.T) {
	primary := cube.Color{0.2, 0.4, 0.6}
	cand := cube.Color{1, 0, 0.5}

	similar := relate(catalog.RelationSimilar, primary, cand)
	assert.InDelta(t, 0.3*1+0.7*0.2, similar[0], 1e-9)

	contrast := relate(catalog.RelationContrast, primary, cand)
	assert.InDelta(t, 0.5*0.8+0.5*1, contrast[0], 1e-9)

	complement := relate(catalog.RelationComplement, primary, cand)
	assert.InDelta(t, 0.0, complement[0], 1e-9)
	assert.InDelta(t, 0.8, complement[2], 1e-9)
}

func TestCompositeUnknownDirectionAndRelation(t *testing.T) {
	e := newTestEngine(t)
	res := e.Composite(context.Background(), CompositeRequest{
		Primary:   "brick",
		Neighbors: []Neighbor{{Direction: "up", Relation: "mirror", Description: "oak"}},
	})

	require.True(t, res.Success)
	assert.Equal(t, [3]int{}, res.Positions[1])
	assert.Len(t, res.Warnings, 2)
}

func TestCompositeVariations(t *testing.T) {
	e := newTestEngine(t)
	res := e.Composite(context.Background(), CompositeRequest{Primary: "marble", Theme: "medieval", Variations: 3})

	require.True(t, res.Success)
	assert.Len(t, res.Objects, 1)
	require.Len(t, res.Variations, 2)
	assert.Equal(t, "weathered marble", res.Variations[0].PromptText)
	assert.Equal(t, "mossy marble", res.Variations[1].PromptText)
	assert.True(t, res.Objects[0].HasTag("medieval"))
	for _, v := range res.Variations {
		assertInRange(t, v)
	}
}

func TestBatchIndividualKeepsOrder(t *testing.T) {
	e := newTestEngine(t)
	results := e.Batch(context.Background(), BatchRequest{Prompts: []string{"stone", "oak", "glass"}})

	require.Len(t, results, 3)
	assert.Equal(t, "stone", results[0].Object.PromptText)
	assert.Equal(t, "glass", results[2].Object.PromptText)
	for _, r := range results {
		assert.Equal(t, cube.MethodKeyword, r.Method)
	}
}

func TestBatchRelatedFollowsEarlierItems(t *testing.T) {
	e := newTestEngine(t)
	results := e.Batch(context.Background(), BatchRequest{
		Prompts:  []string{"snow", "lava"},
		Style:    "polished",
		Grouping: "related",
	})

	require.Len(t, results, 2)
	assert.Equal(t, "polished snow", results[0].Object.PromptText)
	assert.Equal(t, cube.MethodHybrid, results[1].Method)

	alone := e.Contextual(context.Background(), "polished lava", Context{})
	assert.NotEqual(t, alone.Object.Base.Color, results[1].Object.Base.Color, "second item is pulled towards the first")
}

func TestBatchThemedAndUnknownGrouping(t *testing.T) {
	e := newTestEngine(t)
	themed := e.Batch(context.Background(), BatchRequest{Prompts: []string{"oak"}, Grouping: "themed", Theme: "futuristic"})
	assert.Equal(t, "metal", themed[0].Object.Physics.Material)

	odd := e.Batch(context.Background(), BatchRequest{Prompts: []string{"oak"}, Grouping: "clustered"})
	assert.Equal(t, cube.MethodKeyword, odd[0].Method)
	require.Len(t, odd[0].Warnings, 1)
	assert.Contains(t, odd[0].Warnings[0], "clustered")
}

func TestGroupStructurePositions(t *testing.T) {
	e := newTestEngine(t)
	res := e.Group(context.Background(), "structure", "brick", [3]int{2, 2, 2})

	require.True(t, res.Success)
	require.Len(t, res.Objects, 8)
	require.Len(t, res.Positions, 8)

	seen := map[[3]int]int{}
	for _, p := range res.Positions {
		seen[p]++
	}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				assert.Equal(t, 1, seen[[3]int{x, y, z}])
			}
		}
	}

	ids := map[string]bool{}
	for _, obj := range res.Objects {
		assert.True(t, obj.HasTag("structure"))
		assertInRange(t, obj)
		ids[obj.ID] = true
	}
	assert.Len(t, ids, 8)
	assert.InDelta(t, (0.98+0.8*7)/8, res.Confidence, 1e-9)
}

func TestGroupDefaultsAndShift(t *testing.T) {
	e := newTestEngine(t)

	wall := e.Group(context.Background(), "wall", "brick", [3]int{})
	assert.Equal(t, [3]int{4, 3, 1}, wall.Dimensions)
	assert.Len(t, wall.Objects, 12)

	column := e.Group(context.Background(), "column", "brick", [3]int{0, 3, -1})
	require.Len(t, column.Objects, 3)
	brick := catalog.MaterialBrick.Spec().Color
	top := column.Objects[2].Base.Color
	assert.InDelta(t, brick[0]+0.15, top[0], 1e-6)
	assert.InDelta(t, brick[1]+0.10, top[1], 1e-6)
	assert.InDelta(t, brick[2]+0.05, top[2], 1e-6)
	assert.InDelta(t, brick[0]+0.075, column.Objects[1].Base.Color[0], 1e-6)
}

func TestGroupCapsOversizedDimensions(t *testing.T) {
	res := newTestEngine(t).Group(context.Background(), "wall", "brick", [3]int{1000, 1, 2})
	require.True(t, res.Success)
	assert.Equal(t, [3]int{MaxGroupExtent, 1, 2}, res.Dimensions)
	assert.Len(t, res.Objects, MaxGroupExtent*2)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "x=1000")
}

func TestGroupUnknownType(t *testing.T) {
	res := newTestEngine(t).Group(context.Background(), "tower", "brick", [3]int{})
	assert.False(t, res.Success)
	assert.Empty(t, res.Objects)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "terrain")
}

func TestPositionFactor(t *testing.T) {
	ext := [3]int{3, 3, 3}
	assert.Equal(t, 0.0, positionFactor(cube.AxisRadial, [3]int{1, 1, 1}, ext))
	assert.InDelta(t, 1.0, positionFactor(cube.AxisRadial, [3]int{0, 2, 0}, ext), 1e-9)
	assert.Equal(t, 0.0, positionFactor(cube.AxisRadial, [3]int{}, [3]int{1, 1, 1}))

	assert.Equal(t, 0.5, positionFactor(cube.AxisX, [3]int{1, 0, 0}, ext))
	assert.Equal(t, 0.0, positionFactor(cube.AxisY, [3]int{0, 0, 0}, [3]int{4, 1, 4}))
	assert.Equal(t, 1.0, positionFactor(cube.AxisZ, [3]int{0, 0, 2}, ext))
}

func TestAllPathsStayInRange(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	prompts := []string{"dark dark dark black obsidian", "white white bright snow", "rough weathered cracked", ""}
	for _, p := range prompts {
		assertInRange(t, *e.FromPrompt(ctx, p).Object)
	}
	for _, name := range e.Templates() {
		assertInRange(t, *e.FromTemplate(ctx, name).Object)
	}
	for _, g := range e.GroupTypes() {
		for _, obj := range e.Group(ctx, g, "white snow", [3]int{2, 2, 2}).Objects {
			assertInRange(t, obj)
		}
	}
	comp := e.Composite(ctx, CompositeRequest{
		Primary: "white snow",
		Neighbors: []Neighbor{
			{Direction: "x", Relation: "contrast", Description: "black obsidian"},
			{Direction: "-z", Relation: "complement", Description: "ice"},
		},
		Theme: "arctic",
	})
	for _, obj := range comp.Objects {
		assertInRange(t, obj)
	}
	for _, r := range e.Batch(ctx, BatchRequest{Prompts: prompts, Grouping: "related"}) {
		assertInRange(t, *r.Object)
	}
}
