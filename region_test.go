package langkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/langkit"
)

func TestRegionMapGeneration(t *testing.T) {
	t.Parallel()

	interp := langkit.NewRegion("string_interp", "String Interpolation", "${", "}").
		WithTokenize().
		WithReferences("global")
	str := langkit.NewRegion("string", "String Literal", "'", "'").WithInterp(interp)
	global := langkit.NewGlobalRegion([]langkit.Region{str})

	regionMap := global.GenerateRegionMap()

	assert.Len(t, regionMap, 3)
	assert.Equal(t, "global", regionMap["global"].ID)
	assert.Equal(t, "string", regionMap["string"].ID)

	gotInterp := regionMap["string_interp"]
	assert.Equal(t, "global", gotInterp.References)
	assert.True(t, gotInterp.Tokenize)
}

func TestRegionBuilderDefaults(t *testing.T) {
	t.Parallel()

	r := langkit.NewRegion("str", "String", "'", "'")

	assert.False(t, r.Tokenize)
	assert.False(t, r.AllowUnclosed)
	assert.False(t, r.Global)
	assert.Empty(t, r.References)
}

func TestGlobalRegionDefaults(t *testing.T) {
	t.Parallel()

	g := langkit.NewGlobalRegion(nil)

	assert.True(t, g.Global)
	assert.True(t, g.Tokenize)
	assert.True(t, g.AllowUnclosed)
	assert.Empty(t, g.Begin)
	assert.Empty(t, g.End)
}
