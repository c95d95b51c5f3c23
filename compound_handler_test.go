package langkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/langkit"
)

func TestCompoundHandlerChain(t *testing.T) {
	t.Parallel()

	expected := []langkit.CompoundReaction{
		langkit.CompoundPass,
		langkit.CompoundBegin,
		langkit.CompoundKeep,
		langkit.CompoundEnd,
		langkit.CompoundBegin,
		langkit.CompoundEnd,
	}

	reader := langkit.NewReader("!<=><=")
	rules := langkit.NewRules(
		[]rune{'<', '=', '>'},
		[]langkit.Compound{{Left: '<', Right: '='}, {Left: '=', Right: '>'}},
		langkit.NewGlobalRegion(nil),
	)
	handler := langkit.NewCompoundHandler(rules)

	var got []langkit.CompoundReaction
	for {
		letter, ok := reader.Next()
		if !ok {
			break
		}

		got = append(got, handler.HandleCompound(letter, reader, true))
	}

	assert.Equal(t, expected, got)
}

func TestCompoundHandlerIgnoresNonTokenizableRegion(t *testing.T) {
	t.Parallel()

	reader := langkit.NewReader("<=")
	rules := langkit.NewRules(
		[]rune{'<', '='},
		[]langkit.Compound{{Left: '<', Right: '='}},
		langkit.NewGlobalRegion(nil),
	)
	handler := langkit.NewCompoundHandler(rules)

	letter, _ := reader.Next()
	assert.Equal(t, langkit.CompoundPass, handler.HandleCompound(letter, reader, false))
}
