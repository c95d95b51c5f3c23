package langkit_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"

	"github.com/rlch/langkit"
)

func TestFromBetweenTokensSpansFromBeginToEnd(t *testing.T) {
	t.Parallel()

	begin := langkit.Token{Word: "12", Pos: lexer.Position{Line: 1, Column: 5, Offset: 4}}
	end := langkit.Token{Word: ")", Pos: lexer.Position{Line: 1, Column: 12, Offset: 11}}

	path := "/path/to/foo"
	meta := langkit.NewMetadata(nil, &path, nil)

	pos := langkit.FromBetweenTokens(meta, &begin, &end)

	assert.Equal(t, langkit.PositionAt, pos.Kind)
	assert.Equal(t, 1, pos.Row)
	assert.Equal(t, 5, pos.Col)
	assert.Equal(t, 7, pos.Len)
}

func TestFromBetweenTokensFallsBackToCurrentPositionWithoutBegin(t *testing.T) {
	t.Parallel()

	current := langkit.Token{Word: "foo", Pos: lexer.Position{Line: 2, Column: 3, Offset: 10}}
	path := "/path/to/foo"
	meta := langkit.NewMetadata([]langkit.Token{current}, &path, nil)

	pos := langkit.FromBetweenTokens(meta, nil, nil)

	assert.Equal(t, langkit.PositionAt, pos.Kind)
	assert.Equal(t, 2, pos.Row)
	assert.Equal(t, 3, pos.Col)
	assert.Equal(t, 3, pos.Len)
}

func TestFromBetweenTokensWithoutEndHasZeroLen(t *testing.T) {
	t.Parallel()

	begin := langkit.Token{Word: "12", Pos: lexer.Position{Line: 1, Column: 5, Offset: 4}}
	path := "/path/to/foo"
	meta := langkit.NewMetadata(nil, &path, nil)

	pos := langkit.FromBetweenTokens(meta, &begin, nil)

	assert.Equal(t, 1, pos.Row)
	assert.Equal(t, 5, pos.Col)
	assert.Equal(t, 0, pos.Len)
}
