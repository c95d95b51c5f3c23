package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/langkit"
	"github.com/rlch/langkit/parse"
)

func TestParseDebugTracksIndentLevel(t *testing.T) {
	t.Parallel()

	meta := langkit.NewMetadata(tokens("let"), nil, nil)

	failure := parse.ParseDebug(expressionModule{}, meta)
	assert.Nil(t, failure)
	assert.NotNil(t, meta.GetDebug())
	assert.Equal(t, 0, *meta.GetDebug())
}
