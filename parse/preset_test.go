package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/langkit"
	"github.com/rlch/langkit/parse"
)

func TestPresetMatchers(t *testing.T) {
	t.Parallel()

	meta := langkit.NewMetadata(tokens("_text", "12321", "-123.12", "-12", "-.681"), nil, nil)

	_, failure := parse.Variable(meta, []rune{'_'})
	assert.Nil(t, failure)

	_, failure = parse.Numeric(meta, nil)
	assert.Nil(t, failure)

	_, failure = parse.Number(meta, nil)
	assert.Nil(t, failure)

	_, failure = parse.Integer(meta, nil)
	assert.Nil(t, failure)

	_, failure = parse.Float(meta, nil)
	assert.Nil(t, failure)

	assert.Equal(t, 5, meta.GetIndex())
}

func TestAlphabeticAndAlphanumeric(t *testing.T) {
	t.Parallel()

	meta := langkit.NewMetadata(tokens("hello", "hello2"), nil, nil)

	_, failure := parse.Alphabetic(meta, nil)
	assert.Nil(t, failure)

	_, failure = parse.Alphabetic(meta, nil)
	assert.NotNil(t, failure)

	_, failure = parse.Alphanumeric(meta, nil)
	assert.Nil(t, failure)
}
