package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/langkit"
	"github.com/rlch/langkit/parse"
)

func TestIndent(t *testing.T) {
	t.Parallel()

	path := "path/to/file"
	meta := langkit.NewMetadata([]langkit.Token{{Word: "\n    "}}, &path, nil)

	spaces, failure := parse.Indent(meta)
	require.Nil(t, failure)
	assert.Equal(t, 4, spaces)
}

func TestIndentWith(t *testing.T) {
	t.Parallel()

	path := "path/to/file"
	meta := langkit.NewMetadata([]langkit.Token{{Word: "\n    "}}, &path, nil)

	ord, failure := parse.IndentWith(meta, 4)
	require.Nil(t, failure)
	assert.Equal(t, 0, ord)
}

func TestIndentWithRestoresCursorOnFailure(t *testing.T) {
	t.Parallel()

	meta := langkit.NewMetadata([]langkit.Token{{Word: "not-indent"}}, nil, nil)

	_, failure := parse.IndentWith(meta, 4)
	require.NotNil(t, failure)
	assert.Equal(t, 0, meta.GetIndex())
}

type expressionModule struct{}

func (expressionModule) Name() string { return "Expression" }

func (expressionModule) Parse(meta *langkit.Metadata) langkit.Failure {
	_, failure := parse.Token(meta, "let")

	return failure
}

func TestTokenMatch(t *testing.T) {
	t.Parallel()

	var exp expressionModule

	ok := langkit.NewMetadata([]langkit.Token{{Word: "let"}}, nil, nil)
	assert.Nil(t, exp.Parse(ok))

	bad := langkit.NewMetadata([]langkit.Token{{Word: "tell"}}, nil, nil)
	assert.NotNil(t, exp.Parse(bad))
}

type patternModule struct{}

func (patternModule) Name() string { return "Pattern Module" }

func (patternModule) Parse(meta *langkit.Metadata) langkit.Failure {
	if _, failure := parse.Token(meta, "apple"); failure != nil {
		if _, failure := parse.Token(meta, "orange"); failure != nil {
			if _, failure := parse.Token(meta, "banana"); failure != nil {
				if _, failure := parse.Token(meta, "banana"); failure != nil {
					return failure
				}
			}
		}
	}

	parse.Token(meta, "optional")

	if failure := parse.Syntax(meta, expressionModule{}); failure != nil {
		return failure
	}

	for {
		if _, failure := parse.Token(meta, "this"); failure != nil {
			break
		}

		if _, failure := parse.Token(meta, ","); failure != nil {
			break
		}
	}

	if _, failure := parse.Token(meta, "end"); failure != nil {
		return failure
	}

	return nil
}

func tokens(words ...string) []langkit.Token {
	out := make([]langkit.Token, len(words))
	for i, w := range words {
		out[i] = langkit.Token{Word: w}
	}

	return out
}

func TestPatternModuleCombinators(t *testing.T) {
	t.Parallel()

	var mod patternModule

	allPass := langkit.NewMetadata(tokens("orange", "optional", "let", "this", ",", "this", "end"), nil, nil)
	assert.Nil(t, mod.Parse(allPass))

	tokenFails := langkit.NewMetadata(tokens("kiwi", "optional", "let", "this", ",", "this", "end"), nil, nil)
	assert.NotNil(t, mod.Parse(tokenFails))

	syntaxFails := langkit.NewMetadata(tokens("orange", "tell", "this", ",", "this", "end"), nil, nil)
	assert.NotNil(t, mod.Parse(syntaxFails))

	// The second "this" is not followed by ",", so the repetition stops
	// there and the required "end" meets the third "this" instead.
	repeatFails := langkit.NewMetadata(tokens("orange", "let", "this", ",", "this", "this", "end"), nil, nil)
	assert.NotNil(t, mod.Parse(repeatFails))
}
