package parse

import (
	"cmp"
	"strings"

	"github.com/rlch/langkit"
)

// Token matches the current token against an exact word. On success it
// advances meta's cursor and returns the matched word; on mismatch (or
// EOF) it returns a QuietFailure, leaving the cursor untouched, so the
// caller may try a different alternative.
func Token(meta *langkit.Metadata, word string) (string, langkit.Failure) {
	return TokenBy(meta, func(w string) bool { return w == word })
}

// TokenBy matches the current token against a predicate. On success it
// advances meta's cursor and returns the matched word; on mismatch (or
// EOF) it returns a QuietFailure.
func TokenBy(meta *langkit.Metadata, match func(word string) bool) (string, langkit.Failure) {
	tok := meta.GetCurrentToken()
	if tok == nil {
		return "", langkit.NewQuietFailure(langkit.AtEOF(meta.GetPath()))
	}

	if !match(tok.Word) {
		return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
	}

	meta.IncrementIndex()

	return tok.Word, nil
}

// Syntax parses module against meta, restoring meta's cursor to where it
// started if module.Parse fails — the backtracking step that lets a
// caller try sibling alternatives after a nested construct fails to
// match. When meta is in debug mode, module is run through ParseDebug
// instead of Parse directly.
func Syntax(meta *langkit.Metadata, module SyntaxModule) langkit.Failure {
	index := meta.GetIndex()

	var failure langkit.Failure
	if meta.GetDebug() != nil {
		failure = ParseDebug(module, meta)
	} else {
		failure = module.Parse(meta)
	}

	if failure != nil {
		meta.SetIndex(index)

		return failure
	}

	return nil
}

func isIndentWord(word string) bool {
	if !strings.HasPrefix(word, "\n") {
		return false
	}

	for _, letter := range word[1:] {
		if letter != ' ' {
			return false
		}
	}

	return true
}

// Indent matches an indentation token — one beginning with '\n' followed
// only by spaces — and returns the number of spaces.
func Indent(meta *langkit.Metadata) (int, langkit.Failure) {
	word, failure := TokenBy(meta, isIndentWord)
	if failure != nil {
		return 0, failure
	}

	return len([]rune(word)) - 1, nil
}

// IndentWith matches an indentation token and compares its width against
// size, returning whether it was smaller, equal to, or greater. On
// mismatch or a non-indent token, meta's cursor is restored.
func IndentWith(meta *langkit.Metadata, size int) (int, langkit.Failure) {
	index := meta.GetIndex()

	spaces, failure := Indent(meta)
	if failure != nil {
		meta.SetIndex(index)

		return 0, failure
	}

	return cmp.Compare(spaces, size), nil
}
