package parse

import (
	"strings"
	"unicode"

	"github.com/rlch/langkit"
)

func containsRune(extend []rune, r rune) bool {
	for _, e := range extend {
		if e == r {
			return true
		}
	}

	return false
}

func matchAll(meta *langkit.Metadata, check func(rune) bool) (string, langkit.Failure) {
	tok := meta.GetCurrentToken()
	if tok == nil {
		return "", langkit.NewQuietFailure(langkit.AtEOF(meta.GetPath()))
	}

	for _, letter := range tok.Word {
		if !check(letter) {
			return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
		}
	}

	meta.IncrementIndex()

	return tok.Word, nil
}

// Variable matches a token shaped like an identifier: an alphabetic (or
// extend-listed) first character followed by alphanumeric (or
// extend-listed) characters.
func Variable(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	tok := meta.GetCurrentToken()
	if tok == nil {
		return "", langkit.NewQuietFailure(langkit.AtEOF(meta.GetPath()))
	}

	isLater := false
	for _, letter := range tok.Word {
		if isLater {
			if !unicode.IsLetter(letter) && !unicode.IsDigit(letter) && !containsRune(extend, letter) {
				return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
			}

			continue
		}

		if !unicode.IsLetter(letter) && !containsRune(extend, letter) {
			return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
		}

		isLater = true
	}

	meta.IncrementIndex()

	return tok.Word, nil
}

// Alphabetic matches a token consisting only of letters (or
// extend-listed characters).
func Alphabetic(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	return matchAll(meta, func(r rune) bool { return unicode.IsLetter(r) || containsRune(extend, r) })
}

// Alphanumeric matches a token consisting only of letters and digits (or
// extend-listed characters).
func Alphanumeric(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	return matchAll(meta, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || containsRune(extend, r)
	})
}

// Numeric matches a token consisting only of digits (or extend-listed
// characters).
func Numeric(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	return matchAll(meta, func(r rune) bool { return unicode.IsDigit(r) || containsRune(extend, r) })
}

// Integer matches a positive or negative integer literal.
func Integer(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	tok := meta.GetCurrentToken()
	if tok == nil {
		return "", langkit.NewQuietFailure(langkit.AtEOF(meta.GetPath()))
	}

	body := strings.TrimPrefix(tok.Word, "-")
	for _, letter := range body {
		if !unicode.IsDigit(letter) && !containsRune(extend, letter) {
			return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
		}
	}

	meta.IncrementIndex()

	return tok.Word, nil
}

// Float matches a negative or positive number containing exactly one
// decimal point.
func Float(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	tok := meta.GetCurrentToken()
	if tok == nil {
		return "", langkit.NewQuietFailure(langkit.AtEOF(meta.GetPath()))
	}

	body := strings.TrimPrefix(tok.Word, "-")

	isFrac := false
	for _, letter := range body {
		if letter == '.' {
			if isFrac {
				return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
			}

			isFrac = true

			continue
		}

		if !unicode.IsDigit(letter) && !containsRune(extend, letter) {
			return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
		}
	}

	if !isFrac {
		return "", langkit.NewQuietFailure(langkit.FromToken(meta.GetPath(), tok))
	}

	meta.IncrementIndex()

	return tok.Word, nil
}

// Number matches either an Integer or a Float.
func Number(meta *langkit.Metadata, extend []rune) (string, langkit.Failure) {
	if word, failure := Integer(meta, extend); failure == nil {
		return word, nil
	}

	return Float(meta, extend)
}
