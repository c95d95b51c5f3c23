package langkit

// Compound is a configured pair of adjacent characters that should lex as
// a single token (e.g. '=' '=' for "=="). Chains are possible when
// compounds share a left character with different right characters, or
// when the CompoundHandler re-triggers on a matched right character that
// is itself a configured left character (e.g. "<=>").
type Compound struct {
	Left  rune
	Right rune
}

// Rules is the immutable configuration a Lexer is built from: which
// characters are standalone symbols, which adjacent pairs compound into
// one token, the region tree (always rooted at a single global region),
// and the escape character used to prevent region delimiters from
// matching.
type Rules struct {
	Symbols    map[rune]struct{}
	Compounds  []Compound
	RegionTree Region
	Escape     rune
}

// NewRules builds Rules from a symbol list, compound pair list and region
// tree. The region tree's root must be a global region (see
// NewGlobalRegion); Escape defaults to '\\'.
func NewRules(symbols []rune, compounds []Compound, regionTree Region) Rules {
	set := make(map[rune]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}

	return Rules{
		Symbols:    set,
		Compounds:  compounds,
		RegionTree: regionTree,
		Escape:     '\\',
	}
}

// WithEscape overrides the escape character used to prevent region
// delimiters from matching the character immediately following it.
func (r Rules) WithEscape(escape rune) Rules {
	r.Escape = escape
	return r
}

// HasSymbol reports whether c is a configured standalone symbol.
func (r Rules) HasSymbol(c rune) bool {
	_, ok := r.Symbols[c]
	return ok
}
