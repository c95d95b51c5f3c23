package langkit

// CompoundReaction reports what a single character did to a possible
// compound symbol in progress.
type CompoundReaction int

const (
	// CompoundPass means letter did not extend or start a compound.
	CompoundPass CompoundReaction = iota
	// CompoundBegin means letter is the first character of a new compound.
	CompoundBegin
	// CompoundKeep means letter extends a compound already in progress
	// (a chain, e.g. the '=' in "<=>").
	CompoundKeep
	// CompoundEnd means a compound that was in progress closes with
	// letter, which is its last character.
	CompoundEnd
)

// CompoundHandler recognizes configured adjacent character pairs (e.g.
// '=','=' for "==") as a single compound token, including chains where a
// matched right character is itself a configured left character (e.g.
// "<=>" from compounds [<,=] and [=,>]).
type CompoundHandler struct {
	tree       map[rune][]rune
	isTriggered bool
}

// NewCompoundHandler builds the left->rights lookup tree from rules.Compounds.
func NewCompoundHandler(rules Rules) *CompoundHandler {
	tree := make(map[rune][]rune)
	for _, c := range rules.Compounds {
		tree[c.Left] = append(tree[c.Left], c.Right)
	}

	return &CompoundHandler{tree: tree}
}

// HandleCompound inspects letter (just consumed from reader) together with
// the reader's lookahead and reports the compound reaction. isTokenize
// gates the check entirely: a non-tokenizable region (verbatim text)
// never triggers compound recognition and always resets state.
func (h *CompoundHandler) HandleCompound(letter rune, reader *Reader, isTokenize bool) CompoundReaction {
	if !isTokenize {
		h.isTriggered = false

		return CompoundPass
	}

	if entries, ok := h.tree[letter]; ok {
		future, ok := reader.GetFuture(2)
		if ok {
			futureRunes := []rune(future)
			next := futureRunes[1]

			for _, entry := range entries {
				if next != entry {
					continue
				}

				if h.isTriggered {
					return CompoundKeep
				}

				h.isTriggered = true

				return CompoundBegin
			}
		}
	}

	if h.isTriggered {
		h.isTriggered = false

		return CompoundEnd
	}

	return CompoundPass
}
