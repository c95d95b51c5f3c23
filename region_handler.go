package langkit

import "fmt"

// RegionReaction is what happened to the region stack when the
// RegionHandler examined the character the Reader just produced.
type RegionReaction struct {
	kind     regionReactionKind
	tokenize bool
}

type regionReactionKind int

const (
	regionPass regionReactionKind = iota
	regionBegin
	regionEnd
)

// RegionPass reports that no region transition happened.
func RegionPass() RegionReaction { return RegionReaction{kind: regionPass} }

// RegionBegin reports that a region was pushed; tokenize is the pushed
// region's Tokenize flag.
func RegionBegin(tokenize bool) RegionReaction {
	return RegionReaction{kind: regionBegin, tokenize: tokenize}
}

// RegionEnd reports that the top region was popped; tokenize is the
// popped region's Tokenize flag.
func RegionEnd(tokenize bool) RegionReaction {
	return RegionReaction{kind: regionEnd, tokenize: tokenize}
}

// IsPass, IsBegin, IsEnd classify the reaction. Tokenize is only
// meaningful when IsBegin or IsEnd is true.
func (r RegionReaction) IsPass() bool      { return r.kind == regionPass }
func (r RegionReaction) IsBegin() bool     { return r.kind == regionBegin }
func (r RegionReaction) IsEnd() bool       { return r.kind == regionEnd }
func (r RegionReaction) Tokenize() bool    { return r.tokenize }

// RegionHandler drives the nested region state machine: a LIFO stack of
// regions, bottom always the global region. It resolves Begin/End
// transitions against the top region's Interp list (for Begin) or its own
// End delimiter (for End), and resolves `references` against a RegionMap
// built once from the rules' region tree.
type RegionHandler struct {
	stack     []Region
	regionMap RegionMap
	escape    rune
}

// NewRegionHandler builds a RegionHandler whose stack starts at
// [rules.RegionTree].
func NewRegionHandler(rules Rules) *RegionHandler {
	return &RegionHandler{
		stack:     []Region{rules.RegionTree},
		regionMap: rules.RegionTree.GenerateRegionMap(),
		escape:    rules.Escape,
	}
}

// CurrentRegion returns the region on top of the stack; it is never empty
// once constructed via NewRegionHandler, since the global region is never
// popped.
func (h *RegionHandler) CurrentRegion() Region {
	return h.stack[len(h.stack)-1]
}

// IsRegionClosed reports an error if, at EOF, the top of the stack is not
// the global region and does not allow being left open.
func (h *RegionHandler) IsRegionClosed(reader *Reader) (Region, bool) {
	top := h.CurrentRegion()
	if !top.AllowUnclosed {
		return top, false
	}

	return Region{}, true
}

// HandleRegion examines the character the Reader just consumed and
// returns the resulting RegionReaction. When escaped is true neither
// Begin nor End may fire for that character, so an escaped delimiter
// (e.g. `\"` inside a `"`-region) never closes or opens a region.
func (h *RegionHandler) HandleRegion(reader *Reader, escaped bool) RegionReaction {
	if escaped {
		return RegionPass()
	}

	current := h.CurrentRegion()

	for _, candidate := range current.Interp {
		if !h.matchesBegin(reader, candidate) {
			continue
		}

		pushed := candidate
		if pushed.References != "" {
			target, ok := h.regionMap[pushed.References]
			if !ok {
				panic(fmt.Sprintf("langkit: region %q references unknown region id %q", pushed.ID, pushed.References))
			}

			pushed.Interp = target.Interp
		}

		h.stack = append(h.stack, pushed)

		return RegionBegin(pushed.Tokenize)
	}

	if !current.Global && h.matchesEnd(reader, current) {
		h.stack = h.stack[:len(h.stack)-1]

		return RegionEnd(current.Tokenize)
	}

	return RegionPass()
}

func (h *RegionHandler) matchesBegin(reader *Reader, candidate Region) bool {
	if candidate.Begin == "" {
		return false
	}

	future, ok := reader.GetFuture(len([]rune(candidate.Begin)))

	return ok && future == candidate.Begin
}

func (h *RegionHandler) matchesEnd(reader *Reader, current Region) bool {
	if current.End == "" {
		return false
	}

	history, ok := reader.GetHistory(len([]rune(current.End)))

	return ok && history == current.End
}
