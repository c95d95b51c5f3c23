package langkit

// Region is a named lexical context with fixed opening and closing
// delimiter strings. Interp lists the regions that may open nested
// inside it; References, when set, makes this region reuse another
// region's Interp list (resolved against a RegionMap at Begin time),
// letting mutually-recursive regions (string <-> expression <-> string)
// be declared without literal cycles.
type Region struct {
	ID            string
	Name          string
	Begin         string
	End           string
	Interp        []Region
	Tokenize      bool
	AllowUnclosed bool
	Singleline    bool
	Global        bool
	References    string
}

// NewRegion builds a Region with the given id/display name/delimiters.
// Tokenize, AllowUnclosed and Singleline default to false; Interp
// defaults to empty. Use the With* methods to adjust flags and chain
// WithInterp to attach nested regions.
func NewRegion(id, name, begin, end string) Region {
	return Region{
		ID:    id,
		Name:  name,
		Begin: begin,
		End:   end,
	}
}

// NewGlobalRegion builds the synthetic root region: empty delimiters,
// AllowUnclosed and Tokenize set, never popped.
func NewGlobalRegion(interp []Region) Region {
	return Region{
		ID:            "global",
		Name:          "Global context",
		Interp:        interp,
		Tokenize:      true,
		AllowUnclosed: true,
		Global:        true,
	}
}

// WithInterp attaches the set of regions that may open inside r.
func (r Region) WithInterp(interp ...Region) Region {
	r.Interp = interp
	return r
}

// WithTokenize marks r's body as lexed normally instead of preserved as
// one verbatim token.
func (r Region) WithTokenize() Region {
	r.Tokenize = true
	return r
}

// WithAllowUnclosed permits r to remain open at EOF without error.
func (r Region) WithAllowUnclosed() Region {
	r.AllowUnclosed = true
	return r
}

// WithSingleline forbids an unescaped newline inside r's body.
func (r Region) WithSingleline() Region {
	r.Singleline = true
	return r
}

// WithReferences makes r reuse the Interp list of the region named by id,
// resolved once at Begin time against the owning RegionHandler's
// RegionMap.
func (r Region) WithReferences(id string) Region {
	r.References = id
	return r
}

// RegionMap resolves a region id to its Region, built once from a
// depth-first walk of a region tree. It exists solely to resolve
// References at Begin time.
type RegionMap map[string]Region

// GenerateRegionMap walks r and its descendants, keyed by Region.ID.
func (r Region) GenerateRegionMap() RegionMap {
	out := make(RegionMap)
	r.collectInto(out)

	return out
}

func (r Region) collectInto(out RegionMap) {
	out[r.ID] = r
	for _, child := range r.Interp {
		child.collectInto(out)
	}
}
