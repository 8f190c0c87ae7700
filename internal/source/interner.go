package source

// StringID identifies an interned string. The zero value is NoStringID.
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// Interner deduplicates identifier and literal text across a whole project
// so that later stages compare strings by ID instead of by content.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an interner whose slot 0 is reserved for NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern inserts s if new and returns its StringID.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the string for id, or ("", false) if id is not valid.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup is Lookup but panics on an invalid id.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string id")
	}
	return s
}
