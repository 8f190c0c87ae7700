package symbols

// DeclID identifies one declaration (struct, enum, or type alias) in a Table.
type DeclID uint32

// NoDeclID marks the absence of a declaration reference.
const NoDeclID DeclID = 0

func (id DeclID) IsValid() bool { return id != NoDeclID }
