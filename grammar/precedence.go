package grammar

// Assoc is the associativity of a precedence row.
type Assoc int

const (
	// Left is left-associative: equal-precedence shift/reduce conflicts
	// resolve to Reduce.
	Left Assoc = iota
	// Right is right-associative: equal-precedence shift/reduce
	// conflicts resolve to Shift.
	Right
	// NoAssoc declares no associativity: equal-precedence shift/reduce
	// conflicts are reported and dropped (neither action kept).
	NoAssoc
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case NoAssoc:
		return "NoAssoc"
	default:
		return "Assoc(?)"
	}
}

// PrecRow is one priority row: an associativity and the set of
// terminals sharing that row's precedence.
type PrecRow struct {
	Assoc Assoc
	Terms []int // terminal ids
}

// PrecedenceTable is an ordered list of priority rows. Row index
// defines numeric precedence; higher index binds tighter.
type PrecedenceTable struct {
	Rows []PrecRow
}

// Of returns the row index and associativity declared for terminal id,
// and whether any row declares it.
func (pt PrecedenceTable) Of(termID int) (row int, assoc Assoc, ok bool) {
	for i, r := range pt.Rows {
		for _, t := range r.Terms {
			if t == termID {
				return i, r.Assoc, true
			}
		}
	}
	return 0, Left, false
}

// Higher reports whether row a binds tighter than row b.
func Higher(a, b int) bool { return a > b }
