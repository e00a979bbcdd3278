package table

// SparseMatrix is a triplet-encoded (COO) sparse integer matrix, used
// to hold the final flat action/goto tables compactly: most grammars
// leave the overwhelming majority of [state][terminal] and
// [state][non-terminal] cells as Err / no-goto, so storing only the
// populated entries keeps emission small. Values cannot be deleted,
// only overwritten with the null value; space for nulled entries is
// not reclaimed.
type SparseMatrix struct {
	rows, cols int
	null       int32
	entries    map[[2]int]int32
}

// NewSparseMatrix returns an empty rows x cols matrix whose unset
// cells read back as null.
func NewSparseMatrix(rows, cols int, null int32) *SparseMatrix {
	return &SparseMatrix{rows: rows, cols: cols, null: null, entries: map[[2]int]int32{}}
}

// Set stores value at (row, col).
func (m *SparseMatrix) Set(row, col int, value int32) {
	m.entries[[2]int{row, col}] = value
}

// Value returns the value at (row, col), or the matrix's null value if
// unset.
func (m *SparseMatrix) Value(row, col int) int32 {
	if v, ok := m.entries[[2]int{row, col}]; ok {
		return v
	}
	return m.null
}

// Count returns the number of entries that have been Set, including
// any later overwritten with the null value.
func (m *SparseMatrix) Count() int { return len(m.entries) }

// Dims returns the logical matrix dimensions.
func (m *SparseMatrix) Dims() (rows, cols int) { return m.rows, m.cols }
