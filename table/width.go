package table

// WidthHints names the minimum unsigned integer width needed to index
// each dimension of a finished table, for a target-language emitter
// deciding how to size its generated arrays (§4.7 "Width hints...
// accompany the structure to aid compact emission").
type WidthHints struct {
	StateWidth int // bits needed to index fsm_size
	TermWidth  int // bits needed to index term_num
	NTWidth    int // bits needed to index nt_num
	ProdWidth  int // bits needed to index the production array
}

// MinUnsignedWidth returns the smallest of 8, 16, 32, 64 that can
// represent every value in [0, count) unsigned, i.e. the machine word
// size needed to index a dimension of that size.
func MinUnsignedWidth(count int) int {
	switch {
	case count <= 1<<8:
		return 8
	case count <= 1<<16:
		return 16
	case count <= 1<<32:
		return 32
	default:
		return 64
	}
}

// ComputeWidths derives the width hints for a finished table of the
// given dimensions.
func ComputeWidths(stateCount, termNum, ntNum, prodNum int) WidthHints {
	return WidthHints{
		StateWidth: MinUnsignedWidth(stateCount),
		TermWidth:  MinUnsignedWidth(termNum),
		NTWidth:    MinUnsignedWidth(ntNum),
		ProdWidth:  MinUnsignedWidth(prodNum),
	}
}
