package rdram

import "golang.org/x/exp/constraints"

func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}

// SignExtend32 widens a 32-bit guest pointer the way the CPU does on load.
func SignExtend32[I constraints.Integer](v I) uint64 {
	return uint64(int64(int32(v)))
}
