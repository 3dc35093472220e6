package recomp

import "math"

// Fpr is one 8-byte floating-point register cell. The same bits can be viewed
// as a double, as two singles, as two 32-bit words or as one 64-bit word; the
// low lane of every pair view is the low 32 bits of the cell.
//
// Only one view is meaningful at a time: whichever was written last. Reading
// through a different view returns the reinterpreted bits, not a conversion.
type Fpr uint64

func (f Fpr) D() float64 {
	return math.Float64frombits(uint64(f))
}

func (f *Fpr) SetD(d float64) {
	*f = Fpr(math.Float64bits(d))
}

func (f Fpr) Fl() float32 {
	return math.Float32frombits(f.U32l())
}

func (f Fpr) Fh() float32 {
	return math.Float32frombits(f.U32h())
}

func (f *Fpr) SetFl(v float32) {
	f.SetU32l(math.Float32bits(v))
}

func (f *Fpr) SetFh(v float32) {
	f.SetU32h(math.Float32bits(v))
}

func (f Fpr) U32l() uint32 {
	return uint32(f)
}

func (f Fpr) U32h() uint32 {
	return uint32(f >> 32)
}

func (f *Fpr) SetU32l(v uint32) {
	*f = *f&^0xFFFFFFFF | Fpr(v)
}

func (f *Fpr) SetU32h(v uint32) {
	*f = *f&0xFFFFFFFF | Fpr(v)<<32
}

func (f Fpr) U64() uint64 {
	return uint64(f)
}

func (f *Fpr) SetU64(v uint64) {
	*f = Fpr(v)
}
