package abi

import (
	"github.com/wnxd/mipsrecomp/recomp"
)

// ReturnKind is the static type of a host function's result, chosen by the
// translator at each call site.
type ReturnKind int

const (
	RetInvalid ReturnKind = iota
	RetF32
	RetS32
	RetU32
	RetS16
	RetU16
	RetS8
	RetU8
	RetBool

	// Named so a call site can ask for them; the convention has no slot for them.
	RetS64
	RetU64
	RetF64
)

const (
	// FloatRetReg holds a float result in its low lane.
	FloatRetReg = 0
	IntRetReg   = recomp.MIPS_REG_V0
)

func (k ReturnKind) String() string {
	switch k {
	case RetF32:
		return "f32"
	case RetS32:
		return "i32"
	case RetU32:
		return "u32"
	case RetS16:
		return "i16"
	case RetU16:
		return "u16"
	case RetS8:
		return "i8"
	case RetU8:
		return "u8"
	case RetBool:
		return "bool"
	case RetS64:
		return "i64"
	case RetU64:
		return "u64"
	case RetF64:
		return "f64"
	}
	return "invalid"
}

func (k ReturnKind) Supported() bool {
	return k >= RetF32 && k <= RetBool
}

// SetReturn stores the low bits of a kind-typed value. Floats go to the low
// lane of f0 and leave the high lane alone; everything else is narrowed to its
// kind, widened to int32 and sign-extended into v0.
func SetReturn(ctx *recomp.Context, kind ReturnKind, bits uint32) {
	var v int32
	switch kind {
	case RetF32:
		ctx.FPR[FloatRetReg].SetU32l(bits)
		return
	case RetS32, RetU32:
		v = int32(bits)
	case RetS16:
		v = int32(int16(bits))
	case RetU16:
		v = int32(uint16(bits))
	case RetS8:
		v = int32(int8(bits))
	case RetU8:
		v = int32(uint8(bits))
	case RetBool:
		if bits != 0 {
			v = 1
		}
	default:
		fatal("SetReturn", ErrReturnKind, kind)
	}
	ctx.GPR[IntRetReg] = uint64(int64(v))
}

func SetReturnF32(ctx *recomp.Context, v float32) {
	ctx.FPR[FloatRetReg].SetFl(v)
}

func SetReturnS32(ctx *recomp.Context, v int32)  { SetReturn(ctx, RetS32, uint32(v)) }
func SetReturnU32(ctx *recomp.Context, v uint32) { SetReturn(ctx, RetU32, v) }
func SetReturnS16(ctx *recomp.Context, v int16)  { SetReturn(ctx, RetS16, uint32(v)) }
func SetReturnU16(ctx *recomp.Context, v uint16) { SetReturn(ctx, RetU16, uint32(v)) }
func SetReturnS8(ctx *recomp.Context, v int8)    { SetReturn(ctx, RetS8, uint32(v)) }
func SetReturnU8(ctx *recomp.Context, v uint8)   { SetReturn(ctx, RetU8, uint32(v)) }

func SetReturnBool(ctx *recomp.Context, v bool) {
	var bits uint32
	if v {
		bits = 1
	}
	SetReturn(ctx, RetBool, bits)
}

// ReturnU32 reads back an integer result left by a generated callee.
func ReturnU32(ctx *recomp.Context) uint32 {
	return uint32(ctx.GPR[IntRetReg])
}

func ReturnF32(ctx *recomp.Context) float32 {
	return ctx.FPR[FloatRetReg].Fl()
}
