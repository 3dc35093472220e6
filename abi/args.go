package abi

import (
	"unsafe"

	"github.com/wnxd/mipsrecomp/encoding"
	"github.com/wnxd/mipsrecomp/rdram"
	"github.com/wnxd/mipsrecomp/recomp"
)

const (
	ARG_COUNT = 4

	// FloatArgReg carries the first floating-point argument (f12 in o32).
	FloatArgReg = 12
)

func argReg(op string, i int) recomp.Reg {
	if i < 0 || i >= ARG_COUNT {
		fatal(op, ErrArgIndex, i)
	}
	return recomp.MIPS_REG_A0 + recomp.Reg(i)
}

func ArgU32(ctx *recomp.Context, i int) uint32 {
	return uint32(ctx.GPR[argReg("ArgU32", i)])
}

func ArgU64(ctx *recomp.Context, i int) uint64 {
	return ctx.GPR[argReg("ArgU64", i)]
}

func ArgS32(ctx *recomp.Context, i int) int32 {
	return int32(ArgU32(ctx, i))
}

// ArgF32 returns the first float argument. Floats travel in the FPU register
// file, so only index 0 is meaningful regardless of integer argument position.
func ArgF32(ctx *recomp.Context, i int) float32 {
	if i != 0 {
		fatal("ArgF32", ErrFloatArgIndex, i)
	}
	return ctx.FPR[FloatArgReg].Fl()
}

// ArgPtr returns a host pointer to the guest memory argument i points at.
// Alignment for T and bounds are the caller's responsibility.
func ArgPtr[T any](ctx *recomp.Context, mem rdram.Memory, i int) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(mem.Host(ArgU64(ctx, i)))))
}

func ArgPointer(ctx *recomp.Context, mem rdram.Memory, i int) rdram.Pointer {
	return rdram.ToPointer(mem, ArgU64(ctx, i))
}

// ArgString reads the zero-terminated string argument i points at. The scan
// is unbounded: a missing terminator runs off the end of mem.
func ArgString(ctx *recomp.Context, mem rdram.Memory, i int) string {
	return ArgPointer(ctx, mem, i).ReadString()
}

// ArgExtract decodes the guest structure argument i points at into val.
func ArgExtract(ctx *recomp.Context, mem rdram.Memory, i int, val any) error {
	return encoding.Decode(PointerStream(ArgPointer(ctx, mem, i)), val)
}

// ArgWrite encodes val into the guest buffer argument i points at.
func ArgWrite(ctx *recomp.Context, mem rdram.Memory, i int, val any) error {
	return encoding.Encode(PointerStream(ArgPointer(ctx, mem, i)), val)
}
