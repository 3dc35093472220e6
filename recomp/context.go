package recomp

import "fmt"

// RegisterContext is the by-index view of a register file.
type RegisterContext interface {
	RegRead(reg Reg) (uint64, error)
	RegWrite(reg Reg, value uint64) error
	RegReadBatch(regs ...Reg) ([]uint64, error)
	RegWriteBatch(regs []Reg, vals []uint64) error
}

// Context is the CPU state of one guest thread.
//
// Generated code addresses the fields by fixed offset, so the declaration
// order below must not change. See Layout.
type Context struct {
	GPR [GPR_COUNT]uint64
	FPR [FPR_COUNT]Fpr

	Hi uint64
	Lo uint64

	// FOdd is a placeholder for the MIPS32 odd-register pointer; nothing reads it.
	FOdd uintptr

	StatusReg      uint32
	Mips3FloatMode uint8
}

var _ RegisterContext = (*Context)(nil)

func (ctx *Context) Reset() {
	*ctx = Context{}
}

func (ctx *Context) Zero() uint64 { return ctx.GPR[MIPS_REG_ZERO] }
func (ctx *Context) At() uint64   { return ctx.GPR[MIPS_REG_AT] }
func (ctx *Context) V0() uint64   { return ctx.GPR[MIPS_REG_V0] }
func (ctx *Context) V1() uint64   { return ctx.GPR[MIPS_REG_V1] }
func (ctx *Context) A0() uint64   { return ctx.GPR[MIPS_REG_A0] }
func (ctx *Context) A1() uint64   { return ctx.GPR[MIPS_REG_A1] }
func (ctx *Context) A2() uint64   { return ctx.GPR[MIPS_REG_A2] }
func (ctx *Context) A3() uint64   { return ctx.GPR[MIPS_REG_A3] }
func (ctx *Context) T0() uint64   { return ctx.GPR[MIPS_REG_T0] }
func (ctx *Context) T1() uint64   { return ctx.GPR[MIPS_REG_T1] }
func (ctx *Context) T2() uint64   { return ctx.GPR[MIPS_REG_T2] }
func (ctx *Context) T3() uint64   { return ctx.GPR[MIPS_REG_T3] }
func (ctx *Context) T4() uint64   { return ctx.GPR[MIPS_REG_T4] }
func (ctx *Context) T5() uint64   { return ctx.GPR[MIPS_REG_T5] }
func (ctx *Context) T6() uint64   { return ctx.GPR[MIPS_REG_T6] }
func (ctx *Context) T7() uint64   { return ctx.GPR[MIPS_REG_T7] }
func (ctx *Context) S0() uint64   { return ctx.GPR[MIPS_REG_S0] }
func (ctx *Context) S1() uint64   { return ctx.GPR[MIPS_REG_S1] }
func (ctx *Context) S2() uint64   { return ctx.GPR[MIPS_REG_S2] }
func (ctx *Context) S3() uint64   { return ctx.GPR[MIPS_REG_S3] }
func (ctx *Context) S4() uint64   { return ctx.GPR[MIPS_REG_S4] }
func (ctx *Context) S5() uint64   { return ctx.GPR[MIPS_REG_S5] }
func (ctx *Context) S6() uint64   { return ctx.GPR[MIPS_REG_S6] }
func (ctx *Context) S7() uint64   { return ctx.GPR[MIPS_REG_S7] }
func (ctx *Context) T8() uint64   { return ctx.GPR[MIPS_REG_T8] }
func (ctx *Context) T9() uint64   { return ctx.GPR[MIPS_REG_T9] }
func (ctx *Context) K0() uint64   { return ctx.GPR[MIPS_REG_K0] }
func (ctx *Context) K1() uint64   { return ctx.GPR[MIPS_REG_K1] }
func (ctx *Context) GP() uint64   { return ctx.GPR[MIPS_REG_GP] }
func (ctx *Context) SP() uint64   { return ctx.GPR[MIPS_REG_SP] }
func (ctx *Context) FP() uint64   { return ctx.GPR[MIPS_REG_FP] }
func (ctx *Context) RA() uint64   { return ctx.GPR[MIPS_REG_RA] }

// F returns floating register n in place; writes through it land in the context.
func (ctx *Context) F(n int) *Fpr {
	return &ctx.FPR[n]
}

func (ctx *Context) reg(reg Reg) (*uint64, error) {
	switch {
	case reg.IsGPR():
		return &ctx.GPR[reg], nil
	case reg.IsFPR():
		return (*uint64)(&ctx.FPR[reg-MIPS_REG_F0]), nil
	case reg == MIPS_REG_HI:
		return &ctx.Hi, nil
	case reg == MIPS_REG_LO:
		return &ctx.Lo, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrRegInvalid, reg)
}

func (ctx *Context) RegRead(reg Reg) (uint64, error) {
	p, err := ctx.reg(reg)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

func (ctx *Context) RegWrite(reg Reg, value uint64) error {
	p, err := ctx.reg(reg)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (ctx *Context) RegReadBatch(regs ...Reg) ([]uint64, error) {
	vals := make([]uint64, len(regs))
	for i, reg := range regs {
		v, err := ctx.RegRead(reg)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (ctx *Context) RegWriteBatch(regs []Reg, vals []uint64) error {
	if len(regs) != len(vals) {
		return ErrBatchMismatch
	}
	for i, reg := range regs {
		if err := ctx.RegWrite(reg, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// HiLo returns the 128-bit multiply result as (hi, lo).
func (ctx *Context) HiLo() (uint64, uint64) {
	return ctx.Hi, ctx.Lo
}

// FloatMode64 reports whether the FPU is in MIPS3 (FR=1) mode, where every
// register holds a full double instead of pairing even/odd singles.
func (ctx *Context) FloatMode64() bool {
	return ctx.Mips3FloatMode != 0
}
