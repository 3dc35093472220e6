package recomp

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedAccessorsAliasSlots(t *testing.T) {
	t.Parallel()

	var ctx Context
	accessors := []func() uint64{
		ctx.Zero, ctx.At, ctx.V0, ctx.V1, ctx.A0, ctx.A1, ctx.A2, ctx.A3,
		ctx.T0, ctx.T1, ctx.T2, ctx.T3, ctx.T4, ctx.T5, ctx.T6, ctx.T7,
		ctx.S0, ctx.S1, ctx.S2, ctx.S3, ctx.S4, ctx.S5, ctx.S6, ctx.S7,
		ctx.T8, ctx.T9, ctx.K0, ctx.K1, ctx.GP, ctx.SP, ctx.FP, ctx.RA,
	}
	require.Len(t, accessors, GPR_COUNT)

	for i, get := range accessors {
		v := uint64(0xDEAD0000_00000000) | uint64(i)<<8 | uint64(i)
		ctx.GPR[i] = v
		assert.Equal(t, v, get(), "slot %d (%s)", i, Reg(i))
	}
}

func TestRaAlias(t *testing.T) {
	t.Parallel()

	var ctx Context
	ctx.GPR[31] = 0xFFFFFFFF80001234
	assert.Equal(t, uint64(0xFFFFFFFF80001234), ctx.RA())

	ctx.GPR[31] = 7
	assert.Equal(t, uint64(7), ctx.RA())
}

func TestFloatRegisterIsInPlace(t *testing.T) {
	t.Parallel()

	var ctx Context
	ctx.F(12).SetFl(1.5)
	assert.Equal(t, float32(1.5), ctx.FPR[12].Fl())
}

func TestRegReadWrite(t *testing.T) {
	t.Parallel()

	var ctx Context
	require.NoError(t, ctx.RegWrite(MIPS_REG_A2, 42))
	assert.Equal(t, uint64(42), ctx.A2())

	require.NoError(t, ctx.RegWrite(MIPS_REG_F3, 0x3FF0000000000000))
	assert.Equal(t, 1.0, ctx.FPR[3].D())

	require.NoError(t, ctx.RegWrite(MIPS_REG_HI, 1))
	require.NoError(t, ctx.RegWrite(MIPS_REG_LO, 2))
	hi, lo := ctx.HiLo()
	assert.Equal(t, uint64(1), hi)
	assert.Equal(t, uint64(2), lo)

	v, err := ctx.RegRead(MIPS_REG_F3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3FF0000000000000), v)

	_, err = ctx.RegRead(MIPS_REG_ENDING)
	assert.ErrorIs(t, err, ErrRegInvalid)
	assert.ErrorIs(t, ctx.RegWrite(-1, 0), ErrRegInvalid)
}

func TestRegBatch(t *testing.T) {
	t.Parallel()

	var ctx Context
	regs := []Reg{MIPS_REG_A0, MIPS_REG_A1, MIPS_REG_SP}
	require.NoError(t, ctx.RegWriteBatch(regs, []uint64{1, 2, 3}))

	vals, err := ctx.RegReadBatch(regs...)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, vals)

	assert.ErrorIs(t, ctx.RegWriteBatch(regs, []uint64{1}), ErrBatchMismatch)
}

func TestReset(t *testing.T) {
	t.Parallel()

	ctx := Context{Hi: 1, StatusReg: 2, Mips3FloatMode: 1}
	ctx.GPR[4] = 3
	ctx.Reset()
	assert.Equal(t, Context{}, ctx)
	assert.False(t, ctx.FloatMode64())
}

func TestRegNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "zero", MIPS_REG_ZERO.String())
	assert.Equal(t, "a3", MIPS_REG_A3.String())
	assert.Equal(t, "ra", MIPS_REG_RA.String())
	assert.Equal(t, "f12", MIPS_REG_F12.String())
	assert.Equal(t, "hi", MIPS_REG_HI.String())

	for r := MIPS_REG_ZERO; r < MIPS_REG_ENDING; r++ {
		got, ok := LookupReg(r.String())
		require.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
	r, ok := LookupReg("s8")
	assert.True(t, ok)
	assert.Equal(t, MIPS_REG_FP, r)

	_, ok = LookupReg("x0")
	assert.False(t, ok)
}

func TestContextLayout(t *testing.T) {
	t.Parallel()

	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout is pinned for 64-bit hosts")
	}

	want := []Field{
		{"GPR", 0, 256},
		{"FPR", 256, 256},
		{"Hi", 512, 8},
		{"Lo", 520, 8},
		{"FOdd", 528, 8},
		{"StatusReg", 536, 4},
		{"Mips3FloatMode", 540, 1},
	}
	assert.Equal(t, want, Layout())
	assert.Equal(t, uintptr(544), ContextSize())

	off, err := RegOffset(MIPS_REG_A0)
	require.NoError(t, err)
	assert.Equal(t, uintptr(32), off)

	off, err = RegOffset(MIPS_REG_F12)
	require.NoError(t, err)
	assert.Equal(t, uintptr(256+12*8), off)

	off, err = RegOffset(MIPS_REG_LO)
	require.NoError(t, err)
	assert.Equal(t, uintptr(520), off)

	_, err = RegOffset(MIPS_REG_ENDING)
	assert.ErrorIs(t, err, ErrRegInvalid)
}
