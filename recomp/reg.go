package recomp

import "strconv"

type Reg int

const (
	MIPS_REG_ZERO Reg = iota
	MIPS_REG_AT
	MIPS_REG_V0
	MIPS_REG_V1
	MIPS_REG_A0
	MIPS_REG_A1
	MIPS_REG_A2
	MIPS_REG_A3
	MIPS_REG_T0
	MIPS_REG_T1
	MIPS_REG_T2
	MIPS_REG_T3
	MIPS_REG_T4
	MIPS_REG_T5
	MIPS_REG_T6
	MIPS_REG_T7
	MIPS_REG_S0
	MIPS_REG_S1
	MIPS_REG_S2
	MIPS_REG_S3
	MIPS_REG_S4
	MIPS_REG_S5
	MIPS_REG_S6
	MIPS_REG_S7
	MIPS_REG_T8
	MIPS_REG_T9
	MIPS_REG_K0
	MIPS_REG_K1
	MIPS_REG_GP
	MIPS_REG_SP
	MIPS_REG_FP
	MIPS_REG_RA
)

const (
	MIPS_REG_F0 Reg = iota + 32
	MIPS_REG_F1
	MIPS_REG_F2
	MIPS_REG_F3
	MIPS_REG_F4
	MIPS_REG_F5
	MIPS_REG_F6
	MIPS_REG_F7
	MIPS_REG_F8
	MIPS_REG_F9
	MIPS_REG_F10
	MIPS_REG_F11
	MIPS_REG_F12
	MIPS_REG_F13
	MIPS_REG_F14
	MIPS_REG_F15
	MIPS_REG_F16
	MIPS_REG_F17
	MIPS_REG_F18
	MIPS_REG_F19
	MIPS_REG_F20
	MIPS_REG_F21
	MIPS_REG_F22
	MIPS_REG_F23
	MIPS_REG_F24
	MIPS_REG_F25
	MIPS_REG_F26
	MIPS_REG_F27
	MIPS_REG_F28
	MIPS_REG_F29
	MIPS_REG_F30
	MIPS_REG_F31
	MIPS_REG_HI
	MIPS_REG_LO

	MIPS_REG_ENDING
)

const (
	GPR_COUNT = 32
	FPR_COUNT = 32
)

var gprNames = [GPR_COUNT]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

func (r Reg) IsGPR() bool {
	return r >= MIPS_REG_ZERO && r <= MIPS_REG_RA
}

func (r Reg) IsFPR() bool {
	return r >= MIPS_REG_F0 && r <= MIPS_REG_F31
}

func (r Reg) String() string {
	switch {
	case r.IsGPR():
		return gprNames[r]
	case r.IsFPR():
		return "f" + strconv.Itoa(int(r-MIPS_REG_F0))
	case r == MIPS_REG_HI:
		return "hi"
	case r == MIPS_REG_LO:
		return "lo"
	}
	return "reg(" + strconv.Itoa(int(r)) + ")"
}

// LookupReg maps an architectural name ("a0", "f12", "hi") back to its index.
func LookupReg(name string) (Reg, bool) {
	for i, n := range gprNames {
		if n == name {
			return Reg(i), true
		}
	}
	switch name {
	case "s8":
		return MIPS_REG_FP, true
	case "hi":
		return MIPS_REG_HI, true
	case "lo":
		return MIPS_REG_LO, true
	}
	for r := MIPS_REG_F0; r <= MIPS_REG_F31; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}
