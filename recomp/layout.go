package recomp

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

const (
	gprSize = unsafe.Sizeof(uint64(0))
	fprSize = unsafe.Sizeof(Fpr(0))
)

// Layout lists the top-level fields of Context in declaration order.
func Layout() []Field {
	typ := reflect2.TypeOfPtr((*Context)(nil)).Elem().(reflect2.StructType)
	fields := make([]Field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		fields = append(fields, Field{
			Name:   f.Name(),
			Offset: f.Offset(),
			Size:   f.Type().Type1().Size(),
		})
	}
	return fields
}

// RegOffset returns the byte offset of reg inside Context.
func RegOffset(reg Reg) (uintptr, error) {
	var ctx Context
	switch {
	case reg.IsGPR():
		return unsafe.Offsetof(ctx.GPR) + uintptr(reg)*gprSize, nil
	case reg.IsFPR():
		return unsafe.Offsetof(ctx.FPR) + uintptr(reg-MIPS_REG_F0)*fprSize, nil
	case reg == MIPS_REG_HI:
		return unsafe.Offsetof(ctx.Hi), nil
	case reg == MIPS_REG_LO:
		return unsafe.Offsetof(ctx.Lo), nil
	}
	return 0, ErrRegInvalid
}

func ContextSize() uintptr {
	return unsafe.Sizeof(Context{})
}
