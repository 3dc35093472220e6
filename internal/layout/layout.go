package layout

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wnxd/mipsrecomp/recomp"
)

type Format string

const (
	FormatC  Format = "c"
	FormatGo Format = "go"
)

var ErrFormat = errors.New("unknown layout format")

type entry struct {
	name   string
	offset uintptr
}

// entries lists every field and every register of recomp.Context by offset.
func entries() []entry {
	var list []entry
	for _, f := range recomp.Layout() {
		list = append(list, entry{f.Name, f.Offset})
	}
	for reg := recomp.MIPS_REG_ZERO; reg < recomp.MIPS_REG_ENDING; reg++ {
		off, err := recomp.RegOffset(reg)
		if err != nil {
			continue
		}
		list = append(list, entry{"REG_" + reg.String(), off})
	}
	return list
}

// errWriter keeps the first write error and drops every later write.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func Render(w io.Writer, format Format, prefix string) error {
	list := entries()
	ew := &errWriter{w: w}
	switch format {
	case FormatC:
		upper := strings.ToUpper(prefix)
		guard := upper + "_LAYOUT_H"
		ew.printf("#ifndef %s\n#define %s\n\n", guard, guard)
		for _, e := range list {
			ew.printf("#define %s_%s 0x%X\n", upper, strings.ToUpper(e.name), e.offset)
		}
		ew.printf("#define %s_SIZE 0x%X\n\n#endif\n", upper, recomp.ContextSize())
	case FormatGo:
		ew.printf("package %s\n\nconst (\n", strings.ToLower(prefix))
		for _, e := range list {
			ew.printf("\t%s = 0x%X\n", goName(e.name), e.offset)
		}
		ew.printf("\tContextSize = 0x%X\n)\n", recomp.ContextSize())
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return ew.err
}

// goName turns "REG_a0" into "RegA0" and "Mips3FloatMode" into "OffMips3FloatMode".
func goName(name string) string {
	if reg, ok := strings.CutPrefix(name, "REG_"); ok {
		return "Reg" + strings.ToUpper(reg[:1]) + reg[1:]
	}
	return "Off" + name
}
