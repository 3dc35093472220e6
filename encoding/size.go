package encoding

import "github.com/wnxd/mipsrecomp/rdram"

// guestLayout is the size and natural alignment of a type in guest memory.
type guestLayout struct {
	size  int
	align int
}

func (l guestLayout) pad(offset int) int {
	return rdram.Align(offset, l.align) - offset
}
