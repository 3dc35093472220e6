package rdram

import "strings"

// Pointer is a guest address bound to the memory it points into.
type Pointer struct {
	mem  Memory
	addr uint64
}

func ToPointer(mem Memory, addr uint64) Pointer {
	return Pointer{mem, addr}
}

func (p Pointer) IsNil() bool {
	return p.addr == 0
}

func (p Pointer) Address() uint64 {
	return p.addr
}

// Offset is the position of the pointer inside the memory buffer.
func (p Pointer) Offset() uint64 {
	return Translate(p.addr)
}

func (p Pointer) Memory() Memory {
	return p.mem
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.mem, p.addr + offset}
}

func (p Pointer) Sub(offset uint64) Pointer {
	return Pointer{p.mem, p.addr - offset}
}

func (p Pointer) ReadGuestByte(off uint64) int8 {
	return p.mem.ReadGuestByte(p.addr, off)
}

func (p Pointer) Len() int {
	var n uint64
	for p.mem.ReadGuestByte(p.addr, n) != 0 {
		n++
	}
	return int(n)
}

// ReadString reads the zero-terminated string at p. Each guest byte becomes
// one character; no multi-byte decoding is attempted.
func (p Pointer) ReadString() string {
	n := p.Len()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(rune(uint8(p.mem.ReadGuestByte(p.addr, uint64(i)))))
	}
	return sb.String()
}

// ReadPointer loads the 32-bit guest pointer stored at p.
func (p Pointer) ReadPointer() Pointer {
	return Pointer{p.mem, SignExtend32(p.mem.ReadU32(p.addr))}
}

func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	addr := p.addr + uint64(off)
	for i := range b {
		b[i] = p.mem.ReadU8(addr + uint64(i))
	}
	return len(b), nil
}

func (p Pointer) WriteAt(b []byte, off int64) (n int, err error) {
	addr := p.addr + uint64(off)
	for i, c := range b {
		p.mem.WriteU8(addr+uint64(i), c)
	}
	return len(b), nil
}

// WriteString stores s followed by a terminator, one byte per character.
// Characters above 0xFF are truncated to their low byte; callers that need
// another encoding convert before calling.
func (p Pointer) WriteString(s string) {
	var i uint64
	for _, r := range s {
		p.mem.WriteU8(p.addr+i, byte(r))
		i++
	}
	p.mem.WriteU8(p.addr+i, 0)
}
