package rdram

import "encoding/binary"

const (
	// KSEG0 is the virtual base that maps onto offset 0 of the memory buffer.
	KSEG0 uint64 = 0xFFFFFFFF80000000

	// ByteSwap and HalfSwap undo the word-wise byte swap of the buffer for
	// byte and halfword accesses.
	ByteSwap = 3
	HalfSwap = 2
)

// Memory is the guest RAM. It is owned and sized by the caller; every
// accessor trusts the address it is given and performs no range check.
// The buffer holds 32-bit guest words in host little-endian order.
type Memory []byte

func Translate(addr uint64) uint64 {
	return addr - KSEG0
}

// ReadGuestByte returns the guest byte at addr+off.
func (m Memory) ReadGuestByte(addr, off uint64) int8 {
	return int8(m[Translate(addr+off)^ByteSwap])
}

func (m Memory) ReadU8(addr uint64) uint8 {
	return m[Translate(addr)^ByteSwap]
}

func (m Memory) WriteU8(addr uint64, v uint8) {
	m[Translate(addr)^ByteSwap] = v
}

func (m Memory) ReadU16(addr uint64) uint16 {
	return binary.LittleEndian.Uint16(m[Translate(addr)^HalfSwap:])
}

func (m Memory) WriteU16(addr uint64, v uint16) {
	binary.LittleEndian.PutUint16(m[Translate(addr)^HalfSwap:], v)
}

func (m Memory) ReadU32(addr uint64) uint32 {
	return binary.LittleEndian.Uint32(m[Translate(addr):])
}

func (m Memory) WriteU32(addr uint64, v uint32) {
	binary.LittleEndian.PutUint32(m[Translate(addr):], v)
}

// ReadU64 reads a doubleword as two words, the high one first in guest order.
func (m Memory) ReadU64(addr uint64) uint64 {
	return uint64(m.ReadU32(addr))<<32 | uint64(m.ReadU32(addr+4))
}

func (m Memory) WriteU64(addr uint64, v uint64) {
	m.WriteU32(addr, uint32(v>>32))
	m.WriteU32(addr+4, uint32(v))
}

// Host returns the buffer from addr on, without the byte swap, for callers
// that reinterpret whole aligned words in place.
func (m Memory) Host(addr uint64) []byte {
	return m[Translate(addr):]
}
