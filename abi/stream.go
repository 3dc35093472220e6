package abi

import (
	"github.com/wnxd/mipsrecomp/encoding"
	"github.com/wnxd/mipsrecomp/rdram"
)

type pointerStream struct {
	ptr rdram.Pointer
}

// PointerStream walks guest memory from ptr in guest byte order.
func PointerStream(ptr rdram.Pointer) encoding.Stream {
	return &pointerStream{ptr}
}

func (ps *pointerStream) Offset() uint64 {
	return ps.ptr.Address()
}

func (ps *pointerStream) Skip(n int) error {
	ps.ptr = ps.ptr.Add(uint64(n))
	return nil
}

func (ps *pointerStream) Read(b []byte) (int, error) {
	n, err := ps.ptr.ReadAt(b, 0)
	if err == nil {
		err = ps.Skip(n)
	}
	return n, err
}

func (ps *pointerStream) Write(b []byte) (int, error) {
	n, err := ps.ptr.WriteAt(b, 0)
	if err == nil {
		err = ps.Skip(n)
	}
	return n, err
}

func (ps *pointerStream) ReadStream() (encoding.Stream, error) {
	ptr := ps.ptr.ReadPointer()
	if err := ps.Skip(4); err != nil {
		return nil, err
	}
	if ptr.IsNil() {
		return nil, nil
	}
	return PointerStream(ptr), nil
}
