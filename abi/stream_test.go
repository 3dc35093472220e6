package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnxd/mipsrecomp/rdram"
)

func TestPointerStreamAdvances(t *testing.T) {
	t.Parallel()

	mem := make(rdram.Memory, 0x40)
	storeGuest(mem, rdram.KSEG0, []byte{1, 2, 3, 4, 5, 6})

	s := PointerStream(rdram.ToPointer(mem, rdram.KSEG0))
	b := make([]byte, 4)
	n, err := s.Read(b)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)
	assert.Equal(t, rdram.KSEG0+4, s.Offset())

	n, err = s.Write([]byte{9, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, rdram.KSEG0+6, s.Offset())
	assert.Equal(t, uint8(9), mem.ReadU8(rdram.KSEG0+4))
	assert.Equal(t, uint8(9), mem.ReadU8(rdram.KSEG0+5))

	require.NoError(t, s.Skip(2))
	assert.Equal(t, rdram.KSEG0+8, s.Offset())
}

func TestPointerStreamReadStream(t *testing.T) {
	t.Parallel()

	mem := make(rdram.Memory, 0x40)
	mem.WriteU32(rdram.KSEG0, 0x80000020)
	mem.WriteU32(rdram.KSEG0+4, 0)

	s := PointerStream(rdram.ToPointer(mem, rdram.KSEG0))
	sub, err := s.ReadStream()
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, rdram.KSEG0+0x20, sub.Offset())
	assert.Equal(t, rdram.KSEG0+4, s.Offset())

	sub, err = s.ReadStream()
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Equal(t, rdram.KSEG0+8, s.Offset())
}
