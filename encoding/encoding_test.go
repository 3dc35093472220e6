package encoding

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesgQueue struct {
	MtQueue    uint32
	FullQueue  uint32
	ValidCount int32
	First      int16
	Flag       bool
	MsgCount   int32
	Msg        uintptr
	Scale      float32
	Pos        [3]int16
	Stamp      uint64
	host       int `encoding:"ignore"`
}

func TestSizeFollowsGuestAlignment(t *testing.T) {
	t.Parallel()

	n, err := Size(mesgQueue{})
	require.NoError(t, err)
	// 4+4+4+2+1(+1)+4+4+4+6(+6)+8
	assert.Equal(t, 48, n)

	n, err = Size(&struct {
		A uint8
		B uint16
		C uint8
	}{})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = Size(nil)
	assert.ErrorIs(t, err, ErrArgumentInvalid)
}

func TestEncodeDecodeStruct(t *testing.T) {
	t.Parallel()

	in := mesgQueue{
		MtQueue:    0x80001000,
		FullQueue:  0x80001010,
		ValidCount: -2,
		First:      7,
		Flag:       true,
		MsgCount:   8,
		Msg:        0xFFFFFFFF80002000,
		Scale:      1.25,
		Pos:        [3]int16{1, -1, 300},
		Stamp:      0x0102030405060708,
		host:       99,
	}

	var buf Buffer
	require.NoError(t, Encode(BufferStream(&buf), &in))
	require.Len(t, buf, 48)

	// big-endian guest words
	assert.Equal(t, []byte{0x80, 0x00, 0x10, 0x00}, []byte(buf[0:4]))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFE}, []byte(buf[8:12]))
	assert.Equal(t, []byte{0x00, 0x07, 0x01, 0x00}, []byte(buf[12:16]))
	assert.Equal(t, []byte{0x80, 0x00, 0x20, 0x00}, []byte(buf[20:24]))
	assert.Equal(t, math.Float32bits(1.25), uint32(buf[24])<<24|uint32(buf[25])<<16|uint32(buf[26])<<8|uint32(buf[27]))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte(buf[40:48]))

	var out mesgQueue
	require.NoError(t, Decode(BufferStream(&buf), &out))

	want := in
	want.host = 0
	if diff := cmp.Diff(want, out, cmp.AllowUnexported(mesgQueue{})); diff != "" {
		t.Errorf("decoded struct mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeByValue(t *testing.T) {
	t.Parallel()

	var buf Buffer
	require.NoError(t, Encode(BufferStream(&buf), uint32(0xCAFEBABE)))
	assert.Equal(t, Buffer{0xCA, 0xFE, 0xBA, 0xBE}, buf)

	var v uint32
	require.NoError(t, Decode(BufferStream(&buf), &v))
	assert.Equal(t, uint32(0xCAFEBABE), v)
}

func TestDecodeRejectsNonPointer(t *testing.T) {
	t.Parallel()

	var buf Buffer
	assert.ErrorIs(t, Decode(BufferStream(&buf), uint32(1)), ErrArgumentInvalid)
	assert.ErrorIs(t, Decode(BufferStream(&buf), nil), ErrArgumentInvalid)

	var p *uint32
	assert.ErrorIs(t, Decode(BufferStream(&buf), p), ErrArgumentInvalid)
}

func TestDecodeShortBuffer(t *testing.T) {
	t.Parallel()

	buf := Buffer{1, 2}
	var v uint32
	assert.ErrorIs(t, Decode(BufferStream(&buf), &v), ErrShortBuffer)
}

func TestUnsupportedTypes(t *testing.T) {
	t.Parallel()

	var buf Buffer
	err := Encode(BufferStream(&buf), &struct{ S string }{"x"})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	err = Decode(BufferStream(&buf), &map[int]int{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestBufferStreamHasNoPointers(t *testing.T) {
	t.Parallel()

	buf := Buffer{0x80, 0, 0, 0}
	var p *uint32
	err := Decode(BufferStream(&buf), &p)
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
