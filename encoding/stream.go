package encoding

import "errors"

// Stream is a cursor over guest memory. Bytes are in guest (big-endian) order.
type Stream interface {
	Offset() uint64
	Skip(int) error
	Read([]byte) (int, error)
	Write([]byte) (int, error)
	// ReadStream consumes a 32-bit guest pointer and returns a stream at its
	// target, or a nil stream for a null pointer.
	ReadStream() (Stream, error)
}

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrArgumentInvalid = errors.New("argument invalid")
	ErrShortBuffer     = errors.New("short buffer")
)
