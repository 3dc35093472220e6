package encoding

import "errors"

// Buffer is a detached guest-order byte image, used to stage values before
// they are copied into memory or to inspect what Encode produced.
type Buffer []byte

type bufferStream struct {
	buf *Buffer
	off int
}

func BufferStream(buf *Buffer) Stream {
	return &bufferStream{buf: buf}
}

func (bs *bufferStream) Offset() uint64 {
	return uint64(bs.off)
}

func (bs *bufferStream) Skip(n int) error {
	bs.off += n
	return nil
}

func (bs *bufferStream) Read(b []byte) (int, error) {
	if bs.off+len(b) > len(*bs.buf) {
		return 0, ErrShortBuffer
	}
	n := copy(b, (*bs.buf)[bs.off:])
	bs.off += n
	return n, nil
}

func (bs *bufferStream) Write(b []byte) (int, error) {
	bs.grow(bs.off + len(b))
	n := copy((*bs.buf)[bs.off:], b)
	bs.off += n
	return n, nil
}

func (bs *bufferStream) ReadStream() (Stream, error) {
	return nil, errors.ErrUnsupported
}

func (bs *bufferStream) grow(end int) {
	if end > len(*bs.buf) {
		*bs.buf = append(*bs.buf, make([]byte, end-len(*bs.buf))...)
	}
}
