package encoding

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

var padNull [8]byte

func encodeStruct(typ reflect2.StructType) (handler, guestLayout, error) {
	fields, layout, err := structFields(typ, getMarshalData)
	if err != nil {
		return nil, guestLayout{}, err
	}
	tail := layout.size - fieldsEnd(fields)
	return func(stream Stream, ptr unsafe.Pointer) error {
		for _, data := range fields {
			if err := writePad(stream, data.pad); err != nil {
				return err
			}
			if err := data.handler(stream, unsafe.Add(ptr, data.offset)); err != nil {
				return err
			}
		}
		return writePad(stream, tail)
	}, layout, nil
}

func writePad(stream Stream, n int) error {
	for n > 0 {
		c := min(n, len(padNull))
		if _, err := stream.Write(padNull[:c]); err != nil {
			return err
		}
		n -= c
	}
	return nil
}
