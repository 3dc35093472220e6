package encoding

import (
	"reflect"
	"unsafe"

	"github.com/modern-go/reflect2"
)

func decodeArray(typ reflect2.ArrayType) (handler, guestLayout, error) {
	count := typ.Len()
	elem := typ.Elem()
	switch elem.Kind() {
	case reflect.Int8, reflect.Uint8:
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), count))
			return err
		}, guestLayout{count, 1}, nil
	}
	data, err := getUnmarshalData(elem)
	if err != nil {
		return nil, guestLayout{}, err
	}
	stride := elem.Type1().Size()
	return func(stream Stream, ptr unsafe.Pointer) error {
		for i := 0; i < count; i++ {
			if err := data.handler(stream, ptr); err != nil {
				return err
			}
			ptr = unsafe.Add(ptr, stride)
		}
		return nil
	}, guestLayout{count * data.layout.size, data.layout.align}, nil
}
