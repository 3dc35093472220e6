package encoding

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var encodeProcess sync.Map

// Encode writes the value (or the value val points to) into stream in guest
// layout. Host pointers and strings have no guest address and are rejected.
func Encode(stream Stream, val any) error {
	typ := reflect2.TypeOf(val)
	if typ == nil {
		return ErrArgumentInvalid
	}
	var ptr unsafe.Pointer
	if typ.Kind() == reflect.Pointer {
		ptr = reflect2.PtrOf(val)
		if ptr == nil {
			return ErrArgumentInvalid
		}
		typ = typ.(reflect2.PtrType).Elem()
	} else {
		// boxed value; every encodable kind is stored indirectly in the interface
		ptr = reflect2.PtrOf(val)
	}
	data, err := getMarshalData(typ)
	if err != nil {
		return err
	}
	return data.handler(stream, ptr)
}

func getMarshalData(typ reflect2.Type) (*handlerData, error) {
	key := typ.RType()
	if v, ok := encodeProcess.Load(key); ok {
		return v.(*handlerData), nil
	}
	marshal, layout, err := encode(typ)
	if err != nil {
		return nil, err
	}
	data := &handlerData{marshal, layout}
	encodeProcess.Store(key, data)
	return data, nil
}

func encode(typ reflect2.Type) (handler, guestLayout, error) {
	switch typ.Kind() {
	case reflect.Bool:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [1]byte
			if *(*bool)(ptr) {
				b[0] = 1
			}
			_, err := stream.Write(b[:])
			return err
		}, guestLayout{1, 1}, nil
	case reflect.Int8, reflect.Uint8:
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Write(unsafe.Slice((*byte)(ptr), 1))
			return err
		}, guestLayout{1, 1}, nil
	case reflect.Int16, reflect.Uint16:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [2]byte
			binary.BigEndian.PutUint16(b[:], *(*uint16)(ptr))
			_, err := stream.Write(b[:])
			return err
		}, guestLayout{2, 2}, nil
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], *(*uint32)(ptr))
			_, err := stream.Write(b[:])
			return err
		}, guestLayout{4, 4}, nil
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], *(*uint64)(ptr))
			_, err := stream.Write(b[:])
			return err
		}, guestLayout{8, 8}, nil
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		wide := typ.Type1().Size() == 8
		return func(stream Stream, ptr unsafe.Pointer) error {
			var v uint32
			if wide {
				v = uint32(*(*uint64)(ptr))
			} else {
				v = *(*uint32)(ptr)
			}
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], v)
			_, err := stream.Write(b[:])
			return err
		}, guestLayout{4, 4}, nil
	case reflect.Array:
		return encodeArray(typ.(reflect2.ArrayType))
	case reflect.Struct:
		return encodeStruct(typ.(reflect2.StructType))
	}
	return nil, guestLayout{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typ.String())
}
