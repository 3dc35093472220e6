package encoding

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

type handler = func(Stream, unsafe.Pointer) error

type handlerData struct {
	handler handler
	layout  guestLayout
}

var decodeProcess sync.Map

// Size returns the guest size of val's type, or of its element if val is a pointer.
func Size(val any) (int, error) {
	typ := reflect2.TypeOf(val)
	if typ == nil {
		return 0, ErrArgumentInvalid
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.(reflect2.PtrType).Elem()
	}
	data, err := getUnmarshalData(typ)
	if err != nil {
		return 0, err
	}
	return data.layout.size, nil
}

// Decode fills the value val points to from stream.
func Decode(stream Stream, val any) error {
	typ := reflect2.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return ErrArgumentInvalid
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return ErrArgumentInvalid
	}
	data, err := getUnmarshalData(typ.(reflect2.PtrType).Elem())
	if err != nil {
		return err
	}
	return data.handler(stream, ptr)
}

func getUnmarshalData(typ reflect2.Type) (*handlerData, error) {
	key := typ.RType()
	if v, ok := decodeProcess.Load(key); ok {
		return v.(*handlerData), nil
	}
	unmarshal, layout, err := decode(typ)
	if err != nil {
		return nil, err
	}
	data := &handlerData{unmarshal, layout}
	decodeProcess.Store(key, data)
	return data, nil
}

func decode(typ reflect2.Type) (handler, guestLayout, error) {
	switch typ.Kind() {
	case reflect.Bool:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [1]byte
			_, err := stream.Read(b[:])
			*(*bool)(ptr) = b[0] != 0
			return err
		}, guestLayout{1, 1}, nil
	case reflect.Int8, reflect.Uint8:
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), 1))
			return err
		}, guestLayout{1, 1}, nil
	case reflect.Int16, reflect.Uint16:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [2]byte
			_, err := stream.Read(b[:])
			*(*uint16)(ptr) = binary.BigEndian.Uint16(b[:])
			return err
		}, guestLayout{2, 2}, nil
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [4]byte
			_, err := stream.Read(b[:])
			*(*uint32)(ptr) = binary.BigEndian.Uint32(b[:])
			return err
		}, guestLayout{4, 4}, nil
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [8]byte
			_, err := stream.Read(b[:])
			*(*uint64)(ptr) = binary.BigEndian.Uint64(b[:])
			return err
		}, guestLayout{8, 8}, nil
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		// guest int and pointer are 32 bits; addresses sign-extend into KSEG0
		signed := typ.Kind() != reflect.Uint
		wide := typ.Type1().Size() == 8
		return func(stream Stream, ptr unsafe.Pointer) error {
			var b [4]byte
			_, err := stream.Read(b[:])
			v := uint64(binary.BigEndian.Uint32(b[:]))
			if signed {
				v = uint64(int64(int32(v)))
			}
			if wide {
				*(*uint64)(ptr) = v
			} else {
				*(*uint32)(ptr) = uint32(v)
			}
			return err
		}, guestLayout{4, 4}, nil
	case reflect.Array:
		return decodeArray(typ.(reflect2.ArrayType))
	case reflect.Pointer:
		return decodePointer(typ.(reflect2.PtrType))
	case reflect.String:
		return decodeString()
	case reflect.Struct:
		return decodeStruct(typ.(reflect2.StructType))
	}
	return nil, guestLayout{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typ.String())
}

func decodePointer(typ reflect2.PtrType) (handler, guestLayout, error) {
	elem := typ.Elem()
	return func(stream Stream, ptr unsafe.Pointer) error {
		// resolved per call so self-referencing structs terminate
		data, err := getUnmarshalData(elem)
		if err != nil {
			return err
		}
		subStream, err := stream.ReadStream()
		if err != nil {
			return err
		} else if subStream == nil {
			*(*unsafe.Pointer)(ptr) = nil
			return nil
		}
		elemPtr := *(*unsafe.Pointer)(ptr)
		if elemPtr == nil {
			elemPtr = elem.UnsafeNew()
			*(*unsafe.Pointer)(ptr) = elemPtr
		}
		return data.handler(subStream, elemPtr)
	}, guestLayout{4, 4}, nil
}

// decodeString follows a char* and copies one byte per character.
func decodeString() (handler, guestLayout, error) {
	return func(stream Stream, ptr unsafe.Pointer) error {
		subStream, err := stream.ReadStream()
		if err != nil {
			return err
		} else if subStream == nil {
			*(*string)(ptr) = ""
			return nil
		}
		var runes []rune
		var b [1]byte
		for {
			if _, err := subStream.Read(b[:]); err != nil {
				return err
			} else if b[0] == 0 {
				break
			}
			runes = append(runes, rune(b[0]))
		}
		*(*string)(ptr) = string(runes)
		return nil
	}, guestLayout{4, 4}, nil
}
