package encoding

import (
	"iter"
	"unsafe"

	"github.com/modern-go/reflect2"

	"github.com/wnxd/mipsrecomp/rdram"
)

type structData struct {
	handler handler
	offset  uintptr
	pad     int
}

func decodeStruct(typ reflect2.StructType) (handler, guestLayout, error) {
	fields, layout, err := structFields(typ, getUnmarshalData)
	if err != nil {
		return nil, guestLayout{}, err
	}
	tail := layout.size - fieldsEnd(fields)
	return func(stream Stream, ptr unsafe.Pointer) error {
		for _, data := range fields {
			if data.pad > 0 {
				if err := stream.Skip(data.pad); err != nil {
					return err
				}
			}
			if err := data.handler(stream, unsafe.Add(ptr, data.offset)); err != nil {
				return err
			}
		}
		if tail > 0 {
			return stream.Skip(tail)
		}
		return nil
	}, layout, nil
}

// structFields places every field at its natural guest alignment.
func structFields(typ reflect2.StructType, lookup func(reflect2.Type) (*handlerData, error)) ([]*fieldData, guestLayout, error) {
	fields := make([]*fieldData, 0, typ.NumField())
	var offset int
	maxAlign := 1
	for field := range rangeField(typ) {
		if field.Tag().Get("encoding") == "ignore" {
			continue
		}
		data, err := lookup(field.Type())
		if err != nil {
			return nil, guestLayout{}, err
		}
		pad := data.layout.pad(offset)
		offset += pad
		fields = append(fields, &fieldData{
			structData: structData{data.handler, field.Offset(), pad},
			guestOff:   offset,
			guestSize:  data.layout.size,
		})
		offset += data.layout.size
		maxAlign = max(maxAlign, data.layout.align)
	}
	return fields, guestLayout{rdram.Align(offset, maxAlign), maxAlign}, nil
}

type fieldData struct {
	structData
	guestOff  int
	guestSize int
}

func fieldsEnd(fields []*fieldData) int {
	if len(fields) == 0 {
		return 0
	}
	last := fields[len(fields)-1]
	return last.guestOff + last.guestSize
}

func rangeField(typ reflect2.StructType) iter.Seq[reflect2.StructField] {
	return func(yield func(reflect2.StructField) bool) {
		count := typ.NumField()
		for i := 0; i < count; i++ {
			if !yield(typ.Field(i)) {
				break
			}
		}
	}
}
