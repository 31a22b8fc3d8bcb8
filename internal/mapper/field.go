package mapper

import (
	"encoding"
	"reflect"
	"strings"
	"sync"
	"time"
)

// field is a cached struct field.
type field struct {
	name      string
	idx       []int
	omitEmpty bool
	section   bool
}

var (
	fieldCache sync.Map // map[reflect.Type][]field

	durationType        = reflect.TypeFor[time.Duration]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
)

// cachedFields returns the mappable fields of the struct type t in
// declaration order. Unexported and embedded fields and fields tagged
// `ini:"-"` are skipped.
func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}

	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("ini")
		if tag == "-" {
			continue
		}

		f := field{idx: sf.Index, section: isSection(sf.Type)}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		} else {
			f.name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if strings.TrimSpace(opt) == "omitempty" {
				f.omitEmpty = true
			}
		}
		fields = append(fields, f)
	}

	fieldCache.Store(t, fields)
	return fields
}

// isSection reports whether a field of type t maps to a whole section
// rather than a single key.
func isSection(t reflect.Type) bool {
	if isText(t) {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		if isText(t) {
			return false
		}
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String && t.Elem().Kind() == reflect.String
	}
	return false
}

func isText(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(textUnmarshalerType) || t.Implements(textMarshalerType)
}

// isEmptyValue reports whether v is the zero value for the purposes of
// omitempty: false, 0, a nil pointer, a nil interface value, and any empty
// array, slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
