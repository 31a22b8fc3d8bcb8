package mapper

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/KimNorgaard/go-ini/ast"
)

// Reflect adds the fields of the struct v, or the struct v points to, to
// doc. Key fields go to the default section and section fields become
// sections, in declaration order.
func Reflect(v any, doc *ast.Document) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return fmt.Errorf("cannot reflect nil %T", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot reflect %s, expected a struct", rv.Type())
	}

	for _, f := range cachedFields(rv.Type()) {
		fv := rv.FieldByIndex(f.idx)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if !f.section {
			if err := reflectKey(doc.Section(""), f.name, fv); err != nil {
				return err
			}
			continue
		}

		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		sec := doc.Section(f.name)
		if sec == nil {
			sec = ast.NewSection(f.name)
			if err := doc.AddSection(sec); err != nil {
				return fmt.Errorf("section %q: %w", f.name, err)
			}
		}
		if err := reflectSection(sec, fv); err != nil {
			return err
		}
	}
	return nil
}

func reflectSection(sec *ast.Section, rv reflect.Value) error {
	if rv.Kind() == reflect.Map {
		iter := rv.MapRange()
		keys := make([]string, 0, rv.Len())
		values := make(map[string]string, rv.Len())
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			values[k] = iter.Value().String()
		}
		slices.Sort(keys)
		for _, k := range keys {
			if _, err := sec.Set(k, values[k]); err != nil {
				return fmt.Errorf("section %q, key %q: %w", sec.Name(), k, err)
			}
		}
		return nil
	}

	for _, f := range cachedFields(rv.Type()) {
		if f.section {
			return fmt.Errorf("section %q: field %s: nested sections are not supported", sec.Name(), f.name)
		}
		fv := rv.FieldByIndex(f.idx)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if err := reflectKey(sec, f.name, fv); err != nil {
			return err
		}
	}
	return nil
}

func reflectKey(sec *ast.Section, name string, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	p := ast.NewProperty(name, "")
	if rv.Kind() == reflect.Slice && !rv.Type().Implements(textMarshalerType) {
		items := make([]string, rv.Len())
		for i := range items {
			s, err := formatValue(rv.Index(i))
			if err != nil {
				return keyError(sec, name, err)
			}
			items[i] = s
		}
		p.SetStrings(items)
	} else {
		s, err := formatValue(rv)
		if err != nil {
			return keyError(sec, name, err)
		}
		p.Value = s
	}

	if existing := sec.Property(name); existing != nil {
		existing.Value = p.Value
		return nil
	}
	if err := sec.AddProperty(p); err != nil {
		return keyError(sec, name, err)
	}
	return nil
}

func keyError(sec *ast.Section, name string, err error) error {
	if sec.Name() == "" {
		return fmt.Errorf("key %q: %w", name, err)
	}
	return fmt.Errorf("section %q, key %q: %w", sec.Name(), name, err)
}

func formatValue(rv reflect.Value) (string, error) {
	if m, ok := rv.Interface().(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		return string(b), err
	}
	if rv.Type() == durationType {
		return rv.Interface().(fmt.Stringer).String(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}
	return "", fmt.Errorf("cannot reflect Go value of type %s", rv.Type())
}
