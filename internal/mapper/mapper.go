// Package mapper copies values between an INI document and tagged Go
// structs.
package mapper

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-ini/ast"
)

// Map populates the struct pointed to by v from doc.
func Map(doc *ast.Document, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("cannot map into non-pointer %T or nil", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot map into %s, expected a struct", rv.Type())
	}

	for _, f := range cachedFields(rv.Type()) {
		fv := rv.FieldByIndex(f.idx)
		if f.section {
			sec := doc.Section(f.name)
			if sec == nil {
				continue
			}
			if err := mapSection(sec, fv); err != nil {
				return err
			}
			continue
		}
		if p := doc.Section("").Property(f.name); p != nil {
			if err := mapProperty("", p, fv); err != nil {
				return err
			}
		}
	}
	return nil
}

func mapSection(sec *ast.Section, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Map {
		if rv.IsNil() {
			rv.Set(reflect.MakeMapWithSize(rv.Type(), sec.Properties.Len()))
		}
		for _, p := range sec.Properties.All() {
			rv.SetMapIndex(reflect.ValueOf(p.Name()).Convert(rv.Type().Key()), reflect.ValueOf(p.Value).Convert(rv.Type().Elem()))
		}
		return nil
	}

	for _, f := range cachedFields(rv.Type()) {
		if f.section {
			return fmt.Errorf("section %q: field %s: nested sections are not supported", sec.Name(), f.name)
		}
		if p := sec.Property(f.name); p != nil {
			if err := mapProperty(sec.Name(), p, rv.FieldByIndex(f.idx)); err != nil {
				return err
			}
		}
	}
	return nil
}

func mapProperty(section string, p *ast.Property, rv reflect.Value) error {
	if err := setValue(p, rv); err != nil {
		if section == "" {
			return fmt.Errorf("key %q: %w", p.Name(), err)
		}
		return fmt.Errorf("section %q, key %q: %w", section, p.Name(), err)
	}
	return nil
}

// setValue converts the value of p into rv using the typed accessors of
// ast.Property.
func setValue(p *ast.Property, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return setValue(p, rv.Elem())
	}
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(p.Value))
		}
	}

	if rv.Type() == durationType {
		d, err := p.Duration()
		if err != nil {
			return err
		}
		rv.SetInt(int64(d))
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(p.Value)
	case reflect.Bool:
		b, err := p.Bool()
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := p.Int64()
		if err != nil {
			return err
		}
		if rv.OverflowInt(n) {
			return fmt.Errorf("value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(strings.TrimSpace(p.Value), 0, 64)
		if err != nil {
			return fmt.Errorf("cannot use %q as %s", p.Value, rv.Type())
		}
		if rv.OverflowUint(n) {
			return fmt.Errorf("value %d overflows Go value of type %s", n, rv.Type())
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := p.Float64()
		if err != nil {
			return err
		}
		if rv.OverflowFloat(f) {
			return fmt.Errorf("value %g overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
	case reflect.Slice:
		items, err := p.Strings()
		if err != nil {
			return err
		}
		s := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			if err := setValue(ast.NewProperty(p.Name(), item), s.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(s)
	default:
		return fmt.Errorf("cannot map into Go value of type %s", rv.Type())
	}
	return nil
}
