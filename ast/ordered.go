package ast

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-ini/errors"
)

// named is implemented by the elements of an ordered container.
type named interface {
	comparable
	key() string
	setKey(string)
}

// ordered keeps a sequence and a case-insensitive name index in step. Every
// mutation goes through one of its methods, so the index always points at an
// element that is present in the sequence.
type ordered[T named] struct {
	items []T
	index map[string]T
}

func fold(name string) string { return strings.ToLower(name) }

// Len returns the number of elements.
func (o *ordered[T]) Len() int { return len(o.items) }

// At returns the element at position i. It panics if i is out of range.
func (o *ordered[T]) At(i int) T { return o.items[i] }

// Get returns the element with the given name, compared case-insensitively.
func (o *ordered[T]) Get(name string) (T, bool) {
	v, ok := o.index[fold(name)]
	return v, ok
}

// Has reports whether an element with the given name exists.
func (o *ordered[T]) Has(name string) bool {
	_, ok := o.index[fold(name)]
	return ok
}

// Index returns the position of the named element, or -1.
func (o *ordered[T]) Index(name string) int {
	v, ok := o.index[fold(name)]
	if !ok {
		return -1
	}
	return slices.Index(o.items, v)
}

// All iterates over the elements in order.
func (o *ordered[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range o.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Names returns the element names in order, with their original casing.
func (o *ordered[T]) Names() []string {
	names := make([]string, len(o.items))
	for i, v := range o.items {
		names[i] = v.key()
	}
	return names
}

// Add appends v. It fails if an element with the same name exists.
func (o *ordered[T]) Add(v T) error {
	return o.Insert(len(o.items), v)
}

// Insert places v at position i, shifting later elements.
func (o *ordered[T]) Insert(i int, v T) error {
	if i < 0 || i > len(o.items) {
		return fmt.Errorf("%w: insert at %d, length %d", errors.ErrOutOfRange, i, len(o.items))
	}
	if v.key() == "" {
		return fmt.Errorf("%w: name is empty", errors.ErrInvalidOption)
	}
	k := fold(v.key())
	if _, ok := o.index[k]; ok {
		return fmt.Errorf("%w: %q", errors.ErrDuplicateName, v.key())
	}
	if o.index == nil {
		o.index = make(map[string]T)
	}
	o.items = slices.Insert(o.items, i, v)
	o.index[k] = v
	return nil
}

// Remove deletes the named element and returns it.
func (o *ordered[T]) Remove(name string) (T, bool) {
	i := o.Index(name)
	if i < 0 {
		var zero T
		return zero, false
	}
	return o.removeAt(i), true
}

// RemoveAt deletes the element at position i and returns it.
func (o *ordered[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(o.items) {
		var zero T
		return zero, fmt.Errorf("%w: remove at %d, length %d", errors.ErrOutOfRange, i, len(o.items))
	}
	return o.removeAt(i), nil
}

func (o *ordered[T]) removeAt(i int) T {
	v := o.items[i]
	o.items = slices.Delete(o.items, i, i+1)
	delete(o.index, fold(v.key()))
	return v
}

// Rename changes the name of an element. Changing only the casing of a name
// is allowed; taking the name of another element is not.
func (o *ordered[T]) Rename(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: name is empty", errors.ErrInvalidOption)
	}
	v, ok := o.Get(oldName)
	if !ok {
		return fmt.Errorf("%q not found", oldName)
	}
	if other, taken := o.Get(newName); taken && other != v {
		return fmt.Errorf("%w: %q", errors.ErrDuplicateName, newName)
	}
	delete(o.index, fold(v.key()))
	v.setKey(newName)
	o.index[fold(newName)] = v
	return nil
}

// Clear removes every element.
func (o *ordered[T]) Clear() {
	o.items = nil
	o.index = nil
}

func (o *ordered[T]) clone(cp func(T) T) ordered[T] {
	var c ordered[T]
	if len(o.items) == 0 {
		return c
	}
	c.items = make([]T, len(o.items))
	c.index = make(map[string]T, len(o.items))
	for i, v := range o.items {
		n := cp(v)
		c.items[i] = n
		c.index[fold(n.key())] = n
	}
	return c
}

// SectionList is the ordered, name-indexed set of named sections of a Document.
type SectionList struct {
	ordered[*Section]
}

// PropertyList is the ordered, name-indexed set of properties of a Section.
type PropertyList struct {
	ordered[*Property]
}
