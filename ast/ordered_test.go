package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ini/errors"
)

func TestOrdered(t *testing.T) {
	var l PropertyList
	require.Zero(t, l.Len())
	require.Equal(t, -1, l.Index("x"))
	require.Empty(t, l.Names())
	_, ok := l.Get("x")
	require.False(t, ok)

	require.NoError(t, l.Add(NewProperty("One", "1")))
	require.NoError(t, l.Add(NewProperty("two", "2")))
	require.NoError(t, l.Insert(0, NewProperty("zero", "0")))
	require.ErrorIs(t, l.Insert(-1, NewProperty("neg", "")), errors.ErrOutOfRange)
	require.ErrorIs(t, l.Add(NewProperty("", "")), errors.ErrInvalidOption)
	require.ErrorIs(t, l.Add(NewProperty("ONE", "")), errors.ErrDuplicateName)

	require.Equal(t, []string{"zero", "One", "two"}, l.Names())
	require.Equal(t, 1, l.Index("one"))
	require.Equal(t, "two", l.At(2).Name())

	var seen []string
	for i, p := range l.All() {
		require.Same(t, l.At(i), p)
		seen = append(seen, p.Value)
		if i == 1 {
			break
		}
	}
	require.Equal(t, []string{"0", "1"}, seen)

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, l.Rename("one", "ONE"), "case-only rename")
		require.Equal(t, "ONE", l.At(1).Name())
		require.ErrorIs(t, l.Rename("one", "Two"), errors.ErrDuplicateName)
		require.ErrorIs(t, l.Rename("one", ""), errors.ErrInvalidOption)
		require.Error(t, l.Rename("missing", "x"))

		require.NoError(t, l.Rename("one", "uno"))
		require.False(t, l.Has("one"))
		require.True(t, l.Has("UNO"))
		require.Equal(t, 1, l.Index("uno"))
	})

	t.Run("remove", func(t *testing.T) {
		p, ok := l.Remove("ZERO")
		require.True(t, ok)
		require.Equal(t, "zero", p.Name())
		_, ok = l.Remove("zero")
		require.False(t, ok)
		require.Equal(t, []string{"uno", "two"}, l.Names())
		require.Equal(t, 1, l.Index("two"))

		_, err := l.RemoveAt(2)
		require.ErrorIs(t, err, errors.ErrOutOfRange)
	})

	t.Run("clear", func(t *testing.T) {
		l.Clear()
		require.Zero(t, l.Len())
		require.False(t, l.Has("two"))
		require.NoError(t, l.Add(NewProperty("two", "again")))
	})
}

// The index and the sequence must agree after any sequence of operations.
func TestOrdered_Consistency(t *testing.T) {
	var l SectionList
	names := []string{"a", "B", "c", "D", "e"}
	for _, n := range names {
		require.NoError(t, l.Add(NewSection(n)))
	}
	require.True(t, l.Has("b"))
	_, err := l.RemoveAt(1)
	require.NoError(t, err)
	require.NoError(t, l.Insert(3, NewSection("b2")))
	require.NoError(t, l.Rename("d", "delta"))
	_, ok := l.Remove("a")
	require.True(t, ok)

	require.Equal(t, []string{"c", "delta", "b2", "e"}, l.Names())
	for i, s := range l.All() {
		got, ok := l.Get(s.Name())
		require.True(t, ok)
		require.Same(t, s, got)
		require.Equal(t, i, l.Index(s.Name()))
	}
	require.False(t, l.Has("b"))
	require.False(t, l.Has("d"))
}
