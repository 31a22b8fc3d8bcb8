package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ini/ast"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		match   bool
	}{
		{"db", "DB", true},
		{"db.*", "db.primary", true},
		{"db.*", "db.eu.west", false},
		{"db.**", "db.eu.west", true},
		{"glob:Server?", "server1", true},
		{"glob:{a,b}", "B", true},
		{"glob:{a,b}", "c", false},
		{"re:^db\\.", "DB.x", true},
		{"re:^db$", "db2", false},
		{"*", "", true},
		{"?*", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.NoError(t, err)
			require.Equal(t, tt.match, m.Match(tt.name))
			require.Equal(t, tt.pattern, m.String())
		})
	}
}

func TestCompile_Cache(t *testing.T) {
	a, err := Compile("cache.*")
	require.NoError(t, err)
	b, err := Compile("cache.*")
	require.NoError(t, err)
	require.Same(t, a, b)

	_, err = Compile("re:(")
	require.ErrorContains(t, err, "invalid pattern")
	_, err2 := Compile("re:(")
	require.Equal(t, err, err2, "compile errors are cached too")

	_, err = Compile("glob:[")
	require.Error(t, err)
}

func testDocument(t *testing.T) *ast.Document {
	t.Helper()
	doc := ast.NewDocument(ast.DefaultConfig())
	for _, kv := range [][3]string{
		{"", "name", "demo"},
		{"db.primary", "host", "a"},
		{"db.primary", "port", "1"},
		{"db.replica", "host", "b"},
		{"cache", "host", "c"},
	} {
		_, err := doc.Set(kv[0], kv[1], kv[2])
		require.NoError(t, err)
	}
	return doc
}

func TestSections(t *testing.T) {
	doc := testDocument(t)
	secs, err := Sections(doc, "db.*")
	require.NoError(t, err)
	require.Len(t, secs, 2)
	require.Equal(t, "db.primary", secs[0].Name())
	require.Equal(t, "db.replica", secs[1].Name())

	_, err = Sections(doc, "re:[")
	require.Error(t, err)
}

func TestProperties(t *testing.T) {
	doc := testDocument(t)
	props, err := Properties(doc.Section("db.primary"), "re:^(host|port)$")
	require.NoError(t, err)
	require.Len(t, props, 2)
}

func TestFind(t *testing.T) {
	doc := testDocument(t)

	matches, err := Find(doc, "**", "host")
	require.NoError(t, err)
	var got []string
	for _, m := range matches {
		got = append(got, m.Section.Name()+"/"+m.Property.Value)
	}
	require.Equal(t, []string{"db.primary/a", "db.replica/b", "cache/c"}, got)

	matches, err = Find(doc, "re:^$", "*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "name", matches[0].Property.Name())

	_, err = Find(doc, "*", "re:(")
	require.Error(t, err)
}
