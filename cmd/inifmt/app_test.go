package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const sample = "a=1\n[s]\nb=2 ; note\n"

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "sample.ini")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"inifmt"}, args...))
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	return ec.ExitCode()
}

func TestFmt(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "fmt", name)
	require.NoError(t, err)
	require.Equal(t, "a = 1\n\n[s]\nb = 2 ; note\n", out)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, sample, string(data), "fmt without -w leaves the file alone")
}

func TestFmt_Diff(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "fmt", "-d", name)
	require.NoError(t, err)
	require.Contains(t, out, "--- "+name+"\n")
	require.Contains(t, out, "-a=1\n")
	require.Contains(t, out, "+a = 1\n")

	clean := writeFile(t, "a = 1\n")
	out, _, err = run(t, "fmt", "-d", clean)
	require.NoError(t, err)
	require.Empty(t, out, "no diff for formatted input")
}

func TestFmt_Write(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "fmt", "-w", name)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "a = 1\n\n[s]\nb = 2 ; note\n", string(data))
}

func TestReformat(t *testing.T) {
	src := []byte(sample)
	doc, out, changed, err := reformat(src, nil)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "a = 1\n\n[s]\nb = 2 ; note\n", string(out))
	require.Equal(t, 1, doc.Sections.Len())
	require.Equal(t, sample, string(src), "input is not modified")

	_, again, changed, err := reformat(out, nil)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, out, again)

	_, _, _, err = reformat([]byte("[broken\n"), nil)
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	name := writeFile(t, sample)
	_, _, err := run(t, "check", name)
	require.NoError(t, err)

	bad := writeFile(t, "ok = 1\n[broken\n= x\n")
	out, _, err := run(t, "check", bad)
	require.Error(t, err)
	require.Equal(t, 1, exitCode(t, err))
	require.Contains(t, out, bad+":2: ")
	require.Contains(t, out, bad+":3: ")
}

func TestGetSet(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "get", name, "S", "B")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	out, _, err = run(t, "get", name, "", "a")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	_, _, err = run(t, "get", name, "s", "missing")
	require.Equal(t, 1, exitCode(t, err))

	_, _, err = run(t, "get", name, "s")
	require.Equal(t, 2, exitCode(t, err), "wrong number of arguments")

	_, _, err = run(t, "set", "-q", name, "new", "key", "v")
	require.NoError(t, err)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "a = 1\n\n[s]\nb = 2 ; note\n[new]\nkey = \"v\"\n", string(data))
}

func TestSet_NewFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "new.ini")

	_, _, err := run(t, "set", name, "", "k", "v")
	require.NoError(t, err)

	out, _, err := run(t, "get", name, "", "k")
	require.NoError(t, err)
	require.Equal(t, "v\n", out)
}

func TestExport_JSON(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "export", name)
	require.NoError(t, err)
	require.Equal(t, `{"":{"a":"1"},"s":{"b":"2"}}`+"\n", out)

	empty := writeFile(t, "[only]\n")
	out, _, err = run(t, "export", "-f", "json", empty)
	require.NoError(t, err)
	require.Equal(t, `{"only":{}}`+"\n", out, "empty default section is left out")
}

func TestExport_YAML(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "export", "-f", "yaml", name)
	require.NoError(t, err)
	require.Contains(t, out, "# note")

	var got map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, map[string]map[string]string{
		"":  {"a": "1"},
		"s": {"b": "2"},
	}, got)

	_, _, err = run(t, "export", "-f", "xml", name)
	require.Equal(t, 2, exitCode(t, err))
}

func TestFind(t *testing.T) {
	name := writeFile(t, sample+"[s.sub]\nb=3\n")

	out, _, err := run(t, "find", name, "*")
	require.NoError(t, err)
	require.Equal(t, "a = 1\ns.b = 2\n", out)

	out, _, err = run(t, "find", name, "s.**", "B")
	require.NoError(t, err)
	require.Equal(t, "s.sub.b = 3\n", out)

	out, _, err = run(t, "find", name, "re:^s", "b")
	require.NoError(t, err)
	require.Equal(t, "s.b = 2\ns.sub.b = 3\n", out)

	_, _, err = run(t, "find", name, "re:(")
	require.Equal(t, 2, exitCode(t, err))
}

func TestStat(t *testing.T) {
	name := writeFile(t, "; head\n"+sample)

	out, _, err := run(t, "stat", name)
	require.NoError(t, err)
	require.Contains(t, out, "sections:   1\n")
	require.Contains(t, out, "properties: 2\n")
	require.Contains(t, out, "comments:   2\n")
	require.Contains(t, out, "size:       26 B\n")
}

func TestGlobalFlags(t *testing.T) {
	name := writeFile(t, "[s]\nk=1\n[S]\nk=2\n")

	out, _, err := run(t, "--duplicate-sections", "last", "get", name, "s", "k")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	_, _, err = run(t, "--duplicate-sections", "error", "get", name, "s", "k")
	require.Error(t, err)

	_, _, err = run(t, "--duplicate-keys", "bogus", "get", name, "s", "k")
	require.ErrorContains(t, err, "unknown --duplicate-keys policy")

	_, stderr, err := run(t, "-v", "get", name, "s", "k")
	require.NoError(t, err)
	require.Contains(t, stderr, "loaded file")
}
