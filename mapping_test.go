package ini_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ini "github.com/KimNorgaard/go-ini"
)

type appConfig struct {
	Name     string `ini:"name"`
	Debug    bool   `ini:"debug"`
	Database struct {
		Host    string        `ini:"host"`
		Port    int           `ini:"port"`
		Timeout time.Duration `ini:"timeout,omitempty"`
		Replica []string      `ini:"replicas,omitempty"`
	} `ini:"database"`
	Labels map[string]string `ini:"labels,omitempty"`
}

func TestUnmarshal(t *testing.T) {
	data := []byte(`name = demo
debug = on

[Database]
host = "db.local" ; primary
port = 5432
timeout = 3s
replicas = {r1, "r2,eu"}

[labels]
team = core
`)
	var cfg appConfig
	require.NoError(t, ini.Unmarshal(data, &cfg))

	require.Equal(t, "demo", cfg.Name)
	require.True(t, cfg.Debug)
	require.Equal(t, "db.local", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 3*time.Second, cfg.Database.Timeout)
	require.Equal(t, []string{"r1", "r2,eu"}, cfg.Database.Replica)
	require.Equal(t, map[string]string{"team": "core"}, cfg.Labels)
}

func TestUnmarshal_Errors(t *testing.T) {
	var cfg appConfig
	err := ini.Unmarshal([]byte("[database]\nport = many\n"), &cfg)
	require.ErrorContains(t, err, `section "database", key "port"`)

	err = ini.Unmarshal([]byte("[broken"), &cfg)
	var pe *ini.ParseError
	require.ErrorAs(t, err, &pe)

	require.ErrorIs(t, ini.MapTo(nil, &cfg), ini.ErrNilDocument)
	require.Error(t, ini.Unmarshal([]byte("k=v"), cfg), "non-pointer target")
}

func TestMarshalStruct(t *testing.T) {
	var cfg appConfig
	cfg.Name = "demo"
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 5432
	cfg.Database.Replica = []string{"a", "b c"}

	out, err := ini.MarshalStruct(&cfg)
	require.NoError(t, err)
	require.Equal(t, `name = demo
debug = false

[database]
host = db.local
port = 5432
replicas = {a, b c}
`, string(out))

	var back appConfig
	require.NoError(t, ini.Unmarshal(out, &back))
	require.Equal(t, cfg, back)
}

func TestDecodeInto(t *testing.T) {
	var cfg appConfig
	err := ini.NewDecoder(strings.NewReader("[database]\nhost = h\n")).DecodeInto(&cfg)
	require.NoError(t, err)
	require.Equal(t, "h", cfg.Database.Host)
}
