// File: nest/loader_test.go
package nest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("JSONObject", func(t *testing.T) {
		path := writeTempFile(t, "data.json", `{"server":{"host":"localhost","port":8080}}`)
		n, err := Load(path, DefaultOptions())
		require.NoError(t, err)

		host, err := n.String("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		// JSON numbers decode as json.Number to preserve precision.
		port, err := n.Get("server.port")
		require.NoError(t, err)
		assert.Equal(t, json.Number("8080"), port)

		portInt, err := n.Int64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), portInt)
	})

	t.Run("JSONArrayRoot", func(t *testing.T) {
		path := writeTempFile(t, "list.json", `[{"name":"Peter"},{"name":"John"}]`)
		n, err := Load(path, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, 2, n.Len())
		name, err := n.Get("1.name")
		require.NoError(t, err)
		assert.Equal(t, "John", name)
	})

	t.Run("TOML", func(t *testing.T) {
		path := writeTempFile(t, "conf.toml", "[server]\nhost = \"localhost\"\nport = 8080\n")
		n, err := Load(path, DefaultOptions())
		require.NoError(t, err)

		host, err := n.Get("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		port, err := n.Int64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeTempFile(t, "conf.yaml", "server:\n  host: localhost\n  tags:\n    - a\n    - b\n")
		n, err := Load(path, DefaultOptions())
		require.NoError(t, err)

		host, err := n.Get("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		tag, err := n.Get("server.tags.1")
		require.NoError(t, err)
		assert.Equal(t, "b", tag)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"), DefaultOptions())
		assert.Error(t, err)
	})

	t.Run("ScalarRootRejected", func(t *testing.T) {
		path := writeTempFile(t, "scalar.json", `"just a string"`)
		_, err := Load(path, DefaultOptions())
		require.Error(t, err)
	})
}

func TestLoadBytes(t *testing.T) {
	t.Run("ExplicitFormat", func(t *testing.T) {
		n, err := LoadBytes([]byte(`{"a":1}`), FormatJSON, DefaultOptions())
		require.NoError(t, err)
		assert.True(t, n.Has("a"))
	})

	t.Run("AutoDetectJSON", func(t *testing.T) {
		n, err := LoadBytes([]byte(`  [1, 2, 3]`), FormatAuto, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 3, n.Len())
	})

	t.Run("AutoDetectTOML", func(t *testing.T) {
		n, err := LoadBytes([]byte("key = \"value\"\n"), FormatAuto, DefaultOptions())
		require.NoError(t, err)
		v, err := n.Get("key")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("AutoDetectYAML", func(t *testing.T) {
		n, err := LoadBytes([]byte("key: value\n"), FormatAuto, DefaultOptions())
		require.NoError(t, err)
		v, err := n.Get("key")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		_, err := LoadBytes([]byte(`{"a":`), FormatJSON, DefaultOptions())
		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	t.Run("JSONRoundTrip", func(t *testing.T) {
		data := map[string]any{"name": "test", "items": []any{"a", "b"}}
		n := MustNew(data)

		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, n.Save(path))

		reloaded, err := Load(path, DefaultOptions())
		require.NoError(t, err)
		name, err := reloaded.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "test", name)
		item, err := reloaded.Get("items.1")
		require.NoError(t, err)
		assert.Equal(t, "b", item)
	})

	t.Run("YAMLRoundTrip", func(t *testing.T) {
		n := MustNew(map[string]any{"a": map[string]any{"b": "c"}})

		path := filepath.Join(t.TempDir(), "out.yaml")
		require.NoError(t, n.Save(path))

		reloaded, err := Load(path, DefaultOptions())
		require.NoError(t, err)
		v, err := reloaded.Get("a.b")
		require.NoError(t, err)
		assert.Equal(t, "c", v)
	})

	t.Run("TOMLRequiresMappingRoot", func(t *testing.T) {
		n := MustNew([]any{1, 2, 3})
		err := n.Save(filepath.Join(t.TempDir(), "out.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mapping root")
	})

	t.Run("MutatedViewSavesLiveState", func(t *testing.T) {
		n := MustNew(map[string]any{"items": []any{"a"}})
		require.NoError(t, n.Set("items.+", "b"))

		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, n.Save(path))

		reloaded, err := Load(path, DefaultOptions())
		require.NoError(t, err)
		v, err := reloaded.Get("items.1")
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Format
	}{
		{"TOMLExt", "x.toml", "", FormatTOML},
		{"JSONExt", "x.json", "", FormatJSON},
		{"YAMLExt", "x.yaml", "", FormatYAML},
		{"YMLExt", "x.yml", "", FormatYAML},
		{"JSONContent", "", `{"a":1}`, FormatJSON},
		{"JSONArrayContent", "", `[1]`, FormatJSON},
		{"YAMLDocMarker", "", "---\na: 1", FormatYAML},
		{"YAMLColon", "", "a: 1", FormatYAML},
		{"TOMLAssign", "", "a = 1", FormatTOML},
		{"TOMLTable", "", "[table]\na = 1", FormatTOML},
		{"Empty", "", "", Format("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path != "" {
				assert.Equal(t, tt.want, detectFileFormat(tt.path))
			} else {
				assert.Equal(t, tt.want, detectFormatFromContent([]byte(tt.content)))
			}
		})
	}
}
