package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "name": "demo-package",
  "version": "1.2.3",
  "description": "A demo",
  "scripts": {
    "test": "echo ok"
  },
  "dependencies": {
    "leftpad": "1.3.0"
  }
}
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadVersion(t *testing.T) {
	path := writeTemp(t, sampleManifest)
	got, err := ReadVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestReadVersionErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.json")
			},
		},
		{
			name: "invalid json",
			setup: func(t *testing.T) string {
				return writeTemp(t, `{"version": "1.2.3"`)
			},
		},
		{
			name: "missing field",
			setup: func(t *testing.T) string {
				return writeTemp(t, `{"name": "demo"}`)
			},
		},
		{
			name: "non-string field",
			setup: func(t *testing.T) string {
				return writeTemp(t, `{"version": 123}`)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadVersion(tc.setup(t))
			require.Error(t, err)
			var re *ReadError
			assert.True(t, errors.As(err, &re))
		})
	}
}

func TestWriteVersionPreservesEverythingElse(t *testing.T) {
	path := writeTemp(t, sampleManifest)
	require.NoError(t, WriteVersion(path, "1.2.4"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
  "name": "demo-package",
  "version": "1.2.4",
  "description": "A demo",
  "scripts": {
    "test": "echo ok"
  },
  "dependencies": {
    "leftpad": "1.3.0"
  }
}
`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}

	// The rewritten manifest still reads back.
	got, err := ReadVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", got)
}

// A dependency pin that looks like a version field must not be touched;
// only the top-level field is rewritten.
func TestWriteVersionSkipsNestedVersionFields(t *testing.T) {
	content := `{
  "name": "demo",
  "version": "2.0.0",
  "dependencies": {
      "version": "9.9.9"
  }
}
`
	path := writeTemp(t, content)
	require.NoError(t, WriteVersion(path, "2.1.0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "2.1.0"`)
	assert.Contains(t, string(data), `"version": "9.9.9"`)
}

func TestWriteVersionAddsTrailingNewline(t *testing.T) {
	path := writeTemp(t, `{"name": "demo",
"version": "1.0.0"}`)
	require.NoError(t, WriteVersion(path, "1.0.1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')
	assert.Contains(t, string(data), `"version": "1.0.1"`)
}

func TestWriteVersionErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := WriteVersion(filepath.Join(t.TempDir(), "nope.json"), "1.0.0")
		require.Error(t, err)
		var we *WriteError
		assert.True(t, errors.As(err, &we))
	})

	t.Run("no version field", func(t *testing.T) {
		path := writeTemp(t, `{"name": "demo"}`)
		err := WriteVersion(path, "1.0.0")
		require.Error(t, err)
		var we *WriteError
		assert.True(t, errors.As(err, &we))
	})
}
