package envutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// unset clears key for the duration of the test and restores it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "dotenv", file: ".env", content: "# comment\nARFLOW_A=1\nexport ARFLOW_B=\"two\"\n"},
		{name: "json", file: "vars.json", content: `{"env": {"ARFLOW_A": "1", "ARFLOW_B": "two"}}`},
		{name: "yaml", file: "vars.YAML", content: "env:\n  ARFLOW_A: \"1\"\n  ARFLOW_B: two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vars, err := LoadEnvFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"ARFLOW_A": "1", "ARFLOW_B": "two"}, vars)
		})
	}
}

func TestLoadEnvFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadEnvFile(writeFile(t, "vars.toml", "a = 1"))
	require.ErrorIs(t, err, ErrUnknownFileType)

	_, err = LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadEnvFile(writeFile(t, "bad.json", "{"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) { //nolint:paralleltest // mutates the process environment
	unset(t, "ARFLOW_APPLY_NEW")
	unset(t, "ARFLOW_APPLY_SHARED")
	t.Setenv("ARFLOW_APPLY_EXISTING", "kept")

	first := writeFile(t, ".env", "ARFLOW_APPLY_NEW=1\nARFLOW_APPLY_SHARED=first\nARFLOW_APPLY_EXISTING=file\n")
	second := writeFile(t, "more.yaml", "env:\n  ARFLOW_APPLY_SHARED: second\n")

	require.NoError(t, Apply(false, first, second))

	assert.Equal(t, "1", os.Getenv("ARFLOW_APPLY_NEW"))
	assert.Equal(t, "second", os.Getenv("ARFLOW_APPLY_SHARED"))
	assert.Equal(t, "kept", os.Getenv("ARFLOW_APPLY_EXISTING"))

	require.NoError(t, Apply(true, first))
	assert.Equal(t, "file", os.Getenv("ARFLOW_APPLY_EXISTING"))
}

func TestApplyMissingFile(t *testing.T) {
	t.Parallel()

	err := Apply(false, filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorContains(t, err, "nope.env")
}
