package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ValidateFilePath("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("rejects shell characters", func(t *testing.T) {
		for _, char := range forbiddenChars {
			_, err := ValidateFilePath("/tmp/backup" + string(char) + ".json")
			assert.ErrorIs(t, err, ErrForbiddenChars, "expected error for %q", char)
		}
	})

	t.Run("accepts existing absolute path", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "backup.json")
		require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

		got, err := ValidateFilePath(file)
		require.NoError(t, err)

		// /var may be a symlink, compare resolved paths
		want, _ := filepath.EvalSymlinks(file)
		assert.Equal(t, want, got)
	})

	t.Run("makes relative path absolute", func(t *testing.T) {
		got, err := ValidateFilePath("backup.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("cleans dot segments", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ValidateFilePath(filepath.Join(dir, "a", "..", "new.json"))
		require.NoError(t, err)
		assert.Equal(t, "new.json", filepath.Base(got))
		assert.NotContains(t, got, "..")
	})

	t.Run("resolves symlinks", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real.json")
		require.NoError(t, os.WriteFile(real, []byte("{}"), 0o600))
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.Symlink(real, link))

		got, err := ValidateFilePath(link)
		require.NoError(t, err)

		want, _ := filepath.EvalSymlinks(real)
		assert.Equal(t, want, got)
	})
}

func TestSafeOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tasks":[]}`), 0o600))

	f, err := SafeOpen(file)
	require.NoError(t, err)
	defer f.Close()

	_, err = SafeOpen(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = SafeOpen("backup.json; rm -rf /")
	assert.ErrorIs(t, err, ErrForbiddenChars)
}

func TestSafeCreate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.csv")

	f, err := SafeCreate(file)
	require.NoError(t, err)
	_, err = f.WriteString("id,title\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "id,title\n", string(data))

	_, err = SafeCreate("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}
