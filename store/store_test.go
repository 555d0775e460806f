package store_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/kalla/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFileStore_IsPattern(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	assert.True(t, fileStore.IsPattern("config/*/"))
	assert.True(t, fileStore.IsPattern("config/*/app.yaml"))
	assert.False(t, fileStore.IsPattern("config/app.yaml"))
	assert.False(t, fileStore.IsPattern(""))
}

func TestFileStore_Resource_Existing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	writeFile(t, path, "a: 1\n")

	fileStore := store.NewFileStore()

	resource, err := fileStore.Resource(path)

	require.NoError(t, err)
	assert.True(t, resource.Exists())
	assert.False(t, resource.IsDir())
	assert.Equal(t, path, resource.Name())

	reader, err := resource.Open()
	require.NoError(t, err)

	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(content))
}

func TestFileStore_Resource_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore := store.NewFileStore()

	resource, err := fileStore.Resource(filepath.Join(dir, "missing.yaml"))

	require.NoError(t, err)
	assert.False(t, resource.Exists())
}

func TestFileStore_Resource_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore := store.NewFileStore()

	resource, err := fileStore.Resource(dir + "/")

	require.NoError(t, err)
	assert.True(t, resource.Exists())
	assert.True(t, resource.IsDir())
}

func TestFileStore_Resource_FileScheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	writeFile(t, path, "a: 1\n")

	fileStore := store.NewFileStore()

	resource, err := fileStore.Resource("file:" + path)

	require.NoError(t, err)
	assert.True(t, resource.Exists())
	assert.Equal(t, path, resource.Name())
}

func TestFileStore_Resource_UnsupportedScheme(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	_, err := fileStore.Resource("classpath:config/app.yaml")

	require.ErrorIs(t, err, store.ErrUnsupportedScheme)
}

func TestFileStore_Resource_RejectsPattern(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	_, err := fileStore.Resource("config/*/app.yaml")

	require.Error(t, err)
}

func TestFileStore_Resources_FileKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "app.yaml"), "a: b\n")
	writeFile(t, filepath.Join(dir, "a", "app.yaml"), "a: a\n")
	writeFile(t, filepath.Join(dir, "a", "other.yaml"), "ignored\n")
	writeFile(t, filepath.Join(dir, "loose.yaml"), "not in a subdirectory\n")

	fileStore := store.NewFileStore()

	resources, err := fileStore.Resources(dir+"/*/app.yaml", store.KindFile)

	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, filepath.Join(dir, "a", "app.yaml"), resources[0].Name(), "subdirectories visit in sorted order")
	assert.Equal(t, filepath.Join(dir, "b", "app.yaml"), resources[1].Name())
}

func TestFileStore_Resources_DirectoryKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "two"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "one"), 0o750))
	writeFile(t, filepath.Join(dir, "file.txt"), "not a directory\n")

	fileStore := store.NewFileStore()

	resources, err := fileStore.Resources(dir+"/*/", store.KindDirectory)

	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, filepath.Join(dir, "one"), resources[0].Name())
	assert.Equal(t, filepath.Join(dir, "two"), resources[1].Name())
	assert.True(t, resources[0].IsDir())
}

func TestFileStore_Resources_MissingRootIsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore := store.NewFileStore()

	resources, err := fileStore.Resources(dir+"/nope/*/app.yaml", store.KindFile)

	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestFileStore_Resources_MultipleWildcards(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	_, err := fileStore.Resources("config/*/*/app.yaml", store.KindFile)

	require.ErrorIs(t, err, store.ErrMultipleWildcards)
}

func TestFileStore_Resources_WildcardMustBeDirectorySegment(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	_, err := fileStore.Resources("config/*.yaml", store.KindFile)
	require.ErrorIs(t, err, store.ErrInvalidPattern)

	_, err = fileStore.Resources("config/*", store.KindDirectory)
	require.ErrorIs(t, err, store.ErrInvalidPattern)
}

func TestFileStore_Resources_NotAPattern(t *testing.T) {
	t.Parallel()

	fileStore := store.NewFileStore()

	_, err := fileStore.Resources("config/app.yaml", store.KindFile)

	require.ErrorIs(t, err, store.ErrNotPattern)
}
