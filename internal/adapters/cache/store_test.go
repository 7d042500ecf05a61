package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/cache"
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *domain.NameIndex {
	idx := domain.NewNameIndex()
	idx.Add("foo", "/s1/foo")
	idx.Add("bar", "/s1/bar")
	return idx
}

func TestStore_StoreAndLoad(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	search := domain.NewSearchConfig("/s1", "/s2")

	require.NoError(t, store.Store(domain.KindStack, search, sampleIndex()))

	got, err := store.Load(domain.KindStack, search)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"foo", "bar"}, got.Names())

	p, ok := got.Lookup("bar")
	require.True(t, ok)
	assert.Equal(t, "/s1/bar", p)
}

func TestStore_Load_Missing(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(filepath.Join(t.TempDir(), "does", "not", "exist"))

	got, err := store.Load(domain.KindStack, domain.NewSearchConfig("/s1"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_OtherSearchConfig(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	require.NoError(t, store.Store(domain.KindStack, domain.NewSearchConfig("/s1", "/s2"), sampleIndex()))

	got, err := store.Load(domain.KindStack, domain.NewSearchConfig("/s2", "/s1"))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Load(domain.KindPackage, domain.NewSearchConfig("/s1", "/s2"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_RecordedPathsMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cache.NewStore(dir)
	search := domain.NewSearchConfig("/s1")

	// Same file name, different recorded search paths.
	content := "kind: stack\nsearch_paths:\n  - /elsewhere\nentries:\n  - name: foo\n    path: /elsewhere/foo\n"
	require.NoError(t, os.WriteFile(store.Path(domain.KindStack, search), []byte(content), 0o600))

	got, err := store.Load(domain.KindStack, search)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_Corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "kind: [stack\n"},
		{name: "entry without path", content: "kind: stack\nsearch_paths:\n  - /s1\nentries:\n  - name: foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := cache.NewStore(t.TempDir())
			search := domain.NewSearchConfig("/s1")
			require.NoError(t, os.WriteFile(store.Path(domain.KindStack, search), []byte(tt.content), 0o600))

			got, err := store.Load(domain.KindStack, search)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCacheCorrupt))
			assert.Nil(t, got)
		})
	}
}

func TestStore_Store_Overwrites(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	search := domain.NewSearchConfig("/s1")
	require.NoError(t, store.Store(domain.KindStack, search, sampleIndex()))

	replacement := domain.NewNameIndex()
	replacement.Add("baz", "/s1/baz")
	require.NoError(t, store.Store(domain.KindStack, search, replacement))

	got, err := store.Load(domain.KindStack, search)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"baz"}, got.Names())
}

func TestStore_Store_HumanReadable(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(t.TempDir())
	search := domain.NewSearchConfig("/s1", "/s2")
	require.NoError(t, store.Store(domain.KindPackage, search, sampleIndex()))

	path := store.Path(domain.KindPackage, search)
	assert.True(t, strings.HasPrefix(filepath.Base(path), domain.RospackCacheName+"-"))

	//nolint:gosec // Test file with controlled path
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "kind: package")
	assert.Contains(t, text, "- /s1\n")
	assert.Contains(t, text, "- /s2\n")
	assert.Contains(t, text, "name: foo")
	assert.Contains(t, text, "path: /s1/foo")
}

func TestStore_Store_UnwritableDir(t *testing.T) {
	t.Parallel()

	// A regular file where the cache directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	store := cache.NewStore(blocker)
	err := store.Store(domain.KindStack, domain.NewSearchConfig("/s1"), sampleIndex())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheCreateFailed))
}

func TestStore_Store_UnwritableTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cache.NewStore(dir)
	search := domain.NewSearchConfig("/s1")
	// A non-empty directory at the cache path cannot be replaced by rename.
	target := store.Path(domain.KindStack, search)
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o750))

	err := store.Store(domain.KindStack, search, sampleIndex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheWriteFailed))
}

func TestStore_Load_Unreadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cache.NewStore(dir)
	search := domain.NewSearchConfig("/s1")
	// A directory at the cache path exists but cannot be read as a file.
	require.NoError(t, os.Mkdir(store.Path(domain.KindStack, search), 0o750))

	_, err := store.Load(domain.KindStack, search)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheReadFailed))
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cache.NewStore(dir)
	search := domain.NewSearchConfig("/s1")
	require.NoError(t, store.Store(domain.KindStack, search, sampleIndex()))
	require.NoError(t, store.Store(domain.KindPackage, search, sampleIndex()))

	unrelated := filepath.Join(dir, "rosdep.yaml")
	require.NoError(t, os.WriteFile(unrelated, []byte("x"), 0o600))

	require.NoError(t, store.Clear())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rosdep.yaml", entries[0].Name())

	got, err := store.Load(domain.KindStack, search)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Clear_MissingDir(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, store.Clear())
}
