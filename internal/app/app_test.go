package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/cache"
	"github.com/alessandro-aglietti/rospkg/internal/adapters/fs"
	"github.com/alessandro-aglietti/rospkg/internal/adapters/manifest"
	"github.com/alessandro-aglietti/rospkg/internal/app"
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports/mocks"
	"github.com/alessandro-aglietti/rospkg/internal/engine/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// writeTree creates files (relative path -> content) under a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func sampleTree(t *testing.T) string {
	t.Helper()
	return writeTree(t, map[string]string{
		"core/stack.xml":                  "<stack><version>1.2.0</version></stack>",
		"core/roslib/manifest.xml":        "<package/>",
		"core/rosbuild/manifest.xml":      `<package><depend package="roslib"/></package>`,
		"comm/stack.xml":                  `<stack><depend stack="core"/></stack>`,
		"comm/CMakeLists.txt":             "rosbuild_make_distribution(0.9.1)\n",
		"comm/nested/roscpp/manifest.xml": `<package><depend package="rosbuild"/></package>`,
		"loose/standalone/manifest.xml":   "<package/>",
	})
}

func newApp(t *testing.T, root string, store ports.IndexCache, log ports.Logger) *app.App {
	t.Helper()
	factory := registry.NewFactory(fs.NewCrawler(fs.DefaultIgnores), store, manifest.NewReader(), log)
	return app.New(root, "", factory, store, log)
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestApp_Queries(t *testing.T) {
	t.Parallel()

	root := sampleTree(t)
	a := newApp(t, root, cache.NewStore(t.TempDir()), quietLogger(t))

	assert.Equal(t, []string{"comm", "core"}, a.List(domain.KindStack))
	assert.Equal(t, []string{"roscpp", "rosbuild", "roslib", "standalone"}, a.List(domain.KindPackage))

	path, err := a.Find(domain.KindPackage, "roscpp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "comm", "nested", "roscpp"), path)

	deps, err := a.Depends(domain.KindPackage, "roscpp")
	require.NoError(t, err)
	assert.Equal(t, []string{"rosbuild", "roslib"}, deps)

	deps, err = a.DirectDepends(domain.KindStack, "comm")
	require.NoError(t, err)
	assert.Equal(t, []string{"core"}, deps)

	version, ok, err := a.Version("comm")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0.9.1", version)

	contents, err := a.Contents("core")
	require.NoError(t, err)
	assert.Equal(t, []string{"rosbuild", "roslib"}, contents)
}

func TestApp_StackOf(t *testing.T) {
	t.Parallel()

	a := newApp(t, sampleTree(t), cache.NewStore(t.TempDir()), quietLogger(t))

	stack, ok, err := a.StackOf("roscpp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "comm", stack)

	_, ok, err = a.StackOf("standalone")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = a.StackOf("fake")
	assert.True(t, errors.Is(err, domain.ErrResourceNotFound))
}

func TestApp_StackOf_StopsAtSearchPath(t *testing.T) {
	t.Parallel()

	outer := writeTree(t, map[string]string{
		"stack.xml":                        "<stack/>",
		"ws/loose/standalone/manifest.xml": "<package/>",
		"ws/tools/stack.xml":               "<stack/>",
		"ws/tools/rosbag/manifest.xml":     "<package/>",
	})
	a := newApp(t, filepath.Join(outer, "ws"), cache.NewStore(t.TempDir()), quietLogger(t))

	_, ok, err := a.StackOf("standalone")
	require.NoError(t, err)
	assert.False(t, ok)

	stack, ok, err := a.StackOf("rosbag")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tools", stack)
}

func TestApp_StackOf_StackAtSearchPath(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"stack.xml":            "<stack/>",
		"sub/pkg/manifest.xml": "<package/>",
	})
	a := newApp(t, root, cache.NewStore(t.TempDir()), quietLogger(t))

	stack, ok, err := a.StackOf("pkg")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Base(root), stack)
}

func TestApp_Expand(t *testing.T) {
	t.Parallel()

	a := newApp(t, sampleTree(t), cache.NewStore(t.TempDir()), quietLogger(t))

	resolved, unresolved, err := a.Expand([]string{"core", "roscpp", "nope", "roslib"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rosbuild", "roslib", "roscpp"}, resolved)
	assert.Equal(t, []string{"nope"}, unresolved)
}

func TestApp_SearchOverrides(t *testing.T) {
	t.Parallel()

	first := writeTree(t, map[string]string{"foo/stack.xml": "<stack/>"})
	second := writeTree(t, map[string]string{
		"foo/stack.xml": "<stack/>",
		"bar/stack.xml": "<stack/>",
	})

	a := newApp(t, first, cache.NewStore(t.TempDir()), quietLogger(t))
	assert.Equal(t, []string{"foo"}, a.List(domain.KindStack))

	a.SetPackagePath(second)
	assert.Equal(t, []string{first, second}, a.Search().Paths())
	assert.Equal(t, []string{"foo", "bar"}, a.List(domain.KindStack))

	path, err := a.Find(domain.KindStack, "foo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "foo"), path)

	a.SetROSRoot(second)
	path, err = a.Find(domain.KindStack, "foo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "foo"), path)
}

func TestApp_CleanCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockIndexCache(ctrl)
	log := mocks.NewMockLogger(ctrl)

	store.EXPECT().Clear().Return(nil)
	log.EXPECT().Info("index cache removed")

	a := newApp(t, t.TempDir(), store, log)
	require.NoError(t, a.CleanCache())
}

func TestApp_CleanCache_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockIndexCache(ctrl)
	log := mocks.NewMockLogger(ctrl)

	store.EXPECT().Clear().Return(os.ErrPermission)

	a := newApp(t, t.TempDir(), store, log)
	err := a.CleanCache()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
}
