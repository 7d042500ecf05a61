// Package app implements the application layer for rospkg.
package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/alessandro-aglietti/rospkg/internal/engine/registry"
	"go.trai.ch/zerr"
)

// App answers stack and package queries over the configured search paths.
type App struct {
	rosRoot     string
	packagePath string

	factory *registry.Factory
	cache   ports.IndexCache
	logger  ports.Logger

	stacks   *registry.Registry
	packages *registry.Registry
}

// New creates a new App searching rosRoot first and then every entry of packagePath.
func New(
	rosRoot, packagePath string,
	factory *registry.Factory,
	cache ports.IndexCache,
	logger ports.Logger,
) *App {
	return &App{
		rosRoot:     rosRoot,
		packagePath: packagePath,
		factory:     factory,
		cache:       cache,
		logger:      logger,
	}
}

// SetROSRoot replaces the root search path.
func (a *App) SetROSRoot(root string) {
	a.rosRoot = root
	a.reset()
}

// SetPackagePath replaces the extra search paths, given as an OS path list.
func (a *App) SetPackagePath(packagePath string) {
	a.packagePath = packagePath
	a.reset()
}

// Search returns the search config in effect.
func (a *App) Search() domain.SearchConfig {
	return domain.NewSearchConfig(a.rosRoot, filepath.SplitList(a.packagePath)...)
}

// List returns the names of every unit of kind.
func (a *App) List(kind domain.Kind) []string {
	return a.registry(kind).List()
}

// Find returns the directory of the named unit.
func (a *App) Find(kind domain.Kind, name string) (string, error) {
	return a.registry(kind).Path(name)
}

// Depends returns the transitive dependencies of the named unit.
func (a *App) Depends(kind domain.Kind, name string) ([]string, error) {
	return a.registry(kind).Depends(name)
}

// DirectDepends returns the dependencies declared by the named unit.
func (a *App) DirectDepends(kind domain.Kind, name string) ([]string, error) {
	return a.registry(kind).DirectDepends(name)
}

// Version returns the version of the named stack.
func (a *App) Version(stack string) (string, bool, error) {
	return a.registry(domain.KindStack).Version(stack)
}

// Contents returns the packages located inside the named stack.
func (a *App) Contents(stack string) ([]string, error) {
	dir, err := a.registry(domain.KindStack).Path(stack)
	if err != nil {
		return nil, err
	}
	return a.registry(domain.KindPackage).Contents(dir), nil
}

// StackOf returns the name of the stack enclosing the named package.
// Only directories up to the search path holding the package are considered.
// ok is false when the package is not inside any stack.
func (a *App) StackOf(pkg string) (stack string, ok bool, err error) {
	dir, err := a.registry(domain.KindPackage).Path(pkg)
	if err != nil {
		return "", false, err
	}

	root := a.searchRootOf(dir)
	for {
		info, statErr := os.Stat(filepath.Join(dir, domain.StackFileName))
		if statErr == nil && !info.IsDir() {
			return filepath.Base(dir), true, nil
		}
		parent := filepath.Dir(dir)
		if dir == root || parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// searchRootOf returns the first search path containing dir, or "" if none does.
func (a *App) searchRootOf(dir string) string {
	for _, root := range a.Search().Paths() {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return root
		}
	}
	return ""
}

// Expand resolves a mix of stack and package names into package names.
func (a *App) Expand(names []string) (resolved, unresolved []string, err error) {
	return registry.ExpandToContainedItems(names, a.registry(domain.KindPackage), a.registry(domain.KindStack))
}

// CleanCache removes the index cache files.
func (a *App) CleanCache() error {
	if err := a.cache.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clean index cache")
	}
	a.reset()
	a.logger.Info("index cache removed")
	return nil
}

func (a *App) registry(kind domain.Kind) *registry.Registry {
	slot := &a.stacks
	if kind == domain.KindPackage {
		slot = &a.packages
	}
	if *slot == nil {
		*slot = a.factory.New(kind, a.Search())
	}
	return *slot
}

func (a *App) reset() {
	a.stacks = nil
	a.packages = nil
}
