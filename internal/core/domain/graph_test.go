package domain_test

import (
	"errors"
	"testing"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"go.trai.ch/zerr"
)

func directFrom(edges map[string][]string) domain.DirectFunc {
	return func(name string) ([]string, error) {
		deps, ok := edges[name]
		if !ok {
			return nil, domain.NewNotFoundError(domain.KindStack, name)
		}
		return deps, nil
	}
}

func TestDependencyGraph_Closure(t *testing.T) {
	g := domain.NewDependencyGraph(directFrom(map[string][]string{
		"foo": {},
		"bar": {"foo"},
		"baz": {"bar", "foo"},
	}))

	got, err := g.Closure("baz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "bar" || got[1] != "foo" {
		t.Errorf("expected [bar foo], got %v", got)
	}

	got, err = g.Closure("foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDependencyGraph_Closure_Cycle(t *testing.T) {
	calls := make(map[string]int)
	edges := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a", "b"},
	}
	g := domain.NewDependencyGraph(func(name string) ([]string, error) {
		calls[name]++
		return edges[name], nil
	})

	got, err := g.Closure("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}

	for name, n := range calls {
		if n != 1 {
			t.Errorf("expected %s to be expanded once, got %d", name, n)
		}
	}
}

func TestDependencyGraph_Closure_MissingDependency(t *testing.T) {
	g := domain.NewDependencyGraph(directFrom(map[string][]string{
		"bar": {"ghost"},
	}))

	_, err := g.Closure("bar")
	if err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound in chain, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if by, ok := meta["required_by"].(string); !ok || by != "bar" {
		t.Errorf("expected metadata required_by=bar, got %v", meta["required_by"])
	}
	if name, ok := meta["name"].(string); !ok || name != "ghost" {
		t.Errorf("expected metadata name=ghost, got %v", meta["name"])
	}
}

func TestDependencyGraph_Closure_UnknownRoot(t *testing.T) {
	g := domain.NewDependencyGraph(directFrom(map[string][]string{}))

	_, err := g.Closure("fake")
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if _, ok := zErr.Metadata()["required_by"]; ok {
		t.Error("expected no required_by metadata for the requested name")
	}
}
