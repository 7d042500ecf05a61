package registry

import (
	"fmt"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExpandToContainedItems resolves a list of container and item names into item names.
//
// names must be a []string. Each entry naming a container in containers expands
// to the items located under it; otherwise an entry naming an item in items is
// kept as is; anything else is reported as unresolved. Both results are
// duplicate-free and keep first-seen order.
func ExpandToContainedItems(names any, items, containers *Registry) (resolved, unresolved []string, err error) {
	list, ok := names.([]string)
	if !ok {
		return nil, nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidArgument, "names must be a list of strings"),
			"type", fmt.Sprintf("%T", names),
		)
	}

	resolved, unresolved = []string{}, []string{}
	seenResolved := make(map[string]bool)
	seenUnresolved := make(map[string]bool)
	addResolved := func(name string) {
		if !seenResolved[name] {
			seenResolved[name] = true
			resolved = append(resolved, name)
		}
	}

	for _, name := range list {
		if dir, err := containers.Path(name); err == nil {
			for _, item := range items.Contents(dir) {
				addResolved(item)
			}
			continue
		}
		if _, err := items.Path(name); err == nil {
			addResolved(name)
			continue
		}
		if !seenUnresolved[name] {
			seenUnresolved[name] = true
			unresolved = append(unresolved, name)
		}
	}
	return resolved, unresolved, nil
}
