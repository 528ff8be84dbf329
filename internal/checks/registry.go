package checks

import (
	"fmt"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	byName  = make(map[string]int)
	ordered []Check
)

// Register adds a check to the global registry. Registration happens in
// init() before any check runs; duplicate names and malformed descriptors
// panic so configuration mistakes fail fast, not mid-run.
func Register(c Check) {
	mu.Lock()
	defer mu.Unlock()
	if err := c.validate(); err != nil {
		panic(fmt.Sprintf("invalid check registration: %v", err))
	}
	if _, exists := byName[c.Name]; exists {
		panic(fmt.Sprintf("check %s already registered", c.Name))
	}
	byName[c.Name] = len(ordered)
	ordered = append(ordered, c)
}

// RegisterSharded registers count instances of the check, named name_1 ..
// name_count, each assigned a deterministic disjoint slice of the matched
// files. Together the instances cover every matched file exactly once.
func RegisterSharded(c Check, count int) {
	if count < 2 {
		panic(fmt.Sprintf("check %s: shard count must be >= 2, got %d", c.Name, count))
	}
	base := c.Name
	for i := 0; i < count; i++ {
		sc := c
		sc.Name = fmt.Sprintf("%s_%d", base, i+1)
		sc.ShardIndex = i
		sc.ShardCount = count
		Register(sc)
	}
}

// All returns every registered check in registration order. Report ordering
// is derived from this, so output stays stable across runs regardless of
// completion order.
func All() []Check {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Check, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup returns the check registered under name.
func Lookup(name string) (Check, bool) {
	mu.RLock()
	defer mu.RUnlock()
	i, ok := byName[name]
	if !ok {
		return Check{}, false
	}
	return ordered[i], true
}

// Resolve selects checks by a comma-separated name list, preserving
// registration order. An empty selector selects everything; full-only checks
// are included only when full is set or they are named explicitly.
func Resolve(selector string, full bool) ([]Check, error) {
	mu.RLock()
	defer mu.RUnlock()

	if strings.TrimSpace(selector) == "" {
		var selected []Check
		for _, c := range ordered {
			if c.FullOnly && !full {
				continue
			}
			selected = append(selected, c)
		}
		return selected, nil
	}

	want := make(map[string]bool)
	for _, name := range strings.Split(selector, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("check not found: %s", name)
		}
		want[name] = true
	}

	var selected []Check
	for _, c := range ordered {
		if want[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
