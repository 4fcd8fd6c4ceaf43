package catalog

import "sort"

// Set maps category names to their parsed JSON content.
//
// A Set is never mutated after construction, so it can be shared between
// goroutines without locking. Reloading builds a new Set.
type Set struct {
	names []string
	items map[string]any
}

// New builds a Set from already parsed content. The map is copied.
func New(items map[string]any) *Set {
	s := &Set{
		names: make([]string, 0, len(items)),
		items: make(map[string]any, len(items)),
	}
	for name, content := range items {
		s.names = append(s.names, name)
		s.items[name] = content
	}
	sort.Strings(s.names)
	return s
}

// Names returns the category names sorted lexicographically.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the content of a category.
func (s *Set) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	content, ok := s.items[name]
	return content, ok
}

// Len returns the number of categories.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
