package f

// Set is an unordered collection of distinct values
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

func (s *Set[T]) Add(item T) {
	s.m[item] = struct{}{}
}

func (s *Set[T]) AddAll(items ...T) {
	for _, item := range items {
		s.m[item] = struct{}{}
	}
}

func (s *Set[T]) Contains(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Items returns the members of the set in no particular order
func (s *Set[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func Map[T any, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, t := range ts {
		us[i] = f(t)
	}
	return us
}

func Filtered[T any](ts []T, f func(T) bool) []T {
	filtered := make([]T, 0, len(ts))
	for _, t := range ts {
		if f(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// RemoveDuplicates keeps the first occurrence of each item, preserving order
func RemoveDuplicates[T comparable](ts []T) []T {
	seen := NewSet[T]()
	result := make([]T, 0, len(ts))
	for _, t := range ts {
		if seen.Contains(t) {
			continue
		}
		seen.Add(t)
		result = append(result, t)
	}
	return result
}
