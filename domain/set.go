package domain

import "sort"

// UserSet holds a deduplicated membership of user identifiers.
// Fan-out recipients and permission checks always go through a set,
// never through the raw slices stored on the records.
type UserSet map[string]struct{}

func NewUserSet(ids ...string) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s UserSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s UserSet) Union(other UserSet) UserSet {
	merged := make(UserSet, len(s)+len(other))
	for id := range s {
		merged[id] = struct{}{}
	}
	for id := range other {
		merged[id] = struct{}{}
	}
	return merged
}

// Values returns the members sorted, so fan-out order is deterministic in tests.
func (s UserSet) Values() []string {
	values := make([]string, 0, len(s))
	for id := range s {
		values = append(values, id)
	}
	sort.Strings(values)
	return values
}

func (s UserSet) Len() int { return len(s) }
