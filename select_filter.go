package vselect

import "github.com/cybergodev/vselect/internal"

// Matches reports whether item's label contains query, ignoring case.
// An empty query matches every item.
func (s *Select) Matches(item any, query string) bool {
	return internal.ContainsFold(s.Label(item), query)
}

// refilterLocked recomputes the matches for s.query and resets the highlight
func (s *Select) refilterLocked() {
	s.filtered = s.filtered[:0]
	filtering := s.opts.Searchable && s.query != ""

	for i, item := range s.items {
		if !filtering || s.Matches(item, s.query) {
			s.filtered = append(s.filtered, i)
		}
	}

	s.pointer = Mid(0, 0, len(s.filtered)-1)
}
