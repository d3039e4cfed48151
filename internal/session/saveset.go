// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

// SaveSet tracks which record ids a user has marked for export. It keeps
// insertion order so exports break year ties deterministically. There is
// no size limit and no persistence: the set lives and dies with its
// session.
type SaveSet struct {
	ids     []string
	members map[string]struct{}
}

// NewSaveSet returns an empty save set.
func NewSaveSet() *SaveSet {
	return &SaveSet{members: make(map[string]struct{})}
}

// Toggle flips membership for id: saved ids are removed, unsaved ids are
// appended. Toggling twice restores the original membership. An empty id
// (records without one cannot be saved) is a no-op.
func (s *SaveSet) Toggle(id string) {
	if id == "" {
		return
	}
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, v := range s.ids {
			if v == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
		return
	}
	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Contains reports whether id is saved.
func (s *SaveSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of saved ids.
func (s *SaveSet) Len() int {
	return len(s.ids)
}

// IDs returns the saved ids in insertion order.
func (s *SaveSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear empties the set unconditionally.
func (s *SaveSet) Clear() {
	s.ids = nil
	s.members = make(map[string]struct{})
}
