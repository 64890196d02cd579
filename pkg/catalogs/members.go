package catalogs

import (
	"maps"
	"slices"
)

// Members is an id-keyed collection of members.
// Members is not safe for concurrent use; Catalog serializes access to it.
type Members struct {
	members map[int]*Member
	maxID   int
}

// NewMembers creates an empty Members collection.
func NewMembers() *Members {
	return &Members{
		members: make(map[int]*Member),
	}
}

// Get returns a member by id and whether it exists.
func (m *Members) Get(id int) (*Member, bool) {
	member, ok := m.members[id]
	return member, ok
}

// Set stores a copy of member under its id, replacing any previous entry.
func (m *Members) Set(member Member) {
	member = member.clone()
	m.members[member.ID] = &member
	if len(m.members) == 1 || member.ID > m.maxID {
		m.maxID = member.ID
	}
}

// Len returns the number of members.
func (m *Members) Len() int {
	return len(m.members)
}

// MaxID returns the largest id in the collection, or 0 when it is empty.
func (m *Members) MaxID() int {
	return m.maxID
}

// List returns copies of all members in ascending id order.
func (m *Members) List() []Member {
	ids := slices.Sorted(maps.Keys(m.members))
	list := make([]Member, 0, len(ids))
	for _, id := range ids {
		list = append(list, m.members[id].clone())
	}
	return list
}

// Holders returns the ids of every member holding bookID, ascending.
func (m *Members) Holders(bookID int) []int {
	var holders []int
	for id, member := range m.members {
		if member.Holds(bookID) {
			holders = append(holders, id)
		}
	}
	slices.Sort(holders)
	return holders
}
