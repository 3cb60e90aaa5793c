// models/ref.go - reference-by-name aliases
package models

// UserRef and TeamRef reference another record by its display name rather than
// its identifier. The store enforces no integrity on them; keeping them as
// named types localizes a future move to id-based references.
type (
	UserRef string
	TeamRef string
)

// MemberList is a team's member names, persisted as a JSON column. A name
// appears at most once.
type MemberList []UserRef

func (m MemberList) Contains(name UserRef) bool {
	for _, member := range m {
		if member == name {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether any name appears more than once.
func (m MemberList) HasDuplicates() bool {
	seen := make(map[UserRef]struct{}, len(m))
	for _, member := range m {
		if _, ok := seen[member]; ok {
			return true
		}
		seen[member] = struct{}{}
	}
	return false
}

// Without returns a copy of the list with name removed.
func (m MemberList) Without(name UserRef) MemberList {
	out := make(MemberList, 0, len(m))
	for _, member := range m {
		if member != name {
			out = append(out, member)
		}
	}
	return out
}
