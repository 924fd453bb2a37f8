package types

import "sort"

// UserType classifies how a login is attached to an organization
type UserType string

const (
	// OrgMember is a full member of the organization
	OrgMember UserType = "OrgMember"
	// OutsideCollaborator has repository access without org membership
	OutsideCollaborator UserType = "OutsideCollaborator"
)

// User represents one login in the merged membership listing. Users are
// unique by the (Login, Type) pair, so the same login can appear once per type.
type User struct {
	Login string   `json:"login"`
	Type  UserType `json:"type"`
}

// ExclusionSet holds logins that are never listed or removed
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from the given logins, ignoring empty entries
func NewExclusionSet(logins ...string) ExclusionSet {
	set := make(ExclusionSet, len(logins))
	for _, login := range logins {
		if login == "" {
			continue
		}
		set[login] = struct{}{}
	}
	return set
}

// Contains reports whether the login is excluded
func (s ExclusionSet) Contains(login string) bool {
	_, ok := s[login]
	return ok
}

// Sorted returns the excluded logins in lexical order for display
func (s ExclusionSet) Sorted() []string {
	logins := make([]string, 0, len(s))
	for login := range s {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}
