package utils

import "github.com/callmegreg/gh-org-members/internal/types"

// MergeUsers combines the member and outside-collaborator listings into one
// list with duplicates removed by (login, type), preserving first-seen order:
// members first, then outside collaborators, each in API order. The exclusion
// filter runs after deduplication and matches by login alone, so an excluded
// login disappears under every type.
func MergeUsers(members, outside []types.User, exclude types.ExclusionSet) []types.User {
	merged := make([]types.User, 0, len(members)+len(outside))
	seen := make(map[types.User]struct{}, len(members)+len(outside))
	for _, listing := range [][]types.User{members, outside} {
		for _, user := range listing {
			if _, ok := seen[user]; ok {
				continue
			}
			seen[user] = struct{}{}
			merged = append(merged, user)
		}
	}

	users := make([]types.User, 0, len(merged))
	for _, user := range merged {
		if exclude.Contains(user.Login) {
			continue
		}
		users = append(users, user)
	}

	return users
}
