package api

import (
	"context"
	"fmt"
	"iter"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// orgUser is the slice of the API user object these tools care about
type orgUser struct {
	Login string `json:"login"`
}

// OrgMembers yields every member of the organization, page by page
func (c *Client) OrgMembers(ctx context.Context, org string) iter.Seq2[types.User, error] {
	return c.users(ctx, fmt.Sprintf("orgs/%s/members", org), types.OrgMember)
}

// OutsideCollaborators yields every outside collaborator of the organization
func (c *Client) OutsideCollaborators(ctx context.Context, org string) iter.Seq2[types.User, error] {
	return c.users(ctx, fmt.Sprintf("orgs/%s/outside_collaborators", org), types.OutsideCollaborator)
}

// users tags every login from the listing at path with the given user type
func (c *Client) users(ctx context.Context, path string, userType types.UserType) iter.Seq2[types.User, error] {
	return func(yield func(types.User, error) bool) {
		for user, err := range Items[orgUser](ctx, c, path) {
			if err != nil {
				yield(types.User{}, err)
				return
			}
			if !yield(types.User{Login: user.Login, Type: userType}, nil) {
				return
			}
		}
	}
}
