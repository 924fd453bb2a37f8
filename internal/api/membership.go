package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	ghapi "github.com/cli/go-gh/v2/pkg/api"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// membershipPayload is the body of a membership upsert
type membershipPayload struct {
	Role string `json:"role"`
}

// membershipResponse is the slice of the membership object reported back to
// the operator
type membershipResponse struct {
	State string `json:"state"`
	Role  string `json:"role"`
}

// UpsertMembership adds a user to the organization or updates their role.
// Users who are not yet members are invited and stay in the "pending" state
// until they accept. HTTP failures are classified into the result rather
// than returned; the error covers local and transport problems only.
func (c *Client) UpsertMembership(ctx context.Context, org, login, role string) (types.AddResult, error) {
	payload, err := json.Marshal(membershipPayload{Role: role})
	if err != nil {
		return types.AddResult{}, fmt.Errorf("failed to encode membership payload: %w", err)
	}

	path := fmt.Sprintf("orgs/%s/memberships/%s", org, login)
	resp, err := c.rest.RequestWithContext(ctx, http.MethodPut, path, bytes.NewReader(payload))
	if err != nil {
		var httpErr *ghapi.HTTPError
		if errors.As(err, &httpErr) {
			return classifyAdd(httpErr), nil
		}
		return types.AddResult{}, fmt.Errorf("failed to update membership for %s: %w", login, err)
	}
	defer resp.Body.Close()

	var membership membershipResponse
	if err := json.NewDecoder(resp.Body).Decode(&membership); err != nil {
		return types.AddResult{}, fmt.Errorf("failed to decode membership for %s: %w", login, err)
	}

	return types.AddResult{
		Outcome: types.AddApplied,
		State:   membership.State,
		Role:    membership.Role,
	}, nil
}

// classifyAdd maps an HTTP error to the per-login outcome. A 404 is
// deliberately ambiguous: the user may not exist, or the caller may lack
// permission to see them. No follow-up request is made to tell the two apart.
func classifyAdd(httpErr *ghapi.HTTPError) types.AddResult {
	result := types.AddResult{
		StatusCode: httpErr.StatusCode,
		Detail:     httpErr.Message,
	}
	switch httpErr.StatusCode {
	case http.StatusNotFound:
		result.Outcome = types.AddNotFoundOrForbidden
	case http.StatusForbidden:
		result.Outcome = types.AddForbidden
	default:
		result.Outcome = types.AddUnexpected
	}
	return result
}

// RemoveUser removes the user through the endpoint matching their type. An
// unrecognized type is a local error and no request is made.
func (c *Client) RemoveUser(ctx context.Context, org string, user types.User) (types.RemoveResult, error) {
	var path string
	switch user.Type {
	case types.OrgMember:
		path = fmt.Sprintf("orgs/%s/members/%s", org, user.Login)
	case types.OutsideCollaborator:
		path = fmt.Sprintf("orgs/%s/outside_collaborators/%s", org, user.Login)
	default:
		return types.RemoveResult{}, &types.UnknownUserTypeError{Login: user.Login, Type: user.Type}
	}

	resp, err := c.rest.RequestWithContext(ctx, http.MethodDelete, path, nil)
	if err != nil {
		var httpErr *ghapi.HTTPError
		if errors.As(err, &httpErr) {
			return types.RemoveResult{StatusCode: httpErr.StatusCode, Detail: httpErr.Message}, nil
		}
		return types.RemoveResult{}, fmt.Errorf("failed to remove %s: %w", user.Login, err)
	}
	resp.Body.Close()

	return types.RemoveResult{Removed: true}, nil
}
