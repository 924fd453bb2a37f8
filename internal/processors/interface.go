package processors

import (
	"context"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// MembershipClient defines the remote API surface the processors drive
type MembershipClient interface {
	UpsertMembership(ctx context.Context, org, login, role string) (types.AddResult, error)
	RemoveUser(ctx context.Context, org string, user types.User) (types.RemoveResult, error)
}

// Prompter collects one line of operator input
type Prompter interface {
	Input(title string) (string, error)
}
