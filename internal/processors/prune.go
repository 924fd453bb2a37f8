package processors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// PruneProcessor walks a snapshot of the merged user listing and asks, per
// user, whether to remove them from the organization. The snapshot is taken
// before any deletion, so positions and the total never shift mid-run.
type PruneProcessor struct {
	client       MembershipClient
	prompt       Prompter
	org          string
	successCount int
	skippedCount int
	errorCount   int
}

// NewPruneProcessor creates the review loop for one organization
func NewPruneProcessor(client MembershipClient, prompt Prompter, org string) *PruneProcessor {
	return &PruneProcessor{
		client: client,
		prompt: prompt,
		org:    org,
	}
}

// Process reviews each user once, in order. Answering "q" stops immediately
// and leaves the remaining users untouched.
func (pp *PruneProcessor) Process(ctx context.Context, users []types.User) (successCount, skippedCount, errorCount int, err error) {
	total := len(users)
	for i, user := range users {
		pterm.Printf("%d/%d: %s (%s)\n", i+1, total, pterm.Cyan(user.Login), user.Type)

		answer, perr := pp.prompt.Input("Delete this user from the org? [y/N/q]")
		if perr != nil {
			return pp.successCount, pp.skippedCount, pp.errorCount, fmt.Errorf("failed to read answer: %w", perr)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "q":
			pterm.Info.Printf("Stopping early at user %s\n", user.Login)
			return pp.successCount, pp.skippedCount, pp.errorCount, nil
		case "y":
			pp.removeUser(ctx, user)
		default:
			pterm.Info.Printf("Skipping %s\n", user.Login)
			pp.skippedCount++
		}
		pterm.Println()
	}

	return pp.successCount, pp.skippedCount, pp.errorCount, nil
}

// removeUser issues one removal call and accounts for its outcome
func (pp *PruneProcessor) removeUser(ctx context.Context, user types.User) {
	result, err := pp.client.RemoveUser(ctx, pp.org, user)
	if err != nil {
		var unknownType *types.UnknownUserTypeError
		if errors.As(err, &unknownType) {
			pterm.Warning.Printf("Unknown user type '%s' for %s, skipping delete.\n", unknownType.Type, unknownType.Login)
			pp.skippedCount++
			return
		}
		pterm.Error.Printf("Failed to remove %s (%s): %v\n", user.Login, user.Type, err)
		pp.errorCount++
		return
	}

	if result.Removed {
		pterm.Success.Printf("Successfully removed %s as %s\n", user.Login, user.Type)
		pp.successCount++
		return
	}

	pterm.Error.Printf("Failed to remove %s (%s). Status: %d\n", user.Login, user.Type, result.StatusCode)
	if result.Detail != "" {
		pterm.Println(result.Detail)
	}
	pp.errorCount++
}
