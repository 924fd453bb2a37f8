package processors

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// AddProcessor runs the interactive invitation loop: prompt for a login,
// confirm, call the membership API, report the outcome, repeat. Every
// per-login failure is reported and the loop moves on; only a broken prompt
// ends the run early.
type AddProcessor struct {
	client       MembershipClient
	prompt       Prompter
	org          string
	role         string
	successCount int
	skippedCount int
	errorCount   int
}

// NewAddProcessor creates the invitation loop for one organization
func NewAddProcessor(client MembershipClient, prompt Prompter, org, role string) *AddProcessor {
	return &AddProcessor{
		client: client,
		prompt: prompt,
		org:    org,
		role:   role,
	}
}

// Process drives the loop until the operator quits with an empty login or "q"
func (ap *AddProcessor) Process(ctx context.Context) (successCount, skippedCount, errorCount int, err error) {
	for {
		login, perr := ap.prompt.Input("GitHub login to add (blank/q to quit)")
		if perr != nil {
			return ap.successCount, ap.skippedCount, ap.errorCount, fmt.Errorf("failed to read login: %w", perr)
		}
		login = strings.TrimSpace(login)
		if login == "" || strings.EqualFold(login, "q") {
			pterm.Info.Println("Exiting.")
			return ap.successCount, ap.skippedCount, ap.errorCount, nil
		}

		confirm, perr := ap.prompt.Input(fmt.Sprintf("Add '%s' to org '%s' as role '%s'? [y/N]", login, ap.org, ap.role))
		if perr != nil {
			return ap.successCount, ap.skippedCount, ap.errorCount, fmt.Errorf("failed to read confirmation: %w", perr)
		}
		if !strings.EqualFold(strings.TrimSpace(confirm), "y") {
			pterm.Info.Printf("Skipping %s.\n", login)
			pterm.Println()
			ap.skippedCount++
			continue
		}

		result, aerr := ap.client.UpsertMembership(ctx, ap.org, login, ap.role)
		if aerr != nil {
			pterm.Error.Printf("%s: %v\n", login, aerr)
			pterm.Println()
			ap.errorCount++
			continue
		}

		if ap.reportAdd(login, result) {
			ap.successCount++
		} else {
			ap.errorCount++
		}
		pterm.Println()
	}
}

// reportAdd prints the outcome of one upsert and reports whether it succeeded
func (ap *AddProcessor) reportAdd(login string, result types.AddResult) bool {
	switch result.Outcome {
	case types.AddApplied:
		pterm.Success.Printf("%s: membership state = %s, role = %s\n", login, result.State, result.Role)
		return true
	case types.AddNotFoundOrForbidden:
		pterm.Error.Printf("%s: not found or you lack permission (404).\n", login)
	case types.AddForbidden:
		pterm.Error.Printf("%s: forbidden (403). Check token permissions and org ownership.\n", login)
	default:
		pterm.Error.Printf("%s: unexpected status %d.\n", login, result.StatusCode)
	}
	if result.Detail != "" {
		pterm.Println(result.Detail)
	}
	return false
}
