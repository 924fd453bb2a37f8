package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-org-members/internal/api"
	"github.com/callmegreg/gh-org-members/internal/config"
	"github.com/callmegreg/gh-org-members/internal/processors"
	"github.com/callmegreg/gh-org-members/internal/types"
	"github.com/callmegreg/gh-org-members/internal/ui"
	"github.com/callmegreg/gh-org-members/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "prune-members <organization>",
	Short: "Review and remove GitHub organization members and outside collaborators",
	Long: heredoc.Doc(`
		Fetch every member and outside collaborator of the organization, merge them
		into one deduplicated list (members first), and walk the list interactively.
		Each user can be removed through the endpoint matching their type, skipped,
		or the walk can be stopped early with "q". Nothing is deleted without a
		per-user confirmation.

		Excluded logins are never listed or removed. The exclusion set is empty by
		default and is supplied with --exclude and --exclude-file.

		Authentication requires the GITHUB_TOKEN environment variable. The token
		must be allowed to manage organization members: the "Members" organization
		permission (read and write) for fine-grained tokens, or the admin:org scope
		for classic tokens.
	`),
	Example: heredoc.Doc(`
		# Review all users of my-org
		prune-members my-org

		# Keep the service accounts out of the review
		prune-members my-org --exclude release-bot --exclude deploy-bot

		# Exclusions from a file, one login per line
		prune-members my-org --exclude-file keep.csv
	`),
	Args: cobra.ExactArgs(1),
	RunE: runPrune,
}

func init() {
	rootCmd.Flags().StringSliceP("exclude", "x", nil, "Login to exclude from listing and removal (repeatable)")
	rootCmd.Flags().StringP("exclude-file", "f", "", "Path to CSV file of logins to exclude (one per line, no header)")
	rootCmd.Flags().IntP("limit", "n", 0, "Review at most this many users, 0 for no limit")
}

func runPrune(cmd *cobra.Command, args []string) error {
	org := args[0]

	excludeLogins, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return err
	}
	excludeFile, err := cmd.Flags().GetString("exclude-file")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit < 0 {
		return fmt.Errorf("limit must be zero or positive, got %d", limit)
	}

	if excludeFile != "" {
		fileLogins, err := utils.ReadLoginsFromCSV(excludeFile)
		if err != nil {
			return err
		}
		excludeLogins = append(excludeLogins, fileLogins...)
	}
	exclude := types.NewExclusionSet(excludeLogins...)

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	client, err := api.NewClient(cfg.Token)
	if err != nil {
		return err
	}

	ui.ShowPruneBanner(org)
	ui.ShowExclusions(exclude)

	spinner, _ := pterm.DefaultSpinner.WithText(fmt.Sprintf("Fetching users for org %s...", org)).Start()

	memberSeq := client.OrgMembers(cmd.Context(), org)
	outsideSeq := client.OutsideCollaborators(cmd.Context(), org)
	if limit > 0 {
		memberSeq = api.Take(memberSeq, limit)
		outsideSeq = api.Take(outsideSeq, limit)
	}

	members, err := api.Collect(memberSeq)
	if err != nil {
		spinner.Fail("Failed to fetch organization members")
		return err
	}
	outside, err := api.Collect(outsideSeq)
	if err != nil {
		spinner.Fail("Failed to fetch outside collaborators")
		return err
	}
	spinner.Success(fmt.Sprintf("Fetched %d members and %d outside collaborators", len(members), len(outside)))

	users := utils.MergeUsers(members, outside, exclude)
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	if len(users) == 0 {
		ui.ShowNoUsersWarning()
		return nil
	}
	ui.ShowUserCount(len(users))

	processor := processors.NewPruneProcessor(client, ui.TerminalPrompter{}, org)
	successCount, skippedCount, errorCount, err := processor.Process(cmd.Context(), users)
	if err != nil {
		return err
	}

	ui.ShowCompletionHeader("Member Review", successCount, skippedCount, errorCount)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
