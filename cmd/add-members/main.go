package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-org-members/internal/api"
	"github.com/callmegreg/gh-org-members/internal/config"
	"github.com/callmegreg/gh-org-members/internal/processors"
	"github.com/callmegreg/gh-org-members/internal/types"
	"github.com/callmegreg/gh-org-members/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "add-members <organization>",
	Short: "Interactively add users to a GitHub organization",
	Long: heredoc.Doc(`
		Prompt for GitHub logins one at a time and add each confirmed login to the
		organization through the REST membership API. Users who are not yet members
		receive an invitation and stay in the "pending" state until they accept;
		existing members are reported as "active". Every user is added with the
		"member" role.

		Authentication requires the GITHUB_TOKEN environment variable. The token
		must be allowed to manage organization members: the "Members" organization
		permission (read and write) for fine-grained tokens, or the admin:org scope
		for classic tokens.
	`),
	Example: heredoc.Doc(`
		# Add users to my-org, confirming each login
		add-members my-org
	`),
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	org := args[0]

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	client, err := api.NewClient(cfg.Token)
	if err != nil {
		return err
	}

	ui.ShowAddBanner(org)

	processor := processors.NewAddProcessor(client, ui.TerminalPrompter{}, org, types.DefaultRole)
	successCount, skippedCount, errorCount, err := processor.Process(cmd.Context())
	if err != nil {
		return err
	}

	ui.ShowCompletionHeader("Member Additions", successCount, skippedCount, errorCount)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
