package ui

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-org-members/internal/types"
)

// ShowAddBanner introduces the interactive invitation loop
func ShowAddBanner(org string) {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).Println("GitHub Organization Membership")
	pterm.Println()
	pterm.Info.Printf("Adding users to org: %s\n", pterm.Cyan(org))
	pterm.Info.Println("Enter GitHub logins one at a time. Press Enter on an empty line or type 'q' to quit.")
	pterm.Println()
}

// ShowPruneBanner introduces the interactive review loop
func ShowPruneBanner(org string) {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).Println("GitHub Organization Member Review")
	pterm.Println()
	pterm.Info.Printf("Reviewing users for org: %s\n", pterm.Cyan(org))
	pterm.Println()
}

// ShowExclusions echoes the configured exclusion list, sorted for stable output
func ShowExclusions(exclude types.ExclusionSet) {
	if len(exclude) == 0 {
		return
	}
	pterm.Info.Printf("Excluded logins: %s\n", strings.Join(exclude.Sorted(), ", "))
}

// ShowUserCount reports the size of the merged listing before the walk
func ShowUserCount(count int) {
	pterm.Info.Printf("Found %d users (members and outside collaborators, after exclusions).\n", count)
	pterm.Println()
}

// ShowNoUsersWarning covers the empty merged listing
func ShowNoUsersWarning() {
	pterm.Warning.Println("No users or collaborators found after applying the exclude list.")
}

// ShowCompletionHeader prints the run summary in the completion banner
func ShowCompletionHeader(operation string, successCount, skippedCount, errorCount int) {
	pterm.Println()
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Printfln("%s Complete! Success: %d, Skipped: %d, Errors: %d", operation, successCount, skippedCount, errorCount)
}
