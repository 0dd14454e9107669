package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/rolas/internal/update"
	"github.com/pthm/rolas/internal/version"
)

func init() {
	version.FromBuildInfo()
}

var (
	versionShort      bool
	versionCheck      bool
	versionReleaseURL string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information.

With --check, the latest release is looked up and cached for a day. The
release endpoint defaults to the rolas GitHub releases; set --release-url or
ROLAS_UPDATE_URL to check a fork or mirror instead.`,
	Example: `  # Print the version
  rolas version

  # Check a fork for newer releases
  ROLAS_UPDATE_URL=https://api.github.com/repos/acme/rolas/releases/latest rolas version --check`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Println(version.Short())
			return
		}
		fmt.Println(version.Info())

		if !versionCheck {
			return
		}
		checker := &update.Checker{URL: versionReleaseURL}
		info, err := checker.Check(cmd.Context())
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			return
		}
		if !info.UpdateAvailable {
			fmt.Println("rolas is up to date.")
			return
		}
		fmt.Printf("A newer release is available: %s", info.LatestVersion)
		if info.ReleaseURL != "" {
			fmt.Printf(" (%s)", info.ReleaseURL)
		}
		fmt.Println()
	},
}

func init() {
	f := versionCmd.Flags()
	f.BoolVar(&versionShort, "short", false, "print only the version")
	f.BoolVar(&versionCheck, "check", false, "check for a newer release")
	f.StringVar(&versionReleaseURL, "release-url", "", "release endpoint for --check (default: $ROLAS_UPDATE_URL or GitHub)")
}
