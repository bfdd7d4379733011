package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kostyay/ipdisplay/internal/release"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("ipdisplay %s\n", version)
		if !versionCheck {
			return nil
		}
		latest, err := release.CheckLatest(cmd.Context(), release.Owner, release.Repo, version)
		if err != nil {
			return fmt.Errorf("release check failed: %w", err)
		}
		if latest == "" {
			fmt.Println("Up to date.")
		} else {
			fmt.Printf("Newer release available: %s\n", latest)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}
