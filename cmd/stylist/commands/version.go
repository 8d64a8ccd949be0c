// ABOUTME: Version command reporting the build stamp and toolchain
// ABOUTME: Values are injected from main via SetVersion at startup
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersion records the build stamp (called from main)
func SetVersion(version, commit, date string) {
	buildVersion, buildCommit, buildDate = version, commit, date
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the build version, commit, and toolchain for the Stylist CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stylist %s (%s %s/%s)\n",
				buildVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n  built:  %s\n",
				buildCommit, buildDate)
		},
	}
}
