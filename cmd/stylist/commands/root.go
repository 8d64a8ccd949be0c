// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Stylist searches a semantic product index and suggests outfits
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗████████╗██╗   ██╗██╗     ██╗███████╗████████╗
██╔════╝╚══██╔══╝╚██╗ ██╔╝██║     ██║██╔════╝╚══██╔══╝
███████╗   ██║    ╚████╔╝ ██║     ██║███████╗   ██║
╚════██║   ██║     ╚██╔╝  ██║     ██║╚════██║   ██║
███████║   ██║      ██║   ███████╗██║███████║   ██║
╚══════╝   ╚═╝      ╚═╝   ╚══════╝╚═╝╚══════╝   ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stylist",
		Short: "AI personal stylist: semantic product search and outfit suggestions",
		Long: banner + `
Stylist maintains a persistent semantic index over a product catalog,
answers free-text garment queries with ranked products and composite
preview images, and generates structured multi-piece outfit suggestions
from a generative stylist model.

Start by building the index from your catalog:
  stylist ingest --catalog data/catalog.csv

Then search it:
  stylist search "white silk blouse" --gender Women`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")

	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
