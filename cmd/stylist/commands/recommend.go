// ABOUTME: CLI command to generate outfit suggestions from a style profile
// ABOUTME: Single sampled inference; unparseable output asks for a retry
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/stylist/internal/core"
	"github.com/harper/stylist/internal/models"
)

var (
	recommendDetails string
	recommendEvent   string
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate outfit suggestions for a profile and event",
		Long: `Generate structured outfit suggestions from the stylist model.

Formats the tuned stylist prompt from your style profile and event,
runs a single sampled inference, and parses the output into outfits
with Top/Bottom/Shoes/Accessories slots.

Generation can take several seconds. Model output is occasionally
unparseable; when that happens, just run the command again.

Examples:
  stylist recommend --details "tall, athletic build, prefers earth tones" --event "beach wedding"
  stylist recommend --details "petite, loves vintage" --event "job interview" --format json`,
		RunE: runRecommend,
	}

	cmd.Flags().StringVar(&recommendDetails, "details", "", "Self body and style description (required)")
	cmd.Flags().StringVar(&recommendEvent, "event", "", "Event you are dressing for (required)")
	_ = cmd.MarkFlagRequired("details")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	recommender := core.NewRecommender(nil, nil, client)

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Generating outfit suggestions, this may take a moment...")
	}

	outfits, err := recommender.SuggestOutfits(cmd.Context(), recommendDetails, recommendEvent)
	if err != nil {
		if errors.Is(err, core.ErrNoOutfits) {
			return fmt.Errorf("the stylist model produced no usable outfits, please try again")
		}
		return fmt.Errorf("generating outfits: %w", err)
	}

	if outputFormat == "json" {
		payload, err := json.MarshalIndent(outfits, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", payload)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "OUTFIT\tSLOT\tSUGGESTION\n")
	fmt.Fprintf(w, "------\t----\t----------\n")
	for i, outfit := range outfits {
		for _, slot := range []string{models.SlotTop, models.SlotBottom, models.SlotShoes, models.SlotAccessories} {
			if v := outfit.Slot(slot); v != "" {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, slot, truncate(v, 70))
			}
		}
		for slot, v := range outfit.Extra {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, slot, truncate(v, 70))
		}
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %d outfit(s)\n", len(outfits))
	}
	return nil
}
