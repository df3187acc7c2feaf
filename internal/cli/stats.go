package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command for printing a station summary.
func (c *CLI) statsCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print statistics for a station graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := loadNetwork(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			if full {
				fmt.Println(net.Summary())
				return nil
			}

			stats := net.Stats()
			fmt.Println(StyleTitle.Render(net.Name()))
			printKeyValue("nodes", fmt.Sprintf("%d", stats.TotalNodes))
			printKeyValue("edges", fmt.Sprintf("%d", stats.TotalEdges))
			printKeyValue("tracks", fmt.Sprintf("%d", stats.Tracks))
			printKeyValue("switches", fmt.Sprintf("%d", stats.Switches))
			printKeyValue("platforms", fmt.Sprintf("%d", stats.Platforms))
			printKeyValue("signals", fmt.Sprintf("%d", stats.Signals))
			printKeyValue("cdl zones", fmt.Sprintf("%d", stats.ConflictZones))
			printKeyValue("track length", fmt.Sprintf("%.1f m", stats.TotalTrackLength))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "print the full text summary including zones and signals")

	return cmd
}
