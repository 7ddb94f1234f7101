package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var capacityThreshold int

var capacityCmd = &cobra.Command{
	Use:   "capacity [image-path]",
	Short: "Calculate the message capacity of an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		overlayThreshold(cmd, "threshold", &capacityThreshold)

		info, err := stego.Inspect(args[0], capacityThreshold)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to inspect image")
		}

		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(wtr, "Strategy\tChannels\tCapacity (chars)")
		fmt.Fprintln(wtr, "--------\t--------\t----------------")
		fmt.Fprintf(wtr, "smart (t=%d)\tr\t%d\n", capacityThreshold, max(info.ThresholdCapacity, 0))
		fmt.Fprintf(wtr, "uniform\tr\t%d\n", max(info.UniformCapacity, 0))
		fmt.Fprintf(wtr, "uniform\trgb\t%d\n", max(info.UniformCapacity3, 0))
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacityCmd.Flags().IntVarP(&capacityThreshold, "threshold", "t", 100, "Importance threshold (0-255)")
}
