package main

import (
	"fmt"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/spf13/cobra"
)

var inspectThreshold int

var inspectCmd = &cobra.Command{
	Use:   "inspect [image-path]",
	Short: "Show carrier dimensions, importance statistics and capacities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overlayThreshold(cmd, "threshold", &inspectThreshold)

		info, err := stego.Inspect(args[0], inspectThreshold)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", args[0], err)
		}

		fmt.Println("Carrier Information:")
		fmt.Println("--------------------")
		fmt.Printf("Dimensions:          %dx%d\n", info.Width, info.Height)
		fmt.Printf("Candidates (t=%d):  %d\n", inspectThreshold, info.Candidates)
		fmt.Printf("Smart capacity:      %d chars\n", max(info.ThresholdCapacity, 0))
		fmt.Printf("Uniform capacity:    %d chars (r), %d chars (rgb)\n", max(info.UniformCapacity, 0), max(info.UniformCapacity3, 0))
		fmt.Printf("Importance min/max:  %d / %d\n", info.MinImportance, info.MaxImportance)
		fmt.Printf("Importance mean:     %.2f\n", info.MeanImportance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectThreshold, "threshold", "t", 100, "Importance threshold (0-255)")
}
