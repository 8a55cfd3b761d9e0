package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bioseq/stats"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats SEQUENCE...",
	Short: "Print descriptive statistics for one or more sequences",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sequences := parseSequences(args)

		for i, s := range sequences {
			summary := stats.Describe(s)
			fmt.Printf("sequence %d:\n", i+1)
			fmt.Printf("  length      %d\n", summary.Length)
			fmt.Printf("  GC content  %.4f\n", summary.GCContent)
			fmt.Printf("  composition A=%d C=%d G=%d T=%d N=%d\n",
				summary.Composition.A, summary.Composition.C,
				summary.Composition.G, summary.Composition.T,
				summary.Composition.N)
			fmt.Printf("  entropy     %.4f\n", stats.ShannonEntropy(s))
			fmt.Printf("  complexity  %.4f\n", summary.Complexity)
			fmt.Printf("  CpG ratio   %.4f\n", stats.CpGRatio(s))
		}

		if len(sequences) > 1 {
			collection := stats.DescribeCollection(sequences)
			fmt.Println("collection:")
			fmt.Printf("  sequences   %d\n", collection.SequenceCount)
			fmt.Printf("  total bases %d\n", collection.TotalBases)
			fmt.Printf("  mean length %.2f\n", collection.MeanLength)
			fmt.Printf("  mean GC     %.4f\n", collection.MeanGC)
			fmt.Printf("  N50/L50     %d/%d\n", collection.N50, collection.L50)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
