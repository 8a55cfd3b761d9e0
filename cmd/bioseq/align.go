package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bioseq/align"
)

var (
	alignMode      string
	alignBandwidth int
)

// alignCmd represents the align command.
var alignCmd = &cobra.Command{
	Use:   "align SEQUENCE_A SEQUENCE_B",
	Short: "Align two sequences and print the result",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		scoring, err := cfg.Scoring.Matrix()
		if err != nil {
			log.Fatalf("%v", err)
		}

		sequences := parseSequences(args)
		a, b := sequences[0], sequences[1]

		var result align.Alignment
		switch alignMode {
		case "local":
			result = align.Local(a, b, scoring)
		case "global":
			result = align.Global(a, b, scoring)
		case "semiglobal":
			result = align.SemiGlobal(a, b, scoring)
		case "banded":
			result = align.BandedLocal(a, b, alignBandwidth, scoring)
		default:
			log.Fatalf("unknown alignment mode %q", alignMode)
		}

		fmt.Printf("score    %d\n", result.Score)
		fmt.Printf("identity %.4f\n", result.Identity())
		fmt.Printf("CIGAR    %s\n", result.CIGAR())
		fmt.Println(result.Format(60))

		fmt.Printf("edit distance %d\n", align.EditDistance(a, b))
		if hamming, err := align.HammingDistance(a, b); err == nil {
			fmt.Printf("hamming       %d\n", hamming)
		}
	},
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignMode, "mode", "m", "local", "alignment mode: local, global, semiglobal or banded")
	alignCmd.Flags().IntVarP(&alignBandwidth, "bandwidth", "b", 10, "band half-width for banded alignment")
	alignCmd.Flags().String("scheme", "similarity", "scoring scheme: similarity, mismatch, strict or custom")

	viper.BindPFlag("scoring.scheme", alignCmd.Flags().Lookup("scheme"))
}
