package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bioseq/quality"
)

// qualityCmd represents the quality command.
var qualityCmd = &cobra.Command{
	Use:   "quality BASES QUALITY_STRING",
	Short: "Decode a quality string and show trim results for the read",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		bases, ascii := args[0], args[1]

		encoding, err := cfg.Quality.Scheme(ascii)
		if err != nil {
			log.Fatalf("%v", err)
		}
		scores, err := quality.FromASCII(ascii, encoding)
		if err != nil {
			log.Fatalf("%v", err)
		}

		fmt.Printf("encoding   %s\n", encoding)
		fmt.Printf("mean       %.2f\n", scores.Mean())
		fmt.Printf("median     %.2f\n", scores.Median())
		fmt.Printf("Q20+       %.4f\n", scores.FractionAtLeast(20))
		fmt.Printf("mean P(err) %.6f\n", scores.MeanErrorProbability())

		read := quality.QualifiedSequence{ID: "read", Bases: bases, Quality: scores}
		if !read.IsValid() {
			log.Fatalf("bases (%d) and quality string (%d) differ in length", len(bases), scores.Len())
		}

		trimmed := read.Trim(uint8(cfg.Quality.TrimThreshold), cfg.Quality.MinLength)
		fmt.Printf("trimmed    %s (%d of %d bases kept)\n", trimmed.Bases, trimmed.Len(), read.Len())

		if window := scores.SlidingWindowMean(cfg.Quality.Window); window != nil {
			fmt.Printf("window means %.2f..%.2f\n", window[0], window[len(window)-1])
		}
	},
}

func init() {
	rootCmd.AddCommand(qualityCmd)

	qualityCmd.Flags().String("encoding", "auto", "quality encoding: auto, phred+33, phred+64 or solexa")
	qualityCmd.Flags().Int("trim-threshold", 20, "minimum quality kept by end-trimming")
	qualityCmd.Flags().Int("min-length", 25, "abandon trims leaving fewer bases than this")

	viper.BindPFlag("quality.encoding", qualityCmd.Flags().Lookup("encoding"))
	viper.BindPFlag("quality.trim-threshold", qualityCmd.Flags().Lookup("trim-threshold"))
	viper.BindPFlag("quality.min-length", qualityCmd.Flags().Lookup("min-length"))
}
