package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bioseq/kmer"
	"github.com/katalvlaran/bioseq/stats"
)

var kmerTop int

// kmerCmd represents the kmer command.
var kmerCmd = &cobra.Command{
	Use:   "kmer SEQUENCE...",
	Short: "Count k-mers across sequences and print the spectrum",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		sequences := parseSequences(args)

		var table stats.Table
		var top []kmer.Entry
		if cfg.KMer.Canonical {
			counter, err := kmer.NewCanonicalCounter(cfg.KMer.K)
			if err != nil {
				log.Fatalf("%v", err)
			}
			for _, s := range sequences {
				counter.Count(s)
			}
			table, top = counter, counter.MostFrequent(kmerTop)
		} else {
			counter, err := kmer.NewCounter(cfg.KMer.K)
			if err != nil {
				log.Fatalf("%v", err)
			}
			for _, s := range sequences {
				counter.Count(s)
			}
			table, top = counter, counter.MostFrequent(kmerTop)
		}

		summary := stats.DescribeKMers(table)
		fmt.Printf("k          %d\n", summary.K)
		fmt.Printf("unique     %d\n", summary.Unique)
		fmt.Printf("total      %d\n", summary.Total)
		fmt.Printf("coverage   %.6f\n", summary.Coverage)
		fmt.Printf("singletons %d\n", summary.Singletons)
		fmt.Printf("Simpson    %.4f\n", summary.SimpsonIndex)
		fmt.Printf("Shannon    %.4f\n", summary.ShannonIndex)

		fmt.Println("most frequent:")
		for _, entry := range top {
			fmt.Printf("  %s %d\n", entry.KMer, entry.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(kmerCmd)

	kmerCmd.Flags().IntVarP(&kmerTop, "top", "t", 5, "number of most frequent k-mers to print")
	kmerCmd.Flags().IntP("k", "k", 4, "k-mer length")
	kmerCmd.Flags().Bool("canonical", false, "fold k-mers with their reverse complements")

	viper.BindPFlag("kmer.k", kmerCmd.Flags().Lookup("k"))
	viper.BindPFlag("kmer.canonical", kmerCmd.Flags().Lookup("canonical"))
}
