// Command bioseq is a command line front to the sequence analysis
// engine: per-sequence statistics, pairwise alignment, k-mer tables and
// quality handling over sequences given as arguments.
package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bioseq/config"
	"github.com/katalvlaran/bioseq/seq"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "bioseq",
	Short:   "Analyze nucleotide sequences: statistics, alignment, k-mers and quality",
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads an optional bioseq.yaml from the working directory.
func initConfig() {
	viper.SetConfigName("bioseq")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults cover everything.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("reading config: %v", err)
		}
	}
}

// loadConfig resolves the full engine configuration from viper.
func loadConfig() config.Config {
	c, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("%v", err)
	}

	return c
}

// parseSequences builds Sequences from command line arguments.
func parseSequences(args []string) []seq.Sequence {
	sequences := make([]seq.Sequence, 0, len(args))
	for i, bases := range args {
		s, err := seq.New(bases)
		if err != nil {
			log.Fatalf("argument %d: %v", i+1, err)
		}
		sequences = append(sequences, s)
	}

	return sequences
}
