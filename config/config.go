package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/bioseq/align"
	"github.com/katalvlaran/bioseq/quality"
)

// ScoringConfig selects the alignment scoring scheme. Scheme picks a
// preset; "custom" reads the four numeric fields instead.
type ScoringConfig struct {
	// one of: similarity, mismatch, strict, custom
	Scheme string `mapstructure:"scheme"`

	Match     int `mapstructure:"match"`
	Mismatch  int `mapstructure:"mismatch"`
	GapOpen   int `mapstructure:"gap-open"`
	GapExtend int `mapstructure:"gap-extend"`
}

// Matrix resolves the configured scheme to a ScoringMatrix.
func (s ScoringConfig) Matrix() (align.ScoringMatrix, error) {
	switch s.Scheme {
	case "similarity":
		return align.DNASimilarity(), nil
	case "mismatch":
		return align.DNAMismatch(), nil
	case "strict":
		return align.StrictMatch(), nil
	case "custom":
		return align.ScoringMatrix{
			Match:     s.Match,
			Mismatch:  s.Mismatch,
			GapOpen:   s.GapOpen,
			GapExtend: s.GapExtend,
		}, nil
	default:
		return align.ScoringMatrix{}, fmt.Errorf("%w: scoring scheme %q", ErrInvalidValue, s.Scheme)
	}
}

// KMerConfig is settings for k-mer counting.
type KMerConfig struct {
	// word length
	K int `mapstructure:"k"`

	// fold each k-mer with its reverse complement
	Canonical bool `mapstructure:"canonical"`
}

// QualityConfig is settings for quality decoding and trimming.
type QualityConfig struct {
	// one of: auto, phred+33, phred+64, solexa
	Encoding string `mapstructure:"encoding"`

	// minimum score kept by end-trimming
	TrimThreshold int `mapstructure:"trim-threshold"`

	// trims leaving fewer bases than this are abandoned
	MinLength int `mapstructure:"min-length"`

	// sliding-window width for windowed quality means
	Window int `mapstructure:"window"`
}

// Scheme resolves the configured encoding name, sniffing the sample
// quality string when set to "auto".
func (q QualityConfig) Scheme(sample string) (quality.Encoding, error) {
	switch q.Encoding {
	case "auto":
		return quality.DetectEncoding(sample), nil
	case "phred+33", "phred33":
		return quality.Phred33, nil
	case "phred+64", "phred64":
		return quality.Phred64, nil
	case "solexa":
		return quality.Solexa, nil
	default:
		return quality.Phred33, fmt.Errorf("%w: %q", ErrUnknownEncoding, q.Encoding)
	}
}

// Config is the root-level settings struct, a mix of bioseq.yaml
// settings and command-line flags bound by the CLI.
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring"`
	KMer    KMerConfig    `mapstructure:"kmer"`
	Quality QualityConfig `mapstructure:"quality"`
}

// SetDefaults registers every setting's default on v, so a bare
// environment still loads a working configuration.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scoring.scheme", "similarity")
	v.SetDefault("scoring.match", 2)
	v.SetDefault("scoring.mismatch", -1)
	v.SetDefault("scoring.gap-open", -2)
	v.SetDefault("scoring.gap-extend", -1)

	v.SetDefault("kmer.k", 4)
	v.SetDefault("kmer.canonical", false)

	v.SetDefault("quality.encoding", "auto")
	v.SetDefault("quality.trim-threshold", 20)
	v.SetDefault("quality.min-length", 25)
	v.SetDefault("quality.window", 4)
}

// Validate checks every numeric setting's range.
func (c Config) Validate() error {
	if _, err := c.Scoring.Matrix(); err != nil {
		return err
	}
	if c.KMer.K < 1 {
		return fmt.Errorf("%w: kmer.k %d, want >= 1", ErrInvalidValue, c.KMer.K)
	}
	if c.Quality.TrimThreshold < 0 || c.Quality.TrimThreshold > int(quality.MaxScore) {
		return fmt.Errorf("%w: quality.trim-threshold %d, want 0..%d", ErrInvalidValue, c.Quality.TrimThreshold, quality.MaxScore)
	}
	if c.Quality.MinLength < 0 {
		return fmt.Errorf("%w: quality.min-length %d, want >= 0", ErrInvalidValue, c.Quality.MinLength)
	}
	if c.Quality.Window < 1 {
		return fmt.Errorf("%w: quality.window %d, want >= 1", ErrInvalidValue, c.Quality.Window)
	}

	return nil
}

// Load applies defaults to v, unmarshals the full Config and validates
// it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
