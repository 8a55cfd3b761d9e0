package quality

// Encoding selects the ASCII offset scheme for quality strings.
type Encoding int

const (
	// Phred33 is Sanger / Illumina 1.8+ (ASCII 33–126, Q 0–93).
	Phred33 Encoding = iota
	// Phred64 is Illumina 1.3–1.7 (ASCII 64–126).
	Phred64
	// Solexa is Solexa / Illumina 1.0. It shares the offset-64 decode
	// arithmetic with Phred64 and differs only in interpretation.
	Solexa
)

// MaxScore is the upper bound a decoded score is clamped to.
const MaxScore = 93

// offset returns the ASCII offset of the encoding.
func (e Encoding) offset() int {
	if e == Phred33 {
		return 33
	}

	return 64
}

// String names the encoding for display.
func (e Encoding) String() string {
	switch e {
	case Phred33:
		return "phred+33"
	case Phred64:
		return "phred+64"
	case Solexa:
		return "solexa+64"
	default:
		return "unknown"
	}
}

// DetectEncoding guesses the encoding of a quality string from its lowest
// character: below ASCII 59 only Phred+33 is possible; 59–63 points at
// Solexa; anything higher is read as Phred+64.
func DetectEncoding(ascii string) Encoding {
	minChar := 127
	for i := 0; i < len(ascii); i++ {
		if int(ascii[i]) < minChar {
			minChar = int(ascii[i])
		}
	}

	switch {
	case minChar < 59:
		return Phred33
	case minChar < 64:
		return Solexa
	default:
		return Phred64
	}
}
