package manifest

// RunReport is the YAML summary written by `verify --report`.
type RunReport struct {
	GeneratedAt  string          `yaml:"generated_at"`
	Sources      string          `yaml:"sources"`
	Results      string          `yaml:"results"`
	SourceFormat string          `yaml:"source_format"`
	Strict       bool            `yaml:"strict"`
	Fingerprint  string          `yaml:"fingerprint"`
	Verdict      string          `yaml:"verdict"` // "success" or "mismatch"
	Message      string          `yaml:"message"`
	Mismatch     *MismatchReport `yaml:"mismatch,omitempty"`
	Stats        Stats           `yaml:"stats"`
	TopWords     []string        `yaml:"top_words,omitempty"`
	SourceFiles  []SourceReport  `yaml:"source_files"`
}

// MismatchReport holds the first divergent word. Actual is nil when the
// word is missing from the reduced results.
type MismatchReport struct {
	Word     string `yaml:"word"`
	Expected int    `yaml:"expected"`
	Actual   *int   `yaml:"actual"`
}

type Stats struct {
	SourceFiles   int `yaml:"source_files"`
	ResultFiles   int `yaml:"result_files"`
	DistinctWords int `yaml:"distinct_words"`
	TotalWords    int `yaml:"total_words"`
	ClaimedWords  int `yaml:"claimed_words"`
}

// SourceReport describes one source document.
type SourceReport struct {
	Name      string `yaml:"name"`
	SizeBytes int    `yaml:"size_bytes"`
	Words     int    `yaml:"words"`
	Language  string `yaml:"language,omitempty"`
}
