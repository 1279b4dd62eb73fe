package renamer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CaseOption selects how ChangeCase transforms a filename stem.
type CaseOption string

const (
	CasePreserve CaseOption = "preserve"
	CaseLower    CaseOption = "lower"
	CaseUpper    CaseOption = "upper"
	CaseTitle    CaseOption = "title"
)

// NumberPosition selects where AddSequentialNumber splices the number.
type NumberPosition string

const (
	NumberPrefix NumberPosition = "prefix"
	NumberSuffix NumberPosition = "suffix"
)

// NumberOptions controls the sequential numbering stage.
type NumberOptions struct {
	Padding   int            `yaml:"padding"`   // minimum digits, zero-padded
	Start     int            `yaml:"start"`     // number assigned to index 0
	Step      int            `yaml:"step"`      // increment per batch position
	Position  NumberPosition `yaml:"position"`  // prefix or suffix, suffix when empty
	Separator string         `yaml:"separator"` // between stem and number
}

// DefaultNumberOptions returns the standard numbering: two digits,
// counting 1, 2, 3..., appended after the stem with an underscore.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		Padding:   2,
		Start:     1,
		Step:      1,
		Position:  NumberSuffix,
		Separator: "_",
	}
}

// Scheme is the full set of renaming options for one batch run. The
// zero value leaves every name unchanged.
type Scheme struct {
	ReplaceName bool   `yaml:"replace_name"` // swap the whole stem for NewName
	NewName     string `yaml:"new_name"`
	Prefix      string `yaml:"prefix"` // ignored while ReplaceName is set
	Suffix      string `yaml:"suffix"`
	Find        string `yaml:"find"` // literal, not a pattern
	Replace     string `yaml:"replace"`
	CaseOption  CaseOption `yaml:"case"`

	UseNumbering  bool          `yaml:"use_numbering"`
	NumberOptions NumberOptions `yaml:"number_options"`
}

// DefaultScheme returns a scheme with every stage off and the standard
// numbering options ready to enable.
func DefaultScheme() Scheme {
	return Scheme{
		CaseOption:    CasePreserve,
		NumberOptions: DefaultNumberOptions(),
	}
}

// Validate checks the enum fields. An empty case option or position is
// accepted and treated as the default.
func (s Scheme) Validate() error {
	switch s.CaseOption {
	case "", CasePreserve, CaseLower, CaseUpper, CaseTitle:
	default:
		return fmt.Errorf("unknown case option %q", s.CaseOption)
	}
	switch s.NumberOptions.Position {
	case "", NumberPrefix, NumberSuffix:
	default:
		return fmt.Errorf("unknown number position %q", s.NumberOptions.Position)
	}
	if s.NumberOptions.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %d", s.NumberOptions.Padding)
	}
	return nil
}

// LoadScheme reads a YAML scheme file. Missing keys keep their
// defaults, so a file can set just the fields it cares about.
func LoadScheme(path string) (Scheme, error) {
	scheme := DefaultScheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return scheme, fmt.Errorf("failed to read scheme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return scheme, fmt.Errorf("failed to parse scheme file %s: %w", path, err)
	}
	if err := scheme.Validate(); err != nil {
		return scheme, fmt.Errorf("invalid scheme in %s: %w", path, err)
	}
	return scheme, nil
}

// SaveScheme writes the scheme to path as YAML.
func SaveScheme(path string, scheme Scheme) error {
	data, err := yaml.Marshal(scheme)
	if err != nil {
		return fmt.Errorf("failed to encode scheme: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scheme file: %w", err)
	}
	return nil
}
