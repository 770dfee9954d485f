package profile

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProfileYaml []byte

// IDPattern binds one identifier column to the pattern its values must match.
type IDPattern struct {
	File    string `yaml:"file"`
	Column  string `yaml:"column"`
	Pattern string `yaml:"pattern"`

	regex *regexp.Regexp
}

// Regex returns the compiled pattern.
func (p *IDPattern) Regex() *regexp.Regexp {
	return p.regex
}

// DateRange is an inclusive window of ISO formatted dates.
type DateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Contains reports whether the ISO date falls inside the window. ISO dates
// compare correctly as plain strings.
func (r DateRange) Contains(isoDate string) bool {
	return isoDate >= r.Start && isoDate <= r.End
}

// ExpectedValue is one column of a single-row configuration table together
// with the exact content it must carry.
type ExpectedValue struct {
	Column string `yaml:"column"`
	Value  string `yaml:"value"`
}

// Operator describes the exact agency.txt contents for the network the
// profile belongs to.
type Operator struct {
	ExpectedHeader []string `yaml:"expected_header"`
	ExpectedRow    []string `yaml:"expected_row"`
}

// FileColumns names the free-text columns of one feed file.
type FileColumns struct {
	File    string   `yaml:"file"`
	Columns []string `yaml:"columns"`
}

// Profile is the versioned static configuration of the validator: the fixed
// expected contents, identifier patterns and the holiday/period calendar for
// one network. Values are data, not behaviour, and are kept exactly as
// published by the operator.
type Profile struct {
	Operator Operator        `yaml:"operator"`
	FeedInfo []ExpectedValue `yaml:"feed_info"`

	IDPatterns []IDPattern `yaml:"id_patterns"`

	Holidays     []string    `yaml:"holidays"`
	SummerPeriod DateRange   `yaml:"summer_period"`
	SchoolBreaks []DateRange `yaml:"school_breaks"`

	EncodingColumns   []FileColumns `yaml:"encoding_columns"`
	WhitespaceColumns []FileColumns `yaml:"whitespace_columns"`

	holidaySet map[string]bool
}

// Pattern returns the compiled identifier pattern configured for the file
// and column, or nil when the profile carries none.
func (p *Profile) Pattern(file string, column string) *regexp.Regexp {
	for index := range p.IDPatterns {
		pattern := &p.IDPatterns[index]
		if pattern.File == file && pattern.Column == column {
			return pattern.regex
		}
	}

	return nil
}

// IsHoliday reports whether the ISO date is a national holiday covered by
// the profile.
func (p *Profile) IsHoliday(isoDate string) bool {
	return p.holidaySet[isoDate]
}

// Parse decodes a profile document and compiles its patterns.
func Parse(document []byte) (*Profile, error) {
	var profile Profile

	if err := yaml.Unmarshal(document, &profile); err != nil {
		return nil, err
	}

	if len(profile.Operator.ExpectedRow) != len(profile.Operator.ExpectedHeader) {
		return nil, fmt.Errorf("operator expected_row and expected_header must be the same length")
	}

	for index := range profile.IDPatterns {
		pattern := &profile.IDPatterns[index]

		regex, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for %s %s: %w", pattern.File, pattern.Column, err)
		}

		pattern.regex = regex
	}

	profile.holidaySet = map[string]bool{}
	for _, holiday := range profile.Holidays {
		profile.holidaySet[holiday] = true
	}

	return &profile, nil
}

// Load reads a profile override from disk.
func Load(path string) (*Profile, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(document)
}

// Default returns the embedded profile.
func Default() *Profile {
	profile, err := Parse(defaultProfileYaml)
	if err != nil {
		panic(err)
	}

	return profile
}
