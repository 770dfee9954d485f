package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
)

// Replacement character, question mark, NUL and the punctuation that never
// belongs in the operator's free text fields.
var corruptedCharacters = regexp.MustCompile("[�?\x00!#+$%&<;@]")

// checkTextEncoding scans the profile's free text columns for corrupted or
// forbidden characters.
func checkTextEncoding(f *feed.Feed, p *profile.Profile) (Status, []string) {
	var messages []string

	for _, fileColumns := range p.EncodingColumns {
		table := f.Get(fileColumns.File)
		if len(table) == 0 {
			continue
		}

		for _, column := range fileColumns.Columns {
			for index, row := range table {
				value := row[column]
				if value != "" && corruptedCharacters.MatchString(value) {
					messages = append(messages, fmt.Sprintf("%s (column %s, line %d): '%s' contains invalid characters.",
						fileColumns.File, column, feed.LineNumber(index), value))
				}
			}
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No encoding issues or corrupted characters found in text fields."}
	}

	return StatusError, limitMessages(messages)
}

var (
	leadingWhitespace  = regexp.MustCompile(`^\s`)
	trailingWhitespace = regexp.MustCompile(`\s$`)
	doubleSpaces       = regexp.MustCompile(` {2,}`)
)

// checkWhitespace combines two scans into one result: rows that carry no
// data at all anywhere in the feed, and whitespace anomalies in the
// profile's free text columns. Blank rows force an error, whitespace alone
// is only a warning.
func checkWhitespace(f *feed.Feed, p *profile.Profile) (Status, []string) {
	var messages []string
	blankRows := false

	for _, fileName := range feed.FileNames {
		for index, row := range f.Get(fileName) {
			if row.Blank() {
				messages = append(messages, fmt.Sprintf("%s (line %d): contains only separators (no data).", fileName, feed.LineNumber(index)))
				blankRows = true
			}
		}
	}

	for _, fileColumns := range p.WhitespaceColumns {
		table := f.Get(fileColumns.File)
		if len(table) == 0 {
			continue
		}

		for _, column := range fileColumns.Columns {
			for index, row := range table {
				value := row[column]
				if value == "" {
					continue
				}

				var conditions []string
				if leadingWhitespace.MatchString(value) {
					conditions = append(conditions, "leading whitespace")
				}
				if trailingWhitespace.MatchString(value) {
					conditions = append(conditions, "trailing whitespace")
				}
				if doubleSpaces.MatchString(value) {
					conditions = append(conditions, "double spaces")
				}

				if len(conditions) > 0 {
					displayValue := strings.ReplaceAll(value, " ", "•")
					messages = append(messages, fmt.Sprintf("%s (column %s, line %d): '%s' contains %s.",
						fileColumns.File, column, feed.LineNumber(index), displayValue, strings.Join(conditions, " and ")))
				}
			}
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No text formatting issues found."}
	}

	if blankRows {
		return StatusError, limitMessages(messages)
	}

	return StatusWarning, limitMessages(messages)
}
