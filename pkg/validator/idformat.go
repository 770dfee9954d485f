package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
)

// checkIDFormat verifies that every non-empty value of the column fully
// matches the pattern. An empty table is not a format violation.
func checkIDFormat(table feed.Table, column string, pattern *regexp.Regexp) (Status, []string) {
	if len(table) == 0 {
		return StatusSuccess, nil
	}
	if !table.HasColumn(column) {
		return StatusWarning, []string{fmt.Sprintf("Column '%s' not found.", column)}
	}

	var messages []string
	for index, row := range table {
		value := row[column]
		if value == "" || strings.TrimSpace(value) == "" {
			continue
		}

		if !pattern.MatchString(value) {
			messages = append(messages, fmt.Sprintf("Line %d: ID '%s' does not match the expected pattern.", feed.LineNumber(index), value))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{fmt.Sprintf("All IDs in column '%s' match the expected format.", column)}
	}

	return StatusError, limitMessages(messages)
}
