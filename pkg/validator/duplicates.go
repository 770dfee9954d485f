package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
)

// checkDuplicates flags every value of the column that appears on more than
// one line. Grouping is by exact string equality, empty values are skipped.
func checkDuplicates(table feed.Table, column string) (Status, []string) {
	if len(table) == 0 {
		return StatusWarning, []string{"File empty or not loaded."}
	}
	if !table.HasColumn(column) {
		return StatusWarning, []string{fmt.Sprintf("Column '%s' not found.", column)}
	}

	lines := map[string][]int{}
	var order []string

	for index, row := range table {
		value := row[column]
		if value == "" {
			continue
		}

		if _, seen := lines[value]; !seen {
			order = append(order, value)
		}
		lines[value] = append(lines[value], feed.LineNumber(index))
	}

	var messages []string
	for _, value := range order {
		if len(lines[value]) > 1 {
			messages = append(messages, fmt.Sprintf("ID '%s' duplicated on lines: %s", value, joinLines(lines[value])))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No duplicate IDs found."}
	}

	return StatusError, limitMessages(messages)
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for index, line := range lines {
		parts[index] = strconv.Itoa(line)
	}

	return strings.Join(parts, ", ")
}
