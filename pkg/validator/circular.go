package validator

import (
	"fmt"

	"github.com/feedlint/feedlint/pkg/feed"
)

// checkCircularRoutes verifies that routes flagged as circular declare the
// same origin and destination. Rows without the flag are not circular.
func checkCircularRoutes(routes feed.Table) (Status, []string) {
	var messages []string

	for index, row := range routes {
		if row["circular"] != "1" {
			continue
		}

		if row["route_origin"] != row["route_destination"] {
			messages = append(messages, fmt.Sprintf("Line %d: circular route '%s' has different origin and destination.",
				feed.LineNumber(index), row["route_id"]))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No circular route inconsistencies found."}
	}

	return StatusError, limitMessages(messages)
}
