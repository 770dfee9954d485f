package validator

import (
	"fmt"
	"strconv"

	"github.com/feedlint/feedlint/pkg/feed"
)

// checkStopCoordinates flags stops whose latitude or longitude is missing,
// non-numeric or outside the geographically valid range.
func checkStopCoordinates(stops feed.Table) (Status, []string) {
	if len(stops) == 0 {
		return StatusSuccess, nil
	}

	var messages []string

	for index, row := range stops {
		latitude, latErr := strconv.ParseFloat(row["stop_lat"], 64)
		longitude, lonErr := strconv.ParseFloat(row["stop_lon"], 64)

		if latErr != nil || latitude < -90 || latitude > 90 {
			messages = append(messages, fmt.Sprintf("Line %d: invalid latitude '%s' for stop_id '%s'.",
				feed.LineNumber(index), row["stop_lat"], row["stop_id"]))
		}
		if lonErr != nil || longitude < -180 || longitude > 180 {
			messages = append(messages, fmt.Sprintf("Line %d: invalid longitude '%s' for stop_id '%s'.",
				feed.LineNumber(index), row["stop_lon"], row["stop_id"]))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No invalid coordinates found."}
	}

	return StatusError, limitMessages(messages)
}
