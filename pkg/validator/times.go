package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
)

const (
	secondsPerDay = 86400

	// Trip end times inside the small-hours band are treated as belonging
	// to the previous service day.
	rolloverCutoff = 4 * 3600

	// Frequency windows crossing midnight shift early trip times forward
	// by a day; anything before 05:00 counts as early.
	overnightCutoff = 5 * 3600
)

// timeToSeconds converts a HH:MM:SS string into seconds since midnight.
// Malformed input reports ok=false, never an error.
func timeToSeconds(value string) (int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) < 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}

	return hours*3600 + minutes*60 + seconds, true
}

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)

// checkTimeFormat verifies that trip_first and trip_last follow the
// HH:MM:SS shape and carry minutes and seconds below 60.
func checkTimeFormat(trips feed.Table) (Status, []string) {
	if len(trips) == 0 {
		return StatusSuccess, nil
	}
	if !trips.HasColumn("trip_first") || !trips.HasColumn("trip_last") {
		return StatusWarning, []string{"Columns 'trip_first' or 'trip_last' not found."}
	}

	var messages []string

	for index, row := range trips {
		for _, field := range []string{"trip_first", "trip_last"} {
			value := row[field]
			if value == "" {
				continue
			}

			if !timePattern.MatchString(value) {
				messages = append(messages, fmt.Sprintf("Line %d: %s '%s' is not in HH:MM:SS format for trip_id '%s'.",
					feed.LineNumber(index), field, value, row["trip_id"]))
				continue
			}

			parts := strings.Split(value, ":")
			minutes, _ := strconv.Atoi(parts[1])
			seconds, _ := strconv.Atoi(parts[2])
			if minutes >= 60 || seconds >= 60 {
				messages = append(messages, fmt.Sprintf("Line %d: %s '%s' has invalid minutes or seconds.",
					feed.LineNumber(index), field, value))
			}
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"All time fields are in the correct HH:MM:SS format."}
	}

	return StatusError, limitMessages(messages)
}

// checkTripTimeLogic reports trips whose start time is later than their end
// time. End times shortly after midnight roll over to the next day first, so
// overnight trips are tolerated.
func checkTripTimeLogic(trips feed.Table) (Status, []string) {
	if len(trips) == 0 {
		return StatusSuccess, nil
	}

	var messages []string

	for index, row := range trips {
		first, firstOk := timeToSeconds(row["trip_first"])
		last, lastOk := timeToSeconds(row["trip_last"])

		if !firstOk || !lastOk {
			continue
		}

		adjustedLast := last
		if last < first && last < rolloverCutoff {
			adjustedLast += secondsPerDay
		}

		if first > adjustedLast {
			messages = append(messages, fmt.Sprintf("Line %d: trip_first (%s) > trip_last (%s) for trip_id '%s'.",
				feed.LineNumber(index), row["trip_first"], row["trip_last"], row["trip_id"]))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"No time ordering issues found."}
	}

	return StatusError, limitMessages(messages)
}

type frequencyWindow struct {
	start int
	end   int
}

// checkTripInFrequencyWindow verifies that each trip's start and end times
// fall within at least one of the frequency windows declared for that trip.
// Windows crossing midnight shift the trip's early times forward a day
// before the comparison.
func checkTripInFrequencyWindow(trips feed.Table, frequencies feed.Table) (Status, []string) {
	if len(trips) == 0 || len(frequencies) == 0 {
		return StatusSuccess, []string{"All trips with frequencies fall within their time windows."}
	}

	windows := map[string][]frequencyWindow{}
	for _, row := range frequencies {
		tripID := row["trip_id"]
		start, startOk := timeToSeconds(row["start_time"])
		end, endOk := timeToSeconds(row["end_time"])

		if tripID != "" && startOk && endOk {
			windows[tripID] = append(windows[tripID], frequencyWindow{start: start, end: end})
		}
	}

	var messages []string

	for index, row := range trips {
		tripID := row["trip_id"]
		tripWindows := windows[tripID]
		if tripID == "" || len(tripWindows) == 0 {
			continue
		}

		first, firstOk := timeToSeconds(row["trip_first"])
		last, lastOk := timeToSeconds(row["trip_last"])
		if !firstOk || !lastOk {
			continue
		}

		maxEnd := tripWindows[0].end
		for _, window := range tripWindows[1:] {
			if window.end > maxEnd {
				maxEnd = window.end
			}
		}

		if maxEnd >= secondsPerDay {
			if first < overnightCutoff {
				first += secondsPerDay
			}
			if last < overnightCutoff {
				last += secondsPerDay
			}
		}

		firstValid := false
		lastValid := false
		for _, window := range tripWindows {
			if first >= window.start && first <= window.end {
				firstValid = true
			}
			if last >= window.start && last <= window.end {
				lastValid = true
			}
		}

		if !firstValid {
			messages = append(messages, fmt.Sprintf("Line %d (trips.txt): trip_first '%s' for trip id '%s' is outside the frequency windows.",
				feed.LineNumber(index), row["trip_first"], tripID))
		}
		if !lastValid {
			messages = append(messages, fmt.Sprintf("Line %d (trips.txt): trip_last '%s' for trip id '%s' is outside the frequency windows.",
				feed.LineNumber(index), row["trip_last"], tripID))
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"All trips with frequencies fall within their time windows."}
	}

	return StatusError, limitMessages(messages)
}
