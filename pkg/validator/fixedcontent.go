package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
)

// checkAgencyContent validates agency.txt against the operator identity of
// the profile: the exact header set, a single data row and the exact value
// of every field.
func checkAgencyContent(agency feed.Table, p *profile.Profile) (Status, []string) {
	if len(agency) == 0 {
		return StatusError, []string{"File agency.txt empty or missing."}
	}

	var messages []string

	var missingHeaders []string
	for _, header := range p.Operator.ExpectedHeader {
		if !agency.HasColumn(header) {
			missingHeaders = append(missingHeaders, header)
		}
	}
	if len(missingHeaders) > 0 {
		messages = append(messages, fmt.Sprintf("Missing columns: %s", strings.Join(missingHeaders, ", ")))
	}

	if len(agency) != 1 {
		messages = append(messages, fmt.Sprintf("File must have 1 data row but has %d.", len(agency)))
	} else {
		row := agency[0]
		for index, field := range p.Operator.ExpectedHeader {
			expected := p.Operator.ExpectedRow[index]
			if row[field] != expected {
				messages = append(messages, fmt.Sprintf("Field '%s': expected '%s' but found '%s'.", field, expected, row[field]))
			}
		}
	}

	if len(messages) == 0 {
		return StatusSuccess, []string{"File content matches the expected values."}
	}

	return StatusError, limitMessages(messages)
}

// checkFeedInfoConsistency validates the single feed_info.txt row against
// the profile, checks that every calendar exception date falls inside the
// feed validity window, and that feed_desc ends with feed_version (dots
// replaced by underscores). Missing version or description fields downgrade
// that last rule to a warning rather than failing it.
func checkFeedInfoConsistency(feedInfo feed.Table, calendarDates feed.Table, p *profile.Profile) (Status, []string) {
	if len(feedInfo) != 1 {
		return StatusError, []string{fmt.Sprintf("File must have 1 data row but has %d.", len(feedInfo))}
	}

	var messages []string
	status := StatusSuccess

	row := feedInfo[0]
	for _, expected := range p.FeedInfo {
		if row[expected.Column] != expected.Value {
			messages = append(messages, fmt.Sprintf("Incorrect content in column '%s'. Expected: '%s', Found: '%s'",
				expected.Column, expected.Value, row[expected.Column]))
		}
	}

	startDate, startErr := strconv.Atoi(row["feed_start_date"])
	endDate, endErr := strconv.Atoi(row["feed_end_date"])

	if startErr == nil && endErr == nil {
		for index, calendarRow := range calendarDates {
			date := calendarRow["date"]
			if date == "" {
				continue
			}

			dateNumber, err := strconv.Atoi(date)
			if err != nil {
				continue
			}

			if dateNumber < startDate || dateNumber > endDate {
				messages = append(messages, fmt.Sprintf("Date '%s' (line %d of calendar_dates.txt) is outside the feed window.",
					date, feed.LineNumber(index)))
			}
		}
	}

	version := row["feed_version"]
	description := row["feed_desc"]
	if version != "" && description != "" {
		if !strings.HasSuffix(description, strings.Replace(version, ".", "_", 1)) {
			messages = append(messages, fmt.Sprintf("Inconsistency between 'feed_version' (%s) and 'feed_desc' (%s).", version, description))
		}
	} else {
		status = StatusWarning
		messages = append(messages, "Cannot verify consistency between 'feed_version' and 'feed_desc' (missing fields).")
	}

	if len(messages) > 0 && status == StatusSuccess {
		status = StatusError
	}
	if len(messages) == 0 {
		messages = append(messages, "Consistency verified successfully.")
	}

	return status, limitMessages(messages)
}
