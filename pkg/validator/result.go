package validator

import "fmt"

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
	StatusInfo    Status = "INFO"
)

type Category string

const (
	CategoryGeneral  Category = "GENERAL"
	CategoryCalendar Category = "CALENDAR"
)

// Rule identifies one entry of the validation catalogue. The identifier
// carries the display title and report description so neither is ever used
// as a lookup key.
type Rule int

const (
	RuleIgnoredServiceIDs Rule = iota
	RuleDuplicateRoutes
	RuleDuplicateTrips
	RuleDuplicateStops
	RuleDuplicateFareAttributes
	RuleRouteIDFormat
	RuleTripIDFormat
	RuleShapeIDFormat
	RulePatternIDFormat
	RuleStopIDFormatStops
	RuleStopIDFormatStopTimes
	RuleStopSequenceContinuity
	RuleCorruptedCharacters
	RuleUnwantedWhitespace
	RuleAgencyContent
	RuleFeedInfoConsistency
	RuleTimeFormat
	RuleTimeLogic
	RuleStopCoordinates
	RuleCircularRoutes
	RuleFrequencyWindows
	RuleReferentialIntegrity
	RuleCalendarExtension
	RuleCalendarHoliday
	RuleCalendarPeriod
	RuleCalendarDayType
)

type ruleDetails struct {
	Title       string
	Description string
	Category    Category
}

var ruleCatalogue = map[Rule]ruleDetails{
	RuleIgnoredServiceIDs: {
		Title:       "Ignored service IDs (not defined in calendar_dates)",
		Description: "Reports service_ids that are used by trips but not defined in calendar_dates.txt, and are therefore ignored by some checks.",
		Category:    CategoryGeneral,
	},
	RuleDuplicateRoutes: {
		Title:       "Duplicates in routes.txt",
		Description: "Checks for duplicated IDs in the 'route_id' column of routes.txt, which is not allowed.",
		Category:    CategoryGeneral,
	},
	RuleDuplicateTrips: {
		Title:       "Duplicates in trips.txt",
		Description: "Checks for duplicated IDs in the 'trip_id' column of trips.txt, which is not allowed.",
		Category:    CategoryGeneral,
	},
	RuleDuplicateStops: {
		Title:       "Duplicates in stops.txt",
		Description: "Checks for duplicated IDs in the 'stop_id' column of stops.txt, which is not allowed.",
		Category:    CategoryGeneral,
	},
	RuleDuplicateFareAttributes: {
		Title:       "Duplicates in fare_attributes.txt",
		Description: "Checks for duplicated IDs in the 'fare_id' column of fare_attributes.txt.",
		Category:    CategoryGeneral,
	},
	RuleRouteIDFormat: {
		Title:       "ID format in trips.txt (route_id)",
		Description: "Ensures IDs in the 'route_id' column follow the expected format (e.g. '4401_0').",
		Category:    CategoryGeneral,
	},
	RuleTripIDFormat: {
		Title:       "ID format in trips.txt (trip_id)",
		Description: "Ensures IDs in the 'trip_id' column follow the expected format (e.g. '4401_0_1|1').",
		Category:    CategoryGeneral,
	},
	RuleShapeIDFormat: {
		Title:       "ID format in trips.txt (shape_id)",
		Description: "Ensures IDs in the 'shape_id' column follow the expected format (e.g. 'shp_4401_0_1').",
		Category:    CategoryGeneral,
	},
	RulePatternIDFormat: {
		Title:       "ID format in trips.txt (pattern_id)",
		Description: "Ensures IDs in the 'pattern_id' column follow the expected format (e.g. '4401_0_1').",
		Category:    CategoryGeneral,
	},
	RuleStopIDFormatStops: {
		Title:       "stop_id format in stops.txt (6 digits)",
		Description: "Ensures every 'stop_id' in stops.txt contains exactly 6 numeric digits.",
		Category:    CategoryGeneral,
	},
	RuleStopIDFormatStopTimes: {
		Title:       "stop_id format in stop_times.txt (6 digits)",
		Description: "Ensures every 'stop_id' in stop_times.txt contains exactly 6 numeric digits.",
		Category:    CategoryGeneral,
	},
	RuleStopSequenceContinuity: {
		Title:       "stop_sequence continuity in stop_times.txt",
		Description: "Checks that the stop sequence (stop_sequence) is continuous and increasing.",
		Category:    CategoryGeneral,
	},
	RuleCorruptedCharacters: {
		Title:       "Corrupted characters / encoding",
		Description: "Checks text fields for corrupted characters.",
		Category:    CategoryGeneral,
	},
	RuleUnwantedWhitespace: {
		Title:       "Unwanted whitespace",
		Description: "Checks text fields for whitespace at the start or end of values.",
		Category:    CategoryGeneral,
	},
	RuleAgencyContent: {
		Title:       "Fixed content of agency.txt",
		Description: "Validates that the contents of agency.txt exactly match the expected values for the operator.",
		Category:    CategoryGeneral,
	},
	RuleFeedInfoConsistency: {
		Title:       "Consistency of feed_info.txt",
		Description: "Checks the internal consistency of feed_info.txt and that the dates in calendar_dates.txt fall within the feed validity window.",
		Category:    CategoryGeneral,
	},
	RuleTimeFormat: {
		Title:       "Time format in trips.txt",
		Description: "Ensures the trip start time (trip_first) and end time (trip_last) are in the correct format (HH:MM:SS).",
		Category:    CategoryGeneral,
	},
	RuleTimeLogic: {
		Title:       "Time logic in trips.txt",
		Description: "Ensures the trip start time (trip_first) is not later than the end time (trip_last).",
		Category:    CategoryGeneral,
	},
	RuleStopCoordinates: {
		Title:       "Stop coordinates",
		Description: "Checks that stop latitudes (-90 to 90) and longitudes (-180 to 180) are geographically valid.",
		Category:    CategoryGeneral,
	},
	RuleCircularRoutes: {
		Title:       "Circular route consistency",
		Description: "Validates that routes flagged as circular (circular=1) share the same origin and destination.",
		Category:    CategoryGeneral,
	},
	RuleFrequencyWindows: {
		Title:       "Trips vs frequencies time consistency",
		Description: "Checks that the start and end time of each trip fall within the time window defined for that trip in frequencies.txt.",
		Category:    CategoryGeneral,
	},
	RuleReferentialIntegrity: {
		Title:       "Referential integrity (broken links)",
		Description: "Confirms that every reference ID (e.g. route_id in trips.txt) exists in its parent file (e.g. routes.txt), guaranteeing there are no broken links.",
		Category:    CategoryGeneral,
	},
	RuleCalendarExtension: {
		Title:       "Custom columns in calendar_dates.txt",
		Description: "Validation of custom (non standard) columns.",
		Category:    CategoryCalendar,
	},
	RuleCalendarHoliday: {
		Title:       "Validation of the \"holiday\" field",
		Description: "Checks that the 'holiday' field (0 or 1) correctly matches the Portuguese national holidays for each date.",
		Category:    CategoryCalendar,
	},
	RuleCalendarPeriod: {
		Title:       "Validation of the \"period\" field",
		Description: "Checks that the 'period' field (1, 2 or 3) is correctly classified as school term, school break or summer according to the defined rules.",
		Category:    CategoryCalendar,
	},
	RuleCalendarDayType: {
		Title:       "Validation of the \"day_type\" field",
		Description: "Checks that the 'day_type' field (1, 2 or 3) correctly matches the day type (weekday, Saturday or Sunday/holiday).",
		Category:    CategoryCalendar,
	},
}

// RuleInfo describes one catalogue entry without evaluating it.
type RuleInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Catalogue lists every rule of the catalogue in report order.
func Catalogue() []RuleInfo {
	var rules []RuleInfo

	for rule := RuleIgnoredServiceIDs; rule <= RuleCalendarDayType; rule++ {
		details := ruleCatalogue[rule]
		rules = append(rules, RuleInfo{
			Title:       details.Title,
			Description: details.Description,
			Category:    details.Category,
		})
	}

	return rules
}

// Result is one evaluated catalogue entry of the report.
type Result struct {
	Rule        Rule     `json:"-"`
	Title       string   `json:"title"`
	Status      Status   `json:"status"`
	Messages    []string `json:"messages"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
}

func newResult(rule Rule, status Status, messages []string) Result {
	details := ruleCatalogue[rule]

	if messages == nil {
		messages = []string{}
	}

	return Result{
		Rule:        rule,
		Title:       details.Title,
		Status:      status,
		Messages:    messages,
		Description: details.Description,
		Category:    details.Category,
	}
}

const messageLimit = 100

// limitMessages caps a message list, appending a suppression notice with the
// exact number of entries dropped.
func limitMessages(messages []string) []string {
	if len(messages) <= messageLimit {
		return messages
	}

	suppressed := len(messages) - messageLimit
	limited := make([]string, messageLimit, messageLimit+1)
	copy(limited, messages[:messageLimit])

	return append(limited, fmt.Sprintf("... (%d additional messages suppressed)", suppressed))
}
