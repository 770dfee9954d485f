package validator

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/feedlint/feedlint/pkg/feed"
	"github.com/feedlint/feedlint/pkg/profile"
)

// The ignored service id notice lists at most this many ids.
const ignoredIDDisplayLimit = 50

type evaluation struct {
	rule Rule
	run  func() (Status, []string)
}

// Run evaluates the full catalogue against the feed and returns the report
// in its fixed order. The rules are independent pure functions over the
// same read-only snapshot, so they are evaluated in parallel and merged
// back by catalogue position.
func Run(f *feed.Feed, p *profile.Profile) []Result {
	ignored := ignoredServiceIDs(f)

	formatCheck := func(table feed.Table, file string, column string) func() (Status, []string) {
		pattern := p.Pattern(file, column)

		return func() (Status, []string) {
			if pattern == nil {
				return StatusWarning, []string{fmt.Sprintf("No pattern configured for column '%s' of %s.", column, file)}
			}
			return checkIDFormat(table, column, pattern)
		}
	}

	evaluations := []evaluation{
		{RuleDuplicateRoutes, func() (Status, []string) { return checkDuplicates(f.Routes, "route_id") }},
		{RuleDuplicateTrips, func() (Status, []string) { return checkDuplicates(f.Trips, "trip_id") }},
		{RuleDuplicateStops, func() (Status, []string) { return checkDuplicates(f.Stops, "stop_id") }},
		{RuleDuplicateFareAttributes, func() (Status, []string) { return checkDuplicates(f.FareAttributes, "fare_id") }},
		{RuleRouteIDFormat, formatCheck(f.Trips, feed.FileTrips, "route_id")},
		{RuleTripIDFormat, formatCheck(f.Trips, feed.FileTrips, "trip_id")},
		{RuleShapeIDFormat, formatCheck(f.Trips, feed.FileTrips, "shape_id")},
		{RulePatternIDFormat, formatCheck(f.Trips, feed.FileTrips, "pattern_id")},
		{RuleStopIDFormatStops, formatCheck(f.Stops, feed.FileStops, "stop_id")},
		{RuleStopIDFormatStopTimes, formatCheck(f.StopTimes, feed.FileStopTimes, "stop_id")},
		{RuleStopSequenceContinuity, func() (Status, []string) { return checkStopSequenceContinuity(f.StopTimes) }},
		{RuleCorruptedCharacters, func() (Status, []string) { return checkTextEncoding(f, p) }},
		{RuleUnwantedWhitespace, func() (Status, []string) { return checkWhitespace(f, p) }},
		{RuleAgencyContent, func() (Status, []string) { return checkAgencyContent(f.Agency, p) }},
		{RuleFeedInfoConsistency, func() (Status, []string) { return checkFeedInfoConsistency(f.FeedInfo, f.CalendarDates, p) }},
		{RuleTimeFormat, func() (Status, []string) { return checkTimeFormat(f.Trips) }},
		{RuleTimeLogic, func() (Status, []string) { return checkTripTimeLogic(f.Trips) }},
		{RuleStopCoordinates, func() (Status, []string) { return checkStopCoordinates(f.Stops) }},
		{RuleCircularRoutes, func() (Status, []string) { return checkCircularRoutes(f.Routes) }},
		{RuleFrequencyWindows, func() (Status, []string) { return checkTripInFrequencyWindow(f.Trips, f.Frequencies) }},
		{RuleReferentialIntegrity, func() (Status, []string) { return runReferentialChecks(f, ignored) }},
	}

	evaluated := iter.Map(evaluations, func(entry *evaluation) Result {
		status, messages := entry.run()
		return newResult(entry.rule, status, messages)
	})

	var results []Result
	if notice, hasNotice := ignoredServiceIDNotice(ignored); hasNotice {
		results = append(results, notice)
	}
	results = append(results, evaluated...)
	results = append(results, checkCalendarClassification(f.CalendarDates, p)...)

	return results
}

// ignoredServiceIDNotice builds the informational entry listing the ids
// exempted from the referential checks. No entry is emitted when the set is
// empty.
func ignoredServiceIDNotice(ignored map[string]bool) (Result, bool) {
	if len(ignored) == 0 {
		return Result{}, false
	}

	ids := maps.Keys(ignored)
	slices.Sort(ids)

	shown := ids
	if len(shown) > ignoredIDDisplayLimit {
		shown = shown[:ignoredIDDisplayLimit]
	}

	message := fmt.Sprintf("%d service IDs found and ignored: %s", len(ids), strings.Join(shown, ", "))
	if len(ids) > ignoredIDDisplayLimit {
		message += "..."
	}

	return newResult(RuleIgnoredServiceIDs, StatusInfo, []string{message}), true
}
