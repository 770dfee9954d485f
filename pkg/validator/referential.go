package validator

import (
	"fmt"
	"strings"

	"github.com/feedlint/feedlint/pkg/feed"
)

// ignoredServiceIDs computes the service ids referenced anywhere in the
// feed but never defined in calendar_dates.txt. Besides the trips table,
// references are recovered from the trailing |-segment of compound trip ids
// in stop_times.txt and frequencies.txt. These ids are exempted from the
// referential checks instead of being reported as broken links.
func ignoredServiceIDs(f *feed.Feed) map[string]bool {
	used := map[string]bool{}

	for _, row := range f.Trips {
		if serviceID := row["service_id"]; serviceID != "" {
			used[serviceID] = true
		}
	}

	extractFromTripID := func(table feed.Table) {
		for _, row := range table {
			tripID := row["trip_id"]
			if strings.Contains(tripID, "|") {
				parts := strings.Split(tripID, "|")
				used[parts[len(parts)-1]] = true
			}
		}
	}
	extractFromTripID(f.StopTimes)
	extractFromTripID(f.Frequencies)

	defined := map[string]bool{}
	for _, row := range f.CalendarDates {
		defined[row["service_id"]] = true
	}

	ignored := map[string]bool{}
	for serviceID := range used {
		if !defined[serviceID] {
			ignored[serviceID] = true
		}
	}

	return ignored
}

// checkReferentialIntegrity flags every non-empty child value absent from
// the parent key set. Frequencies referencing trips also match against the
// parent id with its trailing |-segment stripped, and compound trip ids
// whose service suffix is in the ignore set are exempted.
func checkReferentialIntegrity(child feed.Table, childName string, childColumn string,
	parent feed.Table, parentName string, parentColumn string, ignore map[string]bool) []string {

	parentIDs := map[string]bool{}
	for _, row := range parent {
		if value := row[parentColumn]; value != "" {
			parentIDs[value] = true
		}
	}

	frequenciesToTrips := childName == feed.FileFrequencies && parentName == feed.FileTrips
	parentBaseIDs := map[string]bool{}
	if frequenciesToTrips {
		for parentID := range parentIDs {
			parentBaseIDs[strings.Split(parentID, "|")[0]] = true
		}
	}

	var messages []string

	for index, row := range child {
		childID := row[childColumn]
		if childID == "" {
			continue
		}

		if childColumn == "service_id" && ignore[childID] {
			continue
		}

		if childColumn == "trip_id" && (childName == feed.FileStopTimes || childName == feed.FileFrequencies) {
			if strings.Contains(childID, "|") {
				parts := strings.Split(childID, "|")
				if ignore[parts[len(parts)-1]] {
					continue
				}
			}
		}

		found := parentIDs[childID]
		if frequenciesToTrips && !found {
			found = parentBaseIDs[childID]
		}

		if !found {
			messages = append(messages, fmt.Sprintf("In file '%s', line %d, the '%s' with value '%s' was not found in '%s' of file '%s'.",
				childName, feed.LineNumber(index), childColumn, childID, parentColumn, parentName))
		}
	}

	return limitMessages(messages)
}

var noIgnoredIDs = map[string]bool{}

// runReferentialChecks runs the eight fixed cross-table checks and
// concatenates their findings into one bounded list.
func runReferentialChecks(f *feed.Feed, ignored map[string]bool) (Status, []string) {
	var messages []string

	messages = append(messages, checkReferentialIntegrity(f.Trips, feed.FileTrips, "route_id", f.Routes, feed.FileRoutes, "route_id", noIgnoredIDs)...)
	messages = append(messages, checkReferentialIntegrity(f.Trips, feed.FileTrips, "service_id", f.CalendarDates, feed.FileCalendarDates, "service_id", ignored)...)
	messages = append(messages, checkReferentialIntegrity(f.Trips, feed.FileTrips, "shape_id", f.Shapes, feed.FileShapes, "shape_id", noIgnoredIDs)...)
	messages = append(messages, checkReferentialIntegrity(f.StopTimes, feed.FileStopTimes, "trip_id", f.Trips, feed.FileTrips, "trip_id", ignored)...)
	messages = append(messages, checkReferentialIntegrity(f.StopTimes, feed.FileStopTimes, "stop_id", f.Stops, feed.FileStops, "stop_id", noIgnoredIDs)...)
	messages = append(messages, checkReferentialIntegrity(f.Frequencies, feed.FileFrequencies, "trip_id", f.Trips, feed.FileTrips, "trip_id", ignored)...)
	messages = append(messages, checkReferentialIntegrity(f.FareRules, feed.FileFareRules, "fare_id", f.FareAttributes, feed.FileFareAttributes, "fare_id", noIgnoredIDs)...)
	messages = append(messages, checkReferentialIntegrity(f.FareRules, feed.FileFareRules, "route_id", f.Routes, feed.FileRoutes, "route_id", noIgnoredIDs)...)

	if len(messages) == 0 {
		return StatusSuccess, []string{"No referential integrity issues found."}
	}

	return StatusError, limitMessages(messages)
}
