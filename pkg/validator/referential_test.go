package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedlint/feedlint/pkg/feed"
)

func TestCheckReferentialIntegrityMissingParent(t *testing.T) {
	child := feed.Table{
		{"route_id": "4401_0"},
		{"route_id": "9999_0"},
	}
	parent := feed.Table{
		{"route_id": "4401_0"},
	}

	messages := checkReferentialIntegrity(child, feed.FileTrips, "route_id", parent, feed.FileRoutes, "route_id", noIgnoredIDs)

	require.Len(t, messages, 1)
	assert.Equal(t, "In file 'trips.txt', line 3, the 'route_id' with value '9999_0' was not found in 'route_id' of file 'routes.txt'.", messages[0])
}

func TestCheckReferentialIntegrityIgnoredServiceID(t *testing.T) {
	child := feed.Table{
		{"service_id": "X"},
	}
	parent := feed.Table{
		{"service_id": "Y"},
	}

	messages := checkReferentialIntegrity(child, feed.FileTrips, "service_id", parent, feed.FileCalendarDates, "service_id", map[string]bool{"X": true})

	assert.Empty(t, messages)
}

func TestCheckReferentialIntegrityCompoundTripIDExemption(t *testing.T) {
	child := feed.Table{
		{"trip_id": "4401_0_1|X"},
	}
	parent := feed.Table{
		{"trip_id": "4401_0_2|Y"},
	}

	messages := checkReferentialIntegrity(child, feed.FileStopTimes, "trip_id", parent, feed.FileTrips, "trip_id", map[string]bool{"X": true})

	assert.Empty(t, messages)

	messages = checkReferentialIntegrity(child, feed.FileStopTimes, "trip_id", parent, feed.FileTrips, "trip_id", noIgnoredIDs)

	assert.Len(t, messages, 1)
}

func TestCheckReferentialIntegrityFrequenciesBaseID(t *testing.T) {
	// Frequency rows may reference the base trip id without the |-suffix.
	child := feed.Table{
		{"trip_id": "4401_0_1"},
	}
	parent := feed.Table{
		{"trip_id": "4401_0_1|1"},
	}

	messages := checkReferentialIntegrity(child, feed.FileFrequencies, "trip_id", parent, feed.FileTrips, "trip_id", noIgnoredIDs)

	assert.Empty(t, messages)

	// The base id match only applies to the frequencies to trips check.
	messages = checkReferentialIntegrity(child, feed.FileStopTimes, "trip_id", parent, feed.FileTrips, "trip_id", noIgnoredIDs)

	assert.Len(t, messages, 1)
}

func TestIgnoredServiceIDs(t *testing.T) {
	f := &feed.Feed{
		Trips: feed.Table{
			{"service_id": "A"},
			{"service_id": "B"},
		},
		StopTimes: feed.Table{
			{"trip_id": "4401_0_1|C"},
			{"trip_id": "plain_trip"},
		},
		Frequencies: feed.Table{
			{"trip_id": "4401_0_2|D"},
		},
		CalendarDates: feed.Table{
			{"service_id": "A"},
			{"service_id": "D"},
		},
	}

	ignored := ignoredServiceIDs(f)

	assert.Equal(t, map[string]bool{"B": true, "C": true}, ignored)
}

func TestRunReferentialChecksSuccess(t *testing.T) {
	f := &feed.Feed{
		Trips: feed.Table{
			{"trip_id": "4401_0_1|1", "route_id": "4401_0", "service_id": "1", "shape_id": "shp_4401_0_1"},
		},
		Routes: feed.Table{
			{"route_id": "4401_0"},
		},
		CalendarDates: feed.Table{
			{"service_id": "1"},
		},
		Shapes: feed.Table{
			{"shape_id": "shp_4401_0_1"},
		},
	}

	status, messages := runReferentialChecks(f, noIgnoredIDs)

	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, []string{"No referential integrity issues found."}, messages)
}
