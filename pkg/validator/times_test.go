package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedlint/feedlint/pkg/feed"
)

func TestTimeToSeconds(t *testing.T) {
	seconds, ok := timeToSeconds("08:30:15")
	require.True(t, ok)
	assert.Equal(t, 8*3600+30*60+15, seconds)

	// Hours past 24 are legal in GTFS clock times.
	seconds, ok = timeToSeconds("25:00:00")
	require.True(t, ok)
	assert.Equal(t, 90000, seconds)

	_, ok = timeToSeconds("08:30")
	assert.False(t, ok)

	_, ok = timeToSeconds("")
	assert.False(t, ok)

	_, ok = timeToSeconds("ab:cd:ef")
	assert.False(t, ok)
}

func TestCheckTimeFormat(t *testing.T) {
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "8:00:00", "trip_last": "09:30:00"},
		{"trip_id": "T2", "trip_first": "8h00", "trip_last": "09:30:00"},
		{"trip_id": "T3", "trip_first": "08:61:00", "trip_last": "09:30:00"},
	}

	status, messages := checkTimeFormat(trips)

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 2)
	assert.Equal(t, "Line 3: trip_first '8h00' is not in HH:MM:SS format for trip_id 'T2'.", messages[0])
	assert.Equal(t, "Line 4: trip_first '08:61:00' has invalid minutes or seconds.", messages[1])
}

func TestCheckTimeFormatMissingColumns(t *testing.T) {
	trips := feed.Table{{"trip_id": "T1"}}

	status, messages := checkTimeFormat(trips)

	assert.Equal(t, StatusWarning, status)
	assert.Equal(t, []string{"Columns 'trip_first' or 'trip_last' not found."}, messages)
}

func TestCheckTripTimeLogicRollover(t *testing.T) {
	// A trip ending shortly after midnight rolls over to the next day.
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "23:50:00", "trip_last": "00:10:00"},
	}

	status, _ := checkTripTimeLogic(trips)

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckTripTimeLogicInverted(t *testing.T) {
	// 07:00 is past the rollover band, so this is a genuine inversion.
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "08:00:00", "trip_last": "07:00:00"},
	}

	status, messages := checkTripTimeLogic(trips)

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 1)
	assert.Equal(t, "Line 2: trip_first (08:00:00) > trip_last (07:00:00) for trip_id 'T1'.", messages[0])
}

func TestCheckTripTimeLogicSkipsUnparseable(t *testing.T) {
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "bad", "trip_last": "07:00:00"},
	}

	status, _ := checkTripTimeLogic(trips)

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckTripInFrequencyWindow(t *testing.T) {
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "08:00:00", "trip_last": "09:00:00"},
		{"trip_id": "T2", "trip_first": "06:00:00", "trip_last": "11:00:00"},
	}
	frequencies := feed.Table{
		{"trip_id": "T1", "start_time": "07:00:00", "end_time": "10:00:00"},
		{"trip_id": "T2", "start_time": "07:00:00", "end_time": "10:00:00"},
	}

	status, messages := checkTripInFrequencyWindow(trips, frequencies)

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 2)
	assert.Equal(t, "Line 3 (trips.txt): trip_first '06:00:00' for trip id 'T2' is outside the frequency windows.", messages[0])
	assert.Equal(t, "Line 3 (trips.txt): trip_last '11:00:00' for trip id 'T2' is outside the frequency windows.", messages[1])
}

func TestCheckTripInFrequencyWindowOvernight(t *testing.T) {
	// The window crosses midnight, so the trip's small-hours times shift
	// forward a day before the comparison.
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "23:30:00", "trip_last": "00:30:00"},
	}
	frequencies := feed.Table{
		{"trip_id": "T1", "start_time": "23:00:00", "end_time": "25:00:00"},
	}

	status, _ := checkTripInFrequencyWindow(trips, frequencies)

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckTripInFrequencyWindowSkipsTripsWithoutWindows(t *testing.T) {
	trips := feed.Table{
		{"trip_id": "T1", "trip_first": "08:00:00", "trip_last": "09:00:00"},
	}
	frequencies := feed.Table{
		{"trip_id": "OTHER", "start_time": "07:00:00", "end_time": "10:00:00"},
	}

	status, _ := checkTripInFrequencyWindow(trips, frequencies)

	assert.Equal(t, StatusSuccess, status)
}
