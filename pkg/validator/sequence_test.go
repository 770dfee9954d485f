package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedlint/feedlint/pkg/feed"
)

func TestCheckStopSequenceContinuityJump(t *testing.T) {
	stopTimes := feed.Table{
		{"trip_id": "T1", "stop_sequence": "1", "shape_dist_traveled": "10"},
		{"trip_id": "T1", "stop_sequence": "2", "shape_dist_traveled": "20"},
		{"trip_id": "T1", "stop_sequence": "4", "shape_dist_traveled": "30"},
	}

	status, messages := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 1)
	assert.Equal(t, "trip_id 'T1' (lines 3 and 4): sequence jump (from 2 to 4). Expected: 3.", messages[0])
}

func TestCheckStopSequenceContinuityOk(t *testing.T) {
	stopTimes := feed.Table{
		{"trip_id": "T1", "stop_sequence": "1", "shape_dist_traveled": "10"},
		{"trip_id": "T1", "stop_sequence": "2", "shape_dist_traveled": "20"},
		{"trip_id": "T1", "stop_sequence": "3", "shape_dist_traveled": "30"},
	}

	status, messages := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, []string{"All stop sequences are continuous and increasing (+1)."}, messages)
}

func TestCheckStopSequenceContinuityFilteredRowSplitsBlock(t *testing.T) {
	// The middle row has no progressing distance: it is filtered out and the
	// gap it leaves splits the trip into two blocks, so no jump is reported.
	stopTimes := feed.Table{
		{"trip_id": "T1", "stop_sequence": "1", "shape_dist_traveled": "10"},
		{"trip_id": "T1", "stop_sequence": "5", "shape_dist_traveled": "0"},
		{"trip_id": "T1", "stop_sequence": "7", "shape_dist_traveled": "30"},
	}

	status, _ := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckStopSequenceContinuityTripChangeSplitsBlock(t *testing.T) {
	stopTimes := feed.Table{
		{"trip_id": "T1", "stop_sequence": "1", "shape_dist_traveled": "10"},
		{"trip_id": "T1", "stop_sequence": "2", "shape_dist_traveled": "20"},
		{"trip_id": "T2", "stop_sequence": "9", "shape_dist_traveled": "10"},
		{"trip_id": "T2", "stop_sequence": "10", "shape_dist_traveled": "20"},
	}

	status, _ := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckStopSequenceContinuityNonNumeric(t *testing.T) {
	stopTimes := feed.Table{
		{"trip_id": "T1", "stop_sequence": "x", "shape_dist_traveled": "10"},
		{"trip_id": "T1", "stop_sequence": "2", "shape_dist_traveled": "20"},
	}

	status, messages := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 1)
	assert.Equal(t, "trip_id 'T1': invalid stop_sequence value.", messages[0])
}

func TestCheckStopSequenceContinuityMissingColumns(t *testing.T) {
	stopTimes := feed.Table{{"trip_id": "T1"}}

	status, messages := checkStopSequenceContinuity(stopTimes)

	assert.Equal(t, StatusWarning, status)
	assert.Equal(t, []string{"Columns 'stop_sequence' or 'trip_id' not found in stop_times.txt."}, messages)
}

func TestCheckStopSequenceContinuityEmptyTable(t *testing.T) {
	status, messages := checkStopSequenceContinuity(feed.Table{})

	assert.Equal(t, StatusSuccess, status)
	assert.Empty(t, messages)
}
