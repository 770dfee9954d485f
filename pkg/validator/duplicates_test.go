package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedlint/feedlint/pkg/feed"
)

func TestCheckDuplicates(t *testing.T) {
	table := feed.Table{
		{"route_id": "A"},
		{"route_id": "B"},
		{"route_id": "A"},
		{"route_id": "C"},
		{"route_id": "B"},
		{"route_id": "B"},
	}

	status, messages := checkDuplicates(table, "route_id")

	assert.Equal(t, StatusError, status)
	require.Len(t, messages, 2)
	assert.Equal(t, "ID 'A' duplicated on lines: 2, 4", messages[0])
	assert.Equal(t, "ID 'B' duplicated on lines: 3, 6, 7", messages[1])
}

func TestCheckDuplicatesNoneFound(t *testing.T) {
	table := feed.Table{
		{"route_id": "A"},
		{"route_id": "B"},
	}

	status, messages := checkDuplicates(table, "route_id")

	assert.Equal(t, StatusSuccess, status)
	assert.Equal(t, []string{"No duplicate IDs found."}, messages)
}

func TestCheckDuplicatesSkipsEmptyValues(t *testing.T) {
	table := feed.Table{
		{"route_id": ""},
		{"route_id": ""},
		{"route_id": "A"},
	}

	status, _ := checkDuplicates(table, "route_id")

	assert.Equal(t, StatusSuccess, status)
}

func TestCheckDuplicatesEmptyTable(t *testing.T) {
	status, messages := checkDuplicates(feed.Table{}, "route_id")

	assert.Equal(t, StatusWarning, status)
	assert.Equal(t, []string{"File empty or not loaded."}, messages)
}

func TestCheckDuplicatesMissingColumn(t *testing.T) {
	table := feed.Table{{"other": "x"}}

	status, messages := checkDuplicates(table, "route_id")

	assert.Equal(t, StatusWarning, status)
	assert.Equal(t, []string{"Column 'route_id' not found."}, messages)
}
