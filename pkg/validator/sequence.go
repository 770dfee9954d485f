package validator

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/feedlint/feedlint/pkg/feed"
)

type sequenceEntry struct {
	tripID   string
	line     int
	sequence int
	numeric  bool
}

// checkStopSequenceContinuity verifies that stop sequences increase by
// exactly one within each contiguous block of a trip. Rows without a
// progressing shape_dist_traveled are linked entries and are filtered out
// first; a filtered row splits the surrounding rows into separate blocks.
func checkStopSequenceContinuity(stopTimes feed.Table) (Status, []string) {
	if len(stopTimes) == 0 {
		return StatusSuccess, nil
	}
	if !stopTimes.HasColumn("stop_sequence") || !stopTimes.HasColumn("trip_id") {
		return StatusWarning, []string{"Columns 'stop_sequence' or 'trip_id' not found in stop_times.txt."}
	}

	var retained []sequenceEntry
	for index, row := range stopTimes {
		distance := row["shape_dist_traveled"]
		if distance == "" || distance == "0" {
			continue
		}

		sequence, err := strconv.Atoi(row["stop_sequence"])
		retained = append(retained, sequenceEntry{
			tripID:   row["trip_id"],
			line:     feed.LineNumber(index),
			sequence: sequence,
			numeric:  err == nil,
		})
	}

	var messages []string

	checkBlock := func(block []sequenceEntry) {
		if len(block) < 2 {
			return
		}

		sort.SliceStable(block, func(i, j int) bool {
			return block[i].sequence < block[j].sequence
		})

		for index := 0; index < len(block)-1; index++ {
			current := block[index]
			next := block[index+1]

			if !current.numeric || !next.numeric {
				messages = append(messages, fmt.Sprintf("trip_id '%s': invalid stop_sequence value.", current.tripID))
				continue
			}

			if next.sequence != current.sequence+1 {
				messages = append(messages, fmt.Sprintf("trip_id '%s' (lines %d and %d): sequence jump (from %d to %d). Expected: %d.",
					current.tripID, current.line, next.line, current.sequence, next.sequence, current.sequence+1))
			}
		}
	}

	var block []sequenceEntry
	for _, entry := range retained {
		if len(block) == 0 {
			block = append(block, entry)
			continue
		}

		previous := block[len(block)-1]
		if entry.tripID != previous.tripID || entry.line-previous.line > 1 {
			checkBlock(block)
			block = []sequenceEntry{entry}
		} else {
			block = append(block, entry)
		}
	}
	checkBlock(block)

	if len(messages) == 0 {
		return StatusSuccess, []string{"All stop sequences are continuous and increasing (+1)."}
	}

	return StatusError, limitMessages(messages)
}
