package feed

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// LoadZip reads a zipped feed archive and decodes every known table.
// Unknown archive members are skipped, missing members leave the matching
// table empty.
func LoadZip(reader io.Reader) (*Feed, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, err
	}

	feed := &Feed{}

	fileMap := map[string]*Table{
		FileAgency:         &feed.Agency,
		FileFeedInfo:       &feed.FeedInfo,
		FileRoutes:         &feed.Routes,
		FileTrips:          &feed.Trips,
		FileStops:          &feed.Stops,
		FileStopTimes:      &feed.StopTimes,
		FileCalendarDates:  &feed.CalendarDates,
		FileShapes:         &feed.Shapes,
		FileFrequencies:    &feed.Frequencies,
		FileFareAttributes: &feed.FareAttributes,
		FileFareRules:      &feed.FareRules,
	}

	for _, zipFile := range archive.File {
		destination, exists := fileMap[zipFile.Name]
		if !exists {
			log.Debug().Str("file", zipFile.Name).Msg("Unknown feed file")
			continue
		}

		log.Debug().Str("file", zipFile.Name).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return nil, err
		}

		table, err := decodeTable(fileReader)
		fileReader.Close()

		if err != nil {
			log.Error().Str("file", zipFile.Name).Err(err).Msg("Failed to parse csv file")
			return nil, err
		}

		*destination = table
	}

	return feed, nil
}

// DecodeTable reads one delimited text table into rows, trimming the
// surrounding whitespace of every value so the rules can compare raw strings.
func DecodeTable(reader io.Reader) (Table, error) {
	return decodeTable(reader)
}

func decodeTable(reader io.Reader) (Table, error) {
	records, err := gocsv.CSVToMaps(reader)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(records))
	for _, record := range records {
		row := Row{}
		for column, value := range record {
			row[trimColumn(column)] = strings.TrimSpace(value)
		}
		table = append(table, row)
	}

	return table, nil
}

// Byte order marks leak through some exports and would break the fixed
// header comparisons.
func trimColumn(column string) string {
	return strings.TrimSpace(strings.TrimPrefix(column, "\uFEFF"))
}
