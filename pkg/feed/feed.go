package feed

// Row is a single record of a GTFS table. Values are kept as raw strings;
// any numeric or date interpretation happens inside the rules and fails soft.
type Row map[string]string

// Table is an ordered sequence of rows. Order matters as reported line
// numbers are derived from the row index.
type Table []Row

// HasColumn reports whether the table carries the named column. An empty
// table has no columns.
func (t Table) HasColumn(name string) bool {
	if len(t) == 0 {
		return false
	}

	_, exists := t[0][name]

	return exists
}

// LineNumber converts a row index into the physical line number of the
// source file: one for the header line plus one for 1-indexing.
func LineNumber(index int) int {
	return index + 2
}

// Blank reports whether every field of the row is empty.
func (r Row) Blank() bool {
	for _, value := range r {
		if value != "" {
			return false
		}
	}

	return true
}

const (
	FileAgency         = "agency.txt"
	FileFeedInfo       = "feed_info.txt"
	FileRoutes         = "routes.txt"
	FileTrips          = "trips.txt"
	FileStops          = "stops.txt"
	FileStopTimes      = "stop_times.txt"
	FileCalendarDates  = "calendar_dates.txt"
	FileShapes         = "shapes.txt"
	FileFrequencies    = "frequencies.txt"
	FileFareAttributes = "fare_attributes.txt"
	FileFareRules      = "fare_rules.txt"
)

// FileNames lists the eleven feed files in their canonical order.
var FileNames = []string{
	FileAgency,
	FileFeedInfo,
	FileRoutes,
	FileTrips,
	FileStops,
	FileStopTimes,
	FileCalendarDates,
	FileShapes,
	FileFrequencies,
	FileFareAttributes,
	FileFareRules,
}

// Feed is the complete set of tables describing one transit dataset. A file
// absent from the source archive is an empty table, never nil-guarded by
// callers.
type Feed struct {
	Agency         Table
	FeedInfo       Table
	Routes         Table
	Trips          Table
	Stops          Table
	StopTimes      Table
	CalendarDates  Table
	Shapes         Table
	Frequencies    Table
	FareAttributes Table
	FareRules      Table
}

// Get looks a table up by its file name. Unknown names yield an empty table.
func (f *Feed) Get(fileName string) Table {
	switch fileName {
	case FileAgency:
		return f.Agency
	case FileFeedInfo:
		return f.FeedInfo
	case FileRoutes:
		return f.Routes
	case FileTrips:
		return f.Trips
	case FileStops:
		return f.Stops
	case FileStopTimes:
		return f.StopTimes
	case FileCalendarDates:
		return f.CalendarDates
	case FileShapes:
		return f.Shapes
	case FileFrequencies:
		return f.Frequencies
	case FileFareAttributes:
		return f.FareAttributes
	case FileFareRules:
		return f.FareRules
	}

	return Table{}
}
