package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// DATASET — Immutable in-memory collision table
// ============================================================================
// Loaded once at process start, normalized once, never mutated. Every report
// request reads the table through an engine view — the table itself is
// shared by reference and safe for concurrent reads.
// ============================================================================

// Record is one row of the dataset: one person's involvement in one crash.
// Many records may share a CollisionID (one crash → multiple person-rows).
type Record struct {
	CollisionID string
	Date        time.Time
	Year        int
	Month       int // 1..12
	Day         int // 0=Monday .. 6=Sunday
	Hour        int // 0..23

	Borough         string
	PersonType      string
	PersonInjury    string
	PersonSex       string
	SafetyEquipment string
	VehicleType1    string // normalized, see normalize.go
	VehicleType2    string
	Factor1         string
	Factor2         string

	Latitude  float64
	Longitude float64

	PersonsInjured     int
	PersonsKilled      int
	PedestriansInjured int
	PedestriansKilled  int
	CyclistsInjured    int
	CyclistsKilled     int
	MotoristsInjured   int
	MotoristsKilled    int
}

// Table is the immutable base dataset.
type Table struct {
	records []Record
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the record at index i. The returned pointer must be treated
// as read-only.
func (t *Table) At(i int) *Record { return &t.records[i] }

// NewTable wraps a record slice as a Table. Intended for tests and
// programmatic construction; Load is the normal path.
func NewTable(records []Record) *Table {
	return &Table{records: records}
}

// dateLayouts are tried in order when parsing the crash date column.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Load reads the cleaned collision CSV at path into an immutable Table.
// The header must contain every required column; rows that fail to parse
// a date are skipped. Vehicle types are normalized during the load and
// never again.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses collision CSV data from r. See Load.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	idx, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		rec, ok := parseRow(row, idx)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset contains no parsable records")
	}
	return &Table{records: records}, nil
}

// parseRow converts one CSV row into a Record. Returns ok=false when the
// row has no usable crash date.
func parseRow(row []string, idx columnIndex) (Record, bool) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	count := func(col string) int {
		// Counts are exported as "2" or "2.0" depending on the source tool.
		v, err := strconv.ParseFloat(field(col), 64)
		if err != nil || v < 0 {
			return 0
		}
		return int(v)
	}

	date, ok := parseDate(field(colCrashDate))
	if !ok {
		return Record{}, false
	}

	lat, _ := strconv.ParseFloat(field(colLatitude), 64)
	lon, _ := strconv.ParseFloat(field(colLongitude), 64)

	return Record{
		CollisionID: field(colCollisionID),
		Date:        date,
		Year:        date.Year(),
		Month:       int(date.Month()),
		Day:         mondayIndexed(date.Weekday()),
		Hour:        date.Hour(),

		Borough:         strings.ToUpper(field(colBorough)),
		PersonType:      strings.ToUpper(field(colPersonType)),
		PersonInjury:    strings.ToUpper(field(colPersonInjury)),
		PersonSex:       strings.ToUpper(field(colPersonSex)),
		SafetyEquipment: strings.ToUpper(field(colSafetyEquipment)),
		VehicleType1:    NormalizeVehicleType(field(colVehicleType1), false),
		VehicleType2:    NormalizeVehicleType(field(colVehicleType2), true),
		Factor1:         strings.ToUpper(field(colFactor1)),
		Factor2:         strings.ToUpper(field(colFactor2)),

		Latitude:  lat,
		Longitude: lon,

		PersonsInjured:     count(colPersonsInjured),
		PersonsKilled:      count(colPersonsKilled),
		PedestriansInjured: count(colPedestriansInjured),
		PedestriansKilled:  count(colPedestriansKilled),
		CyclistsInjured:    count(colCyclistsInjured),
		CyclistsKilled:     count(colCyclistsKilled),
		MotoristsInjured:   count(colMotoristsInjured),
		MotoristsKilled:    count(colMotoristsKilled),
	}, true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mondayIndexed converts Go's Sunday-first weekday to 0=Monday..6=Sunday.
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}
