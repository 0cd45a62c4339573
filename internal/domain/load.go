package domain

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrDataLoad is the sentinel wrapped by every DataLoadError.
var ErrDataLoad = errors.New("data load failed")

// DataLoadError reports a missing or malformed source table.
type DataLoadError struct {
	Path string
	Line int // 1-based; 0 when the failure is not tied to a line
	Err  error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	b.WriteString("load data")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DataLoadError) Unwrap() []error {
	return []error{ErrDataLoad, e.Err}
}

// Accepted header names per column, lowercased.
var (
	stateCodeColumns = []string{"state_code", "code"}
	yearColumns      = []string{"year"}
	rateColumns      = []string{"uninsured", "uninsured_rate"}
	stateNameColumns = []string{"state", "state_name"}
)

// Load reads the table at path. A missing file or malformed content yields a
// *DataLoadError.
func Load(path string) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		var dle *DataLoadError
		if errors.As(err, &dle) {
			dle.Path = path
		}
		return nil, err
	}
	return set, nil
}

// Parse reads a CSV table with a header row from r.
func Parse(r io.Reader) (*RecordSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataLoadError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &DataLoadError{Line: 1, Err: fmt.Errorf("read header: %w", err)}
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, &DataLoadError{Line: 1, Err: err}
	}
	// Allow rows whose trailing optional fields are omitted.
	reader.FieldsPerRecord = -1

	records := make([]Record, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &DataLoadError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)
		rec, err := cols.record(row)
		if err != nil {
			return nil, &DataLoadError{Line: line, Err: err}
		}
		records = append(records, rec)
	}

	return &RecordSet{records: records}, nil
}

// columnIndex holds header positions; stateName is -1 when absent.
type columnIndex struct {
	stateCode int
	year      int
	rate      int
	stateName int
}

func mapColumns(header []string) (columnIndex, error) {
	idx := columnIndex{stateCode: -1, year: -1, rate: -1, stateName: -1}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch {
		case idx.stateCode < 0 && contains(stateCodeColumns, name):
			idx.stateCode = i
		case idx.year < 0 && contains(yearColumns, name):
			idx.year = i
		case idx.rate < 0 && contains(rateColumns, name):
			idx.rate = i
		case idx.stateName < 0 && contains(stateNameColumns, name):
			idx.stateName = i
		}
	}

	var missing []string
	if idx.stateCode < 0 {
		missing = append(missing, "state_code")
	}
	if idx.year < 0 {
		missing = append(missing, "year")
	}
	if idx.rate < 0 {
		missing = append(missing, "uninsured")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) record(row []string) (Record, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	code := field(c.stateCode)
	if code == "" {
		return Record{}, errors.New("empty state_code")
	}

	yearStr := field(c.year)
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		// Some exports write years as floats ("2010.0").
		f, ferr := strconv.ParseFloat(yearStr, 64)
		if ferr != nil || f != float64(int(f)) {
			return Record{}, fmt.Errorf("parse year %q: %w", yearStr, err)
		}
		year = int(f)
	}

	rateStr := field(c.rate)
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return Record{}, fmt.Errorf("parse uninsured %q: %w", rateStr, err)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Record{}, fmt.Errorf("parse uninsured %q: not a finite number", rateStr)
	}

	return Record{
		StateCode:     code,
		State:         field(c.stateName),
		Year:          year,
		UninsuredRate: rate,
	}, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
