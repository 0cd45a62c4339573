package domain

import "sort"

// Record is one uninsured-rate observation for a state and year.
type Record struct {
	StateCode     string  `json:"state_code"`
	State         string  `json:"state,omitempty"`
	Year          int     `json:"year"`
	UninsuredRate float64 `json:"uninsured"`
}

// DisplayName returns the state name, falling back to the code when the
// source had no name column.
func (r Record) DisplayName() string {
	if r.State != "" {
		return r.State
	}
	return r.StateCode
}

// RecordSet is the immutable, ordered table loaded at startup.
// The zero value is an empty table.
type RecordSet struct {
	records []Record
}

// NewRecordSet copies records into a new RecordSet, preserving order.
func NewRecordSet(records []Record) *RecordSet {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &RecordSet{records: cp}
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the i-th record in source order.
func (s *RecordSet) At(i int) Record {
	return s.records[i]
}

// All returns a copy of every record in source order.
func (s *RecordSet) All() []Record {
	if s == nil {
		return nil
	}
	cp := make([]Record, len(s.records))
	copy(cp, s.records)
	return cp
}

// FilterYear returns the records whose year equals year exactly, in source
// order. The result is a fresh slice; an absent year yields an empty one.
func (s *RecordSet) FilterYear(year int) []Record {
	out := make([]Record, 0)
	if s == nil {
		return out
	}
	for _, r := range s.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct years present, ascending.
func (s *RecordSet) Years() []int {
	if s == nil {
		return nil
	}
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range s.records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}
