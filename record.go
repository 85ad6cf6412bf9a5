package datatable

import "maps"

// Record maps column keys to raw cell values.
//
// Values can be strings, numbers, date-like strings, time.Time values
// or nil. A missing key is treated the same as a nil value and will be
// rendered with the no-value placeholder.
type Record map[string]any

// Get returns the raw value for key and if the key exists.
// Get is safe to call on a nil Record.
func (r Record) Get(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Clone returns a shallow copy of the record.
// A nil Record returns nil.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Headings is the ordered list of column keys.
// It defines the header row and the cell order of every body row.
type Headings []string

// HeadingSet is a set of column keys.
// nil is a valid empty HeadingSet.
type HeadingSet map[string]struct{}

// NewHeadingSet returns a HeadingSet containing the passed keys.
func NewHeadingSet(keys ...string) HeadingSet {
	set := make(HeadingSet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// Has returns if the set contains key.
func (s HeadingSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}
