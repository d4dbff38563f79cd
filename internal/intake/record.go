// Package intake holds the normalized applicant record, the wizard step
// catalog with its visibility rules, and the transforms between UI state
// and the stored payload. Everything here is pure; persistence and
// transport live elsewhere.
package intake

import (
	"fmt"
	"strings"
)

// Record is one applicant's flat set of answers, keyed by field ID. Values
// are strings for scalar fields; repeating sections are stored as JSON
// strings (see serialize.go) but a Record loaded from an older draft may
// still carry them as structured arrays.
type Record map[string]any

// Entry is one row of a repeating section (an other-name, a trip, a child).
type Entry map[string]string

// Repeating sections, each independently serialized for storage. Order of
// entries is insertion order and is meaningful (most-recent-first for
// employment and trips, per the form instructions).
const (
	SectionOtherNames     = "other_names"
	SectionAddresses      = "addresses"
	SectionEmployment     = "employment_entries"
	SectionTrips          = "trips"
	SectionChildren       = "children"
	SectionCrimes         = "crimes"
	SectionAdditionalInfo = "additional_info"
)

var RepeatingSections = []string{
	SectionOtherNames,
	SectionAddresses,
	SectionEmployment,
	SectionTrips,
	SectionChildren,
	SectionCrimes,
	SectionAdditionalInfo,
}

// Str returns the field as a trimmed string, empty when absent or not a
// scalar.
func (r Record) Str(field string) string {
	value, ok := r[field]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// Is reports whether the field equals the given answer ("yes"/"no" style
// fields compare case-insensitively).
func (r Record) Is(field, answer string) bool {
	return strings.EqualFold(r.Str(field), answer)
}

// Entries returns a repeating section in structured form regardless of how
// the draft stored it.
func (r Record) Entries(section string) []Entry {
	value, ok := r[section]
	if !ok {
		return nil
	}
	return Deserialize(value)
}

// SetEntries stores a repeating section in its transport-safe form,
// removing the key entirely when the section is empty.
func (r Record) SetEntries(section string, entries []Entry) {
	serialized, ok := Serialize(entries)
	if !ok {
		delete(r, section)
		return
	}
	r[section] = serialized
}

func (r Record) Clone() Record {
	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}
