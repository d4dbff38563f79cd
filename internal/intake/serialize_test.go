package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		expected string
		ok       bool
	}{
		{
			name:     "single entry",
			entries:  []Entry{{"last_name": "Garcia", "first_name": "Maria"}},
			expected: `[{"first_name":"Maria","last_name":"Garcia"}]`,
			ok:       true,
		},
		{
			name:    "nil section is omitted",
			entries: nil,
			ok:      false,
		},
		{
			name:    "empty section is omitted",
			entries: []Entry{},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serialized, ok := Serialize(tt.entries)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.JSONEq(t, tt.expected, serialized)
			}
		})
	}
}

func TestDeserialize(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected []Entry
	}{
		{
			name:     "JSON string from a stored draft",
			value:    `[{"last_name":"Garcia","first_name":"Maria"}]`,
			expected: []Entry{{"last_name": "Garcia", "first_name": "Maria"}},
		},
		{
			name:     "already structured entries",
			value:    []Entry{{"country": "Mexico"}},
			expected: []Entry{{"country": "Mexico"}},
		},
		{
			name:     "string maps from an older client",
			value:    []map[string]string{{"country": "Mexico"}},
			expected: []Entry{{"country": "Mexico"}},
		},
		{
			name:     "generic array straight from JSON decoding",
			value:    []any{map[string]any{"days": float64(14), "approved": true, "note": nil}},
			expected: []Entry{{"days": "14", "approved": "true", "note": ""}},
		},
		{
			name:     "nil value",
			value:    nil,
			expected: nil,
		},
		{
			name:     "empty string",
			value:    "",
			expected: nil,
		},
		{
			name:     "malformed JSON yields nil not an error",
			value:    `[{"broken"`,
			expected: nil,
		},
		{
			name:     "JSON of the wrong shape yields nil",
			value:    `{"not":"an array"}`,
			expected: nil,
		},
		{
			name:     "array of scalars yields nil",
			value:    []any{"just", "strings"},
			expected: nil,
		},
		{
			name:     "unsupported type yields nil",
			value:    42,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Deserialize(tt.value))
		})
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	entries := []Entry{
		{"last_name": "Okafor", "first_name": "Chidi", "middle_name": ""},
		{"last_name": "Okafor", "first_name": "Amara"},
	}

	serialized, ok := Serialize(entries)
	require.True(t, ok)

	assert.Equal(t, entries, Deserialize(serialized))
}

func TestPackSections(t *testing.T) {
	record := Record{
		"last_name":       "Okafor",
		SectionOtherNames: []any{map[string]any{"last_name": "Obi"}},
		SectionChildren:   []Entry{},
		SectionTrips:      `[{"countries":"Nigeria"}]`,
	}

	PackSections(record)

	// Structured input is serialized in place.
	otherNames, isString := record[SectionOtherNames].(string)
	require.True(t, isString)
	assert.JSONEq(t, `[{"last_name":"Obi"}]`, otherNames)

	// Empty sections drop out of the payload entirely.
	assert.NotContains(t, record, SectionChildren)

	// Already serialized sections survive a second pass.
	trips, isString := record[SectionTrips].(string)
	require.True(t, isString)
	assert.JSONEq(t, `[{"countries":"Nigeria"}]`, trips)

	// Scalars are untouched.
	assert.Equal(t, "Okafor", record["last_name"])
}

func TestUnpackSections(t *testing.T) {
	record := Record{
		SectionOtherNames: `[{"last_name":"Obi"}]`,
		SectionCrimes:     "not valid json",
		"first_name":      "Chidi",
	}

	UnpackSections(record)

	assert.Equal(t, []Entry{{"last_name": "Obi"}}, record[SectionOtherNames])
	assert.NotContains(t, record, SectionCrimes)
	assert.Equal(t, "Chidi", record["first_name"])
}

func TestRecordEntriesAccessors(t *testing.T) {
	record := Record{}

	record.SetEntries(SectionAddresses, []Entry{{"city": "Boise"}})
	assert.Equal(t, []Entry{{"city": "Boise"}}, record.Entries(SectionAddresses))

	record.SetEntries(SectionAddresses, nil)
	assert.NotContains(t, record, SectionAddresses)
	assert.Nil(t, record.Entries(SectionAddresses))
}

func TestRecordStr(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		field    string
		expected string
	}{
		{
			name:     "string value is trimmed",
			record:   Record{"city": "  Boise  "},
			field:    "city",
			expected: "Boise",
		},
		{
			name:     "boolean true reads as yes",
			record:   Record{"voted_in_us": true},
			field:    "voted_in_us",
			expected: "yes",
		},
		{
			name:     "boolean false reads as no",
			record:   Record{"voted_in_us": false},
			field:    "voted_in_us",
			expected: "no",
		},
		{
			name:     "whole number from JSON decoding",
			record:   Record{"total_children": float64(3)},
			field:    "total_children",
			expected: "3",
		},
		{
			name:     "missing field",
			record:   Record{},
			field:    "city",
			expected: "",
		},
		{
			name:     "nil value",
			record:   Record{"city": nil},
			field:    "city",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Str(tt.field))
		})
	}
}
