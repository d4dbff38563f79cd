package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// completeRecord returns a record that passes full validation; tests knock
// individual fields out of it.
func completeRecord() Record {
	return Record{
		"eligibility_basis":      "5_year",
		"last_name":              "Okafor",
		"first_name":             "Chidi",
		"has_used_other_names":   "no",
		"wants_name_change":      "no",
		"date_of_birth":          "1985-03-15",
		"country_of_birth":       "Nigeria",
		"country_of_citizenship": "Nigeria",
		"gender":                 "male",
		"green_card_date":        "2018-06-01",
		"daytime_phone":          "208-555-0101",
		"street_address":         "123 Main St",
		"city":                   "Boise",
		"ethnicity":              "not_hispanic",
		"race":                   "black",
		"height_feet":            "5",
		"height_inches":          "11",
		"weight":                 "185",
		"eye_color":              "brown",
		"hair_color":             "black",
		"marital_status":         "single",
	}
}

func TestValidateRecord_Complete(t *testing.T) {
	assert.Empty(t, ValidateRecord(completeRecord()))
}

func TestValidateRecord_RequiredCore(t *testing.T) {
	record := completeRecord()
	delete(record, "last_name")
	delete(record, "green_card_date")

	errors := ValidateRecord(record)

	assert.Equal(t, "This field is required", errors["last_name"])
	assert.Equal(t, "This field is required", errors["green_card_date"])
	assert.Len(t, errors, 2)
}

func TestValidateRecord_ConditionalRules(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(Record)
		expectedField string
	}{
		{
			name: "other eligibility needs an explanation",
			mutate: func(r Record) {
				r["eligibility_basis"] = "other"
			},
			expectedField: "eligibility_other_explanation",
		},
		{
			name: "name change needs a new first name",
			mutate: func(r Record) {
				r["wants_name_change"] = "yes"
				r["new_last_name"] = "Okoro"
			},
			expectedField: "new_first_name",
		},
		{
			name: "name change needs a new last name",
			mutate: func(r Record) {
				r["wants_name_change"] = "yes"
				r["new_first_name"] = "Chidi"
			},
			expectedField: "new_last_name",
		},
		{
			name: "card request needs disclosure consent",
			mutate: func(r Record) {
				r["ssa_wants_card"] = "yes"
			},
			expectedField: "ssa_consent_to_disclosure",
		},
		{
			name: "card request with consent withheld",
			mutate: func(r Record) {
				r["ssa_wants_card"] = "yes"
				r["ssa_consent_to_disclosure"] = "no"
			},
			expectedField: "ssa_consent_to_disclosure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			tt.mutate(record)

			errors := ValidateRecord(record)

			assert.Contains(t, errors, tt.expectedField)
			assert.Len(t, errors, 1)
		})
	}
}

func TestValidateRecord_OtherNames(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		entries     []Entry
		expectError bool
	}{
		{
			name:        "yes with no entries at all",
			answer:      "yes",
			entries:     nil,
			expectError: true,
		},
		{
			name:        "yes with only blank rows",
			answer:      "yes",
			entries:     []Entry{{"last_name": "", "first_name": ""}},
			expectError: true,
		},
		{
			name:        "yes with a named entry",
			answer:      "yes",
			entries:     []Entry{{"last_name": "Obi", "first_name": "Chidi"}},
			expectError: false,
		},
		{
			name:        "yes with only a middle name still counts",
			answer:      "yes",
			entries:     []Entry{{"middle_name": "Nnamdi"}},
			expectError: false,
		},
		{
			name:        "no needs no entries",
			answer:      "no",
			entries:     nil,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			record["has_used_other_names"] = tt.answer
			if tt.entries != nil {
				record.SetEntries(SectionOtherNames, tt.entries)
			}

			errors := ValidateRecord(record)

			if tt.expectError {
				assert.Equal(t, "Add at least one other name you have used", errors[SectionOtherNames])
			} else {
				assert.NotContains(t, errors, SectionOtherNames)
			}
		})
	}
}
