package pdfmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected FieldKind
		ok       bool
	}{
		{name: "text field", id: "lastName", expected: FieldText, ok: true},
		{name: "checkbox field", id: "genderMale", expected: FieldCheckbox, ok: true},
		{name: "dropdown field", id: "state", expected: FieldDropdown, ok: true},
		{name: "slot field", id: "trip6Countries", expected: FieldText, ok: true},
		{name: "unknown field", id: "notARealField", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := Kind(tt.id)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestSchema_ChoiceTablesAreCheckboxes(t *testing.T) {
	tables := map[string]map[string]string{
		"eligibility":    eligibilityFields,
		"gender":         genderFields,
		"ethnicity":      ethnicityFields,
		"race":           raceFields,
		"eye color":      eyeColorFields,
		"hair color":     hairColorFields,
		"marital status": maritalStatusFields,
	}

	for tableName, table := range tables {
		for value, id := range table {
			spec, ok := Schema()[id]
			require.True(t, ok, "%s value %s maps to unknown field %s", tableName, value, id)
			assert.Equal(t, FieldCheckbox, spec.Kind, "%s field %s", tableName, id)
		}
	}
}

func TestSchema_SlotFieldsComplete(t *testing.T) {
	schema := Schema()

	sections := []struct {
		slots  int
		fields []string
	}{
		{OtherNameSlots, []string{"otherName%dLast", "otherName%dFirst", "otherName%dMiddle"}},
		{AddressSlots, []string{"address%dStreet", "address%dCity", "address%dState", "address%dZip", "address%dDateFrom", "address%dDateTo"}},
		{EmploymentSlots, []string{"employer%dName", "employer%dOccupation", "employer%dCity", "employer%dDateFrom", "employer%dDateTo"}},
		{TripSlots, []string{"trip%dDepartureDate", "trip%dReturnDate", "trip%dCountries", "trip%dDays"}},
		{ChildSlots, []string{"child%dName", "child%dDateOfBirth", "child%dCountryOfBirth", "child%dResidence"}},
		{CrimeSlots, []string{"crime%dOffense", "crime%dDate", "crime%dOutcome"}},
		{InfoSlots, []string{"additionalInfo%dPart", "additionalInfo%dItem", "additionalInfo%dText"}},
	}

	for _, section := range sections {
		for i := 1; i <= section.slots; i++ {
			for _, pattern := range section.fields {
				id := fmt.Sprintf(pattern, i)
				assert.Contains(t, schema, id)
			}
		}
		// No row exists past the template's last slot.
		beyond := fmt.Sprintf(section.fields[0], section.slots+1)
		assert.NotContains(t, schema, beyond)
	}
}
