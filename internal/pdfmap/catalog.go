// Package pdfmap projects a normalized intake record onto the named fields
// of the official N-400 PDF template. The projection is pure and
// deterministic; rendering itself is done by the external PDF service.
package pdfmap

import (
	"fmt"
	"sync"
)

// FieldKind tags how a PDF field is filled. Kinds are resolved once from
// the static schema below, never probed at fill time.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldCheckbox
	FieldRadio
	FieldDropdown
)

type FieldSpec struct {
	ID   string
	Kind FieldKind
}

// Slot counts for the repeating sections; the template has a fixed number
// of rows per section and overflow goes to the additional-information
// sheet.
const (
	OtherNameSlots  = 3
	AddressSlots    = 5
	EmploymentSlots = 5
	TripSlots       = 6
	ChildSlots      = 6
	CrimeSlots      = 3
	InfoSlots       = 4
)

// Single-choice intake values map to exactly one checkbox identifier.
// Values missing from a table emit nothing and the box stays blank.
var (
	eligibilityFields = map[string]string{
		"5_year":          "eligibility5Year",
		"3_year_marriage": "eligibility3YearMarriage",
		"military":        "eligibilityMilitary",
		"other":           "eligibilityOther",
	}

	genderFields = map[string]string{
		"male":   "genderMale",
		"female": "genderFemale",
	}

	ethnicityFields = map[string]string{
		"hispanic":     "ethnicityHispanic",
		"not_hispanic": "ethnicityNotHispanic",
	}

	raceFields = map[string]string{
		"white":            "raceWhite",
		"black":            "raceBlack",
		"asian":            "raceAsian",
		"american_indian":  "raceAmericanIndian",
		"pacific_islander": "racePacificIslander",
	}

	eyeColorFields = map[string]string{
		"black":  "eyeColorBlack",
		"blue":   "eyeColorBlue",
		"brown":  "eyeColorBrown",
		"gray":   "eyeColorGray",
		"green":  "eyeColorGreen",
		"hazel":  "eyeColorHazel",
		"maroon": "eyeColorMaroon",
		"pink":   "eyeColorPink",
		"other":  "eyeColorOther",
	}

	hairColorFields = map[string]string{
		"bald":  "hairColorBald",
		"black": "hairColorBlack",
		"blond": "hairColorBlond",
		"brown": "hairColorBrown",
		"gray":  "hairColorGray",
		"red":   "hairColorRed",
		"sandy": "hairColorSandy",
		"white": "hairColorWhite",
	}

	maritalStatusFields = map[string]string{
		"single":    "maritalSingle",
		"married":   "maritalMarried",
		"divorced":  "maritalDivorced",
		"widowed":   "maritalWidowed",
		"separated": "maritalSeparated",
		"annulled":  "maritalAnnulled",
	}
)

var (
	schemaOnce sync.Once
	schema     map[string]FieldSpec
)

// Schema returns the full field catalog, keyed by field identifier, built
// once on first use.
func Schema() map[string]FieldSpec {
	schemaOnce.Do(buildSchema)
	return schema
}

// Kind resolves a field's kind; unknown identifiers report false.
func Kind(id string) (FieldKind, bool) {
	spec, ok := Schema()[id]
	return spec.Kind, ok
}

func buildSchema() {
	schema = make(map[string]FieldSpec)

	text := func(ids ...string) {
		for _, id := range ids {
			schema[id] = FieldSpec{ID: id, Kind: FieldText}
		}
	}
	checkbox := func(ids ...string) {
		for _, id := range ids {
			schema[id] = FieldSpec{ID: id, Kind: FieldCheckbox}
		}
	}
	dropdown := func(ids ...string) {
		for _, id := range ids {
			schema[id] = FieldSpec{ID: id, Kind: FieldDropdown}
		}
	}

	for _, table := range []map[string]string{
		eligibilityFields,
		genderFields,
		ethnicityFields,
		raceFields,
		eyeColorFields,
		hairColorFields,
		maritalStatusFields,
	} {
		for _, id := range table {
			checkbox(id)
		}
	}

	text(
		"lastName", "firstName", "middleName",
		"newFirstName", "newMiddleName", "newLastName",
		"dateOfBirth", "countryOfBirth", "countryOfCitizenship",
		"aNumber", "ssn", "uscisOnlineAccount", "greenCardDate",
		"heightFeet", "heightInches",
		"weightDigit1", "weightDigit2", "weightDigit3",
		"daytimePhone", "eveningPhone", "mobilePhone", "email",
		"streetAddress", "aptUnit", "city", "county", "zipCode",
		"mailingStreetAddress", "mailingAptUnit", "mailingCity",
		"mailingZipCode",
		"eligibilityOtherExplanation",
		"timesMarried",
		"spouseLastName", "spouseFirstName", "spouseDateOfBirth",
		"spouseDateOfMarriage", "spouseANumber", "spouseEmployer",
		"totalChildren", "totalDaysOutsideUs", "totalTrips",
		"householdIncome", "householdSize",
		"interpreterLastName", "interpreterFirstName",
		"interpreterLanguage", "interpreterPhone",
		"preparerLastName", "preparerFirstName",
		"preparerOrganization", "preparerPhone",
		"signature", "signatureDate", "oathReason",
	)

	dropdown(
		"state", "country",
		"mailingState", "mailingCountry",
	)

	checkbox(
		"spouseIsCitizenYes", "spouseIsCitizenNo",
		"spouseIsMilitaryYes", "spouseIsMilitaryNo",
		"claimedUsCitizenshipYes", "claimedUsCitizenshipNo",
		"registeredToVoteYes", "registeredToVoteNo",
		"votedInUsYes", "votedInUsNo",
		"ssaWantsCardYes", "ssaWantsCardNo",
		"ssaConsentYes", "ssaConsentNo",
		"feeReductionYes", "feeReductionNo",
		"oathWillingYes", "oathWillingNo",
	)

	for i := 1; i <= OtherNameSlots; i++ {
		text(
			fmt.Sprintf("otherName%dLast", i),
			fmt.Sprintf("otherName%dFirst", i),
			fmt.Sprintf("otherName%dMiddle", i),
		)
	}
	for i := 1; i <= AddressSlots; i++ {
		text(
			fmt.Sprintf("address%dStreet", i),
			fmt.Sprintf("address%dCity", i),
			fmt.Sprintf("address%dZip", i),
			fmt.Sprintf("address%dDateFrom", i),
			fmt.Sprintf("address%dDateTo", i),
		)
		dropdown(fmt.Sprintf("address%dState", i))
	}
	for i := 1; i <= EmploymentSlots; i++ {
		text(
			fmt.Sprintf("employer%dName", i),
			fmt.Sprintf("employer%dOccupation", i),
			fmt.Sprintf("employer%dCity", i),
			fmt.Sprintf("employer%dDateFrom", i),
			fmt.Sprintf("employer%dDateTo", i),
		)
	}
	for i := 1; i <= TripSlots; i++ {
		text(
			fmt.Sprintf("trip%dDepartureDate", i),
			fmt.Sprintf("trip%dReturnDate", i),
			fmt.Sprintf("trip%dCountries", i),
			fmt.Sprintf("trip%dDays", i),
		)
	}
	for i := 1; i <= ChildSlots; i++ {
		text(
			fmt.Sprintf("child%dName", i),
			fmt.Sprintf("child%dDateOfBirth", i),
			fmt.Sprintf("child%dCountryOfBirth", i),
			fmt.Sprintf("child%dResidence", i),
		)
	}
	for i := 1; i <= CrimeSlots; i++ {
		text(
			fmt.Sprintf("crime%dOffense", i),
			fmt.Sprintf("crime%dDate", i),
			fmt.Sprintf("crime%dOutcome", i),
		)
	}
	for i := 1; i <= InfoSlots; i++ {
		text(
			fmt.Sprintf("additionalInfo%dPart", i),
			fmt.Sprintf("additionalInfo%dItem", i),
			fmt.Sprintf("additionalInfo%dText", i),
		)
	}
}
