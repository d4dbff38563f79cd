package pdfmap

import (
	"fmt"

	"server/internal/intake"
)

// Map projects the intake record onto the PDF template's named fields.
// Values are strings for text and dropdown fields and boolean true for the
// selected checkbox of a single-choice group. Intake values with no table
// entry emit nothing, leaving the box blank on the rendered form. No side
// effects, no I/O.
func Map(record intake.Record) map[string]any {
	out := make(map[string]any)

	mapIdentity(record, out)
	mapBiographic(record, out)
	mapContact(record, out)
	mapResidence(record, out)
	mapMarital(record, out)
	mapChildren(record, out)
	mapEmployment(record, out)
	mapTravel(record, out)
	mapBackground(record, out)
	mapClosing(record, out)

	return out
}

func setText(out map[string]any, id, value string) {
	if value != "" {
		out[id] = value
	}
}

func setDate(out map[string]any, id, value string) {
	if value != "" {
		out[id] = intake.FormatDateForUSCIS(value)
	}
}

func checkOne(out map[string]any, table map[string]string, value string) {
	if id, ok := table[value]; ok {
		out[id] = true
	}
}

// checkYesNo fills a tri-state yes/no pair: an unanswered question leaves
// both boxes blank.
func checkYesNo(out map[string]any, yesID, noID, value string) {
	switch value {
	case "yes":
		out[yesID] = true
	case "no":
		out[noID] = true
	}
}

// checkCoerced fills the strict pairs (citizenship claim, voting): "yes"
// selects the yes box, anything else selects the no box. Not a tri-state.
func checkCoerced(out map[string]any, yesID, noID, value string) {
	if value == "yes" {
		out[yesID] = true
		return
	}
	out[noID] = true
}

func mapIdentity(record intake.Record, out map[string]any) {
	checkOne(out, eligibilityFields, record.Str("eligibility_basis"))
	setText(out, "eligibilityOtherExplanation", record.Str("eligibility_other_explanation"))

	setText(out, "lastName", record.Str("last_name"))
	setText(out, "firstName", record.Str("first_name"))
	setText(out, "middleName", record.Str("middle_name"))

	if record.Is("wants_name_change", "yes") {
		setText(out, "newFirstName", record.Str("new_first_name"))
		setText(out, "newMiddleName", record.Str("new_middle_name"))
		setText(out, "newLastName", record.Str("new_last_name"))
	}

	for i, entry := range record.Entries(intake.SectionOtherNames) {
		if i >= OtherNameSlots {
			break
		}
		setText(out, fmt.Sprintf("otherName%dLast", i+1), entry["last_name"])
		setText(out, fmt.Sprintf("otherName%dFirst", i+1), entry["first_name"])
		setText(out, fmt.Sprintf("otherName%dMiddle", i+1), entry["middle_name"])
	}
}

func mapBiographic(record intake.Record, out map[string]any) {
	setDate(out, "dateOfBirth", record.Str("date_of_birth"))
	setDate(out, "greenCardDate", record.Str("green_card_date"))
	setText(out, "countryOfBirth", record.Str("country_of_birth"))
	setText(out, "countryOfCitizenship", record.Str("country_of_citizenship"))
	setText(out, "aNumber", record.Str("a_number"))
	setText(out, "ssn", record.Str("ssn"))
	setText(out, "uscisOnlineAccount", record.Str("uscis_online_account"))

	checkOne(out, genderFields, record.Str("gender"))
	checkOne(out, ethnicityFields, record.Str("ethnicity"))
	checkOne(out, raceFields, record.Str("race"))
	checkOne(out, eyeColorFields, record.Str("eye_color"))
	checkOne(out, hairColorFields, record.Str("hair_color"))

	setText(out, "heightFeet", record.Str("height_feet"))
	setText(out, "heightInches", record.Str("height_inches"))

	if digits, ok := intake.SplitWeight(record.Str("weight")); ok {
		out["weightDigit1"] = digits[0]
		out["weightDigit2"] = digits[1]
		out["weightDigit3"] = digits[2]
	}
}

func mapContact(record intake.Record, out map[string]any) {
	setText(out, "daytimePhone", record.Str("daytime_phone"))
	setText(out, "eveningPhone", record.Str("evening_phone"))
	setText(out, "mobilePhone", record.Str("mobile_phone"))
	setText(out, "email", record.Str("email"))
}

func mapResidence(record intake.Record, out map[string]any) {
	setText(out, "streetAddress", record.Str("street_address"))
	setText(out, "aptUnit", record.Str("apt_unit"))
	setText(out, "city", record.Str("city"))
	setText(out, "county", record.Str("county"))
	setText(out, "state", record.Str("state"))
	setText(out, "zipCode", record.Str("zip_code"))
	setText(out, "country", record.Str("country"))

	setText(out, "mailingStreetAddress", record.Str("mailing_street_address"))
	setText(out, "mailingAptUnit", record.Str("mailing_apt_unit"))
	setText(out, "mailingCity", record.Str("mailing_city"))
	setText(out, "mailingState", record.Str("mailing_state"))
	setText(out, "mailingZipCode", record.Str("mailing_zip_code"))
	setText(out, "mailingCountry", record.Str("mailing_country"))

	for i, entry := range record.Entries(intake.SectionAddresses) {
		if i >= AddressSlots {
			break
		}
		setText(out, fmt.Sprintf("address%dStreet", i+1), entry["street_address"])
		setText(out, fmt.Sprintf("address%dCity", i+1), entry["city"])
		setText(out, fmt.Sprintf("address%dState", i+1), entry["state"])
		setText(out, fmt.Sprintf("address%dZip", i+1), entry["zip_code"])
		setDate(out, fmt.Sprintf("address%dDateFrom", i+1), entry["date_from"])
		setDate(out, fmt.Sprintf("address%dDateTo", i+1), entry["date_to"])
	}
}

func mapMarital(record intake.Record, out map[string]any) {
	checkOne(out, maritalStatusFields, record.Str("marital_status"))
	setText(out, "timesMarried", record.Str("times_married"))

	// Spouse fields exist on the form only for a current marriage.
	if !record.Is("marital_status", "married") {
		return
	}

	setText(out, "spouseLastName", record.Str("spouse_last_name"))
	setText(out, "spouseFirstName", record.Str("spouse_first_name"))
	setDate(out, "spouseDateOfBirth", record.Str("spouse_date_of_birth"))
	setDate(out, "spouseDateOfMarriage", record.Str("spouse_date_of_marriage"))
	setText(out, "spouseANumber", record.Str("spouse_a_number"))
	setText(out, "spouseEmployer", record.Str("spouse_employer"))

	checkYesNo(out, "spouseIsCitizenYes", "spouseIsCitizenNo", record.Str("spouse_is_us_citizen"))
	checkYesNo(out, "spouseIsMilitaryYes", "spouseIsMilitaryNo", record.Str("spouse_is_military"))
}

func mapChildren(record intake.Record, out map[string]any) {
	setText(out, "totalChildren", record.Str("total_children"))

	for i, entry := range record.Entries(intake.SectionChildren) {
		if i >= ChildSlots {
			break
		}
		setText(out, fmt.Sprintf("child%dName", i+1), entry["name"])
		setDate(out, fmt.Sprintf("child%dDateOfBirth", i+1), entry["date_of_birth"])
		setText(out, fmt.Sprintf("child%dCountryOfBirth", i+1), entry["country_of_birth"])
		setText(out, fmt.Sprintf("child%dResidence", i+1), entry["residence"])
	}
}

func mapEmployment(record intake.Record, out map[string]any) {
	for i, entry := range record.Entries(intake.SectionEmployment) {
		if i >= EmploymentSlots {
			break
		}
		setText(out, fmt.Sprintf("employer%dName", i+1), entry["employer"])
		setText(out, fmt.Sprintf("employer%dOccupation", i+1), entry["occupation"])
		setText(out, fmt.Sprintf("employer%dCity", i+1), entry["city"])
		setDate(out, fmt.Sprintf("employer%dDateFrom", i+1), entry["date_from"])
		setDate(out, fmt.Sprintf("employer%dDateTo", i+1), entry["date_to"])
	}
}

func mapTravel(record intake.Record, out map[string]any) {
	setText(out, "totalDaysOutsideUs", record.Str("total_days_outside_us"))
	setText(out, "totalTrips", record.Str("total_trips"))

	for i, entry := range record.Entries(intake.SectionTrips) {
		if i >= TripSlots {
			break
		}
		setDate(out, fmt.Sprintf("trip%dDepartureDate", i+1), entry["departure_date"])
		setDate(out, fmt.Sprintf("trip%dReturnDate", i+1), entry["return_date"])
		setText(out, fmt.Sprintf("trip%dCountries", i+1), entry["countries"])
		setText(out, fmt.Sprintf("trip%dDays", i+1), entry["days"])
	}
}

func mapBackground(record intake.Record, out map[string]any) {
	// The paper form treats these two as answered either way; an empty
	// answer renders as "No".
	checkCoerced(out, "claimedUsCitizenshipYes", "claimedUsCitizenshipNo", record.Str("claimed_us_citizenship"))
	checkCoerced(out, "votedInUsYes", "votedInUsNo", record.Str("voted_in_us"))

	checkYesNo(out, "registeredToVoteYes", "registeredToVoteNo", record.Str("registered_to_vote"))

	for i, entry := range record.Entries(intake.SectionCrimes) {
		if i >= CrimeSlots {
			break
		}
		setText(out, fmt.Sprintf("crime%dOffense", i+1), entry["offense"])
		setDate(out, fmt.Sprintf("crime%dDate", i+1), entry["date"])
		setText(out, fmt.Sprintf("crime%dOutcome", i+1), entry["outcome"])
	}

	for i, entry := range record.Entries(intake.SectionAdditionalInfo) {
		if i >= InfoSlots {
			break
		}
		setText(out, fmt.Sprintf("additionalInfo%dPart", i+1), entry["part"])
		setText(out, fmt.Sprintf("additionalInfo%dItem", i+1), entry["item"])
		setText(out, fmt.Sprintf("additionalInfo%dText", i+1), entry["explanation"])
	}
}

func mapClosing(record intake.Record, out map[string]any) {
	checkYesNo(out, "ssaWantsCardYes", "ssaWantsCardNo", record.Str("ssa_wants_card"))
	checkYesNo(out, "ssaConsentYes", "ssaConsentNo", record.Str("ssa_consent_to_disclosure"))
	checkYesNo(out, "feeReductionYes", "feeReductionNo", record.Str("fee_reduction_requested"))
	setText(out, "householdIncome", record.Str("household_income"))
	setText(out, "householdSize", record.Str("household_size"))

	checkYesNo(out, "oathWillingYes", "oathWillingNo", record.Str("oath_willing"))
	setText(out, "oathReason", record.Str("oath_reason"))

	setText(out, "interpreterLastName", record.Str("interpreter_last_name"))
	setText(out, "interpreterFirstName", record.Str("interpreter_first_name"))
	setText(out, "interpreterLanguage", record.Str("interpreter_language"))
	setText(out, "interpreterPhone", record.Str("interpreter_phone"))

	setText(out, "preparerLastName", record.Str("preparer_last_name"))
	setText(out, "preparerFirstName", record.Str("preparer_first_name"))
	setText(out, "preparerOrganization", record.Str("preparer_organization"))
	setText(out, "preparerPhone", record.Str("preparer_phone"))

	setText(out, "signature", record.Str("signature"))
	setDate(out, "signatureDate", record.Str("signature_date"))
}
