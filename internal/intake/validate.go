package intake

// requiredCore is the set of fields every submission must carry, with the
// message shown when one is missing.
var requiredCore = []string{
	"last_name",
	"first_name",
	"date_of_birth",
	"country_of_birth",
	"country_of_citizenship",
	"gender",
	"green_card_date",
	"daytime_phone",
	"street_address",
	"city",
	"ethnicity",
	"race",
	"height_feet",
	"height_inches",
	"weight",
	"eye_color",
	"hair_color",
	"marital_status",
}

// ValidateRecord enforces the full-record schema at submit time. Step
// gating is advisory; this is the check that blocks submission. Messages
// are keyed by field ID.
func ValidateRecord(record Record) map[string]string {
	errors := make(map[string]string)

	for _, field := range requiredCore {
		if record.Str(field) == "" {
			errors[field] = "This field is required"
		}
	}

	if record.Is("eligibility_basis", "other") && record.Str("eligibility_other_explanation") == "" {
		errors["eligibility_other_explanation"] = "Explain your basis for eligibility"
	}

	if record.Is("wants_name_change", "yes") {
		if record.Str("new_first_name") == "" {
			errors["new_first_name"] = "Enter the new first name"
		}
		if record.Str("new_last_name") == "" {
			errors["new_last_name"] = "Enter the new last name"
		}
	}

	if record.Is("ssa_wants_card", "yes") && !record.Is("ssa_consent_to_disclosure", "yes") {
		errors["ssa_consent_to_disclosure"] = "Consent to disclosure is required to request a card"
	}

	if record.Is("has_used_other_names", "yes") && !hasNamedEntry(record.Entries(SectionOtherNames)) {
		errors[SectionOtherNames] = "Add at least one other name you have used"
	}

	return errors
}

// hasNamedEntry reports whether any entry carries a non-empty name part.
func hasNamedEntry(entries []Entry) bool {
	for _, entry := range entries {
		if entry["last_name"] != "" || entry["first_name"] != "" || entry["middle_name"] != "" {
			return true
		}
	}
	return false
}
