package intake

import "fmt"

// Condition is a single-field visibility rule. A question is shown when the
// driving field's value matches any of the listed values; no cross-field
// combinations exist anywhere on the form.
type Condition struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

type Question struct {
	ID       string     `json:"id"`
	Required bool       `json:"required,omitempty"`
	ShowWhen *Condition `json:"showWhen,omitempty"`
}

type Step struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

func show(field string, values ...string) *Condition {
	return &Condition{Field: field, Values: values}
}

func q(id string) Question   { return Question{ID: id} }
func req(id string) Question { return Question{ID: id, Required: true} }

func when(id string, c *Condition) Question {
	return Question{ID: id, ShowWhen: c}
}

// Steps is the wizard, in order. The review step carries no questions of
// its own. Contact fields are declared exactly once, on step 4.
var Steps = []Step{
	{Number: 1, Title: "Eligibility", Questions: []Question{
		req("eligibility_basis"),
		when("eligibility_other_explanation", show("eligibility_basis", "other")),
	}},
	{Number: 2, Title: "Your Name", Questions: []Question{
		req("last_name"),
		req("first_name"),
		q("middle_name"),
		req("has_used_other_names"),
		when(SectionOtherNames, show("has_used_other_names", "yes")),
		req("wants_name_change"),
		when("new_first_name", show("wants_name_change", "yes")),
		when("new_middle_name", show("wants_name_change", "yes")),
		when("new_last_name", show("wants_name_change", "yes")),
	}},
	{Number: 3, Title: "Biographic Information", Questions: []Question{
		req("date_of_birth"),
		req("country_of_birth"),
		req("country_of_citizenship"),
		req("gender"),
		req("green_card_date"),
		q("ssn"),
		q("a_number"),
		q("uscis_online_account"),
		req("ethnicity"),
		req("race"),
		req("height_feet"),
		req("height_inches"),
		req("weight"),
		req("eye_color"),
		req("hair_color"),
	}},
	{Number: 4, Title: "Contact Information", Questions: []Question{
		req("daytime_phone"),
		q("evening_phone"),
		q("mobile_phone"),
		q("email"),
	}},
	{Number: 5, Title: "Where You Have Lived", Questions: []Question{
		req("street_address"),
		q("apt_unit"),
		req("city"),
		q("county"),
		q("state"),
		q("zip_code"),
		q("country"),
		q("date_moved_in"),
		req("mailing_same_as_residence"),
		when("mailing_street_address", show("mailing_same_as_residence", "no")),
		when("mailing_apt_unit", show("mailing_same_as_residence", "no")),
		when("mailing_city", show("mailing_same_as_residence", "no")),
		when("mailing_state", show("mailing_same_as_residence", "no")),
		when("mailing_zip_code", show("mailing_same_as_residence", "no")),
		when("mailing_country", show("mailing_same_as_residence", "no")),
		q(SectionAddresses),
	}},
	{Number: 6, Title: "Marital History", Questions: []Question{
		req("marital_status"),
		when("times_married", show("marital_status", "married", "divorced", "widowed", "separated")),
		when("spouse_last_name", show("marital_status", "married")),
		when("spouse_first_name", show("marital_status", "married")),
		when("spouse_date_of_birth", show("marital_status", "married")),
		when("spouse_date_of_marriage", show("marital_status", "married")),
		when("spouse_is_us_citizen", show("marital_status", "married")),
		when("spouse_a_number", show("spouse_is_us_citizen", "no")),
		when("spouse_employer", show("marital_status", "married")),
		when("spouse_is_military", show("marital_status", "married")),
	}},
	{Number: 7, Title: "Your Children", Questions: []Question{
		req("total_children"),
		when(SectionChildren, show("total_children", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10")),
	}},
	{Number: 8, Title: "Employment and Schools", Questions: []Question{
		q(SectionEmployment),
	}},
	{Number: 9, Title: "Time Outside the United States", Questions: []Question{
		q("total_days_outside_us"),
		q("total_trips"),
		q(SectionTrips),
	}},
	{Number: 10, Title: "Additional Questions (Part 1)", Questions: []Question{
		req("claimed_us_citizenship"),
		req("registered_to_vote"),
		req("voted_in_us"),
		q("failed_to_file_taxes"),
		q("owes_overdue_taxes"),
		q("has_title_of_nobility"),
		q("declared_incompetent"),
	}},
	{Number: 11, Title: "Additional Questions (Part 2)", Questions: []Question{
		req("ever_committed_crime"),
		when(SectionCrimes, show("ever_committed_crime", "yes")),
		q("ever_arrested"),
		q("member_of_organization"),
		q("affiliated_with_communist_party"),
		q("advocated_overthrow"),
		q("persecuted_anyone"),
		q("failed_to_support_dependents"),
		q("misrepresented_for_immigration"),
	}},
	{Number: 12, Title: "Fee Reduction", Questions: []Question{
		req("fee_reduction_requested"),
		when("household_income", show("fee_reduction_requested", "yes")),
		when("household_size", show("fee_reduction_requested", "yes")),
	}},
	{Number: 13, Title: "Social Security Update", Questions: []Question{
		req("ssa_wants_card"),
		when("ssa_consent_to_disclosure", show("ssa_wants_card", "yes")),
	}},
	{Number: 14, Title: "Interpreter and Preparer", Questions: []Question{
		req("used_interpreter"),
		when("interpreter_last_name", show("used_interpreter", "yes")),
		when("interpreter_first_name", show("used_interpreter", "yes")),
		when("interpreter_language", show("used_interpreter", "yes")),
		when("interpreter_phone", show("used_interpreter", "yes")),
		req("used_preparer"),
		when("preparer_last_name", show("used_preparer", "yes")),
		when("preparer_first_name", show("used_preparer", "yes")),
		when("preparer_organization", show("used_preparer", "yes")),
		when("preparer_phone", show("used_preparer", "yes")),
	}},
	{Number: 15, Title: "Signature", Questions: []Question{
		req("oath_willing"),
		when("oath_reason", show("oath_willing", "no")),
		req("signature"),
		q("signature_date"),
	}},
	{Number: 16, Title: "Review", Questions: nil},
}

// FindStep returns the step definition, or false for an unknown number.
func FindStep(number int) (Step, bool) {
	for _, step := range Steps {
		if step.Number == number {
			return step, true
		}
	}
	return Step{}, false
}

// IsVisible evaluates a question's show_when rule against the current
// answers. Unconditional questions are always visible.
func IsVisible(question Question, values Record) bool {
	if question.ShowWhen == nil {
		return true
	}

	current := values.Str(question.ShowWhen.Field)
	for _, candidate := range question.ShowWhen.Values {
		if current == candidate {
			return true
		}
	}
	return false
}

// RequiredFields returns the field IDs that block "Next" on the given step.
func RequiredFields(number int) []string {
	step, ok := FindStep(number)
	if !ok {
		return nil
	}

	var fields []string
	for _, question := range step.Questions {
		if question.Required {
			fields = append(fields, question.ID)
		}
	}
	return fields
}

// VisibleFields returns every question currently shown on the step, given
// the answers so far.
func VisibleFields(number int, values Record) []string {
	step, ok := FindStep(number)
	if !ok {
		return nil
	}

	var fields []string
	for _, question := range step.Questions {
		if IsVisible(question, values) {
			fields = append(fields, question.ID)
		}
	}
	return fields
}

// ValidateStep checks the step's required fields. Per-field messages are
// keyed by field ID for inline display; an empty map means the step may
// advance. Step gating is client-facing only; the full record is validated
// again at submit.
func ValidateStep(number int, values Record) map[string]string {
	step, ok := FindStep(number)
	if !ok {
		return map[string]string{"step": fmt.Sprintf("unknown step %d", number)}
	}

	errors := make(map[string]string)
	for _, question := range step.Questions {
		if !question.Required || !IsVisible(question, values) {
			continue
		}
		if values.Str(question.ID) == "" {
			errors[question.ID] = "This field is required"
		}
	}
	return errors
}
