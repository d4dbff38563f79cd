package intake

// BackgroundQuestion is one yes/no question from the form's additional
// questions section. Part and Item locate it on the official form;
// ExplanationRequired marks the questions where a "yes" must be explained
// in the additional-information section.
type BackgroundQuestion struct {
	ID                  string
	Part                int
	Item                int
	ExplanationRequired bool
}

var BackgroundQuestions = []BackgroundQuestion{
	{ID: "claimed_us_citizenship", Part: 12, Item: 1, ExplanationRequired: true},
	{ID: "registered_to_vote", Part: 12, Item: 2, ExplanationRequired: false},
	{ID: "voted_in_us", Part: 12, Item: 3, ExplanationRequired: true},
	{ID: "failed_to_file_taxes", Part: 12, Item: 4, ExplanationRequired: true},
	{ID: "owes_overdue_taxes", Part: 12, Item: 5, ExplanationRequired: true},
	{ID: "has_title_of_nobility", Part: 12, Item: 6, ExplanationRequired: true},
	{ID: "declared_incompetent", Part: 12, Item: 7, ExplanationRequired: false},
	{ID: "member_of_organization", Part: 12, Item: 9, ExplanationRequired: true},
	{ID: "affiliated_with_communist_party", Part: 12, Item: 10, ExplanationRequired: true},
	{ID: "advocated_overthrow", Part: 12, Item: 11, ExplanationRequired: true},
	{ID: "persecuted_anyone", Part: 12, Item: 14, ExplanationRequired: true},
	{ID: "ever_committed_crime", Part: 12, Item: 22, ExplanationRequired: false},
	{ID: "ever_arrested", Part: 12, Item: 23, ExplanationRequired: true},
	{ID: "failed_to_support_dependents", Part: 12, Item: 30, ExplanationRequired: true},
	{ID: "misrepresented_for_immigration", Part: 12, Item: 31, ExplanationRequired: true},
}

// FindBackgroundQuestion looks a question up by field ID.
func FindBackgroundQuestion(id string) (BackgroundQuestion, bool) {
	for _, question := range BackgroundQuestions {
		if question.ID == id {
			return question, true
		}
	}
	return BackgroundQuestion{}, false
}
