package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsCatalog(t *testing.T) {
	require.Len(t, Steps, 16)

	// Step numbers are contiguous and in order.
	for i, step := range Steps {
		assert.Equal(t, i+1, step.Number)
	}

	// The review step carries no questions of its own.
	review, ok := FindStep(16)
	require.True(t, ok)
	assert.Empty(t, review.Questions)

	// Each contact field appears on exactly one step.
	counts := make(map[string]int)
	for _, step := range Steps {
		for _, question := range step.Questions {
			counts[question.ID]++
		}
	}
	for _, field := range []string{"daytime_phone", "evening_phone", "mobile_phone", "email"} {
		assert.Equal(t, 1, counts[field], "field %s should be declared once", field)
	}
}

func TestFindStep(t *testing.T) {
	step, ok := FindStep(6)
	require.True(t, ok)
	assert.Equal(t, "Marital History", step.Title)

	_, ok = FindStep(0)
	assert.False(t, ok)

	_, ok = FindStep(17)
	assert.False(t, ok)
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		values   Record
		visible  bool
	}{
		{
			name:     "unconditional question is always visible",
			question: Question{ID: "last_name", Required: true},
			values:   Record{},
			visible:  true,
		},
		{
			name:     "condition met",
			question: Question{ID: "new_first_name", ShowWhen: &Condition{Field: "wants_name_change", Values: []string{"yes"}}},
			values:   Record{"wants_name_change": "yes"},
			visible:  true,
		},
		{
			name:     "condition not met",
			question: Question{ID: "new_first_name", ShowWhen: &Condition{Field: "wants_name_change", Values: []string{"yes"}}},
			values:   Record{"wants_name_change": "no"},
			visible:  false,
		},
		{
			name:     "driving field unanswered",
			question: Question{ID: "new_first_name", ShowWhen: &Condition{Field: "wants_name_change", Values: []string{"yes"}}},
			values:   Record{},
			visible:  false,
		},
		{
			name:     "multi value condition matches any listed value",
			question: Question{ID: "times_married", ShowWhen: &Condition{Field: "marital_status", Values: []string{"married", "divorced", "widowed", "separated"}}},
			values:   Record{"marital_status": "divorced"},
			visible:  true,
		},
		{
			name:     "multi value condition rejects unlisted value",
			question: Question{ID: "times_married", ShowWhen: &Condition{Field: "marital_status", Values: []string{"married", "divorced", "widowed", "separated"}}},
			values:   Record{"marital_status": "single"},
			visible:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, IsVisible(tt.question, tt.values))
		})
	}
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"eligibility_basis"}, RequiredFields(1))
	assert.Equal(t, []string{"daytime_phone"}, RequiredFields(4))
	assert.Nil(t, RequiredFields(99))
}

func TestVisibleFields(t *testing.T) {
	// With no name change and no other names, step 2 shows only the base
	// name questions.
	fields := VisibleFields(2, Record{
		"has_used_other_names": "no",
		"wants_name_change":    "no",
	})
	assert.Equal(t, []string{
		"last_name", "first_name", "middle_name",
		"has_used_other_names", "wants_name_change",
	}, fields)

	// Answering yes reveals the conditional blocks in declaration order.
	fields = VisibleFields(2, Record{
		"has_used_other_names": "yes",
		"wants_name_change":    "yes",
	})
	assert.Equal(t, []string{
		"last_name", "first_name", "middle_name",
		"has_used_other_names", SectionOtherNames,
		"wants_name_change", "new_first_name", "new_middle_name", "new_last_name",
	}, fields)
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name     string
		step     int
		values   Record
		expected map[string]string
	}{
		{
			name:     "complete step passes",
			step:     1,
			values:   Record{"eligibility_basis": "5_year"},
			expected: map[string]string{},
		},
		{
			name:   "missing required field",
			step:   1,
			values: Record{},
			expected: map[string]string{
				"eligibility_basis": "This field is required",
			},
		},
		{
			name: "hidden conditional field is not required",
			step: 13,
			values: Record{
				"ssa_wants_card": "no",
			},
			expected: map[string]string{},
		},
		{
			name: "whitespace only answer counts as missing",
			step: 4,
			values: Record{
				"daytime_phone": "   ",
			},
			expected: map[string]string{
				"daytime_phone": "This field is required",
			},
		},
		{
			name: "multiple missing fields reported together",
			step: 2,
			values: Record{
				"last_name": "Okafor",
			},
			expected: map[string]string{
				"first_name":           "This field is required",
				"has_used_other_names": "This field is required",
				"wants_name_change":    "This field is required",
			},
		},
		{
			name:     "review step always passes",
			step:     16,
			values:   Record{},
			expected: map[string]string{},
		},
		{
			name:   "unknown step",
			step:   42,
			values: Record{},
			expected: map[string]string{
				"step": "unknown step 42",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStep(tt.step, tt.values))
		})
	}
}

func TestFindBackgroundQuestion(t *testing.T) {
	question, ok := FindBackgroundQuestion("voted_in_us")
	require.True(t, ok)
	assert.Equal(t, 12, question.Part)
	assert.Equal(t, 3, question.Item)
	assert.True(t, question.ExplanationRequired)

	question, ok = FindBackgroundQuestion("registered_to_vote")
	require.True(t, ok)
	assert.False(t, question.ExplanationRequired)

	_, ok = FindBackgroundQuestion("not_a_question")
	assert.False(t, ok)
}
