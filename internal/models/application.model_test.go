package models

import (
	"testing"

	"server/internal/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_RecordRoundTrip(t *testing.T) {
	record := intake.Record{
		"last_name":  "Okafor",
		"first_name": "Chidi",
	}
	record.SetEntries(intake.SectionOtherNames, []intake.Entry{
		{"last_name": "Obi", "first_name": "Chidi"},
	})

	application := &Application{}
	require.NoError(t, application.SetRecord(record))

	decoded, err := application.Record()
	require.NoError(t, err)

	assert.Equal(t, "Okafor", decoded.Str("last_name"))
	assert.Equal(t, "Chidi", decoded.Str("first_name"))
	assert.Equal(t, []intake.Entry{{"last_name": "Obi", "first_name": "Chidi"}},
		decoded.Entries(intake.SectionOtherNames))
}

func TestApplication_RecordEmptyPayload(t *testing.T) {
	application := &Application{}

	record, err := application.Record()
	require.NoError(t, err)
	assert.Equal(t, intake.Record{}, record)
}

func TestApplication_RecordMalformedPayload(t *testing.T) {
	application := &Application{Payload: "{not json"}

	record, err := application.Record()
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestApplication_IsPaid(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus string
		expected      bool
	}{
		{name: "paid", paymentStatus: PaymentPaid, expected: true},
		{name: "unpaid", paymentStatus: PaymentUnpaid, expected: false},
		{name: "empty", paymentStatus: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := &Application{PaymentStatus: tt.paymentStatus}
			assert.Equal(t, tt.expected, application.IsPaid())
		})
	}
}
