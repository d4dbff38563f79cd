package utils

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteApplicationsCSV(t *testing.T) {
	submittedAt := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	submitted := &Application{
		Status:        StatusSubmitted,
		PaymentStatus: PaymentPaid,
		Payload:       `{"last_name":"Okafor","first_name":"Chidi"}`,
		SubmittedAt:   &submittedAt,
	}
	submitted.ID = "app-1"
	submitted.UpdatedAt = submittedAt

	broken := &Application{
		Status:        StatusSubmitted,
		PaymentStatus: PaymentUnpaid,
		Payload:       "{not json",
	}
	broken.ID = "app-2"
	broken.UpdatedAt = submittedAt

	var buf bytes.Buffer
	require.NoError(t, WriteApplicationsCSV(&buf, []*Application{submitted, broken}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"id", "last_name", "first_name", "status", "payment_status", "submitted_at", "updated_at",
	}, rows[0])

	assert.Equal(t, []string{
		"app-1", "Okafor", "Chidi", StatusSubmitted, PaymentPaid,
		"2024-01-10T15:30:00Z", "2024-01-10T15:30:00Z",
	}, rows[1])

	// Undecodable payloads export with empty name columns, not an error.
	assert.Equal(t, []string{
		"app-2", "", "", StatusSubmitted, PaymentUnpaid,
		"", "2024-01-10T15:30:00Z",
	}, rows[2])
}

func TestWriteApplicationsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteApplicationsCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "id", rows[0][0])
}
