package utils

import (
	"encoding/csv"
	"io"
	"time"

	. "server/internal/models"
)

var applicationCSVHeader = []string{
	"id",
	"last_name",
	"first_name",
	"status",
	"payment_status",
	"submitted_at",
	"updated_at",
}

// WriteApplicationsCSV streams submitted applications as CSV for the admin
// export. Rows whose payload fails to decode are written with empty name
// columns rather than aborting the export.
func WriteApplicationsCSV(w io.Writer, applications []*Application) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(applicationCSVHeader); err != nil {
		return err
	}

	for _, application := range applications {
		var lastName, firstName string
		if record, err := application.Record(); err == nil {
			lastName = record.Str("last_name")
			firstName = record.Str("first_name")
		}

		submittedAt := ""
		if application.SubmittedAt != nil {
			submittedAt = application.SubmittedAt.UTC().Format(time.RFC3339)
		}

		row := []string{
			application.ID,
			lastName,
			firstName,
			application.Status,
			application.PaymentStatus,
			submittedAt,
			application.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
