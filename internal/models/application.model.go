package models

import (
	"encoding/json"
	"time"

	"server/internal/intake"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Application is one N-400 application: a flat intake payload plus the
// status and payment columns the workflow drives. Stored one row per
// application; the payload column holds the serialized intake record.
type Application struct {
	BaseUUIDModel
	UserID           string     `gorm:"type:varchar(64);index:idx_applications_user_status;not null" json:"userId"`
	Status           string     `gorm:"type:varchar(20);index:idx_applications_user_status;not null;default:draft"  json:"status"`
	PaymentStatus    string     `gorm:"type:varchar(20);not null;default:unpaid"                     json:"paymentStatus"`
	PaymentSessionID *string    `gorm:"type:varchar(255)"                                            json:"paymentSessionId,omitempty"`
	Payload          string     `gorm:"type:text;not null;default:'{}'"                              json:"-"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty"`
}

func (a *Application) Record() (intake.Record, error) {
	if a.Payload == "" {
		return intake.Record{}, nil
	}
	var record intake.Record
	if err := json.Unmarshal([]byte(a.Payload), &record); err != nil {
		return nil, err
	}
	return record, nil
}

func (a *Application) SetRecord(record intake.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	a.Payload = string(payload)
	return nil
}

// IsPaid gates the PDF download.
func (a *Application) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}

type SaveDraftRequest struct {
	Values intake.Record `json:"values"`
}

type SubmitRequest struct {
	Values intake.Record `json:"values"`
}

type ValidateStepRequest struct {
	Step   int           `json:"step"`
	Values intake.Record `json:"values"`
}

type CreateCheckoutRequest struct {
	FormID string `json:"formId"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId"`
	FormID    string `json:"formId"`
}
