package seed

import (
	"server/config"
	"server/internal/intake"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

// Seed inserts a development user with a partially completed draft so the
// wizard has something to load locally.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	user := User{
		Subject: "dev-subject-001",
		Email:   stringPtr("applicant@example.com"),
	}

	var existingUser User
	if err := db.First(&existingUser, "subject = ?", user.Subject).Error; err == nil {
		log.Info("Seed user already exists", "subject", user.Subject)
		return nil
	}

	if err := db.Create(&user).Error; err != nil {
		return log.Err("failed to create seed user", err, "subject", user.Subject)
	}

	record := intake.Record{
		"eligibility_basis":      "5_year",
		"last_name":              "Lovelace",
		"first_name":             "Ada",
		"has_used_other_names":   "no",
		"wants_name_change":      "no",
		"date_of_birth":          "1985-03-15",
		"country_of_birth":       "United Kingdom",
		"country_of_citizenship": "United Kingdom",
		"gender":                 "female",
		"green_card_date":        "2019-06-01",
		"marital_status":         "single",
	}
	intake.PackSections(record)

	draft := Application{
		UserID:        user.ID,
		Status:        StatusDraft,
		PaymentStatus: PaymentUnpaid,
	}
	if err := draft.SetRecord(record); err != nil {
		return log.Err("failed to encode seed draft", err)
	}

	if err := db.Create(&draft).Error; err != nil {
		return log.Err("failed to create seed draft", err)
	}

	log.Info("Seeded development data", "userID", user.ID, "draftID", draft.ID)
	return nil
}
