package applicationController

import (
	"context"
	"errors"
	"server/internal/intake"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"
	"time"

	"gorm.io/gorm"
)

type ApplicationController struct {
	applicationRepo    repositories.ApplicationRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	applicationRepo repositories.ApplicationRepository,
	transactionService *services.TransactionService,
) *ApplicationController {
	return &ApplicationController{
		applicationRepo:    applicationRepo,
		transactionService: transactionService,
		log:                logger.New("ApplicationController"),
	}
}

// GetDraft loads the user's mutable draft with repeating sections expanded
// to structured arrays for the wizard. A missing draft is not an error;
// the first save creates one.
func (ac *ApplicationController) GetDraft(ctx context.Context, userID string) (*Application, intake.Record, error) {
	log := ac.log.Function("GetDraft")

	application, err := ac.applicationRepo.GetLatestDraft(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, log.Err("failed to load draft", err, "userID", userID)
	}

	record, err := application.Record()
	if err != nil {
		return nil, nil, log.Err("failed to decode draft payload", err, "applicationID", application.ID)
	}

	intake.UnpackSections(record)
	return application, record, nil
}

// SaveDraft upserts the user's single mutable draft. The lookup and write
// run in one transaction so two first-saves cannot create two drafts;
// beyond that it is last write wins, as documented.
func (ac *ApplicationController) SaveDraft(ctx context.Context, userID string, values intake.Record) (*Application, error) {
	log := ac.log.Function("SaveDraft")

	intake.PackSections(values)
	intake.Normalize(values)

	var result *Application
	err := ac.transactionService.Execute(ctx, func(txCtx context.Context) error {
		application, err := ac.applicationRepo.GetLatestDraft(txCtx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return log.Err("failed to look up draft", err, "userID", userID)
			}
			application = &Application{
				UserID:        userID,
				Status:        StatusDraft,
				PaymentStatus: PaymentUnpaid,
			}
			if err := application.SetRecord(values); err != nil {
				return log.Err("failed to encode draft payload", err, "userID", userID)
			}
			if err := ac.applicationRepo.Create(txCtx, application); err != nil {
				return err
			}
			result = application
			return nil
		}

		if err := application.SetRecord(values); err != nil {
			return log.Err("failed to encode draft payload", err, "applicationID", application.ID)
		}
		if err := ac.applicationRepo.Update(txCtx, application); err != nil {
			return err
		}
		result = application
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ValidateStep evaluates the step's gating for the wizard's "Next" button.
func (ac *ApplicationController) ValidateStep(step int, values intake.Record) map[string]string {
	return intake.ValidateStep(step, values)
}

// Submit validates the full record and flips the draft to submitted.
// Validation failures come back as a per-field map, not an error.
func (ac *ApplicationController) Submit(ctx context.Context, userID string, values intake.Record) (*Application, map[string]string, error) {
	log := ac.log.Function("Submit")

	intake.PackSections(values)
	intake.Normalize(values)

	if fieldErrors := intake.ValidateRecord(values); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	var result *Application
	err := ac.transactionService.Execute(ctx, func(txCtx context.Context) error {
		application, err := ac.applicationRepo.GetLatestDraft(txCtx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return log.Err("failed to look up draft", err, "userID", userID)
			}
			application = &Application{
				UserID:        userID,
				PaymentStatus: PaymentUnpaid,
			}
		}

		if err := application.SetRecord(values); err != nil {
			return log.Err("failed to encode submission payload", err, "userID", userID)
		}

		now := time.Now().UTC()
		application.Status = StatusSubmitted
		application.SubmittedAt = &now

		if application.ID == "" {
			if err := ac.applicationRepo.Create(txCtx, application); err != nil {
				return err
			}
		} else if err := ac.applicationRepo.Update(txCtx, application); err != nil {
			return err
		}

		result = application
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info("Application submitted", "applicationID", result.ID, "userID", userID)
	return result, nil, nil
}

// Get returns an application the user owns.
func (ac *ApplicationController) Get(ctx context.Context, userID, id string) (*Application, error) {
	log := ac.log.Function("Get")

	application, err := ac.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.UserID != userID {
		return nil, log.Error("application not owned by user", "applicationID", id, "userID", userID)
	}

	return application, nil
}
