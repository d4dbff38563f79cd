package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	APPLICATION_CACHE_EXPIRY = 1 * time.Hour
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*Application, error)
	GetLatestDraft(ctx context.Context, userID string) (*Application, error)
	GetSubmitted(ctx context.Context) ([]*Application, error)
	Create(ctx context.Context, application *Application) error
	Update(ctx context.Context, application *Application) error
	MarkPaid(ctx context.Context, id, sessionID string) error
}

type applicationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewApplication(db database.DB) ApplicationRepository {
	return &applicationRepository{
		db:  db,
		log: logger.New("applicationRepository"),
	}
}

func (r *applicationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*Application, error) {
	log := r.log.Function("GetByID")

	var application Application
	if found, _ := r.getCacheByID(ctx, id, &application); found {
		return &application, nil
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, log.Err("failed to parse application id", err, "id", id)
	}

	if err := r.getDB(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get application by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &application); err != nil {
		log.Warn("failed to add application to cache", "applicationID", id, "error", err)
	}

	return &application, nil
}

// GetLatestDraft returns the one mutable draft for the user: most recently
// updated row with status=draft. Concurrent edits from two tabs race to
// overwrite this row, last write wins.
func (r *applicationRepository) GetLatestDraft(ctx context.Context, userID string) (*Application, error) {
	log := r.log.Function("GetLatestDraft")

	var application Application
	err := r.getDB(ctx).
		Where("user_id = ? AND status = ?", userID, StatusDraft).
		Order("updated_at DESC").
		First(&application).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get latest draft", err, "userID", userID)
	}

	return &application, nil
}

func (r *applicationRepository) GetSubmitted(ctx context.Context) ([]*Application, error) {
	log := r.log.Function("GetSubmitted")

	var applications []*Application
	err := r.getDB(ctx).
		Where("status = ?", StatusSubmitted).
		Order("submitted_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, log.Err("failed to get submitted applications", err)
	}

	return applications, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *Application) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(application).Error; err != nil {
		return log.Err("failed to create application", err, "userID", application.UserID)
	}

	if err := r.addToCache(ctx, application); err != nil {
		log.Warn("failed to add application to cache", "applicationID", application.ID, "error", err)
	}

	return nil
}

func (r *applicationRepository) Update(ctx context.Context, application *Application) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(application).Error; err != nil {
		return log.Err("failed to update application", err, "applicationID", application.ID)
	}

	if err := r.addToCache(ctx, application); err != nil {
		log.Warn("failed to update application in cache", "applicationID", application.ID, "error", err)
	}

	return nil
}

// MarkPaid flips the payment column in place; called from both the
// synchronous confirmation path and the webhook, so it must be safe to
// apply twice.
func (r *applicationRepository) MarkPaid(ctx context.Context, id, sessionID string) error {
	log := r.log.Function("MarkPaid")

	updates := map[string]any{
		"payment_status":     PaymentPaid,
		"payment_session_id": sessionID,
	}
	if err := r.getDB(ctx).Model(&Application{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return log.Err("failed to mark application paid", err, "applicationID", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Application, id).Delete(); err != nil {
		log.Warn("failed to remove application from cache", "applicationID", id, "error", err)
	}

	return nil
}

func (r *applicationRepository) getCacheByID(ctx context.Context, id string, application *Application) (bool, error) {
	found, err := database.NewCacheBuilder(r.db.Cache.Application, id).
		WithContext(ctx).
		Get(application)
	if err != nil {
		return false, r.log.Function("getCacheByID").
			Err("failed to get application from cache", err, "applicationID", id)
	}

	return found, nil
}

func (r *applicationRepository) addToCache(ctx context.Context, application *Application) error {
	if err := database.NewCacheBuilder(r.db.Cache.Application, application.ID).
		WithStruct(application).
		WithTTL(APPLICATION_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		return r.log.Function("addToCache").
			Err("failed to add application to cache", err, "applicationID", application.ID)
	}
	return nil
}
