package repositories

import (
	"context"
	"errors"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetBySubject(ctx context.Context, subject string) (*User, error)
	GetOrCreate(ctx context.Context, claims UserClaims) (*User, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUser(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *userRepository) GetBySubject(ctx context.Context, subject string) (*User, error) {
	log := r.log.Function("GetBySubject")

	var user User
	if err := r.getDB(ctx).First(&user, "subject = ?", subject).Error; err != nil {
		return nil, log.Err("failed to get user by subject", err, "subject", subject)
	}

	return &user, nil
}

// GetOrCreate resolves the token identity to a row, creating the user on
// first authenticated request. The hosted auth provider owns credentials;
// this table only anchors ownership of applications.
func (r *userRepository) GetOrCreate(ctx context.Context, claims UserClaims) (*User, error) {
	log := r.log.Function("GetOrCreate")

	var user User
	err := r.getDB(ctx).First(&user, "subject = ?", claims.Subject).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to look up user", err, "subject", claims.Subject)
	}

	user = User{Subject: claims.Subject}
	if claims.Email != "" {
		email := claims.Email
		user.Email = &email
	}

	if err := r.getDB(ctx).Create(&user).Error; err != nil {
		return nil, log.Err("failed to create user", err, "subject", claims.Subject)
	}

	log.Info("Created user", "subject", claims.Subject, "userID", user.ID)
	return &user, nil
}
