package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shared-ledger/internal/apperr"
	"shared-ledger/internal/db"
	domain "shared-ledger/internal/domain/user"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if db.IsUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	return apperr.Unavailable(err)
}

func (r *GormRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperr.Unavailable(err)
	}
	return &user, nil
}
