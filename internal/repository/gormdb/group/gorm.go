package group

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shared-ledger/internal/apperr"
	"shared-ledger/internal/db"
	domain "shared-ledger/internal/domain/group"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	err := r.db.WithContext(ctx).Create(group).Error
	if db.IsUniqueViolation(err) {
		return domain.ErrCodeTaken
	}
	return apperr.Unavailable(err)
}

func (r *GormRepository) AddMember(ctx context.Context, member *domain.Membership) error {
	return apperr.Unavailable(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member).Error)
}

func (r *GormRepository) GroupExists(ctx context.Context, groupID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return false, apperr.Unavailable(err)
	}
	return count > 0, nil
}

func (r *GormRepository) ListGroupIDsByUsername(ctx context.Context, username string) ([]string, error) {
	var groupIDs []string
	if err := r.db.WithContext(ctx).
		Table("memberships").
		Joins("join users on users.id = memberships.user_id").
		Where("users.username = ?", username).
		Order("memberships.joined_at asc, memberships.group_id asc").
		Pluck("memberships.group_id", &groupIDs).Error; err != nil {
		return nil, apperr.Unavailable(err)
	}
	return groupIDs, nil
}

func (r *GormRepository) HasMembership(ctx context.Context, username, groupID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("memberships").
		Joins("join users on users.id = memberships.user_id").
		Where("users.username = ? AND memberships.group_id = ?", username, groupID).
		Count(&count).Error; err != nil {
		return false, apperr.Unavailable(err)
	}
	return count > 0, nil
}
