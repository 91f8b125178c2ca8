package category

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shared-ledger/internal/apperr"
	domain "shared-ledger/internal/domain/category"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) AddCategory(ctx context.Context, category *domain.Category) error {
	return apperr.Unavailable(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(category).Error)
}

func (r *GormRepository) ListCategoryNames(ctx context.Context, groupID, categoryType string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("group_id = ? AND type = ?", groupID, categoryType).
		Order("id asc").
		Pluck("name", &names).Error; err != nil {
		return nil, apperr.Unavailable(err)
	}
	return names, nil
}
