package ledger

import (
	"context"

	"gorm.io/gorm"

	"shared-ledger/internal/apperr"
	domain "shared-ledger/internal/domain/ledger"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CreateRecord(ctx context.Context, record *domain.Record) error {
	return apperr.Unavailable(r.db.WithContext(ctx).Create(record).Error)
}

func (r *GormRepository) DeleteRecord(ctx context.Context, id int64) error {
	return apperr.Unavailable(r.db.WithContext(ctx).Delete(&domain.Record{}, "id = ?", id).Error)
}

func (r *GormRepository) SearchRecords(ctx context.Context, groupID, timePattern, recordType string) ([]domain.RecordView, error) {
	query := r.db.WithContext(ctx).
		Table("records").
		Select("records.*, users.username").
		Joins("join users on users.id = records.user_id").
		Where("records.group_id = ? AND records.time LIKE ?", groupID, timePattern)
	if recordType != "" {
		query = query.Where("records.type = ?", recordType)
	}

	var records []domain.RecordView
	if err := query.
		Order("records.time desc, records.id desc").
		Scan(&records).Error; err != nil {
		return nil, apperr.Unavailable(err)
	}
	return records, nil
}
