package repository

import (
	"context"

	"github.com/questa-app/questa-backend/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	Complete(ctx context.Context, userID, activityID uint64, points int64) error
	CompletedActivityIDs(ctx context.Context, userID uint64) (map[uint64]bool, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) FindByID(ctx context.Context, id uint64) (*model.Activity, error) {
	var a model.Activity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) List(ctx context.Context) ([]model.Activity, error) {
	var list []model.Activity
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Complete credits the activity's points to the user and records membership in
// one transaction. Every call credits again; only the membership row is
// idempotent.
func (r *activityRepository) Complete(ctx context.Context, userID, activityID uint64, points int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// MySQL reports changed rows, not matched rows, so a zero-point
		// credit would come back with RowsAffected = 0 for an existing
		// user. Skip the UPDATE entirely; the membership row still counts.
		if points != 0 {
			res := tx.Model(&model.User{}).
				Where("id = ?", userID).
				Update("points", gorm.Expr("points + ?", points))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		var membership model.ActivityCompletion
		return tx.
			Where("user_id = ? AND activity_id = ?", userID, activityID).
			FirstOrCreate(&membership, &model.ActivityCompletion{
				UserID:     userID,
				ActivityID: activityID,
			}).Error
	})
}

func (r *activityRepository) CompletedActivityIDs(ctx context.Context, userID uint64) (map[uint64]bool, error) {
	var ids []uint64
	if err := r.db.WithContext(ctx).
		Model(&model.ActivityCompletion{}).
		Where("user_id = ?", userID).
		Pluck("activity_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
