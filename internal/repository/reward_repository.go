package repository

import (
	"context"

	"github.com/questa-app/questa-backend/internal/model"
	"gorm.io/gorm"
)

type RewardRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Reward, error)
	List(ctx context.Context) ([]model.Reward, error)
	Redeem(ctx context.Context, userID, rewardID uint64, pointsNeeded int64) error
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) FindByID(ctx context.Context, id uint64) (*model.Reward, error) {
	var rw model.Reward
	if err := r.db.WithContext(ctx).First(&rw, id).Error; err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *rewardRepository) List(ctx context.Context) ([]model.Reward, error) {
	var list []model.Reward
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Redeem debits pointsNeeded from the user only when the balance covers it,
// then records membership, all in one transaction. The conditional UPDATE
// keeps two concurrent redemptions from both draining the same balance;
// gorm.ErrRecordNotFound signals an insufficient balance to the caller.
func (r *rewardRepository) Redeem(ctx context.Context, userID, rewardID uint64, pointsNeeded int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// MySQL reports changed rows, not matched rows, so a zero-cost
		// redemption would come back with RowsAffected = 0 even though
		// every balance satisfies the threshold. Skip the debit; any
		// balance qualifies when pointsNeeded is 0.
		if pointsNeeded > 0 {
			res := tx.Model(&model.User{}).
				Where("id = ? AND points >= ?", userID, pointsNeeded).
				Update("points", gorm.Expr("points - ?", pointsNeeded))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		var membership model.RewardRedemption
		return tx.
			Where("user_id = ? AND reward_id = ?", userID, rewardID).
			FirstOrCreate(&membership, &model.RewardRedemption{
				UserID:   userID,
				RewardID: rewardID,
			}).Error
	})
}
