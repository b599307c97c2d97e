package model

import "time"

// ActivityCompletion records that a user completed an activity. The composite
// key makes membership idempotent; it does not guard against repeat crediting,
// which happens at the ledger level on every completion call.
type ActivityCompletion struct {
	UserID     uint64    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ActivityID uint64    `gorm:"column:activity_id;primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ActivityCompletion) TableName() string {
	return "activity_completions"
}

// RewardRedemption records that a user redeemed a reward.
type RewardRedemption struct {
	UserID    uint64    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	RewardID  uint64    `gorm:"column:reward_id;primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RewardRedemption) TableName() string {
	return "reward_redemptions"
}
