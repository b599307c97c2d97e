package model

import "time"

type Reward struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"size:255;not null"`
	PointsNeeded int64     `gorm:"column:points_needed;not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Reward) TableName() string {
	return "rewards"
}
