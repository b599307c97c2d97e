package model

import "time"

type Activity struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Points      int64     `gorm:"not null;default:1"`
	Image       *string   `gorm:"size:512"`
	TimeHours   int64     `gorm:"column:time_hours;not null;default:0"`
	Weather     int64     `gorm:"not null;default:0"`
	StarRating  float64   `gorm:"column:star_rating;not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Activity) TableName() string {
	return "activities"
}
