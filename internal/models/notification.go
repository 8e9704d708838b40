package models

import (
	"time"
)

// Notification message non lu/lu dans la boîte d'un utilisateur
type Notification struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Lu         bool      `gorm:"default:false" json:"lu"`
	TargetID   uint      `gorm:"index:idx_notification_target" json:"target_id"`
	TargetType string    `gorm:"size:30;index:idx_notification_target" json:"target_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName nom de la table
func (Notification) TableName() string {
	return "notifications"
}
