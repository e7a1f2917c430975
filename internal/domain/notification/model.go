package notification

import "time"

type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
