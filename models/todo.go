package models

import "time"

type Todo struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	UserID     uint           `gorm:"not null;index" json:"userId"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Categories []CategoryTodo `gorm:"foreignKey:TodoID" json:"categories,omitempty"`
}
