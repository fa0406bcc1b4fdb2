package models

import "time"

type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Todos     []CategoryTodo `gorm:"foreignKey:CategoryID" json:"todos,omitempty"`
}
