package models

import "time"

// CategoryTodo is the todo/category join row. The composite primary key
// doubles as the uniqueness constraint on the pair.
type CategoryTodo struct {
	TodoID     uint      `gorm:"primaryKey;autoIncrement:false" json:"todoId"`
	CategoryID uint      `gorm:"primaryKey;autoIncrement:false" json:"categoryId"`
	Todo       *Todo     `json:"todo,omitempty"`
	Category   *Category `json:"category,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
