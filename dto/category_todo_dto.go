package dto

type CreateCategoryTodoInput struct {
	TodoID     uint `json:"todoId" binding:"required"`
	CategoryID uint `json:"categoryId" binding:"required"`
}
