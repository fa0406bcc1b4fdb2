package dto

type CreateTodoInput struct {
	Title  string `json:"title" binding:"required"`
	UserID uint   `json:"userId" binding:"required"`
}

type UpdateTodoInput struct {
	Title  *string `json:"title"`
	UserID *uint   `json:"userId"`
}

func (i *UpdateTodoInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if i.Title != nil {
		updates["title"] = *i.Title
	}
	if i.UserID != nil {
		updates["user_id"] = *i.UserID
	}
	return updates
}
