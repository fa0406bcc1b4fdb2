package dto

type CreateCategoryInput struct {
	Title string `json:"title" binding:"required"`
}

type UpdateCategoryInput struct {
	Title *string `json:"title"`
}

func (i *UpdateCategoryInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if i.Title != nil {
		updates["title"] = *i.Title
	}
	return updates
}
