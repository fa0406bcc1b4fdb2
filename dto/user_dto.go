package dto

import (
	"errors"
	"strings"
	"unicode"
)

type CreateUserInput struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Avatar   *string `json:"avatar"`
}

type UpdateUserInput struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Avatar   *string `json:"avatar"`
}

const passwordSpecials = "@$!%*?&"

// ValidatePassword enforces the complexity rule binding tags cannot express:
// at least one uppercase letter, one lowercase letter, one digit and one
// special character from the allowed set.
func ValidatePassword(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("password must contain at least one uppercase letter, one lowercase letter, one number and one special character")
	}
	return nil
}

func (i *CreateUserInput) Validate() error {
	return ValidatePassword(i.Password)
}

func (i *UpdateUserInput) Validate() error {
	if i.Password != nil {
		return ValidatePassword(*i.Password)
	}
	return nil
}

// Updates returns only the fields present in the payload.
func (i *UpdateUserInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if i.Name != nil {
		updates["name"] = *i.Name
	}
	if i.Email != nil {
		updates["email"] = *i.Email
	}
	if i.Password != nil {
		updates["password"] = *i.Password
	}
	if i.Avatar != nil {
		updates["avatar"] = *i.Avatar
	}
	return updates
}
