package main

import (
	"todo-api/infra"
	"todo-api/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	err := db.AutoMigrate(
		&models.User{},
		&models.Todo{},
		&models.Category{},
		&models.CategoryTodo{},
	)
	if err != nil {
		panic("Failed to migrate database")
	}
}
