package main

import (
	"log"
	"math/rand"

	"todo-api/infra"
	"todo-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with demo users, todos and categories, then assigns
// one or two random categories to every todo.
func main() {
	infra.Initialize()
	db := infra.SetupDB()

	log.Println("Start seeding...")

	db.Where("1 = 1").Delete(&models.CategoryTodo{})
	db.Where("1 = 1").Delete(&models.Todo{})
	db.Where("1 = 1").Delete(&models.Category{})
	db.Where("1 = 1").Delete(&models.User{})

	users := []models.User{
		{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: hashPassword("password123"),
			Todos: []models.Todo{
				{Title: "Buy groceries"},
				{Title: "Clean the house"},
			},
		},
		{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: hashPassword("password456"),
			Todos: []models.Todo{
				{Title: "Finish project report"},
				{Title: "Call mom"},
			},
		},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}
		log.Printf("Created user with id: %d", users[i].ID)
	}

	categories := []models.Category{
		{Title: "Work"},
		{Title: "Personal"},
		{Title: "Shopping"},
		{Title: "Health"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category: %v", err)
		}
		log.Printf("Created category with id: %d", categories[i].ID)
	}

	assignCategories(db, categories)

	log.Println("Seeding finished")
}

func assignCategories(db *gorm.DB, categories []models.Category) {
	var todos []models.Todo
	if err := db.Find(&todos).Error; err != nil {
		log.Fatalf("Failed to load todos: %v", err)
	}

	for _, todo := range todos {
		picked := rand.Perm(len(categories))[:rand.Intn(2)+1]
		for _, i := range picked {
			join := models.CategoryTodo{TodoID: todo.ID, CategoryID: categories[i].ID}
			if err := db.Create(&join).Error; err != nil {
				log.Fatalf("Failed to assign category: %v", err)
			}
			log.Printf("Assigned category %d to todo %d", categories[i].ID, todo.ID)
		}
	}
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hashed)
}
