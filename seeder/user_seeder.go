package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"school-management-backend/models"
	"school-management-backend/repository"
)

// SeedUsers creates a management account plus a handful of teachers and
// students spread across the seeded classes. Existing accounts are left
// untouched.
func SeedUsers(userRepo *repository.UserRepository, classRepo repository.ClassRepository) {
	log.Println("Seeding users...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	adminEmail := "admin@school.example"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("Management account already exists, skipping.")
	} else {
		newAdmin := &models.User{
			Name:     "School Administrator",
			Email:    adminEmail,
			Password: string(hashedPassword),
			Role:     "management",
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("failed to seed management account: %v", err)
		} else {
			log.Printf("seeded management account %s", adminEmail)
		}
	}

	allClasses, err := classRepo.GetAllClasses(ctx)
	if err != nil {
		log.Printf("failed to load classes for seeding: %v", err)
		return
	}
	if len(allClasses) == 0 {
		log.Println("No classes found, seed classes first.")
		return
	}

	subjects := []string{"Mathematics", "Science", "English", "History", "Geography"}
	for i, subject := range subjects {
		email := fmt.Sprintf("teacher%02d@school.example", i+1)
		existing, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existing != nil {
			continue
		}

		teacher := &models.User{
			Name:     fmt.Sprintf("%s Teacher", subject),
			Email:    email,
			Password: string(hashedPassword),
			Role:     "teacher",
		}
		if _, err := userRepo.CreateUser(ctx, teacher); err != nil {
			log.Printf("failed to seed teacher %s: %v", email, err)
		}
	}

	firstNames := []string{"Aisha", "Ben", "Chloe", "Daniel", "Emma", "Farid", "Grace", "Hassan", "Isla", "James", "Kiara", "Liam", "Mia", "Noah", "Olivia", "Priya", "Quinn", "Ravi", "Sofia", "Tariq"}
	lastNames := []string{"Ahmed", "Brown", "Chen", "Davies", "Evans", "Fischer", "Garcia", "Hughes", "Iqbal", "Jones", "Khan", "Lewis", "Martin", "Nguyen", "Osman", "Patel", "Quincy", "Rahman", "Singh", "Taylor"}

	log.Println("Seeding 30 students...")
	for i := 1; i <= 30; i++ {
		email := fmt.Sprintf("student%02d@school.example", i)
		existing, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existing != nil {
			continue
		}

		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]
		class := allClasses[rand.Intn(len(allClasses))]

		student := &models.User{
			Name:         fmt.Sprintf("%s %s", firstName, lastName),
			Email:        email,
			Password:     string(hashedPassword),
			Role:         "student",
			ClassName:    class.Name,
			GuardianName: fmt.Sprintf("Guardian of %s %s", firstName, lastName),
		}
		if _, err := userRepo.CreateUser(ctx, student); err != nil {
			log.Printf("failed to seed student %s: %v", email, err)
		}
	}

	log.Println("User seeding complete.")
}
