package seeder

import (
	"context"
	"log"
	"time"

	"school-management-backend/models"
	"school-management-backend/repository"
)

// SeedClasses creates a small default set of classes when none exist yet.
func SeedClasses(classRepo repository.ClassRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	classes := []models.SchoolClass{
		{Name: "Grade 7A", Grade: 7, Section: "A"},
		{Name: "Grade 7B", Grade: 7, Section: "B"},
		{Name: "Grade 8A", Grade: 8, Section: "A"},
		{Name: "Grade 8B", Grade: 8, Section: "B"},
		{Name: "Grade 9A", Grade: 9, Section: "A"},
	}

	for i := range classes {
		existing, err := classRepo.FindClassByName(ctx, classes[i].Name)
		if err != nil {
			log.Printf("failed to check class %s: %v", classes[i].Name, err)
			continue
		}
		if existing != nil {
			continue
		}

		if _, err := classRepo.CreateClass(ctx, &classes[i]); err != nil {
			log.Printf("failed to seed class %s: %v", classes[i].Name, err)
			continue
		}
		log.Printf("seeded class %s", classes[i].Name)
	}

	log.Println("Class seeding complete.")
}
