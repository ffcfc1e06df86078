package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"careervector/internal/config"
	"careervector/internal/db"
	"careervector/internal/model"
	"careervector/internal/repository"
)

// Seeds one verified student and one verified recruiter for local
// development, so the login and reset flows can be exercised without going
// through email verification first.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Student{}, &model.Recruiter{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	ctx := context.Background()
	studentRepo := repository.NewStudentRepository(gormDB)
	recruiterRepo := repository.NewRecruiterRepository(gormDB)

	student := &model.Student{
		RollNumber: "21CS001",
		FullName:   "Demo Student",
		Email:      "student@careervector.local",
		Password:   string(hash),
		UserName:   "demo_student",
		Dept:       "CSE",
		Branch:     "Computer Science",
		Semester:   6,
		Year:       3,
		Verified:   true,
	}
	if err := studentRepo.Create(ctx, student); err != nil {
		log.Printf("Student seed skipped (may already exist): %v", err)
	} else {
		log.Printf("Seeded student %s", student.Email)
	}

	recruiter := &model.Recruiter{
		Email:       "recruiter@careervector.local",
		FullName:    "Demo Recruiter",
		UserName:    "demo_recruiter",
		CompanyName: "Acme Corp",
		Role:        "HR",
		Password:    string(hash),
		Verified:    true,
	}
	if err := recruiterRepo.Create(ctx, recruiter); err != nil {
		log.Printf("Recruiter seed skipped (may already exist): %v", err)
	} else {
		log.Printf("Seeded recruiter %s", recruiter.Email)
	}

	log.Println("Seed completed")
}
