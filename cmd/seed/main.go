package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"markbook/internal/config"
	"markbook/internal/db"
	"markbook/internal/model"
	"markbook/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	Email          string
	Role           string
	Name           string
	AssignedCourse string
}

type seedMark struct {
	StudentEmail string
	CourseCode   string
	Marks        float64
}

type seedComment struct {
	StudentEmail string
	CourseCode   string
	FacultyEmail string
	Comment      string
}

var seedCourses = []model.Course{
	{Code: "CS101", Name: "Computer Science Fundamentals", Description: "Introduction to programming and algorithms"},
	{Code: "MA102", Name: "Mathematics for Engineers", Description: "Calculus and linear algebra"},
	{Code: "EC201", Name: "Electronics and Communication", Description: "Basic electronics and communication systems"},
	{Code: "PH301", Name: "Physics for Engineers", Description: "Applied physics and mechanics"},
	{Code: "CH401", Name: "Chemistry Fundamentals", Description: "Basic chemistry and materials science"},
	{Code: "EN501", Name: "English Communication", Description: "Technical writing and communication skills"},
}

var seedUsers = []seedUser{
	{Email: "admin@test.com", Role: model.RoleAdmin, Name: "System Administrator"},
	{Email: "faculty.cs@test.com", Role: model.RoleFaculty, Name: "Dr. John Smith", AssignedCourse: "CS101"},
	{Email: "faculty.ma@test.com", Role: model.RoleFaculty, Name: "Dr. Sarah Johnson", AssignedCourse: "MA102"},
	{Email: "faculty.ec@test.com", Role: model.RoleFaculty, Name: "Dr. Mike Wilson", AssignedCourse: "EC201"},
	{Email: "faculty.ph@test.com", Role: model.RoleFaculty, Name: "Dr. Emily Davis", AssignedCourse: "PH301"},
	{Email: "faculty.ch@test.com", Role: model.RoleFaculty, Name: "Dr. Robert Brown", AssignedCourse: "CH401"},
	{Email: "faculty.en@test.com", Role: model.RoleFaculty, Name: "Dr. Lisa Garcia", AssignedCourse: "EN501"},
	{Email: "student1@test.com", Role: model.RoleStudent, Name: "Alice Johnson"},
	{Email: "student2@test.com", Role: model.RoleStudent, Name: "Bob Wilson"},
	{Email: "student3@test.com", Role: model.RoleStudent, Name: "Carol Davis"},
	{Email: "student4@test.com", Role: model.RoleStudent, Name: "David Brown"},
	{Email: "student5@test.com", Role: model.RoleStudent, Name: "Eva Garcia"},
}

var seedMarks = []seedMark{
	{"student1@test.com", "CS101", 85}, {"student1@test.com", "MA102", 78},
	{"student1@test.com", "EC201", 92}, {"student1@test.com", "PH301", 88},
	{"student1@test.com", "CH401", 76}, {"student1@test.com", "EN501", 91},
	{"student2@test.com", "CS101", 76}, {"student2@test.com", "MA102", 82},
	{"student2@test.com", "EC201", 79}, {"student2@test.com", "PH301", 84},
	{"student2@test.com", "CH401", 87}, {"student2@test.com", "EN501", 73},
	{"student3@test.com", "CS101", 94}, {"student3@test.com", "MA102", 89},
	{"student3@test.com", "EC201", 88}, {"student3@test.com", "PH301", 91},
	{"student3@test.com", "CH401", 85}, {"student3@test.com", "EN501", 93},
	{"student4@test.com", "CS101", 67}, {"student4@test.com", "MA102", 73},
	{"student4@test.com", "EC201", 71}, {"student4@test.com", "PH301", 85},
	{"student4@test.com", "CH401", 78}, {"student4@test.com", "EN501", 82},
	{"student5@test.com", "CS101", 81}, {"student5@test.com", "MA102", 75},
	{"student5@test.com", "EC201", 83}, {"student5@test.com", "PH301", 79},
	{"student5@test.com", "CH401", 87}, {"student5@test.com", "EN501", 90},
}

var seedComments = []seedComment{
	{"student1@test.com", "CS101", "faculty.cs@test.com", "Good understanding of programming concepts. Keep practicing algorithms."},
	{"student2@test.com", "CS101", "faculty.cs@test.com", "Need to improve debugging skills. Focus on code optimization."},
	{"student3@test.com", "CS101", "faculty.cs@test.com", "Excellent work! Strong problem-solving abilities."},
	{"student1@test.com", "MA102", "faculty.ma@test.com", "Good progress in calculus. Practice more integration problems."},
	{"student2@test.com", "MA102", "faculty.ma@test.com", "Strong analytical skills. Keep up the good work!"},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Mark{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	markRepo := repository.NewMarkRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	if err := courseRepo.UpsertAll(ctx, seedCourses); err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}
	log.Printf("Seeded %d courses", len(seedCourses))

	// One hash for every demo account
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 12)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	created, existing := 0, 0
	for _, su := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			existing++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", su.Email, err)
		}

		user := &model.User{
			Email:          su.Email,
			PasswordHash:   string(hashedPassword),
			Role:           su.Role,
			Name:           su.Name,
			AssignedCourse: su.AssignedCourse,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		created++
	}
	log.Printf("Users: %d created, %d already present", created, existing)

	for _, sm := range seedMarks {
		if _, err := markRepo.Upsert(ctx, sm.StudentEmail, sm.CourseCode, sm.Marks); err != nil {
			log.Fatalf("Failed to seed marks for %s/%s: %v", sm.StudentEmail, sm.CourseCode, err)
		}
	}
	log.Printf("Seeded %d marks records", len(seedMarks))

	for _, sc := range seedComments {
		if _, err := commentRepo.Upsert(ctx, sc.StudentEmail, sc.CourseCode, sc.FacultyEmail, sc.Comment); err != nil {
			log.Fatalf("Failed to seed comment for %s/%s: %v", sc.StudentEmail, sc.CourseCode, err)
		}
	}
	log.Printf("Seeded %d comments", len(seedComments))

	log.Println("Seed completed successfully!")
	log.Println("Admin login: admin@test.com / " + seedPassword)
	log.Println("Faculty logins: faculty.{cs,ma,ec,ph,ch,en}@test.com / " + seedPassword)
	log.Println("Student logins: student{1..5}@test.com / " + seedPassword)
}
